// Package analytics rolls the six order collections up into the admin dashboard and the
// admin order listing.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"jamjam-resort-api/models"
	"jamjam-resort-api/store"
)

// source is one order collection and the service label its records report under.
type source struct {
	collection store.Collection
	service    string
}

// Bookings carry their own service label when they are not game sessions; every other
// collection has a fixed one.
var sources = []source{
	{store.Bookings, models.ServiceGames},
	{store.RestaurantOrders, models.ServiceRestaurant},
	{store.BakeryOrders, models.ServiceBakery},
	{store.JuiceOrders, models.ServiceJuice},
	{store.MassageOrders, models.ServiceMassage},
	{store.PoolOrders, models.ServicePool},
}

// entry is an order normalized to the fields the reports need.
type entry struct {
	doc     models.Document
	service string
	amount  float64
	raw     string
	at      time.Time
	dated   bool
	booking bool
}

func normalize(src source, doc models.Document) entry {
	e := entry{doc: doc, service: src.service, booking: src.collection.Name == store.Bookings.Name}
	if e.booking {
		if s := doc.String(models.FieldService); s != "" {
			e.service = s
		}
	}
	if n, ok := models.ToNumber(doc[models.FieldTotalAmount]); ok {
		e.amount = n
	}
	e.raw, e.at, e.dated = models.CreatedAt(doc)
	return e
}

// Aggregator reads every order source concurrently and reduces them.
type Aggregator struct {
	store store.Store
	now   func() time.Time
	loc   *time.Location
	log   logrus.FieldLogger
}

// New returns an Aggregator. Calendar windows start at midnight in loc; a nil clock means
// time.Now and a nil location means time.Local.
func New(s store.Store, now func() time.Time, loc *time.Location, log logrus.FieldLogger) *Aggregator {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{store: s, now: now, loc: loc, log: log}
}

// fetch scans all sources in parallel. A single failed read fails the whole fetch.
func (a *Aggregator) fetch(ctx context.Context) ([]entry, error) {
	results := make([][]models.Document, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			docs, err := a.store.Scan(gctx, src.collection)
			if err != nil {
				if !errors.Is(err, models.ErrDataUnavailable) {
					err = fmt.Errorf("%w: scan %s: %w", models.ErrDataUnavailable, src.collection.Name, err)
				}
				return err
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.log.WithError(err).Error("❌ order fan-in failed")
		return nil, err
	}

	var all []entry
	for i, docs := range results {
		for _, d := range docs {
			all = append(all, normalize(sources[i], d))
		}
	}
	return all, nil
}

// ── Dashboard ──────────────────────────────────────────────────────────────

// WindowReport is the revenue of the orders created since a window's start.
type WindowReport struct {
	Revenue    float64            `json:"revenue"`
	OrderCount int                `json:"orderCount"`
	ByService  map[string]float64 `json:"byService"`
}

func (w *WindowReport) add(e entry) {
	w.Revenue += e.amount
	w.OrderCount++
	w.ByService[e.service] += e.amount
}

// DashboardStats is the admin dashboard snapshot.
type DashboardStats struct {
	Today       WindowReport `json:"today"`
	Week        WindowReport `json:"week"`
	Month       WindowReport `json:"month"`
	Year        WindowReport `json:"year"`
	TotalOrders int          `json:"totalOrders"`
}

// Windows are the start instants of the four dashboard windows.
type Windows struct {
	Today, Week, Month, Year time.Time
}

// WindowsAt computes the window starts for now: local midnight, now minus seven days,
// the first of the month and the first of the year.
func WindowsAt(now time.Time, loc *time.Location) Windows {
	local := now.In(loc)
	y, m, d := local.Date()
	return Windows{
		Today: time.Date(y, m, d, 0, 0, 0, 0, loc),
		Week:  now.Add(-7 * 24 * time.Hour),
		Month: time.Date(y, m, 1, 0, 0, 0, 0, loc),
		Year:  time.Date(y, time.January, 1, 0, 0, 0, 0, loc),
	}
}

// DashboardStats computes revenue, order counts and per-service revenue for today, the
// rolling week, the month and the year. Orders without a readable creation time only
// count toward TotalOrders.
func (a *Aggregator) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	entries, err := a.fetch(ctx)
	if err != nil {
		return nil, err
	}

	w := WindowsAt(a.now(), a.loc)
	stats := &DashboardStats{TotalOrders: len(entries)}
	reports := []struct {
		start  time.Time
		report *WindowReport
	}{
		{w.Today, &stats.Today},
		{w.Week, &stats.Week},
		{w.Month, &stats.Month},
		{w.Year, &stats.Year},
	}
	for _, r := range reports {
		r.report.ByService = map[string]float64{}
	}
	for _, e := range entries {
		if !e.dated {
			continue
		}
		for _, r := range reports {
			if !e.at.Before(r.start) {
				r.report.add(e)
			}
		}
	}

	a.log.WithFields(logrus.Fields{
		"total_orders":  stats.TotalOrders,
		"today_revenue": stats.Today.Revenue,
	}).Debug("dashboard computed")
	return stats, nil
}

// ── Order listing ──────────────────────────────────────────────────────────

// ListOrders returns every order from all sources, newest first, each annotated with its
// service label and normalized createdAt; bookings also get orderId. Either bound may be
// nil; both are inclusive. With any bound set, orders without a readable creation time are
// left out. Undated orders otherwise sort last.
func (a *Aggregator) ListOrders(ctx context.Context, start, end *time.Time) ([]models.Document, error) {
	entries, err := a.fetch(ctx)
	if err != nil {
		return nil, err
	}

	kept := entries[:0]
	for _, e := range entries {
		if start != nil || end != nil {
			if !e.dated || (start != nil && e.at.Before(*start)) || (end != nil && e.at.After(*end)) {
				continue
			}
		}
		kept = append(kept, e)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].dated != kept[j].dated {
			return kept[i].dated
		}
		return kept[i].at.After(kept[j].at)
	})

	out := make([]models.Document, 0, len(kept))
	for _, e := range kept {
		doc := e.doc.Clone()
		doc[models.FieldService] = e.service
		if e.raw != "" {
			doc[models.FieldCreatedAt] = e.raw
		}
		if e.booking {
			doc[models.FieldOrderID] = doc[models.FieldBookingID]
		}
		out = append(out, doc)
	}
	return out, nil
}
