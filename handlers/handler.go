// Package handlers is the HTTP surface: one gin handler per route, translating requests to
// service calls and service errors to status codes.
package handlers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"jamjam-resort-api/analytics"
	"jamjam-resort-api/seed"
	"jamjam-resort-api/services"
	"jamjam-resort-api/storage"
)

// ImageStore uploads room images.
type ImageStore interface {
	UploadURL(ctx context.Context, fileName, contentType string) (*storage.Upload, error)
	Upload(ctx context.Context, data, fileName, contentType string) (*storage.Upload, error)
}

// Options are the collaborators a Handler serves requests with.
type Options struct {
	Services *services.Services
	Stats    *analytics.Aggregator
	Images   ImageStore
	Defaults *seed.Defaults
	// Location interprets date-only admin bounds; nil means time.Local.
	Location *time.Location
	Now      func() time.Time
	Log      logrus.FieldLogger
}

// Handler holds every route handler.
type Handler struct {
	svc      *services.Services
	stats    *analytics.Aggregator
	images   ImageStore
	defaults *seed.Defaults
	loc      *time.Location
	now      func() time.Time
	started  time.Time
	log      logrus.FieldLogger

	Games            *Resource
	Bookings         *Resource
	Menu             *Resource
	Combos           *Resource
	RestaurantOrders *Resource
	BakeryItems      *Resource
	BakeryOrders     *Resource
	JuiceItems       *Resource
	JuiceOrders      *Resource
	MassageItems     *Resource
	MassageOrders    *Resource
	PoolTypes        *Resource
	PoolOrders       *Resource
	TaxSettings      *Resource
	Rooms            *Resource
	customers        *Resource
}

// New builds the handlers.
func New(o Options) *Handler {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Location == nil {
		o.Location = time.Local
	}
	h := &Handler{
		svc:      o.Services,
		stats:    o.Stats,
		images:   o.Images,
		defaults: o.Defaults,
		loc:      o.Location,
		now:      o.Now,
		log:      o.Log,
	}
	h.started = h.now()

	svc := o.Services
	orderAmounts := numericFields("totalAmount")
	h.customers = h.resource(svc.Customers.Repository(), "Customer", "customers")
	h.Games = h.resource(svc.Games, "Game", "games").
		requires(func() interface{} { return &gameRequest{} }, "Name and rate are required").
		normalizes(numericFields("rate", "minutes"))
	h.Bookings = h.resource(svc.Bookings, "Booking", "bookings").
		requires(func() interface{} { return &bookingRequest{} }, "Items, totalAmount, and service are required").
		normalizes(numericFields("totalAmount", "totalCoins"))
	h.Menu = h.resource(svc.MenuItems, "Menu item", "menu items")
	h.Combos = h.resource(svc.Combos, "Combo", "combos")
	h.RestaurantOrders = h.resource(svc.RestaurantOrders, "Order", "restaurant orders").normalizes(orderAmounts)
	h.BakeryItems = h.resource(svc.BakeryItems, "Bakery item", "bakery items")
	h.BakeryOrders = h.resource(svc.BakeryOrders, "Bakery order", "bakery orders").normalizes(orderAmounts)
	h.JuiceItems = h.resource(svc.JuiceItems, "Juice item", "juice items")
	h.JuiceOrders = h.resource(svc.JuiceOrders, "Juice order", "juice orders").normalizes(orderAmounts)
	h.MassageItems = h.resource(svc.MassageItems, "Massage item", "massage items")
	h.MassageOrders = h.resource(svc.MassageOrders, "Massage order", "massage orders").normalizes(orderAmounts)
	h.PoolTypes = h.resource(svc.PoolTypes, "Pool type", "pool types")
	h.PoolOrders = h.resource(svc.PoolOrders, "Pool order", "pool orders").normalizes(orderAmounts)
	h.TaxSettings = h.resource(svc.TaxSettings, "Tax setting", "tax settings").
		requires(func() interface{} { return &taxSettingRequest{} }, "serviceId and a taxPercent between 0 and 100 are required").
		normalizes(numericFields("taxPercent")).
		keyedBy("serviceId")
	h.Rooms = h.resource(svc.Rooms, "Room", "rooms").normalizes(numericFields("price"))
	return h
}
