// Package services holds the per-entity rules layered over the document store: id
// generation, creation and update stamps, defaults, and the few entity-specific operations
// (customer check-in/out, kitchen tickets).
package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"jamjam-resort-api/models"
	"jamjam-resort-api/store"
)

// Clock returns the current time; tests substitute a fixed one.
type Clock func() time.Time

// Schema describes how records of one collection are created and mutated.
type Schema struct {
	Collection store.Collection
	// NewID generates a key. When nil, or when KeepID is set and the caller supplied a key,
	// the caller's key is used.
	NewID  func() string
	KeepID bool
	// Stamps are the attributes set to the insert time.
	Stamps []string
	// TrackUpdates stamps updatedAt on insert and forces it on every update.
	TrackUpdates bool
	// Defaults fill attributes that are absent, null or the empty string.
	Defaults models.Document
	// Overrides are always written on insert.
	Overrides models.Document
	// SortBy orders List newest first on this attribute (falling back to timestamp).
	SortBy string
}

// Repository performs create/read/update/delete for one collection.
type Repository struct {
	store  store.Store
	schema Schema
	now    Clock
	log    logrus.FieldLogger
}

// NewRepository binds a schema to a store.
func NewRepository(s store.Store, schema Schema, now Clock, log logrus.FieldLogger) *Repository {
	return &Repository{store: s, schema: schema, now: now, log: log}
}

// Collection is the collection this repository writes to.
func (r *Repository) Collection() store.Collection {
	return r.schema.Collection
}

// Key is the collection's primary-key attribute.
func (r *Repository) Key() string {
	return r.schema.Collection.Key
}

func isBlank(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// Create inserts a new record built from fields and returns it.
func (r *Repository) Create(ctx context.Context, fields models.Document) (models.Document, error) {
	doc := fields.Clone()
	key := r.Key()

	existing, _ := doc[key].(string)
	switch {
	case r.schema.NewID != nil && !(r.schema.KeepID && existing != ""):
		doc[key] = r.schema.NewID()
	case existing == "":
		return nil, fmt.Errorf("%w: %s is required", models.ErrValidation, key)
	}

	for k, v := range r.schema.Defaults {
		if isBlank(doc[k]) {
			doc[k] = v
		}
	}
	for k, v := range r.schema.Overrides {
		doc[k] = v
	}
	now := models.Timestamp(r.now())
	for _, f := range r.schema.Stamps {
		doc[f] = now
	}
	if r.schema.TrackUpdates {
		doc[models.FieldCreatedAt] = now
		doc[models.FieldUpdatedAt] = now
	}

	if err := r.store.Put(ctx, r.schema.Collection, doc); err != nil {
		return nil, err
	}
	r.log.WithFields(logrus.Fields{"op": "create", "collection": r.schema.Collection.Name, "key": doc[key]}).Debug("record created")
	return doc, nil
}

// Get returns the record with the key, or models.ErrNotFound.
func (r *Repository) Get(ctx context.Context, id string) (models.Document, error) {
	return r.store.Get(ctx, r.schema.Collection, id)
}

// List returns every record, newest first when the schema names a sort attribute.
func (r *Repository) List(ctx context.Context) ([]models.Document, error) {
	docs, err := r.store.Scan(ctx, r.schema.Collection)
	if err != nil {
		return nil, err
	}
	if r.schema.SortBy != "" {
		sortNewestFirst(docs, r.schema.SortBy)
	}
	return docs, nil
}

// ListByCustomer returns a customer's records newest first, through the collection's
// customerId index when it has one and a filtered scan otherwise.
func (r *Repository) ListByCustomer(ctx context.Context, customerID string) ([]models.Document, error) {
	c := r.schema.Collection
	if idx, ok := c.IndexOn(models.FieldCustomerID); ok {
		return r.store.Query(ctx, c, store.Query{Index: idx.Name, Value: customerID, Descending: true})
	}
	docs, err := r.store.Scan(ctx, c, store.Filter{Attr: models.FieldCustomerID, Value: customerID})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(docs, models.FieldCreatedAt)
	return docs, nil
}

// Update applies fields to an existing record. The key attribute is never written, and
// updatedAt is forced when the schema tracks updates.
func (r *Repository) Update(ctx context.Context, id string, fields map[string]interface{}) (models.Document, error) {
	u := store.UpdateFrom(fields).Without(r.Key())
	return r.Apply(ctx, id, u)
}

// Apply runs a prepared update, adding the updatedAt stamp when tracked.
func (r *Repository) Apply(ctx context.Context, id string, u *store.Update) (models.Document, error) {
	if r.schema.TrackUpdates {
		u.Set(models.FieldUpdatedAt, models.Timestamp(r.now()))
	}
	return r.store.Update(ctx, r.schema.Collection, id, u)
}

// Delete removes the record. Related records elsewhere are left in place.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, r.schema.Collection, id)
}

// Seed writes records verbatim (replacing any with the same key), optionally stamping
// createdAt.
func (r *Repository) Seed(ctx context.Context, docs []models.Document, stamp bool) ([]models.Document, error) {
	now := models.Timestamp(r.now())
	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		doc := d.Clone()
		if stamp {
			doc[models.FieldCreatedAt] = now
		}
		if err := r.store.Put(ctx, r.schema.Collection, doc); err != nil {
			return out, err
		}
		out = append(out, doc)
	}
	return out, nil
}

// sortNewestFirst orders by attr (falling back to timestamp) descending; records without a
// parseable instant go last.
func sortNewestFirst(docs []models.Document, attr string) {
	at := func(d models.Document) (time.Time, bool) {
		raw := d.String(attr)
		if raw == "" {
			raw = d.String(models.FieldTimestamp)
		}
		t, err := models.ParseTimestamp(raw)
		return t, err == nil
	}
	sort.SliceStable(docs, func(i, j int) bool {
		ti, oki := at(docs[i])
		tj, okj := at(docs[j])
		if oki != okj {
			return oki
		}
		return ti.After(tj)
	})
}
