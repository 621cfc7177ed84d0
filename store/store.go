// Package store is the document-store layer: one handle, constructed at startup, that every
// service reads and writes collections through. Two backends satisfy Store: DynamoDB for
// deployed environments and SQLite (through gorm) for local development and tests.
package store

import (
	"context"

	"jamjam-resort-api/models"
)

// Store is the set of operations the resort services need from a document store.
type Store interface {
	// Get returns models.ErrNotFound when no record has the key.
	Get(ctx context.Context, c Collection, key string) (models.Document, error)
	// Put inserts doc or replaces the record with the same key.
	Put(ctx context.Context, c Collection, doc models.Document) error
	// Update sets the fields named by u on an existing record and returns the whole record
	// afterwards. It never creates a record: a missing key yields models.ErrNotFound.
	Update(ctx context.Context, c Collection, key string, u *Update) (models.Document, error)
	// Delete removes the record; deleting a missing key is not an error.
	Delete(ctx context.Context, c Collection, key string) error
	// Query reads a secondary index.
	Query(ctx context.Context, c Collection, q Query) ([]models.Document, error)
	// Scan reads the whole collection, keeping records that match every filter.
	Scan(ctx context.Context, c Collection, filters ...Filter) ([]models.Document, error)
	// Provision creates the collections that do not exist yet and returns those it created.
	Provision(ctx context.Context, colls ...Collection) ([]Collection, error)
}

// Collection describes one table: its logical name, key attribute and secondary indexes.
type Collection struct {
	Name    string
	Key     string
	Indexes []Index
}

// Index is a secondary access path. RangeKey is optional.
type Index struct {
	Name     string
	HashKey  string
	RangeKey string
}

// Index looks up a secondary index by name.
func (c Collection) Index(name string) (Index, bool) {
	for _, idx := range c.Indexes {
		if idx.Name == name {
			return idx, true
		}
	}
	return Index{}, false
}

// IndexOn returns the first index whose hash key is attr.
func (c Collection) IndexOn(attr string) (Index, bool) {
	for _, idx := range c.Indexes {
		if idx.HashKey == attr {
			return idx, true
		}
	}
	return Index{}, false
}

// Query selects records from a secondary index by exact hash-key match, optionally bounded
// on the range key (inclusive, either side omissible) and ordered by it.
type Query struct {
	Index      string
	Value      string
	From       string
	To         string
	Descending bool
}

// Filter keeps scanned records whose attribute equals Value.
type Filter struct {
	Attr  string
	Value interface{}
}

func matches(doc models.Document, filters []Filter) bool {
	for _, f := range filters {
		if doc[f.Attr] != f.Value {
			return false
		}
	}
	return true
}
