package store

import (
	"sort"

	"jamjam-resort-api/models"
)

// Update is a sparse set of field assignments against one record. Field names are used
// verbatim; callers strip anything that must not change (the key in particular).
type Update struct {
	names  []string
	values map[string]interface{}
}

// NewUpdate returns an empty update.
func NewUpdate() *Update {
	return &Update{values: map[string]interface{}{}}
}

// UpdateFrom builds an update from a field map. Fields are ordered by name so the compiled
// expression is stable.
func UpdateFrom(fields map[string]interface{}) *Update {
	u := NewUpdate()
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		u.Set(k, fields[k])
	}
	return u
}

// Set assigns value to name. Setting a field twice keeps the last value.
func (u *Update) Set(name string, value interface{}) *Update {
	if _, ok := u.values[name]; !ok {
		u.names = append(u.names, name)
	}
	u.values[name] = value
	return u
}

// Without drops the named fields.
func (u *Update) Without(names ...string) *Update {
	for _, name := range names {
		if _, ok := u.values[name]; !ok {
			continue
		}
		delete(u.values, name)
		for i, n := range u.names {
			if n == name {
				u.names = append(u.names[:i], u.names[i+1:]...)
				break
			}
		}
	}
	return u
}

// Fields returns the assigned field names in assignment order.
func (u *Update) Fields() []string {
	return append([]string(nil), u.names...)
}

// Value returns the value assigned to name.
func (u *Update) Value(name string) (interface{}, bool) {
	v, ok := u.values[name]
	return v, ok
}

// Len is the number of assigned fields.
func (u *Update) Len() int {
	if u == nil {
		return 0
	}
	return len(u.names)
}

// Apply returns a copy of doc with the update's fields set.
func (u *Update) Apply(doc models.Document) models.Document {
	out := doc.Clone()
	for _, name := range u.names {
		out[name] = u.values[name]
	}
	return out
}
