package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Document is one stored record. Entities declare no schema beyond their key, so every
// attribute a client ever wrote (including ones older records carry and newer code no
// longer sets) round-trips untouched.
type Document map[string]interface{}

// Clone returns a shallow copy.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// String returns the attribute as a string, or "" when absent or not a string.
func (d Document) String(key string) string {
	if s, ok := d[key].(string); ok {
		return s
	}
	return ""
}

// Number returns the attribute as a float64, or 0 when absent or not numeric.
func (d Document) Number(key string) float64 {
	n, _ := ToNumber(d[key])
	return n
}

// Has reports whether the attribute is present and not null.
func (d Document) Has(key string) bool {
	v, ok := d[key]
	return ok && v != nil
}

// ToNumber converts JSON-ish numeric values (including numeric strings) to float64.
func ToNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
