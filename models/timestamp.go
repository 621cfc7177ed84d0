package models

import (
	"errors"
	"time"
)

// TimestampLayout is the fixed-width UTC form every stored timestamp is written in,
// e.g. 2025-03-01T09:30:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp formats t the way records store it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts any RFC 3339 instant, with or without fractional seconds.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty timestamp")
	}
	return time.Parse(time.RFC3339Nano, s)
}

// CreatedAt returns the record's creation instant: createdAt, falling back to the older
// timestamp attribute. ok is false when neither holds a parseable instant.
func CreatedAt(d Document) (raw string, t time.Time, ok bool) {
	raw = d.String(FieldCreatedAt)
	if raw == "" {
		raw = d.String(FieldTimestamp)
	}
	t, err := ParseTimestamp(raw)
	return raw, t, err == nil
}
