package analytics

import (
	"fmt"
	"time"

	"jamjam-resort-api/models"
)

const dateLayout = "2006-01-02"

// ParseBound reads an admin listing bound: an RFC 3339 instant or a YYYY-MM-DD date in loc.
// A date used as the end bound covers the whole day. An empty value means no bound.
func ParseBound(value string, end bool, loc *time.Location) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := models.ParseTimestamp(value); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(dateLayout, value, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is neither an RFC 3339 timestamp nor a YYYY-MM-DD date", models.ErrValidation, value)
	}
	if end {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}
