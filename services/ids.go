package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

func shortUUID() string {
	return uuid.NewString()[:8]
}

// prefixedID returns ids like "menu_1a2b3c4d".
func prefixedID(prefix string) func() string {
	return func() string {
		return prefix + shortUUID()
	}
}

// bookingID returns ids like "BK-1A2B3C4D".
func bookingID() string {
	return "BK-" + strings.ToUpper(shortUUID())
}

// customerID returns ids like "JJ-M4X1ZQ2A-9F3C": base-36 milliseconds plus four random
// characters.
func customerID(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	return strings.ToUpper("JJ-" + ts + "-" + uuid.NewString()[:4])
}

// roomID returns ids like "room_1735689600000".
func roomID(now Clock) func() string {
	return func() string {
		return "room_" + strconv.FormatInt(now().UnixMilli(), 10)
	}
}
