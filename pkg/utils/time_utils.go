// utils/timeutil.go
package utils

import (
	"fmt"
	"strings"
	"time"
)

// TripDateLayout is the ISO-8601 calendar date used by the form and the record.
const TripDateLayout = "2006-01-02"

// ParseTripDate parses a YYYY-MM-DD date as a calendar day in UTC.
func ParseTripDate(s string) (time.Time, error) {
	t, err := time.Parse(TripDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func FormatTripDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TripDateLayout)
}

// TodayISO is today's date in the server's local zone.
func TodayISO() string { return time.Now().Format(TripDateLayout) }
