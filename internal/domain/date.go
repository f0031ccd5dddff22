package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the ISO-8601 forms accepted for task dates, most specific first
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseDate parses an ISO-8601 date or timestamp and returns the calendar
// date it names, as midnight UTC. The time of day and zone are discarded after
// reading the date in the zone it was written in.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrMissingDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// DateOf truncates t to its calendar date at midnight UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// secondsPerDay is exact between two UTC midnights
const secondsPerDay = 24 * 60 * 60

// DaysBetween returns the number of whole calendar days from a to b.
// Negative when b is before a. Counted on Unix seconds rather than a
// time.Duration, which saturates around 292 years.
func DaysBetween(a, b time.Time) int {
	return int((DateOf(b).Unix() - DateOf(a).Unix()) / secondsPerDay)
}

// SameDay reports whether a and b fall on the same calendar date
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}

// FormatRange renders a short "Jan 2 - Jan 6" label for a bar tooltip
func FormatRange(start, end time.Time) string {
	return start.Format("Jan 2") + " - " + end.Format("Jan 2")
}
