// Package timeline computes the Gantt geometry: the visible day grid, a bar per
// schedulable task and a connector per dependency edge. Everything here is a
// pure function of its inputs; "now" is always passed in by the caller.
package timeline

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
)

// Granularity is the zoom level of the view
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity parses a granularity name
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return g, nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// Direction is a navigation direction
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

// ParseDirection parses "next"/"prev" (also "forward"/"back")
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "next", "forward":
		return Next, nil
	case "prev", "previous", "back":
		return Prev, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Zoom maps a granularity to how many days are rendered and how wide each is
type Zoom struct {
	DayCount  int     `json:"dayCount" yaml:"dayCount"`
	CellWidth float64 `json:"cellWidth" yaml:"cellWidth"`
}

// DefaultCellWidth is the day column width in pixels at day zoom
const DefaultCellWidth = 50

// DefaultZooms returns the built-in zoom table
func DefaultZooms() map[Granularity]Zoom {
	return map[Granularity]Zoom{
		GranularityDay:   {DayCount: 30, CellWidth: DefaultCellWidth},
		GranularityWeek:  {DayCount: 84, CellWidth: 20},
		GranularityMonth: {DayCount: 180, CellWidth: 8},
	}
}

// Window is the visible date range. It is a value; navigation returns a new one.
type Window struct {
	Anchor      time.Time
	DayCount    int
	CellWidth   float64
	Granularity Granularity
}

// NewWindow builds a window, clamping DayCount to at least 1 and falling back
// to DefaultCellWidth for a non-positive width.
func NewWindow(anchor time.Time, g Granularity, z Zoom) Window {
	w := Window{
		Anchor:      domain.DateOf(anchor),
		DayCount:    z.DayCount,
		CellWidth:   z.CellWidth,
		Granularity: g,
	}
	if w.DayCount < 1 {
		w.DayCount = 1
	}
	if w.CellWidth <= 0 {
		w.CellWidth = DefaultCellWidth
	}
	return w
}

// End returns the last date in the window
func (w Window) End() time.Time {
	return w.Anchor.AddDate(0, 0, max(w.DayCount, 1)-1)
}

// PixelWidth returns the width of the whole grid
func (w Window) PixelWidth() float64 {
	return float64(max(w.DayCount, 1)) * w.CellWidth
}

// Contains reports whether date d falls inside the window
func (w Window) Contains(d time.Time) bool {
	off := domain.DaysBetween(w.Anchor, d)
	return off >= 0 && off < max(w.DayCount, 1)
}

// Days enumerates the window's days against now
func (w Window) Days(now time.Time) []Day {
	return ComputeWindow(w.Anchor, w.DayCount, now)
}

// MarshalJSON writes the anchor as YYYY-MM-DD alongside the zoom values
func (w Window) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Anchor      string      `json:"anchor"`
		DayCount    int         `json:"dayCount"`
		CellWidth   float64     `json:"cellWidth"`
		Granularity Granularity `json:"granularity"`
	}{w.Anchor.Format(time.DateOnly), w.DayCount, w.CellWidth, w.Granularity})
}

// Day is one column of the grid
type Day struct {
	Date      time.Time
	IsWeekend bool
	IsToday   bool
}

// MarshalJSON writes the date as YYYY-MM-DD with its weekend and today flags
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date      string `json:"date"`
		IsWeekend bool   `json:"isWeekend"`
		IsToday   bool   `json:"isToday"`
	}{d.Date.Format(time.DateOnly), d.IsWeekend, d.IsToday})
}

// ComputeWindow returns dayCount consecutive days starting at anchor.
// dayCount < 1 is clamped to 1.
func ComputeWindow(anchor time.Time, dayCount int, now time.Time) []Day {
	if dayCount < 1 {
		dayCount = 1
	}
	start := domain.DateOf(anchor)

	days := make([]Day, dayCount)
	for i := range days {
		d := start.AddDate(0, 0, i)
		wd := d.Weekday()
		days[i] = Day{
			Date:      d,
			IsWeekend: wd == time.Saturday || wd == time.Sunday,
			IsToday:   domain.SameDay(d, now),
		}
	}
	return days
}

// ShiftWindow moves the anchor one whole unit of g: a day, a week or a
// calendar month. DayCount and CellWidth are unchanged.
func ShiftWindow(w Window, dir Direction, g Granularity) Window {
	switch g {
	case GranularityWeek:
		return ShiftWindowDays(w, dir, 7)
	case GranularityMonth:
		w.Anchor = addMonths(w.Anchor, int(dir))
		return w
	default:
		return ShiftWindowDays(w, dir, 1)
	}
}

// ShiftWindowDays moves the anchor by n whole days (n < 1 counts as 1)
func ShiftWindowDays(w Window, dir Direction, n int) Window {
	if n < 1 {
		n = 1
	}
	w.Anchor = w.Anchor.AddDate(0, 0, int(dir)*n)
	return w
}

// ResetToToday anchors the window on today for day granularity, the start of
// the current week for week granularity and the first of the month for month.
func ResetToToday(w Window, now time.Time, weekStart time.Weekday) Window {
	switch w.Granularity {
	case GranularityWeek:
		w.Anchor = StartOfWeek(now, weekStart)
	case GranularityMonth:
		y, m, _ := now.Date()
		w.Anchor = time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	default:
		w.Anchor = domain.DateOf(now)
	}
	return w
}

// StartOfWeek returns the calendar date of the most recent weekStart on or before t
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	d := domain.DateOf(t)
	diff := (int(d.Weekday()) - int(weekStart) + 7) % 7
	return d.AddDate(0, 0, -diff)
}

// addMonths moves t by n months, clamping the day to the target month's length
// so Jan 31 + 1 month is Feb 29/28 rather than early March.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}
