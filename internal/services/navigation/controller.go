// Package navigation provides the zoom/window state machine and the row cursor
package navigation

import (
	"fmt"
	"time"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/timeline"
)

// Options configures a Controller
type Options struct {
	Granularity timeline.Granularity
	Zooms       map[timeline.Granularity]timeline.Zoom
	WeekStart   time.Weekday
	// DayStep is how many days one shift moves at day granularity (default 1)
	DayStep int
	// Now is the clock; defaults to time.Now
	Now func() time.Time
}

// Controller owns the current view window. Every transition replaces the
// window value; the previous one is never mutated.
type Controller struct {
	window    timeline.Window
	zooms     map[timeline.Granularity]timeline.Zoom
	weekStart time.Weekday
	dayStep   int
	now       func() time.Time
}

// NewController creates a controller anchored on the start of the current
// week (the first of the month at month granularity).
func NewController(opts Options) *Controller {
	c := &Controller{
		zooms:     timeline.DefaultZooms(),
		weekStart: opts.WeekStart,
		dayStep:   opts.DayStep,
		now:       opts.Now,
	}
	for g, z := range opts.Zooms {
		c.zooms[g] = z
	}
	if c.dayStep < 1 {
		c.dayStep = 1
	}
	if c.now == nil {
		c.now = time.Now
	}

	g := opts.Granularity
	if _, ok := c.zooms[g]; !ok {
		g = timeline.GranularityDay
	}
	now := c.now()
	anchor := timeline.StartOfWeek(now, c.weekStart)
	c.window = timeline.NewWindow(anchor, g, c.zooms[g])
	if g == timeline.GranularityMonth {
		c.window = timeline.ResetToToday(c.window, now, c.weekStart)
	}
	return c
}

// Window returns the current window value
func (c *Controller) Window() timeline.Window {
	return c.window
}

// Granularity returns the current zoom level
func (c *Controller) Granularity() timeline.Granularity {
	return c.window.Granularity
}

// Now returns the controller's clock reading
func (c *Controller) Now() time.Time {
	return c.now()
}

// Days enumerates the current window against the controller's clock
func (c *Controller) Days() []timeline.Day {
	return c.window.Days(c.now())
}

// SetGranularity switches zoom level, keeping the anchor
func (c *Controller) SetGranularity(g timeline.Granularity) error {
	z, ok := c.zooms[g]
	if !ok {
		return fmt.Errorf("no zoom configured for granularity %q", g)
	}
	c.window = timeline.NewWindow(c.window.Anchor, g, z)
	return nil
}

// CycleGranularity steps day -> week -> month -> day
func (c *Controller) CycleGranularity() timeline.Granularity {
	order := []timeline.Granularity{timeline.GranularityDay, timeline.GranularityWeek, timeline.GranularityMonth}
	for i, g := range order {
		if g == c.window.Granularity {
			for step := 1; step < len(order); step++ {
				next := order[(i+step)%len(order)]
				if c.SetGranularity(next) == nil {
					return next
				}
			}
		}
	}
	return c.window.Granularity
}

// Shift moves the window one unit in dir
func (c *Controller) Shift(dir timeline.Direction) {
	if c.window.Granularity == timeline.GranularityDay && c.dayStep > 1 {
		c.window = timeline.ShiftWindowDays(c.window, dir, c.dayStep)
		return
	}
	c.window = timeline.ShiftWindow(c.window, dir, c.window.Granularity)
}

// JumpToToday re-anchors on today (or its week/month)
func (c *Controller) JumpToToday() {
	c.window = timeline.ResetToToday(c.window, c.now(), c.weekStart)
}

// JumpTo anchors the window on date d
func (c *Controller) JumpTo(d time.Time) {
	c.window.Anchor = domain.DateOf(d)
}

// Reveal moves the window so that date d is visible, leaving it alone if d is
// already inside. The new anchor is aligned the way JumpToToday aligns it.
func (c *Controller) Reveal(d time.Time) bool {
	if c.window.Contains(d) {
		return false
	}
	c.window = timeline.ResetToToday(c.window, d, c.weekStart)
	return true
}
