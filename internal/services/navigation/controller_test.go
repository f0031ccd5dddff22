package navigation

import (
	"testing"
	"time"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Thursday 2024-03-14
func fixedNow() time.Time {
	return time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC)
}

func newTestController(g timeline.Granularity) *Controller {
	return NewController(Options{Granularity: g, WeekStart: time.Sunday, Now: fixedNow})
}

func anchor(c *Controller) string {
	return c.Window().Anchor.Format(time.DateOnly)
}

func TestNewController(t *testing.T) {
	c := newTestController(timeline.GranularityDay)
	w := c.Window()

	assert.Equal(t, "2024-03-10", anchor(c))
	assert.Equal(t, timeline.GranularityDay, w.Granularity)
	assert.Equal(t, 30, w.DayCount)
	assert.Equal(t, 50.0, w.CellWidth)
	assert.Len(t, c.Days(), 30)
	assert.True(t, c.Days()[4].IsToday)
}

func TestNewController_UnknownGranularityFallsBackToDay(t *testing.T) {
	c := newTestController(timeline.Granularity("fortnight"))
	assert.Equal(t, timeline.GranularityDay, c.Granularity())
}

func TestNewController_MonthAnchorsOnFirst(t *testing.T) {
	c := newTestController(timeline.GranularityMonth)
	assert.Equal(t, "2024-03-01", anchor(c))
}

func TestController_ShiftWeek(t *testing.T) {
	c := newTestController(timeline.GranularityWeek)
	before := c.Window()

	c.Shift(timeline.Next)
	after := c.Window()

	assert.Equal(t, 7*24*time.Hour, after.Anchor.Sub(before.Anchor))
	assert.Equal(t, before.DayCount, after.DayCount)
	assert.Equal(t, before.CellWidth, after.CellWidth)

	c.Shift(timeline.Prev)
	assert.Equal(t, before, c.Window())
}

func TestController_ShiftDayStep(t *testing.T) {
	c := NewController(Options{Granularity: timeline.GranularityDay, DayStep: 4, Now: fixedNow})
	c.Shift(timeline.Next)
	assert.Equal(t, "2024-03-14", anchor(c))

	// Day step only applies at day granularity
	require.NoError(t, c.SetGranularity(timeline.GranularityWeek))
	c.Shift(timeline.Next)
	assert.Equal(t, "2024-03-21", anchor(c))
}

func TestController_SetGranularityKeepsAnchor(t *testing.T) {
	c := newTestController(timeline.GranularityDay)
	c.Shift(timeline.Next)
	before := anchor(c)

	require.NoError(t, c.SetGranularity(timeline.GranularityWeek))
	assert.Equal(t, before, anchor(c))
	assert.Equal(t, 84, c.Window().DayCount)
	assert.Equal(t, 20.0, c.Window().CellWidth)

	assert.Error(t, c.SetGranularity(timeline.Granularity("year")))
	assert.Equal(t, timeline.GranularityWeek, c.Granularity())
}

func TestController_CustomZooms(t *testing.T) {
	c := NewController(Options{
		Granularity: timeline.GranularityDay,
		Zooms:       map[timeline.Granularity]timeline.Zoom{timeline.GranularityDay: {DayCount: 14, CellWidth: 64}},
		Now:         fixedNow,
	})
	assert.Equal(t, 14, c.Window().DayCount)
	assert.Equal(t, 64.0, c.Window().CellWidth)
}

func TestController_CycleGranularity(t *testing.T) {
	c := newTestController(timeline.GranularityDay)
	assert.Equal(t, timeline.GranularityWeek, c.CycleGranularity())
	assert.Equal(t, timeline.GranularityMonth, c.CycleGranularity())
	assert.Equal(t, timeline.GranularityDay, c.CycleGranularity())
}

func TestController_JumpToToday(t *testing.T) {
	c := newTestController(timeline.GranularityDay)
	for i := 0; i < 5; i++ {
		c.Shift(timeline.Prev)
	}
	c.JumpToToday()
	assert.Equal(t, "2024-03-14", anchor(c))

	require.NoError(t, c.SetGranularity(timeline.GranularityWeek))
	c.Shift(timeline.Next)
	c.JumpToToday()
	assert.Equal(t, "2024-03-10", anchor(c))
}

func TestController_JumpToAndReveal(t *testing.T) {
	c := newTestController(timeline.GranularityWeek)
	c.JumpTo(time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-01-01", anchor(c))

	// Inside the window: no move
	assert.False(t, c.Reveal(time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01-01", anchor(c))

	// Outside: aligned to the week containing it
	assert.True(t, c.Reveal(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-06-09", anchor(c))
	assert.True(t, c.Window().Contains(time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)))
}
