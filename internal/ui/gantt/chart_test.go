package gantt

import (
	"strings"
	"testing"
	"time"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/timeline"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	// Tuesday Jan 2 2024
	now = time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
)

func testTasks() []domain.Task {
	return []domain.Task{
		{ID: "t1", Title: "Design", Status: domain.StatusTodo, StartDate: "2024-01-01", EndDate: "2024-01-03"},
		{ID: "t2", Title: "Build", Status: domain.StatusInProgress, StartDate: "2024-01-04", EndDate: "2024-01-06", Dependencies: []string{"t1"}},
		{ID: "t3", Title: "Someday", Dependencies: []string{"t9"}},
	}
}

// newChart renders 10 days at 50 px with two columns per day
func newChart(t *testing.T, anchor time.Time, selected string) *Chart {
	t.Helper()
	w := timeline.NewWindow(anchor, timeline.GranularityDay, timeline.Zoom{DayCount: 10, CellWidth: 50})
	res := timeline.Compute(testTasks(), w, timeline.DefaultGeometry(), now)
	return New(res, testTasks(), styles.New(), Options{PixelsPerChar: 25, LabelWidth: 10, Selected: selected})
}

func TestChart_Dimensions(t *testing.T) {
	c := newChart(t, jan1, "")
	assert.Equal(t, 20, c.Columns())
	assert.Equal(t, 31, c.Width())
}

func TestChart_Header(t *testing.T) {
	c := newChart(t, jan1, "")
	lines := strings.Split(c.Header(), "\n")
	require.Len(t, lines, 2)

	pad := strings.Repeat(" ", 11)
	assert.Equal(t, pad+"Jan 2024"+strings.Repeat(" ", 12), lines[0])
	assert.Equal(t, pad+" 1 2 3 4 5 6 7 8 910", lines[1])
}

func TestChart_Rows(t *testing.T) {
	c := newChart(t, jan1, "t2")
	rows := c.Rows()
	require.Len(t, rows, 3)

	// Jan 6-7 are the weekend (columns 10-13); today is column 2
	assert.Equal(t, " Design    ██████····░░░░······", rows[0])
	assert.Equal(t, "▸Build     ··│···██████░░······", rows[1])
	assert.Equal(t, " Someday   unscheduled░░░······", rows[2])
}

func TestChart_ClippedBars(t *testing.T) {
	// Anchor Jan 3: t1 starts two days before the window
	c := newChart(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), "")
	row := c.Row(0)
	assert.True(t, strings.HasPrefix(row, " Design    ◀█"), row)

	// Anchor Jan 10: everything lies to the left
	c = newChart(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), "")
	assert.Contains(t, c.Row(1), "◀")
	assert.NotContains(t, c.Row(1), "█")

	// Anchor Dec 1: everything lies to the right
	c = newChart(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), "")
	assert.True(t, strings.HasSuffix(c.Row(0), "▶"), c.Row(0))
}

func TestChart_NarrowCells(t *testing.T) {
	// Two days per column: labels only on Mondays and the first of the month
	w := timeline.NewWindow(jan1, timeline.GranularityWeek, timeline.Zoom{DayCount: 14, CellWidth: 20})
	res := timeline.Compute(testTasks(), w, timeline.DefaultGeometry(), now)
	c := New(res, testTasks(), styles.New(), Options{PixelsPerChar: 40, LabelWidth: 10})

	assert.Equal(t, 7, c.Columns())
	lines := strings.Split(c.Header(), "\n")
	assert.Equal(t, strings.Repeat(" ", 11)+"1  8   ", lines[1])

	// t1 covers Jan 1-3, 60 px, columns 0-1
	assert.Equal(t, " Design    ██░···░", c.Row(0))
}

func TestChart_Detail(t *testing.T) {
	c := newChart(t, jan1, "t2")

	assert.Equal(t, "t2 · Build · Jan 4 - Jan 6 · in-progress · after t1", c.Detail("t2"))
	assert.Equal(t, "t3 · Someday · after t9 · invalid_dates · unknown_dependency", c.Detail("t3"))
	assert.Empty(t, c.Detail("missing"))
}

func TestChart_OverdueDetail(t *testing.T) {
	w := timeline.NewWindow(jan1, timeline.GranularityDay, timeline.Zoom{DayCount: 10, CellWidth: 50})
	late := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	c := New(timeline.Compute(testTasks(), w, timeline.DefaultGeometry(), late), testTasks(), styles.New(), Options{PixelsPerChar: 25})

	assert.Contains(t, c.Detail("t1"), "Jan 1 - Jan 3 (overdue)")
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc  ", fit("abc", 5))
	assert.Equal(t, "abcd…", fit("abcdefgh", 5))
	assert.Equal(t, "a", fit("abc", 1))
	assert.Equal(t, "héllo", fit("héllo", 5))
}

func TestChart_MonthLabelsDoNotCollide(t *testing.T) {
	// Dec 31 gets one day before January starts; its label is dropped
	c := newChart(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), "")
	months := strings.Split(c.Header(), "\n")[0]

	assert.NotContains(t, months, "Dec 2023")
	assert.Equal(t, strings.Repeat(" ", 11)+"  Jan 2024"+strings.Repeat(" ", 10), months)

	// With room for both, both are shown
	w := timeline.NewWindow(time.Date(2023, 12, 27, 0, 0, 0, 0, time.UTC), timeline.GranularityDay, timeline.Zoom{DayCount: 10, CellWidth: 50})
	res := timeline.Compute(testTasks(), w, timeline.DefaultGeometry(), now)
	c = New(res, testTasks(), styles.New(), Options{PixelsPerChar: 25, LabelWidth: 10})
	months = strings.Split(c.Header(), "\n")[0]
	assert.Contains(t, months, "Dec 2023")
	assert.Contains(t, months, "Jan 2024")
}
