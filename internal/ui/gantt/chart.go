// Package gantt renders a computed timeline as terminal text
package gantt

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/timeline"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/styles"
)

// Glyphs used on the grid
const (
	glyphBar        = '█'
	glyphGrid       = '·'
	glyphWeekend    = '░'
	glyphToday      = '│'
	glyphClipLeft   = '◀'
	glyphClipRight  = '▶'
	glyphSelectMark = '▸'
)

// eps absorbs float error when pixel edges land exactly on a column edge
const eps = 1e-9

// Options configures the terminal chart
type Options struct {
	// PixelsPerChar is how many engine pixels one terminal column covers
	PixelsPerChar float64
	// LabelWidth is the width of the title column, in runes
	LabelWidth int
	// Selected is the ID of the highlighted task
	Selected string
}

// Chart lays a timeline.Result onto terminal columns
type Chart struct {
	res     timeline.Result
	tasks   []domain.Task
	styles  *styles.Styles
	opts    Options
	columns int
	byRow   map[int]timeline.TaskLayout
}

// New creates a chart. tasks must be the slice res was computed from.
func New(res timeline.Result, tasks []domain.Task, s *styles.Styles, opts Options) *Chart {
	if opts.PixelsPerChar <= 0 {
		opts.PixelsPerChar = res.Window.CellWidth
	}
	if opts.LabelWidth < 4 {
		opts.LabelWidth = 4
	}
	c := &Chart{
		res:    res,
		tasks:  tasks,
		styles: s,
		opts:   opts,
		byRow:  make(map[int]timeline.TaskLayout, len(res.Layouts)),
	}
	c.columns = max(int(math.Ceil(res.Window.PixelWidth()/opts.PixelsPerChar-eps)), 1)
	for _, l := range res.Layouts {
		if _, dup := c.byRow[l.RowIndex]; !dup {
			c.byRow[l.RowIndex] = l
		}
	}
	return c
}

// Columns returns the width of the grid in terminal columns
func (c *Chart) Columns() int {
	return c.columns
}

// Width returns the full rendered width including the label column
func (c *Chart) Width() int {
	return c.opts.LabelWidth + 1 + c.columns
}

// span maps a pixel range to terminal columns [from, to); to > from whenever
// the range is non-empty
func (c *Chart) span(x, width float64) (from, to int) {
	from = int(math.Floor(x/c.opts.PixelsPerChar + eps))
	to = int(math.Ceil((x+width)/c.opts.PixelsPerChar - eps))
	if to <= from {
		to = from + 1
	}
	return from, to
}

// dayColumns returns the columns covered by day i of the window
func (c *Chart) dayColumns(i int) (from, to int) {
	cw := c.res.Window.CellWidth
	from = int(math.Floor(float64(i)*cw/c.opts.PixelsPerChar + eps))
	to = int(math.Floor(float64(i+1)*cw/c.opts.PixelsPerChar + eps))
	return from, to
}

// Header returns the two header lines: month names, then day numbers
func (c *Chart) Header() string {
	pad := strings.Repeat(" ", c.opts.LabelWidth+1)

	months := newLine(c.columns, ' ', c.styles.Header)
	days := newLine(c.columns, ' ', c.styles.Header)
	// Two columns per day fit any day number
	wide := c.res.Window.CellWidth/c.opts.PixelsPerChar >= 2-eps
	c.monthLabels(months)

	nextFree := 0
	for i, d := range c.res.Days {
		from, to := c.dayColumns(i)

		style := c.styles.Header
		if d.IsWeekend {
			style = c.styles.HeaderWeekend
		}
		if d.IsToday {
			style = c.styles.HeaderToday
		}

		label := fmt.Sprintf("%d", d.Date.Day())
		switch {
		case wide:
			// Right-align the number inside its own cell
			days.text(to-len(label), label, style)
		case from < nextFree:
		case d.Date.Weekday() == time.Monday || d.Date.Day() == 1 || d.IsToday:
			// Narrow cells: number the week starts where there is room
			days.text(from, label, style)
			nextFree = from + len(label) + 1
		}
	}
	return pad + months.render() + "\n" + pad + days.render()
}

// monthLabels names the first day and every first of the month. A label that
// would run into the next one is dropped.
func (c *Chart) monthLabels(ln *line) {
	type mark struct {
		col   int
		label string
	}
	var marks []mark
	for i, d := range c.res.Days {
		if i == 0 || d.Date.Day() == 1 {
			from, _ := c.dayColumns(i)
			marks = append(marks, mark{from, d.Date.Format("Jan 2006")})
		}
	}
	for i, m := range marks {
		if i+1 < len(marks) && marks[i+1].col <= m.col+len(m.label) {
			continue
		}
		ln.text(m.col, m.label, c.styles.HeaderMonth)
	}
}

// Rows returns one rendered line per task, in task order
func (c *Chart) Rows() []string {
	rows := make([]string, len(c.tasks))
	for i := range c.tasks {
		rows[i] = c.Row(i)
	}
	return rows
}

// Row renders the label and grid of row i
func (c *Chart) Row(i int) string {
	task := c.tasks[i]
	selected := task.ID == c.opts.Selected && c.opts.Selected != ""

	labelStyle := c.styles.Label
	mark := " "
	if selected {
		labelStyle = c.styles.LabelSelected
		mark = string(glyphSelectMark)
	}
	title := task.Title
	if title == "" {
		title = task.ID
	}
	label := labelStyle.Render(mark + fit(title, c.opts.LabelWidth-1))

	grid := c.background()
	l, ok := c.byRow[i]
	if !ok {
		grid.text(0, "unscheduled", c.styles.Unscheduled)
		return label + " " + grid.render()
	}

	barStyle := c.styles.Bar(task.Status, l.IsOverdue)
	if selected {
		barStyle = c.styles.SelectedBar(task.Status, l.IsOverdue)
	}
	from, to := c.span(l.XOffset, l.Width)
	switch {
	case to <= 0:
		grid.set(0, glyphClipLeft, c.styles.Clipped)
	case from >= c.columns:
		grid.set(c.columns-1, glyphClipRight, c.styles.Clipped)
	default:
		for col := max(from, 0); col < min(to, c.columns); col++ {
			grid.set(col, glyphBar, barStyle)
		}
		if from < 0 {
			grid.set(0, glyphClipLeft, c.styles.Clipped)
		}
		if to > c.columns {
			grid.set(c.columns-1, glyphClipRight, c.styles.Clipped)
		}
	}
	return label + " " + grid.render()
}

// background returns a grid line with weekend shading and the today column
func (c *Chart) background() *line {
	ln := newLine(c.columns, glyphGrid, c.styles.Grid)
	for i, d := range c.res.Days {
		from, to := c.dayColumns(i)
		if d.IsWeekend {
			for col := from; col < to; col++ {
				ln.set(col, glyphWeekend, c.styles.Weekend)
			}
		}
		if d.IsToday {
			ln.set(from+(max(to-from, 1)-1)/2, glyphToday, c.styles.Today)
		}
	}
	return ln
}

// Detail describes task: date range, dependencies and diagnostics
func (c *Chart) Detail(taskID string) string {
	var task domain.Task
	found := false
	for _, t := range c.tasks {
		if t.ID == taskID {
			task, found = t, true
			break
		}
	}
	if !found {
		return ""
	}

	parts := []string{c.styles.DetailKey.Render(task.ID)}
	if task.Title != "" {
		parts = append(parts, c.styles.Detail.Render(task.Title))
	}
	for _, l := range c.res.Layouts {
		if l.TaskID != task.ID {
			continue
		}
		r := domain.FormatRange(l.Start, l.End)
		if l.IsOverdue {
			r += " (overdue)"
		}
		parts = append(parts, c.styles.Detail.Render(r))
		break
	}
	if task.Status != "" {
		parts = append(parts, c.styles.Detail.Render(task.Status.String()))
	}
	if len(task.Dependencies) > 0 {
		parts = append(parts, c.styles.Detail.Render("after "+strings.Join(task.Dependencies, ", ")))
	}
	for _, d := range c.res.DiagnosticsFor(task.ID) {
		parts = append(parts, c.styles.Diagnostic.Render(string(d.Code)))
	}
	return strings.Join(parts, c.styles.Detail.Render(" · "))
}

// fit truncates or pads s to exactly n runes
func fit(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		if n <= 1 {
			return string(r[:n])
		}
		return string(r[:n-1]) + "…"
	}
	return s + strings.Repeat(" ", n-len(r))
}

// line is a row of single-rune cells, each with its own style
type line struct {
	glyphs []rune
	styles []lipgloss.Style
}

func newLine(n int, fill rune, style lipgloss.Style) *line {
	ln := &line{glyphs: make([]rune, n), styles: make([]lipgloss.Style, n)}
	for i := range ln.glyphs {
		ln.glyphs[i] = fill
		ln.styles[i] = style
	}
	return ln
}

func (ln *line) set(col int, g rune, style lipgloss.Style) {
	if col < 0 || col >= len(ln.glyphs) {
		return
	}
	ln.glyphs[col] = g
	ln.styles[col] = style
}

func (ln *line) text(col int, s string, style lipgloss.Style) {
	for i, r := range []rune(s) {
		ln.set(col+i, r, style)
	}
}

// render joins runs of equally styled cells so each run is styled once
func (ln *line) render() string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(ln.glyphs); i++ {
		if i < len(ln.glyphs) && sameStyle(ln.styles[i], ln.styles[start]) {
			continue
		}
		b.WriteString(ln.styles[start].Render(string(ln.glyphs[start:i])))
		start = i
	}
	return b.String()
}

func sameStyle(a, b lipgloss.Style) bool {
	return a.GetForeground() == b.GetForeground() &&
		a.GetBackground() == b.GetBackground() &&
		a.GetBold() == b.GetBold() &&
		a.GetItalic() == b.GetItalic()
}
