// Package render draws a computed timeline as a standalone SVG document
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/timeline"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/styles"
)

// Palette holds the SVG fill and stroke colors
type Palette struct {
	Background string
	Grid       string
	Weekend    string
	Today      string
	Text       string
	Muted      string
	Edge       string
}

// DefaultPalette returns the Catppuccin colors the terminal view uses
func DefaultPalette() Palette {
	return Palette{
		Background: string(styles.Base),
		Grid:       string(styles.Surface0),
		Weekend:    string(styles.Mantle),
		Today:      string(styles.Peach),
		Text:       string(styles.Text),
		Muted:      string(styles.Overlay1),
		Edge:       string(styles.Lavender),
	}
}

// Options configures SVG output
type Options struct {
	// HeaderHeight is the height of the date header above the rows
	HeaderHeight float64
	// LabelWidth is the width of the task title column left of the grid
	LabelWidth float64
	FontFamily string
	FontSize   int
	Palette    Palette
}

// DefaultOptions returns a 60 px header, a 200 px label column and the
// default palette
func DefaultOptions() Options {
	return Options{
		HeaderHeight: 60,
		LabelWidth:   200,
		FontFamily:   "sans-serif",
		FontSize:     12,
		Palette:      DefaultPalette(),
	}
}

// WriteSVG writes the document produced by SVG to w
func WriteSVG(w io.Writer, res timeline.Result, tasks []domain.Task, opts Options) error {
	_, err := io.WriteString(w, SVG(res, tasks, opts))
	return err
}

// SVG renders res as an SVG document. tasks must be the slice res was
// computed from; it supplies titles and statuses by row.
//
// The chart body is drawn in a group translated by (LabelWidth, HeaderHeight)
// so bar and connector coordinates are the engine's pixel values unchanged.
func SVG(res timeline.Result, tasks []domain.Task, opts Options) string {
	if opts.FontSize <= 0 {
		opts.FontSize = 12
	}
	if opts.FontFamily == "" {
		opts.FontFamily = "sans-serif"
	}
	p := opts.Palette
	w := res.Window
	g := res.Geometry
	chartWidth := w.PixelWidth()
	chartHeight := res.Height()
	width := opts.LabelWidth + chartWidth
	height := opts.HeaderHeight + chartHeight

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.label { font-family: %s; font-size: %dpx; fill: %s; }
.day { font-family: %s; font-size: %dpx; fill: %s; text-anchor: middle; }
.month { font-family: %s; font-size: %dpx; font-weight: bold; fill: %s; }
</style>
<marker id="arrow" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="6" markerHeight="6" orient="auto-start-reverse">
<path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/>
</marker>
<clipPath id="chart-clip"><rect x="0" y="0" width="%s" height="%s"/></clipPath>
</defs>
`, num(width), num(height), num(width), num(height), p.Background,
		opts.FontFamily, opts.FontSize, p.Text,
		opts.FontFamily, opts.FontSize-2, p.Muted,
		opts.FontFamily, opts.FontSize, p.Text,
		p.Edge, num(chartWidth), num(chartHeight)))

	writeHeader(&svg, res, opts)
	writeLabels(&svg, res, tasks, opts)

	svg.WriteString(fmt.Sprintf(`<g id="chart" transform="translate(%s,%s)" clip-path="url(#chart-clip)">`+"\n",
		num(opts.LabelWidth), num(opts.HeaderHeight)))

	// Weekend columns and vertical grid
	for i, d := range res.Days {
		x := float64(i) * w.CellWidth
		if d.IsWeekend {
			svg.WriteString(fmt.Sprintf(`<rect class="weekend" x="%s" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
				num(x), num(w.CellWidth), num(chartHeight), p.Weekend))
		}
		if showDayLine(d.Date, w) {
			svg.WriteString(fmt.Sprintf(`<line x1="%s" y1="0" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
				num(x), num(x), num(chartHeight), p.Grid))
		}
	}
	// Row separators
	for r := 1; r < res.Rows; r++ {
		y := float64(r) * g.RowHeight
		svg.WriteString(fmt.Sprintf(`<line x1="0" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
			num(y), num(chartWidth), num(y), p.Grid))
	}

	// Today marker
	for i, d := range res.Days {
		if d.IsToday {
			x := float64(i)*w.CellWidth + w.CellWidth/2
			svg.WriteString(fmt.Sprintf(`<line class="today" x1="%s" y1="0" x2="%s" y2="%s" stroke="%s" stroke-width="2" stroke-dasharray="4 3"/>`+"\n",
				num(x), num(x), num(chartHeight), p.Today))
		}
	}

	// Bars
	for _, l := range res.Layouts {
		title := ""
		var status domain.Status
		if l.RowIndex < len(tasks) {
			title = tasks[l.RowIndex].Title
			status = tasks[l.RowIndex].Status
		}
		svg.WriteString(fmt.Sprintf(`<rect class="bar" data-task="%s" x="%s" y="%s" width="%s" height="%s" rx="4" fill="%s"><title>%s</title></rect>`+"\n",
			escapeXML(l.TaskID), num(l.XOffset), num(g.BarTop(l.RowIndex)), num(l.Width), num(g.BarHeight()),
			string(styles.BarColor(status, l.IsOverdue)),
			escapeXML(tooltip(title, l))))
	}

	// Connectors
	for _, e := range res.Edges {
		svg.WriteString(fmt.Sprintf(`<path class="edge" data-from="%s" data-to="%s" d="%s" stroke="%s" stroke-width="1.5" fill="none" marker-end="url(#arrow)"/>`+"\n",
			escapeXML(e.SourceTaskID), escapeXML(e.TargetTaskID), PathData(e), p.Edge))
	}

	svg.WriteString("</g>\n")
	svg.WriteString("</svg>\n")
	return svg.String()
}

// PathData returns the cubic Bezier path of an edge in SVG path syntax:
// "M sx sy C c1x c1y, c2x c2y, tx ty"
func PathData(e timeline.Edge) string {
	s, t := e.SourceAnchor, e.TargetAnchor
	c1, c2 := e.ControlPoints[0], e.ControlPoints[1]
	return fmt.Sprintf("M %s %s C %s %s, %s %s, %s %s",
		num(s.X), num(s.Y), num(c1.X), num(c1.Y), num(c2.X), num(c2.Y), num(t.X), num(t.Y))
}

func writeHeader(svg *strings.Builder, res timeline.Result, opts Options) {
	w := res.Window
	monthY := opts.HeaderHeight / 3
	dayY := opts.HeaderHeight - 10

	svg.WriteString(fmt.Sprintf(`<g id="header" transform="translate(%s,0)">`+"\n", num(opts.LabelWidth)))
	for i, d := range res.Days {
		x := float64(i) * w.CellWidth
		if i == 0 || d.Date.Day() == 1 {
			svg.WriteString(fmt.Sprintf(`<text class="month" x="%s" y="%s">%s</text>`+"\n",
				num(x+2), num(monthY), d.Date.Format("Jan 2006")))
		}
		if showDayLabel(d.Date, w) {
			class := "day"
			if d.IsToday {
				class = "day today"
			}
			svg.WriteString(fmt.Sprintf(`<text class="%s" x="%s" y="%s">%d</text>`+"\n",
				class, num(x+w.CellWidth/2), num(dayY), d.Date.Day()))
		}
	}
	svg.WriteString("</g>\n")
}

func writeLabels(svg *strings.Builder, res timeline.Result, tasks []domain.Task, opts Options) {
	if opts.LabelWidth <= 0 {
		return
	}
	svg.WriteString(fmt.Sprintf(`<g id="labels" transform="translate(0,%s)">`+"\n", num(opts.HeaderHeight)))
	for row, task := range tasks {
		title := task.Title
		if title == "" {
			title = task.ID
		}
		svg.WriteString(fmt.Sprintf(`<text class="label" x="8" y="%s" dominant-baseline="middle">%s</text>`+"\n",
			num(res.Geometry.RowCenterY(row)), escapeXML(title)))
	}
	svg.WriteString("</g>\n")
}

// showDayLabel thins the day numbers when cells are too narrow for text
func showDayLabel(d time.Time, w timeline.Window) bool {
	switch {
	case w.CellWidth >= 18:
		return true
	case w.CellWidth >= 6:
		return d.Weekday() == time.Monday
	default:
		return d.Day() == 1
	}
}

func showDayLine(d time.Time, w timeline.Window) bool {
	return w.CellWidth >= 18 || d.Weekday() == time.Monday || d.Day() == 1
}

func tooltip(title string, l timeline.TaskLayout) string {
	r := domain.FormatRange(l.Start, l.End)
	if l.IsOverdue {
		r += " (overdue)"
	}
	if title == "" {
		return r
	}
	return title + ": " + r
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
