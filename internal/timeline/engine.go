package timeline

import (
	"time"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
)

// Result is the full geometry for one snapshot of tasks and one window
type Result struct {
	Window      Window       `json:"window"`
	Days        []Day        `json:"days"`
	Layouts     []TaskLayout `json:"layouts"`
	Edges       []Edge       `json:"edges"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	Rows        int          `json:"rows"`
	Geometry    Geometry     `json:"geometry"`
}

// Compute runs the window, layout and dependency passes. Diagnostics list
// layout exclusions first, then dependency problems. Slices are never nil so
// the JSON form always carries arrays.
func Compute(tasks []domain.Task, w Window, g Geometry, now time.Time) Result {
	layout := Layout(tasks, w, now)
	edges, depDiags := ResolveDependencies(layout.Layouts, tasks, g)

	diags := make([]Diagnostic, 0, len(layout.Excluded)+len(depDiags))
	diags = append(diags, layout.Excluded...)
	diags = append(diags, depDiags...)
	if edges == nil {
		edges = []Edge{}
	}

	return Result{
		Window:      w,
		Days:        w.Days(now),
		Layouts:     layout.Layouts,
		Edges:       edges,
		Diagnostics: diags,
		Rows:        len(tasks),
		Geometry:    g,
	}
}

// Height returns the pixel height of the chart body
func (r Result) Height() float64 {
	return float64(r.Rows) * r.Geometry.RowHeight
}

// DiagnosticsFor returns the diagnostics that name taskID
func (r Result) DiagnosticsFor(taskID string) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.TaskID == taskID {
			out = append(out, d)
		}
	}
	return out
}
