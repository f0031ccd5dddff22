package timeline

import (
	"time"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
)

// TaskLayout is the bar geometry of one schedulable task
type TaskLayout struct {
	TaskID       string    `json:"taskId"`
	RowIndex     int       `json:"rowIndex"`
	XOffset      float64   `json:"xOffset"`
	Width        float64   `json:"width"`
	DurationDays int       `json:"durationDays"`
	IsOverdue    bool      `json:"isOverdue"`
	Start        time.Time `json:"-"`
	End          time.Time `json:"-"`
}

// Right returns the x coordinate of the bar's right edge
func (l TaskLayout) Right() float64 {
	return l.XOffset + l.Width
}

// Visible reports whether any part of the bar overlaps [0, w.PixelWidth())
func (l TaskLayout) Visible(w Window) bool {
	return l.Right() > 0 && l.XOffset < w.PixelWidth()
}

// LayoutResult holds the bars in input order plus the tasks left out of layout
type LayoutResult struct {
	Layouts  []TaskLayout
	Excluded []Diagnostic
}

// Find returns the layout of a task by ID
func (r LayoutResult) Find(id string) (TaskLayout, bool) {
	for _, l := range r.Layouts {
		if l.TaskID == id {
			return l, true
		}
	}
	return TaskLayout{}, false
}

// Layout maps every schedulable task onto the window's pixel grid.
//
// RowIndex is the task's ordinal in tasks whether or not it is schedulable,
// so excluding or adding an unrelated task never moves other rows. A task
// whose end precedes its start is drawn as a single day.
func Layout(tasks []domain.Task, w Window, now time.Time) LayoutResult {
	if w.CellWidth <= 0 {
		w.CellWidth = DefaultCellWidth
	}
	today := domain.DateOf(now)

	res := LayoutResult{Layouts: make([]TaskLayout, 0, len(tasks))}
	for row, task := range tasks {
		start, end, ok := task.Span()
		if !ok {
			res.Excluded = append(res.Excluded, invalidDates(task))
			continue
		}

		duration := max(domain.DaysBetween(start, end)+1, 1)
		offset := domain.DaysBetween(w.Anchor, start)

		res.Layouts = append(res.Layouts, TaskLayout{
			TaskID:       task.ID,
			RowIndex:     row,
			XOffset:      float64(offset) * w.CellWidth,
			Width:        float64(duration) * w.CellWidth,
			DurationDays: duration,
			IsOverdue:    end.Before(today) && !task.Status.IsDone(),
			Start:        start,
			End:          end,
		})
	}
	return res
}

func invalidDates(task domain.Task) Diagnostic {
	d := Diagnostic{Code: CodeInvalidDates, TaskID: task.ID}
	if _, err := domain.ParseDate(task.StartDate); err != nil {
		d.Message = "start date: " + err.Error()
		return d
	}
	_, err := domain.ParseDate(task.EndDate)
	d.Message = "end date: " + err.Error()
	return d
}
