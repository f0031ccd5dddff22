// Package domain contains the task types shared by the store, the timeline
// engine and the presentation layers.
package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Task represents a task as supplied by the task store
type Task struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Status       Status   `json:"status"`
	Priority     Priority `json:"priority,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Dependencies []string `json:"dependencies,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// UnmarshalJSON accepts "dueDate" as an alias for "endDate". Date fields
// that are not JSON strings are kept as their raw text, so the task decodes
// and is later rejected as unschedulable instead of failing the document.
func (t *Task) UnmarshalJSON(data []byte) error {
	type plain Task
	var aux struct {
		plain
		StartDate json.RawMessage `json:"startDate,omitempty"`
		EndDate   json.RawMessage `json:"endDate,omitempty"`
		DueDate   json.RawMessage `json:"dueDate,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*t = Task(aux.plain)
	t.StartDate = rawDate(aux.StartDate)
	t.EndDate = rawDate(aux.EndDate)
	if t.EndDate == "" {
		t.EndDate = rawDate(aux.DueDate)
	}
	return nil
}

// rawDate returns a JSON string's value, "" for null or absent, and the raw
// text of any other value
func rawDate(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// Span parses the start and end dates. ok is false when either is missing or
// unparsable, which makes the task unschedulable.
func (t Task) Span() (start, end time.Time, ok bool) {
	start, err := ParseDate(t.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = ParseDate(t.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Schedulable reports whether both dates parse
func (t Task) Schedulable() bool {
	_, _, ok := t.Span()
	return ok
}

// Status represents task status
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Rank returns the sort rank for this status; unknown statuses sort first
func (s Status) Rank() int {
	switch s {
	case StatusTodo:
		return 1
	case StatusInProgress:
		return 2
	case StatusDone:
		return 3
	default:
		return 0
	}
}

// IsDone reports whether the status counts as completed
func (s Status) IsDone() bool {
	return strings.EqualFold(string(s), string(StatusDone))
}

// String returns the display string
func (s Status) String() string {
	return string(s)
}

// Priority is a free-form priority label ("high", "normal", ...)
type Priority string

// Rank orders priorities from most to least urgent
func (p Priority) Rank() int {
	switch strings.ToLower(string(p)) {
	case "urgent", "critical":
		return 0
	case "high":
		return 1
	case "normal", "medium", "":
		return 2
	case "low":
		return 3
	default:
		return 4
	}
}

// String returns the display string
func (p Priority) String() string {
	return string(p)
}
