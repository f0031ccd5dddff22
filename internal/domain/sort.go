package domain

import (
	"sort"
	"strings"
)

// SortField represents a field to sort by
type SortField string

const (
	SortNone       SortField = ""
	SortByStart    SortField = "start"
	SortByStatus   SortField = "status"
	SortByPriority SortField = "priority"
	SortByTitle    SortField = "title"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state. Sorting runs before layout, so the row of a
// task is its position in the sorted list.
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction
// If field is different, sets new field with ascending order
// If field is same, toggles between ascending and descending
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		s.Field = field
		s.Order = SortAsc
	}
}

// Apply returns a sorted copy of tasks. The sort is stable; when sorting by
// start ascending, unschedulable tasks keep their relative order at the end.
func (s *Sort) Apply(tasks []Task) []Task {
	result := make([]Task, len(tasks))
	copy(result, tasks)
	if s.Field == SortNone || len(result) < 2 {
		return result
	}

	var less func(a, b Task) bool
	switch s.Field {
	case SortByStart:
		less = func(a, b Task) bool {
			as, _, aok := a.Span()
			bs, _, bok := b.Span()
			if aok != bok {
				return aok
			}
			return aok && as.Before(bs)
		}
	case SortByStatus:
		less = func(a, b Task) bool { return a.Status.Rank() < b.Status.Rank() }
	case SortByPriority:
		less = func(a, b Task) bool { return a.Priority.Rank() < b.Priority.Rank() }
	case SortByTitle:
		less = func(a, b Task) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	default:
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		if s.Order == SortDesc {
			return less(result[j], result[i])
		}
		return less(result[i], result[j])
	})
	return result
}
