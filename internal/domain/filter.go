package domain

import "strings"

// Filter represents task filtering state
type Filter struct {
	Status          map[Status]bool
	Tags            map[string]bool
	HideUnscheduled bool
	SearchQuery     string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Status: make(map[Status]bool),
		Tags:   make(map[string]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return len(f.Status) > 0 ||
		len(f.Tags) > 0 ||
		f.HideUnscheduled ||
		f.SearchQuery != ""
}

// Apply filters a list of tasks. Filtered-out tasks are removed from the
// input, so dependencies on them surface as unknown dependencies.
func (f *Filter) Apply(tasks []Task) []Task {
	if !f.IsActive() {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters
// Uses AND logic between filter types, OR logic within filter types
func (f *Filter) Matches(t Task) bool {
	if len(f.Status) > 0 && !f.Status[t.Status] {
		return false
	}

	if len(f.Tags) > 0 {
		found := false
		for _, tag := range t.Tags {
			if f.Tags[tag] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.HideUnscheduled && !t.Schedulable() {
		return false
	}

	// Search query (case-insensitive, matches title or ID)
	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		title := strings.ToLower(t.Title)
		id := strings.ToLower(t.ID)

		if !strings.Contains(title, query) && !strings.Contains(id, query) {
			return false
		}
	}

	return true
}

// Clear resets all filters
func (f *Filter) Clear() {
	f.Status = make(map[Status]bool)
	f.Tags = make(map[string]bool)
	f.HideUnscheduled = false
	f.SearchQuery = ""
}

// ToggleStatus toggles a status filter
func (f *Filter) ToggleStatus(s Status) {
	if f.Status[s] {
		delete(f.Status, s)
	} else {
		f.Status[s] = true
	}
}

// ToggleTag toggles a tag filter
func (f *Filter) ToggleTag(tag string) {
	if f.Tags[tag] {
		delete(f.Tags, tag)
	} else {
		f.Tags[tag] = true
	}
}
