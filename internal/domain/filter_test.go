package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterTasks() []Task {
	return []Task{
		{ID: "t1", Title: "Project Initiation", Status: StatusTodo, StartDate: "2024-01-01", EndDate: "2024-01-03", Tags: []string{"pm"}},
		{ID: "t2", Title: "Design Phase", Status: StatusInProgress, StartDate: "2024-01-02", EndDate: "2024-01-06", Tags: []string{"design"}},
		{ID: "t3", Title: "Development", Status: StatusTodo},
		{ID: "t4", Title: "QA Testing", Status: StatusDone, StartDate: "2024-01-11", EndDate: "2024-01-15"},
	}
}

func TestFilter_InactivePassesThrough(t *testing.T) {
	f := NewFilter()
	assert.False(t, f.IsActive())
	assert.Len(t, f.Apply(filterTasks()), 4)
}

func TestFilter_Status(t *testing.T) {
	f := NewFilter()
	f.ToggleStatus(StatusTodo)
	assert.Equal(t, []string{"t1", "t3"}, ids(f.Apply(filterTasks())))

	f.ToggleStatus(StatusTodo)
	assert.False(t, f.IsActive())
}

func TestFilter_Tags(t *testing.T) {
	f := NewFilter()
	f.ToggleTag("design")
	f.ToggleTag("pm")
	assert.Equal(t, []string{"t1", "t2"}, ids(f.Apply(filterTasks())))
}

func TestFilter_HideUnscheduled(t *testing.T) {
	f := NewFilter()
	f.HideUnscheduled = true
	assert.Equal(t, []string{"t1", "t2", "t4"}, ids(f.Apply(filterTasks())))
}

func TestFilter_SearchQuery(t *testing.T) {
	f := NewFilter()
	f.SearchQuery = "PHASE"
	assert.Equal(t, []string{"t2"}, ids(f.Apply(filterTasks())))

	f.SearchQuery = "t4"
	assert.Equal(t, []string{"t4"}, ids(f.Apply(filterTasks())))
}

func TestFilter_Clear(t *testing.T) {
	f := NewFilter()
	f.ToggleStatus(StatusDone)
	f.ToggleTag("pm")
	f.HideUnscheduled = true
	f.SearchQuery = "x"

	f.Clear()
	assert.False(t, f.IsActive())
}
