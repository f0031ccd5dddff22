package navigation

import "github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"

// Cursor tracks the selected task by ID (survives filter/sort changes)
type Cursor struct {
	TaskID      string // Primary state: selected task ID
	FallbackRow int    // Row to use when TaskID not found
}

// Row computes the row of the cursor's task in tasks. Returns -1 for an
// empty list.
func (c *Cursor) Row(tasks []domain.Task) int {
	if len(tasks) == 0 {
		return -1
	}
	if c.TaskID != "" {
		for i, t := range tasks {
			if t.ID == c.TaskID {
				return i
			}
		}
	}
	// Task not found (filtered out?), use fallback
	return clamp(c.FallbackRow, 0, len(tasks)-1)
}

// Current returns the selected task, if any
func (c *Cursor) Current(tasks []domain.Task) (domain.Task, bool) {
	row := c.Row(tasks)
	if row < 0 {
		return domain.Task{}, false
	}
	return tasks[row], true
}

// Move moves the cursor by delta rows, clamped to the list, and returns the
// new task ID
func (c *Cursor) Move(tasks []domain.Task, delta int) string {
	row := c.Row(tasks)
	if row < 0 {
		return c.TaskID
	}
	c.set(tasks, clamp(row+delta, 0, len(tasks)-1))
	return c.TaskID
}

// JumpToStart moves to the first row
func (c *Cursor) JumpToStart(tasks []domain.Task) string {
	if len(tasks) > 0 {
		c.set(tasks, 0)
	}
	return c.TaskID
}

// JumpToEnd moves to the last row
func (c *Cursor) JumpToEnd(tasks []domain.Task) string {
	if len(tasks) > 0 {
		c.set(tasks, len(tasks)-1)
	}
	return c.TaskID
}

func (c *Cursor) set(tasks []domain.Task, row int) {
	c.TaskID = tasks[row].ID
	c.FallbackRow = row
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
