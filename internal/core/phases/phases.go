// Package phases groups tasks into dependency levels.
//
// Phases are computed with Kahn's algorithm over the tasks' dependency lists:
//
// Phase 0 = tasks with no dependency on another task in the set
// Phase N = tasks that depend only on tasks in phases 0..N-1
//
// Dependencies naming unknown tasks or the task itself are ignored; the
// timeline resolver reports those as diagnostics.
package phases

import (
	"sort"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
)

// TaskPhaseInfo contains phase information for a single task
type TaskPhaseInfo struct {
	// Phase number (0 = no predecessors)
	Phase int
	// IDs of predecessor tasks, in dependency order (empty for Phase 0)
	BlockedBy []string
	// InCycle is set for tasks on or behind a dependency cycle
	InCycle bool
}

// Result contains the phase assignment of every task
type Result struct {
	// Map from task ID to phase info
	Phases map[string]TaskPhaseInfo
	// Maximum phase number (for UI iteration)
	MaxPhase int
	// Count of tasks per phase
	PhaseCounts map[int]int
}

// Compute assigns a phase to every task. The first task with a given ID wins.
//
// Example:
//
//	result := Compute(tasks)
//	// result.Phases["t2"] => { Phase: 1, BlockedBy: []string{"t1"} }
func Compute(tasks []domain.Task) Result {
	// blockers[taskID] = known, distinct predecessors of the task
	blockers := make(map[string][]string, len(tasks))
	var ids []string
	for _, task := range tasks {
		if _, dup := blockers[task.ID]; dup {
			continue
		}
		blockers[task.ID] = nil
		ids = append(ids, task.ID)
	}
	for _, task := range tasks {
		if blockers[task.ID] != nil {
			continue
		}
		seen := make(map[string]bool)
		deps := []string{}
		for _, dep := range task.Dependencies {
			if _, known := blockers[dep]; !known || dep == task.ID || seen[dep] {
				continue
			}
			seen[dep] = true
			deps = append(deps, dep)
		}
		blockers[task.ID] = deps
	}

	phases := make(map[string]TaskPhaseInfo, len(ids))
	remaining := make(map[string]bool, len(ids))
	for _, id := range ids {
		remaining[id] = true
	}

	currentPhase := 0
	for len(remaining) > 0 {
		// Find all tasks whose predecessors are all placed
		var readyThisPhase []string
		for _, id := range ids {
			if !remaining[id] {
				continue
			}
			ready := true
			for _, b := range blockers[id] {
				if remaining[b] {
					ready = false
					break
				}
			}
			if ready {
				readyThisPhase = append(readyThisPhase, id)
			}
		}

		// No progress means the rest sit on or behind a cycle; they share
		// the current phase to avoid an infinite loop
		if len(readyThisPhase) == 0 {
			for _, id := range ids {
				if remaining[id] {
					phases[id] = TaskPhaseInfo{Phase: currentPhase, BlockedBy: blockers[id], InCycle: true}
				}
			}
			break
		}

		for _, id := range readyThisPhase {
			phases[id] = TaskPhaseInfo{Phase: currentPhase, BlockedBy: blockers[id]}
		}
		for _, id := range readyThisPhase {
			delete(remaining, id)
		}
		currentPhase++
	}

	// Compute phase counts and maxPhase
	phaseCounts := make(map[int]int)
	maxPhase := 0
	for _, info := range phases {
		phaseCounts[info.Phase]++
		if info.Phase > maxPhase {
			maxPhase = info.Phase
		}
	}

	return Result{
		Phases:      phases,
		MaxPhase:    maxPhase,
		PhaseCounts: phaseCounts,
	}
}

// Order returns a copy of tasks sorted by phase. Ties keep input order, so
// the result is deterministic.
func Order(tasks []domain.Task) []domain.Task {
	result := Compute(tasks)
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return result.Phases[out[i].ID].Phase < result.Phases[out[j].ID].Phase
	})
	return out
}

// TasksByPhase groups task IDs by phase, in phase order then input order
func TasksByPhase(tasks []domain.Task, phases map[string]TaskPhaseInfo) [][]string {
	maxPhase := -1
	for _, info := range phases {
		maxPhase = max(maxPhase, info.Phase)
	}
	groups := make([][]string, maxPhase+1)
	seen := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		info, ok := phases[task.ID]
		if !ok || seen[task.ID] {
			continue
		}
		seen[task.ID] = true
		groups[info.Phase] = append(groups[info.Phase], task.ID)
	}
	return groups
}

// IsTaskBlocked returns true if a task waits on another task (phase > 0)
func IsTaskBlocked(taskID string, phases map[string]TaskPhaseInfo) bool {
	info, exists := phases[taskID]
	return exists && info.Phase > 0
}

// BlockerTitles returns titles of the tasks the given task waits on, falling
// back to IDs for untitled tasks
func BlockerTitles(taskID string, phases map[string]TaskPhaseInfo, tasks []domain.Task) []string {
	info, exists := phases[taskID]
	if !exists || len(info.BlockedBy) == 0 {
		return []string{}
	}

	byID := make(map[string]domain.Task, len(tasks))
	for _, t := range tasks {
		if _, dup := byID[t.ID]; !dup {
			byID[t.ID] = t
		}
	}

	titles := make([]string, 0, len(info.BlockedBy))
	for _, blockerID := range info.BlockedBy {
		if blocker := byID[blockerID]; blocker.Title != "" {
			titles = append(titles, blocker.Title)
		} else {
			titles = append(titles, blockerID)
		}
	}
	return titles
}
