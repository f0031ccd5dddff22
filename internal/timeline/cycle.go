package timeline

import "github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"

// DetectCycle returns a dependency cycle as a path of task IDs whose last
// element repeats the first, or nil if the known graph is acyclic. Dangling
// and self references are ignored; ResolveDependencies reports those.
//
// Layout never calls this. Connectors are drawn for cyclic graphs too; callers
// decide whether a cycle is worth surfacing.
func DetectCycle(tasks []domain.Task) []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	// dependents: dependency -> tasks that depend on it, in input order
	known := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}
	dependents := make(map[string][]string)
	for _, t := range tasks {
		for _, dep := range t.Dependencies {
			if dep != t.ID && known[dep] {
				dependents[dep] = append(dependents[dep], t.ID)
			}
		}
	}

	color := make(map[string]int, len(tasks))
	parent := make(map[string]string)

	var dfs func(node string) []string
	dfs = func(node string) []string {
		color[node] = gray
		for _, next := range dependents[node] {
			if color[next] == gray {
				cycle := []string{next, node}
				cur := node
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next] == white {
				parent[next] = node
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[node] = black
		return nil
	}

	for _, t := range tasks {
		if color[t.ID] == white {
			if cycle := dfs(t.ID); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
