package timeline

import "github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"

// Geometry holds the vertical and connector constants of the chart
type Geometry struct {
	RowHeight   float64 `json:"rowHeight" yaml:"rowHeight"`
	CurveOffset float64 `json:"curveOffset" yaml:"curveOffset"`
	BarInset    float64 `json:"barInset" yaml:"barInset"`
}

// DefaultGeometry returns the standard row height, curve offset and bar inset
func DefaultGeometry() Geometry {
	return Geometry{RowHeight: 44, CurveOffset: 20, BarInset: 8}
}

// RowCenterY returns the y coordinate of the middle of a row
func (g Geometry) RowCenterY(row int) float64 {
	return float64(row)*g.RowHeight + g.RowHeight/2
}

// BarTop returns the y coordinate of the top of a bar drawn in row
func (g Geometry) BarTop(row int) float64 {
	return float64(row)*g.RowHeight + g.BarInset
}

// BarHeight returns the height of a bar
func (g Geometry) BarHeight() float64 {
	return max(g.RowHeight-2*g.BarInset, 1)
}

// Point is a position in chart pixels
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Edge is the connector from a dependency (source) to its dependent (target).
// ControlPoints are the two inner points of a cubic Bezier from SourceAnchor
// to TargetAnchor.
type Edge struct {
	SourceTaskID  string   `json:"sourceTaskId"`
	TargetTaskID  string   `json:"targetTaskId"`
	SourceAnchor  Point    `json:"sourceAnchor"`
	TargetAnchor  Point    `json:"targetAnchor"`
	ControlPoints [2]Point `json:"controlPoints"`
}

// ResolveDependencies produces a connector per resolvable dependency, in task
// order then dependency order.
//
// layouts must come from Layout over the same tasks, since a dependent's bar is
// found by its row. A dependency is skipped with a diagnostic when it names
// the task itself, names no task in tasks, or when either end has no layout. Targets may lie
// left of their source; the curve does not assume time runs forward. Cycles
// longer than one task are not detected here (see DetectCycle).
func ResolveDependencies(layouts []TaskLayout, tasks []domain.Task, g Geometry) ([]Edge, []Diagnostic) {
	known := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}
	// Sources are found by ID (first wins); a dependent is always its own row
	placed := make(map[string]TaskLayout, len(layouts))
	byRow := make(map[int]TaskLayout, len(layouts))
	for _, l := range layouts {
		if _, dup := placed[l.TaskID]; !dup {
			placed[l.TaskID] = l
		}
		byRow[l.RowIndex] = l
	}

	var edges []Edge
	var diags []Diagnostic
	for row, task := range tasks {
		if len(task.Dependencies) == 0 {
			continue
		}
		seen := make(map[string]bool, len(task.Dependencies))
		for _, depID := range task.Dependencies {
			if seen[depID] {
				continue
			}
			seen[depID] = true

			diag := Diagnostic{TaskID: task.ID, DependencyID: depID}
			if depID == task.ID {
				diag.Code = CodeSelfDependency
				diag.Message = "task depends on itself"
				diags = append(diags, diag)
				continue
			}
			if !known[depID] {
				diag.Code = CodeUnknownDependency
				diag.Message = "no task with this id"
				diags = append(diags, diag)
				continue
			}
			source, ok := placed[depID]
			if !ok {
				diag.Code = CodeUnschedulableDependency
				diag.Message = "dependency has no valid dates"
				diags = append(diags, diag)
				continue
			}
			target, ok := byRow[row]
			if !ok || target.TaskID != task.ID {
				diag.Code = CodeUnschedulableDependency
				diag.Message = "dependent task has no valid dates"
				diags = append(diags, diag)
				continue
			}
			edges = append(edges, connect(source, target, g))
		}
	}
	return edges, diags
}

func connect(source, target TaskLayout, g Geometry) Edge {
	from := Point{X: source.Right(), Y: g.RowCenterY(source.RowIndex)}
	to := Point{X: target.XOffset, Y: g.RowCenterY(target.RowIndex)}
	return Edge{
		SourceTaskID: source.TaskID,
		TargetTaskID: target.TaskID,
		SourceAnchor: from,
		TargetAnchor: to,
		ControlPoints: [2]Point{
			{X: from.X + g.CurveOffset, Y: from.Y},
			{X: to.X - g.CurveOffset, Y: to.Y},
		},
	}
}
