package timeline

import "fmt"

// DiagnosticCode classifies a non-fatal data anomaly
type DiagnosticCode string

const (
	CodeInvalidDates            DiagnosticCode = "invalid_dates"
	CodeUnknownDependency       DiagnosticCode = "unknown_dependency"
	CodeUnschedulableDependency DiagnosticCode = "unschedulable_dependency"
	CodeSelfDependency          DiagnosticCode = "self_dependency"
)

// Diagnostic is a warning reported alongside a best-effort result
type Diagnostic struct {
	Code         DiagnosticCode `json:"code"`
	TaskID       string         `json:"taskId"`
	DependencyID string         `json:"dependencyId,omitempty"`
	Message      string         `json:"message,omitempty"`
}

func (d Diagnostic) String() string {
	s := fmt.Sprintf("%s [%s]", d.Code, d.TaskID)
	if d.DependencyID != "" {
		s += " -> " + d.DependencyID
	}
	if d.Message != "" {
		s += ": " + d.Message
	}
	return s
}
