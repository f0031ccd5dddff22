package timeline

import (
	"encoding/json"
	"testing"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tasks := append(scenarioTasks(),
		domain.Task{ID: "t3", StartDate: "2024-01-02", EndDate: "2024-01-03", Dependencies: []string{"nonexistent"}},
		domain.Task{ID: "t4", StartDate: "someday"},
	)
	res := Compute(tasks, scenarioWindow(), DefaultGeometry(), date("2024-01-02"))

	assert.Len(t, res.Days, 10)
	assert.True(t, res.Days[1].IsToday)
	assert.Len(t, res.Layouts, 3)
	assert.Len(t, res.Edges, 1)
	assert.Equal(t, 4, res.Rows)
	assert.Equal(t, 4*44.0, res.Height())

	require.Len(t, res.Diagnostics, 2)
	assert.Equal(t, CodeInvalidDates, res.Diagnostics[0].Code)
	assert.Equal(t, CodeUnknownDependency, res.Diagnostics[1].Code)
	assert.Len(t, res.DiagnosticsFor("t3"), 1)
	assert.Empty(t, res.DiagnosticsFor("t1"))
}

func TestCompute_NonStringDateExcludesOnlyThatTask(t *testing.T) {
	var tasks []domain.Task
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": "t1", "startDate": "2024-01-01", "endDate": "2024-01-03"},
		{"id": "t2", "startDate": 20240102, "endDate": "2024-01-06", "dependencies": ["t1"]},
		{"id": "t3", "startDate": "2024-01-04", "endDate": "2024-01-05", "dependencies": ["t1"]}
	]`), &tasks))

	res := Compute(tasks, scenarioWindow(), DefaultGeometry(), date("2024-01-01"))

	require.Len(t, res.Layouts, 2)
	assert.Equal(t, "t1", res.Layouts[0].TaskID)
	assert.Equal(t, "t3", res.Layouts[1].TaskID)
	assert.Equal(t, 2, res.Layouts[1].RowIndex)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, "t3", res.Edges[0].TargetTaskID)

	require.Len(t, res.Diagnostics, 2)
	assert.Equal(t, Diagnostic{Code: CodeInvalidDates, TaskID: "t2", Message: res.Diagnostics[0].Message}, res.Diagnostics[0])
	assert.Equal(t, CodeUnschedulableDependency, res.Diagnostics[1].Code)
	assert.Equal(t, "t2", res.Diagnostics[1].TaskID)
}

func TestCompute_JSONShape(t *testing.T) {
	res := Compute(nil, scenarioWindow(), DefaultGeometry(), date("2024-01-02"))
	data, err := json.Marshal(res)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	for _, key := range []string{"window", "days", "layouts", "edges", "diagnostics"} {
		assert.Contains(t, doc, key)
	}
	assert.Equal(t, "[]", string(doc["layouts"]))
	assert.Equal(t, "[]", string(doc["edges"]))
	assert.Equal(t, "[]", string(doc["diagnostics"]))
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Code: CodeUnknownDependency, TaskID: "t3", DependencyID: "nonexistent", Message: "no task with this id"}
	assert.Equal(t, "unknown_dependency [t3] -> nonexistent: no task with this id", d.String())
	assert.Equal(t, "invalid_dates [t4]", Diagnostic{Code: CodeInvalidDates, TaskID: "t4"}.String())
}
