package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/config"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/services/store"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

const doc = `{"tasks": [
	{"id": "a", "title": "Design", "status": "done", "startDate": "2024-01-01", "endDate": "2024-01-03"},
	{"id": "b", "title": "Build", "status": "todo", "startDate": "2024-01-04", "endDate": "2024-01-05", "dependencies": ["a", "zz"]},
	{"id": "c", "title": "Someday", "dependencies": ["b"]}
]}`

// Wednesday; the week starts on Sunday Dec 31 2023
var fixedNow = time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func newDeps(t *testing.T, data string) (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := NewDependencies(config.DefaultConfig(), &store.ReaderSource{R: strings.NewReader(data)}, logger)
	deps.Now = func() time.Time { return fixedNow }

	var stdout, stderr bytes.Buffer
	deps.Stdout = &stdout
	deps.Stderr = &stderr
	return deps, &stdout, &stderr
}

func TestWindow(t *testing.T) {
	deps, _, _ := newDeps(t, "[]")
	date := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name   string
		opts   WindowOptions
		anchor time.Time
		days   int
		width  float64
	}{
		{"defaults", WindowOptions{}, date(2023, 12, 31), 30, 50},
		{"week", WindowOptions{Granularity: "week"}, date(2023, 12, 31), 84, 20},
		{"month aligns on the first", WindowOptions{Granularity: "month"}, date(2024, 1, 1), 180, 8},
		{"explicit anchor", WindowOptions{Anchor: "2024-02-10", Days: 7}, date(2024, 2, 10), 7, 50},
		{"clock override", WindowOptions{Now: "2024-03-06"}, date(2024, 3, 3), 30, 50},
		{"shift week forward", WindowOptions{Granularity: "week", Shift: []string{"next"}}, date(2024, 1, 7), 84, 20},
		{"shift back twice", WindowOptions{Anchor: "2024-02-10", Shift: []string{"prev", "back"}}, date(2024, 2, 8), 30, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _, err := deps.Window(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.anchor, w.Anchor)
			assert.Equal(t, tt.days, w.DayCount)
			assert.Equal(t, tt.width, w.CellWidth)
		})
	}

	t.Run("errors", func(t *testing.T) {
		_, _, err := deps.Window(WindowOptions{Granularity: "year"})
		assert.Error(t, err)
		_, _, err = deps.Window(WindowOptions{Anchor: "soon"})
		assert.ErrorContains(t, err, "--anchor")
		_, _, err = deps.Window(WindowOptions{Shift: []string{"sideways"}})
		assert.Error(t, err)
		_, _, err = deps.Window(WindowOptions{Now: "later"})
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func TestOrderTasks(t *testing.T) {
	tasks := []domain.Task{
		{ID: "c", Title: "C", StartDate: "2024-01-09", EndDate: "2024-01-09", Dependencies: []string{"b"}},
		{ID: "b", Title: "B", StartDate: "2024-01-05", EndDate: "2024-01-05", Dependencies: []string{"a"}},
		{ID: "a", Title: "A", StartDate: "2024-01-07", EndDate: "2024-01-07"},
	}
	ids := func(ts []domain.Task) []string {
		out := make([]string, len(ts))
		for i, t := range ts {
			out[i] = t.ID
		}
		return out
	}

	tests := []struct {
		order string
		want  []string
	}{
		{"", []string{"c", "b", "a"}},
		{"input", []string{"c", "b", "a"}},
		{"phase", []string{"a", "b", "c"}},
		{"start", []string{"b", "a", "c"}},
		{"TITLE", []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			got, err := OrderTasks(tasks, tt.order)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	_, err := OrderTasks(tasks, "random")
	assert.ErrorContains(t, err, "unknown order")
}

func TestLayoutCommand(t *testing.T) {
	deps, stdout, stderr := newDeps(t, doc)

	err := LayoutCommand(context.Background(), deps, LayoutOptions{WindowOptions: WindowOptions{Anchor: "2024-01-01", Days: 10}})
	require.NoError(t, err)

	out := stdout.Bytes()
	require.True(t, gjson.ValidBytes(out))
	assert.Equal(t, "2024-01-01", gjson.GetBytes(out, "window.anchor").String())
	assert.Equal(t, int64(10), gjson.GetBytes(out, "days.#").Int())
	assert.Equal(t, int64(2), gjson.GetBytes(out, "layouts.#").Int())
	assert.Equal(t, 150.0, gjson.GetBytes(out, `layouts.#(taskId=="b").xOffset`).Float())
	assert.Equal(t, 100.0, gjson.GetBytes(out, `layouts.#(taskId=="b").width`).Float())
	assert.True(t, gjson.GetBytes(out, `layouts.#(taskId=="b").isOverdue`).Exists())

	// One edge a -> b; zz is unknown and c is unschedulable
	assert.Equal(t, int64(1), gjson.GetBytes(out, "edges.#").Int())
	assert.Equal(t, "a", gjson.GetBytes(out, "edges.0.sourceTaskId").String())
	codes := gjson.GetBytes(out, "diagnostics.#.code").Array()
	require.Len(t, codes, 3)
	assert.Equal(t, string(timeline.CodeInvalidDates), codes[0].String())
	assert.False(t, gjson.GetBytes(out, "cycle").Exists())

	assert.Contains(t, stderr.String(), "3 diagnostics")
}

func TestLayoutCommand_Cycles(t *testing.T) {
	cyclic := `[
		{"id": "a", "startDate": "2024-01-01", "endDate": "2024-01-02", "dependencies": ["b"]},
		{"id": "b", "startDate": "2024-01-03", "endDate": "2024-01-04", "dependencies": ["a"]}
	]`
	deps, stdout, _ := newDeps(t, cyclic)

	err := LayoutCommand(context.Background(), deps, LayoutOptions{CheckCycles: true})
	require.NoError(t, err)

	cycle := gjson.GetBytes(stdout.Bytes(), "cycle").Array()
	require.Len(t, cycle, 3)
	assert.Equal(t, cycle[0].String(), cycle[2].String())
	// Connectors are still drawn for the cycle
	assert.Equal(t, int64(2), gjson.GetBytes(stdout.Bytes(), "edges.#").Int())
}

func TestLayoutCommand_StoreErrors(t *testing.T) {
	deps, _, _ := newDeps(t, `{"tasks": "nope"}`)
	err := LayoutCommand(context.Background(), deps, LayoutOptions{})
	assert.ErrorIs(t, err, domain.ErrNotList)

	deps, _, _ = newDeps(t, `[{"id": `)
	err = LayoutCommand(context.Background(), deps, LayoutOptions{})
	assert.ErrorIs(t, err, domain.ErrInvalidJSON)

	deps, _, _ = newDeps(t, `[]`)
	err = LayoutCommand(context.Background(), deps, LayoutOptions{Order: "sideways"})
	assert.ErrorContains(t, err, "unknown order")
}

func TestSVGCommand(t *testing.T) {
	deps, _, _ := newDeps(t, doc)
	var buf bytes.Buffer

	err := SVGCommand(context.Background(), deps, LayoutOptions{WindowOptions: WindowOptions{Anchor: "2024-01-01", Days: 10}}, &buf)
	require.NoError(t, err)

	svg := buf.String()
	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Equal(t, 2, strings.Count(svg, `class="bar"`))
	assert.Contains(t, svg, `data-from="a" data-to="b"`)
}

func TestCheckCommand(t *testing.T) {
	deps, stdout, _ := newDeps(t, doc)
	// By Jan 10 the todo task is overdue
	err := CheckCommand(context.Background(), deps, LayoutOptions{WindowOptions: WindowOptions{Anchor: "2024-01-01", Now: "2024-01-10"}})
	assert.ErrorIs(t, err, ErrIssuesFound)

	report := stdout.String()
	assert.Contains(t, report, "Window Jan 1 2024 - Jan 30 2024 (day, 30 days)")
	assert.Contains(t, report, "3 tasks, 2 scheduled, 1 connectors")
	assert.Contains(t, report, "1 overdue")
	assert.Contains(t, report, "Phases (3)")
	assert.Contains(t, report, "  1  b after Design")
	assert.Contains(t, report, "  2  c after Build")
	assert.Contains(t, report, "Diagnostics (3)")
	assert.Contains(t, report, "unknown_dependency")
	assert.Contains(t, report, "b (Build) → zz")
	assert.Contains(t, report, "unschedulable_dependency")

	clean := `[{"id": "a", "status": "done", "startDate": "2024-01-01", "endDate": "2024-01-02"}]`
	deps, stdout, _ = newDeps(t, clean)
	require.NoError(t, CheckCommand(context.Background(), deps, LayoutOptions{CheckCycles: true}))
	assert.Contains(t, stdout.String(), "✓ no issues")
	assert.NotContains(t, stdout.String(), "Phases")
}

func TestDaysCommand(t *testing.T) {
	deps, stdout, _ := newDeps(t, "[]")
	require.NoError(t, DaysCommand(deps, WindowOptions{Anchor: "2024-01-01", Days: 7}, false))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, []string{"DATE", "DAY", "X", "MARK"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"2024-01-03", "Wed", "100", "today"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"2024-01-06", "Sat", "250", "weekend"}, strings.Fields(lines[6]))
	assert.Equal(t, "day, 7 days at 50px", lines[9])

	stdout.Reset()
	require.NoError(t, DaysCommand(deps, WindowOptions{Anchor: "2024-01-01", Days: 3}, true))
	assert.Equal(t, int64(3), gjson.Get(stdout.String(), "#").Int())
	assert.True(t, gjson.Get(stdout.String(), "2.isToday").Bool())
}

func TestResolveStorePath(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Store.Path = filepath.Join(dir, "tasks.json")

	reg := &config.BoardsRegistry{}
	require.NoError(t, reg.Add("work", filepath.Join(dir, "work.json")))

	// --file wins
	got, err := ResolveStorePath(cfg, "-", "work", reg)
	require.NoError(t, err)
	assert.Equal(t, "-", got)

	// --board is next
	got, err = ResolveStorePath(cfg, "", "work", reg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "work.json"), got)

	_, err = ResolveStorePath(cfg, "", "home", reg)
	assert.ErrorIs(t, err, config.ErrBoardNotFound)

	// No local file: the default board
	got, err = ResolveStorePath(cfg, "", "", reg)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "work.json"), got)

	// An existing local file beats the default board
	require.NoError(t, os.WriteFile(cfg.Store.Path, []byte("[]"), 0644))
	got, err = ResolveStorePath(cfg, "", "", reg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Store.Path, got)
}
