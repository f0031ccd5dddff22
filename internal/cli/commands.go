// Package cli implements the non-interactive commands: layout and SVG export,
// window dumps, data checks and the boards registry
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/nabdchainsystem-alt/ncs-sub005/internal/config"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/core/phases"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/render"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/services/navigation"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/services/store"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/timeline"
)

// loadTimeout bounds one read of the task document
const loadTimeout = 5 * time.Second

// Row orders accepted by --order besides the sort fields
const (
	OrderInput = "input"
	OrderPhase = "phase"
)

// ErrIssuesFound is returned by CheckCommand when the data has diagnostics
var ErrIssuesFound = errors.New("issues found")

// Dependencies holds all the services needed for CLI commands
type Dependencies struct {
	Config *config.Config
	Client *store.Client
	Logger *slog.Logger
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
}

// NewDependencies wires a store client over source
func NewDependencies(cfg *config.Config, source store.Source, logger *slog.Logger) *Dependencies {
	return &Dependencies{
		Config: config.MergeWithDefaults(cfg),
		Client: store.NewClient(source, logger),
		Logger: logger,
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// WindowOptions selects the window for one-shot commands. Empty fields fall
// back to the config and the clock.
type WindowOptions struct {
	// Anchor is the first day, YYYY-MM-DD; empty aligns on today the way the
	// interactive view does
	Anchor      string
	Days        int
	Granularity string
	// Shift replays navigation steps ("next", "prev") after anchoring
	Shift []string
	// Now overrides the clock, YYYY-MM-DD
	Now string
}

// LayoutOptions configures layout, svg and check
type LayoutOptions struct {
	WindowOptions
	// Order is input, phase, or a sort field (start, status, priority, title)
	Order       string
	CheckCycles bool
}

// LayoutOutput is the JSON document written by the layout command
type LayoutOutput struct {
	timeline.Result
	Cycle []string `json:"cycle,omitempty"`
}

// Window resolves opts into a window and the reference time
func (d *Dependencies) Window(opts WindowOptions) (timeline.Window, time.Time, error) {
	cfg := d.Config
	now := d.Now()
	if opts.Now != "" {
		t, err := domain.ParseDate(opts.Now)
		if err != nil {
			return timeline.Window{}, time.Time{}, fmt.Errorf("--now: %w", err)
		}
		now = t
	}

	spec := cfg.Timeline.Granularity
	if opts.Granularity != "" {
		spec = opts.Granularity
	}
	g, err := timeline.ParseGranularity(spec)
	if err != nil {
		return timeline.Window{}, time.Time{}, err
	}
	weekStart, err := cfg.WeekStart()
	if err != nil {
		return timeline.Window{}, time.Time{}, fmt.Errorf("timeline.weekStart: %w", err)
	}

	zooms := cfg.Zooms()
	if opts.Days > 0 {
		z := zooms[g]
		z.DayCount = opts.Days
		zooms[g] = z
	}

	nav := navigation.NewController(navigation.Options{
		Granularity: g,
		Zooms:       zooms,
		WeekStart:   weekStart,
		DayStep:     cfg.Timeline.DayStep,
		Now:         func() time.Time { return now },
	})
	if opts.Anchor != "" {
		anchor, err := domain.ParseDate(opts.Anchor)
		if err != nil {
			return timeline.Window{}, time.Time{}, fmt.Errorf("--anchor: %w", err)
		}
		nav.JumpTo(anchor)
	}
	for _, step := range opts.Shift {
		dir, err := timeline.ParseDirection(step)
		if err != nil {
			return timeline.Window{}, time.Time{}, fmt.Errorf("--shift: %w", err)
		}
		nav.Shift(dir)
	}
	return nav.Window(), now, nil
}

// OrderTasks returns tasks in the requested row order
func OrderTasks(tasks []domain.Task, order string) ([]domain.Task, error) {
	switch strings.ToLower(order) {
	case "", OrderInput:
		return tasks, nil
	case OrderPhase:
		return phases.Order(tasks), nil
	}

	field := domain.SortField(strings.ToLower(order))
	switch field {
	case domain.SortByStart, domain.SortByStatus, domain.SortByPriority, domain.SortByTitle:
		s := domain.Sort{Field: field}
		return s.Apply(tasks), nil
	}
	return nil, fmt.Errorf("unknown order %q (want input, phase, start, status, priority or title)", order)
}

// compute loads the tasks and runs the engine
func (d *Dependencies) compute(ctx context.Context, opts LayoutOptions) (LayoutOutput, []domain.Task, error) {
	w, now, err := d.Window(opts.WindowOptions)
	if err != nil {
		return LayoutOutput{}, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()
	tasks, err := d.Client.List(ctx)
	if err != nil {
		return LayoutOutput{}, nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	tasks, err = OrderTasks(tasks, opts.Order)
	if err != nil {
		return LayoutOutput{}, nil, err
	}

	out := LayoutOutput{Result: timeline.Compute(tasks, w, d.Config.Geometry, now)}
	if opts.CheckCycles {
		out.Cycle = timeline.DetectCycle(tasks)
	}
	d.Logger.Debug("computed layout",
		"tasks", len(tasks),
		"layouts", len(out.Layouts),
		"edges", len(out.Edges),
		"diagnostics", len(out.Diagnostics))
	return out, tasks, nil
}

// LayoutCommand writes the computed geometry as JSON to stdout and a short
// diagnostics summary to stderr
func LayoutCommand(ctx context.Context, deps *Dependencies, opts LayoutOptions) error {
	out, _, err := deps.compute(ctx, opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to write layout: %w", err)
	}

	if n := len(out.Diagnostics); n > 0 {
		fmt.Fprintf(deps.Stderr, "%s %d diagnostics (run 'gantt check' for details)\n", warnMark(), n)
	}
	return nil
}

// SVGCommand renders the chart as an SVG document to w
func SVGCommand(ctx context.Context, deps *Dependencies, opts LayoutOptions, w io.Writer) error {
	out, tasks, err := deps.compute(ctx, opts)
	if err != nil {
		return err
	}
	if err := render.WriteSVG(w, out.Result, tasks, render.DefaultOptions()); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

// CheckCommand prints every diagnostic and, when asked, a dependency cycle.
// Returns ErrIssuesFound if there is anything to report.
func CheckCommand(ctx context.Context, deps *Dependencies, opts LayoutOptions) error {
	out, tasks, err := deps.compute(ctx, opts)
	if err != nil {
		return err
	}
	if PrintReport(deps.Stdout, out, tasks) > 0 {
		return ErrIssuesFound
	}
	return nil
}

// DaysCommand lists the days of the window as a table, or JSON
func DaysCommand(deps *Dependencies, opts WindowOptions, asJSON bool) error {
	w, now, err := deps.Window(opts)
	if err != nil {
		return err
	}
	days := w.Days(now)

	if asJSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(days)
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tDAY\tX\tMARK")
	for i, d := range days {
		mark := ""
		switch {
		case d.IsToday:
			mark = "today"
		case d.IsWeekend:
			mark = "weekend"
		}
		fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n",
			d.Date.Format(time.DateOnly), d.Date.Weekday().String()[:3], float64(i)*w.CellWidth, mark)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "\n%s, %d days at %vpx\n", w.Granularity, w.DayCount, w.CellWidth)
	return nil
}
