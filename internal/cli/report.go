package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/core/phases"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/timeline"
)

// Sprint color functions for the report
var (
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.Bold, color.FgRed).SprintFunc()
)

func warnMark() string {
	return yellow("!")
}

// PrintReport writes a human-readable summary of out and returns the number
// of problems it listed: diagnostics plus one for a cycle.
func PrintReport(w io.Writer, out LayoutOutput, tasks []domain.Task) int {
	titles := make(map[string]string, len(tasks))
	for _, t := range tasks {
		if _, dup := titles[t.ID]; !dup {
			titles[t.ID] = t.Title
		}
	}

	fmt.Fprintf(w, "%s %s - %s (%s, %d days)\n",
		bold("Window"),
		out.Window.Anchor.Format("Jan 2 2006"), out.Window.End().Format("Jan 2 2006"),
		out.Window.Granularity, out.Window.DayCount)
	fmt.Fprintf(w, "  %d tasks, %d scheduled, %d connectors\n", len(tasks), len(out.Layouts), len(out.Edges))

	overdue := 0
	for _, l := range out.Layouts {
		if l.IsOverdue {
			overdue++
		}
	}
	if overdue > 0 {
		fmt.Fprintf(w, "  %s\n", yellow(fmt.Sprintf("%d overdue", overdue)))
	}
	printPhases(w, tasks)

	problems := len(out.Diagnostics)
	if len(out.Cycle) > 0 {
		problems++
	}
	if problems == 0 {
		fmt.Fprintf(w, "\n%s no issues\n", green("✓"))
		return 0
	}

	if len(out.Diagnostics) > 0 {
		fmt.Fprintf(w, "\n%s\n", bold(fmt.Sprintf("Diagnostics (%d)", len(out.Diagnostics))))
		for _, d := range out.Diagnostics {
			fmt.Fprintf(w, "  %s %-26s %s%s\n", warnMark(), yellow(string(d.Code)), bold(d.TaskID), describe(d, titles))
		}
	}
	if len(out.Cycle) > 0 {
		fmt.Fprintf(w, "\n%s %s\n", red("Cycle"), strings.Join(out.Cycle, " → "))
	}
	return problems
}

// printPhases lists the dependency levels when there is more than one,
// naming what each waiting task comes after
func printPhases(w io.Writer, tasks []domain.Task) {
	res := phases.Compute(tasks)
	groups := phases.TasksByPhase(tasks, res.Phases)
	if len(groups) < 2 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", bold(fmt.Sprintf("Phases (%d)", len(groups))))
	for i, ids := range groups {
		entries := make([]string, 0, len(ids))
		for _, id := range ids {
			if !phases.IsTaskBlocked(id, res.Phases) {
				entries = append(entries, id)
				continue
			}
			after := strings.Join(phases.BlockerTitles(id, res.Phases, tasks), ", ")
			entries = append(entries, id+" "+dim("after "+after))
		}
		fmt.Fprintf(w, "  %d  %s\n", i, strings.Join(entries, "; "))
	}
}

// describe adds the title and the offending reference to a diagnostic line
func describe(d timeline.Diagnostic, titles map[string]string) string {
	var b strings.Builder
	if t := titles[d.TaskID]; t != "" {
		b.WriteString(" " + dim("("+t+")"))
	}
	if d.DependencyID != "" {
		b.WriteString(" → " + d.DependencyID)
	}
	return b.String()
}
