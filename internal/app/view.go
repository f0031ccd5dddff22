package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/types"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/gantt"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/statusbar"
)

// View renders the title, header, rows, detail line and status bar
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.loading {
		return m.renderLoading()
	}

	c := m.chart()
	body := m.viewport.View()
	if toasts := m.toastR.Render(m.toasts, m.width, m.now()); toasts != "" {
		body = overlayBottom(body, toasts)
	}

	parts := []string{m.renderTitle(), c.Header(), body, m.renderDetail(c)}
	if m.help.ShowAll {
		parts = append(parts, m.help.View(m.keys))
	}
	parts = append(parts, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderLoading renders a centered loading spinner with message
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.spinner.View(),
		"Loading tasks...",
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderTitle() string {
	scheduled := len(m.result.Layouts)
	title := m.styles.HeaderMonth.Render(m.title)
	counts := fmt.Sprintf("  %d tasks · %d scheduled · %d links", len(m.visible), scheduled, len(m.result.Edges))
	if n := len(m.result.Diagnostics); n > 0 {
		counts += " · " + m.styles.Diagnostic.Render(fmt.Sprintf("%d issues", n))
	}
	if hidden := len(m.tasks) - len(m.visible); hidden > 0 {
		counts += fmt.Sprintf(" · %d hidden", hidden)
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(title + m.styles.Detail.Render(counts))
}

func (m Model) renderDetail(c *gantt.Chart) string {
	line := ""
	switch {
	case m.loadErr != nil:
		line = m.styles.Diagnostic.Render("error: " + m.loadErr.Error())
	case len(m.visible) == 0:
		line = m.styles.Detail.Render("no tasks")
	default:
		if t, ok := m.cursor.Current(m.visible); ok {
			line = c.Detail(t.ID)
		}
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

func (m Model) renderStatusBar() string {
	return statusbar.New(m.mode, m.width, m.styles).
		WithInfo(m.statusInfo()).
		WithInput(m.filter.SearchQuery).
		Render()
}

// statusInfo summarizes zoom, window range and row ordering
func (m Model) statusInfo() string {
	w := m.nav.Window()
	parts := []string{
		string(w.Granularity),
		domain.FormatRange(w.Anchor, w.End()),
	}
	if m.sort.Field != domain.SortNone {
		dir := "↑"
		if m.sort.Order == domain.SortDesc {
			dir = "↓"
		}
		parts = append(parts, "sort: "+string(m.sort.Field)+dir)
	}
	if m.phaseOrder {
		parts = append(parts, "phases")
	}
	if m.filter.SearchQuery != "" && m.mode != types.ModeSearch {
		parts = append(parts, "/"+m.filter.SearchQuery)
	}
	return strings.Join(parts, " · ")
}

// overlayBottom replaces the last lines of base with overlay's lines
func overlayBottom(base, overlay string) string {
	lines := strings.Split(base, "\n")
	over := strings.Split(overlay, "\n")
	if len(over) > len(lines) {
		over = over[len(over)-len(lines):]
	}
	copy(lines[len(lines)-len(over):], over)
	return strings.Join(lines, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
