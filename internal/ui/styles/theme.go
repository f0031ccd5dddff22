package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
)

// Catppuccin Macchiato palette
var (
	// Base colors
	Base     = lipgloss.Color("#24273a")
	Mantle   = lipgloss.Color("#1e2030")
	Surface0 = lipgloss.Color("#363a4f")
	Surface1 = lipgloss.Color("#494d64")
	Surface2 = lipgloss.Color("#5b6078")
	Overlay0 = lipgloss.Color("#6e738d")
	Overlay1 = lipgloss.Color("#8087a2")
	Subtext0 = lipgloss.Color("#a5adcb")
	Text     = lipgloss.Color("#cad3f5")

	// Accent colors
	Mauve    = lipgloss.Color("#c6a0f6")
	Red      = lipgloss.Color("#ed8796")
	Peach    = lipgloss.Color("#f5a97f")
	Yellow   = lipgloss.Color("#eed49f")
	Green    = lipgloss.Color("#a6da95")
	Sapphire = lipgloss.Color("#7dc4e4")
	Blue     = lipgloss.Color("#8aadf4")
	Lavender = lipgloss.Color("#b7bdf8")
)

// StatusColors maps status to bar colors
var StatusColors = map[domain.Status]lipgloss.Color{
	domain.StatusTodo:       Sapphire,
	domain.StatusInProgress: Yellow,
	domain.StatusDone:       Green,
}

// OverdueColor is the bar color of a task past its end date
var OverdueColor = Red

// BarColor returns the bar color for a task. Overdue wins over status;
// unknown statuses use Overlay1.
func BarColor(status domain.Status, overdue bool) lipgloss.Color {
	if overdue {
		return OverdueColor
	}
	if c, ok := StatusColors[status]; ok {
		return c
	}
	if status.IsDone() {
		return Green
	}
	return Overlay1
}
