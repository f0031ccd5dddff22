package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Chart header
	Header        lipgloss.Style
	HeaderMonth   lipgloss.Style
	HeaderWeekend lipgloss.Style
	HeaderToday   lipgloss.Style

	// Row labels
	Label         lipgloss.Style
	LabelSelected lipgloss.Style

	// Grid cells
	Grid        lipgloss.Style
	Weekend     lipgloss.Style
	Today       lipgloss.Style
	Clipped     lipgloss.Style
	Unscheduled lipgloss.Style

	// Detail line under the chart
	Detail     lipgloss.Style
	DetailKey  lipgloss.Style
	Diagnostic lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme.
// Cell styles carry no padding or borders; the chart lays them out one rune
// per terminal column.
func New() *Styles {
	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(Subtext0),

		HeaderMonth: lipgloss.NewStyle().
			Foreground(Lavender).
			Bold(true),

		HeaderWeekend: lipgloss.NewStyle().
			Foreground(Overlay0),

		HeaderToday: lipgloss.NewStyle().
			Foreground(Base).
			Background(Peach).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(Text),

		LabelSelected: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true),

		Grid: lipgloss.NewStyle().
			Foreground(Surface1),

		Weekend: lipgloss.NewStyle().
			Foreground(Surface2),

		Today: lipgloss.NewStyle().
			Foreground(Peach),

		Clipped: lipgloss.NewStyle().
			Foreground(Overlay1).
			Bold(true),

		Unscheduled: lipgloss.NewStyle().
			Foreground(Overlay0).
			Italic(true),

		Detail: lipgloss.NewStyle().
			Foreground(Subtext0),

		DetailKey: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		Diagnostic: lipgloss.NewStyle().
			Foreground(Yellow),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// Bar returns the style of a task bar
func (s *Styles) Bar(status domain.Status, overdue bool) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(BarColor(status, overdue))
}

// SelectedBar returns the style of the selected task's bar
func (s *Styles) SelectedBar(status domain.Status, overdue bool) lipgloss.Style {
	return s.Bar(status, overdue).Background(Surface1)
}
