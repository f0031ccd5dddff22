package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/types"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/styles"
)

// maxToasts caps how many notifications are stacked at once
const maxToasts = 3

// ToastRenderer handles rendering of toast notifications
type ToastRenderer struct {
	styles *styles.Styles
}

// New creates a new ToastRenderer with the given styles
func New(styles *styles.Styles) *ToastRenderer {
	return &ToastRenderer{
		styles: styles,
	}
}

// Render renders the toasts still active at now, newest last, right-aligned.
// Returns empty string if no toasts to display
func (r *ToastRenderer) Render(toasts []types.Toast, width int, now time.Time) string {
	active := types.ActiveToasts(toasts, now)
	if len(active) == 0 {
		return ""
	}
	if len(active) > maxToasts {
		active = active[len(active)-maxToasts:]
	}

	toastWidth := min(max(width/3, 20), 40)
	rendered := make([]string, 0, len(active))
	for _, t := range active {
		style := r.styleForLevel(t.Level)
		rendered = append(rendered, style.Width(toastWidth).Render(icon(t.Level)+" "+t.Message))
	}

	// Stack toasts vertically, aligned to the right
	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, stack)
}

// styleForLevel returns the appropriate style for a toast level
func (r *ToastRenderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}

func icon(level types.ToastLevel) string {
	switch level {
	case types.ToastSuccess:
		return "✓"
	case types.ToastWarning:
		return "!"
	case types.ToastError:
		return "✗"
	default:
		return "i"
	}
}
