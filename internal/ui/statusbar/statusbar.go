package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/types"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode   types.Mode
	width  int
	styles *styles.Styles
	info   string
	input  string
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithInfo sets the right-aligned summary, e.g. the zoom level and range
func (sb StatusBar) WithInfo(info string) StatusBar {
	sb.info = info
	return sb
}

// WithInput sets the text being typed in search mode; it replaces the hints
func (sb StatusBar) WithInput(input string) StatusBar {
	sb.input = input
	return sb
}

// Render renders the status bar as a string. The info wins over the hints
// when space is short; hints are cut to what is left.
func (sb StatusBar) Render() string {
	// The bar pads one column each side
	inner := sb.width - 2

	// Mode badge
	modeBadge := sb.styles.StatusMode.Render(sb.mode.String())
	room := inner - lipgloss.Width(modeBadge)

	info := ""
	if sb.info != "" {
		info = sb.styles.StatusInfo.Render(sb.info)
		if w := lipgloss.Width(info) + 1; w <= room {
			room -= w
		} else {
			info = ""
		}
	}

	// Keybinding hints, or the search prompt
	hints := GetHints(sb.mode)
	if sb.mode == types.ModeSearch {
		hints = "/" + sb.input + "▏  " + hints
	}

	content := modeBadge
	const separator = " │ "
	if hints != "" && room > len([]rune(separator)) {
		hints = truncate(hints, room-len([]rune(separator)))
		content = lipgloss.JoinHorizontal(lipgloss.Left,
			modeBadge, sb.styles.StatusHint.Render(separator), sb.styles.StatusHint.Render(hints))
	}

	if info != "" {
		gap := inner - lipgloss.Width(content) - lipgloss.Width(info)
		content += strings.Repeat(" ", max(gap, 1)) + info
	}

	// Apply status bar style and fill width
	return sb.styles.StatusBar.Width(sb.width).Render(content)
}

// truncate cuts s to n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:max(n, 0)])
	}
	return strings.TrimRight(string(r[:n-1]), " ") + "…"
}
