package statusbar

import "github.com/nabdchainsystem-alt/ncs-sub005/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "h/l: shift  d/w/m: zoom  t: today  j/k: tasks  /: search  r: reload  q: quit"
	case types.ModeGoto:
		return "g: first  e: last  t: today  s: selected  Esc: cancel"
	case types.ModeSearch:
		return "Type to filter  Enter: confirm  Esc: clear"
	default:
		return ""
	}
}
