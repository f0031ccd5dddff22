// Package types contains shared types used across the application.
package types

// Mode represents the current input mode of the chart view
type Mode int

const (
	ModeNormal Mode = iota
	// ModeSearch edits the title filter
	ModeSearch
	// ModeGoto waits for the second key of a g-prefixed jump
	ModeGoto
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeSearch:
		return "SEARCH"
	case ModeGoto:
		return "GOTO"
	default:
		return "UNKNOWN"
	}
}
