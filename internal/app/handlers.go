package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/timeline"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/types"
)

// handleKey routes key messages by mode
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case types.ModeSearch:
		return m.handleSearchMode(msg)
	case types.ModeGoto:
		return m.handleGotoMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loading {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	// Window
	case key.Matches(msg, m.keys.Earlier):
		m.nav.Shift(timeline.Prev)
	case key.Matches(msg, m.keys.Later):
		m.nav.Shift(timeline.Next)
	case key.Matches(msg, m.keys.Today):
		m.nav.JumpToToday()
	case key.Matches(msg, m.keys.Reveal):
		m.revealSelected()
	case key.Matches(msg, m.keys.Day):
		m.setGranularity(timeline.GranularityDay)
	case key.Matches(msg, m.keys.Week):
		m.setGranularity(timeline.GranularityWeek)
	case key.Matches(msg, m.keys.Month):
		m.setGranularity(timeline.GranularityMonth)
	case key.Matches(msg, m.keys.CycleZoom):
		m.nav.CycleGranularity()

	// Cursor
	case key.Matches(msg, m.keys.Down):
		m.cursor.Move(m.visible, 1)
	case key.Matches(msg, m.keys.Up):
		m.cursor.Move(m.visible, -1)
	case key.Matches(msg, m.keys.HalfDown):
		m.cursor.Move(m.visible, m.halfPage())
	case key.Matches(msg, m.keys.HalfUp):
		m.cursor.Move(m.visible, -m.halfPage())

	// Modes
	case key.Matches(msg, m.keys.Goto):
		m.mode = types.ModeGoto
		return m, nil
	case key.Matches(msg, m.keys.Search):
		m.mode = types.ModeSearch
		return m, nil

	// Row set
	case key.Matches(msg, m.keys.Sort):
		m.sort = domain.Sort{Field: nextSortField(m.sort.Field)}
	case key.Matches(msg, m.keys.Reverse):
		if m.sort.Field == domain.SortNone {
			return m, nil
		}
		m.sort.Toggle(m.sort.Field)
	case key.Matches(msg, m.keys.PhaseOrder):
		m.phaseOrder = !m.phaseOrder
	case key.Matches(msg, m.keys.Unscheduled):
		m.filter.HideUnscheduled = !m.filter.HideUnscheduled
	case key.Matches(msg, m.keys.Clear):
		if !m.filter.IsActive() {
			return m, nil
		}
		m.filter.Clear()

	case key.Matches(msg, m.keys.Reload):
		if m.client == nil {
			return m, nil
		}
		m.addToast(types.ToastInfo, "Reloading…")
		return m, tea.Batch(m.loadTasksCmd(), expireToastsCmd())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.refreshViewport()
		return m, nil

	default:
		return m, nil
	}

	m.recompute()
	return m, nil
}

// handleGotoMode handles the key after g
func (m Model) handleGotoMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = types.ModeNormal
	switch msg.String() {
	case "g":
		m.cursor.JumpToStart(m.visible)
	case "e":
		m.cursor.JumpToEnd(m.visible)
	case "t":
		m.nav.JumpToToday()
	case "s":
		m.revealSelected()
	default:
		return m, nil
	}
	m.recompute()
	return m, nil
}

// handleSearchMode edits the title query; rows update as it is typed
func (m Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.mode = types.ModeNormal
		return m, nil
	case tea.KeyEsc:
		m.mode = types.ModeNormal
		m.filter.SearchQuery = ""
	case tea.KeyBackspace:
		q := []rune(m.filter.SearchQuery)
		if len(q) == 0 {
			return m, nil
		}
		m.filter.SearchQuery = string(q[:len(q)-1])
	case tea.KeySpace:
		m.filter.SearchQuery += " "
	case tea.KeyRunes:
		m.filter.SearchQuery += string(msg.Runes)
	default:
		return m, nil
	}
	m.recompute()
	return m, nil
}

func (m *Model) setGranularity(g timeline.Granularity) {
	if err := m.nav.SetGranularity(g); err != nil {
		m.addToast(types.ToastError, err.Error())
	}
}

// revealSelected scrolls the window to the selected task's start
func (m *Model) revealSelected() {
	t, ok := m.cursor.Current(m.visible)
	if !ok {
		return
	}
	start, _, ok := t.Span()
	if !ok {
		m.addToast(types.ToastWarning, fmt.Sprintf("%s has no valid dates", t.ID))
		return
	}
	m.nav.Reveal(start)
}

// halfPage is half the visible row count, at least one
func (m Model) halfPage() int {
	return max(m.bodyHeight()/2, 1)
}
