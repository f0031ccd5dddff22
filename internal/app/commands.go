package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
)

// loadTimeout bounds one read of the task document
const loadTimeout = 5 * time.Second

// Message types for async operations

type tasksLoadedMsg struct {
	tasks []domain.Task
}

type loadErrorMsg struct {
	err error
}

type toastTickMsg struct{}

// loadTasksCmd returns a command that reads and parses the task document
func (m Model) loadTasksCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		tasks, err := client.List(ctx)
		if err != nil {
			return loadErrorMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

// expireToastsCmd schedules the next sweep of expired toasts
func expireToastsCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}
