// Package app implements the interactive Gantt chart
package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/config"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/core/phases"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/domain"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/services/navigation"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/services/store"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/timeline"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/types"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/gantt"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/styles"
	"github.com/nabdchainsystem-alt/ncs-sub005/internal/ui/toast"
)

// chromeLines is the title line, two header lines, the detail line and the
// status bar
const chromeLines = 5

// Options configures a Model
type Options struct {
	Config *config.Config
	Client *store.Client
	Logger *slog.Logger
	// Now is the clock; defaults to time.Now
	Now func() time.Time
	// Title names the board in the title line
	Title string
}

// Model is the Bubble Tea model for the chart view
type Model struct {
	// Snapshot as loaded, and the filtered, ordered rows the engine sees
	tasks   []domain.Task
	visible []domain.Task
	result  timeline.Result

	nav        *navigation.Controller
	cursor     navigation.Cursor
	filter     *domain.Filter
	sort       domain.Sort
	phaseOrder bool

	mode   types.Mode
	toasts []types.Toast

	viewport viewport.Model
	help     help.Model
	keys     KeyMap
	spinner  spinner.Model

	width   int
	height  int
	loading bool
	loadErr error

	styles *styles.Styles
	toastR *toast.ToastRenderer
	config *config.Config
	client *store.Client
	logger *slog.Logger
	now    func() time.Time
	title  string
}

// New creates a model that loads its tasks from opts.Client on Init
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg = config.MergeWithDefaults(cfg)

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	g, err := cfg.Granularity()
	if err != nil {
		logger.Warn("invalid granularity, using day", "error", err)
		g = timeline.GranularityDay
	}
	weekStart, err := cfg.WeekStart()
	if err != nil {
		logger.Warn("invalid week start, using sunday", "error", err)
		weekStart = time.Sunday
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	st := styles.New()
	title := opts.Title
	if title == "" && opts.Client != nil {
		title = opts.Client.Source().Name()
	}

	m := Model{
		tasks:   []domain.Task{},
		visible: []domain.Task{},
		nav: navigation.NewController(navigation.Options{
			Granularity: g,
			Zooms:       cfg.Zooms(),
			WeekStart:   weekStart,
			DayStep:     cfg.Timeline.DayStep,
			Now:         now,
		}),
		filter:   domain.NewFilter(),
		viewport: viewport.New(0, 0),
		help:     help.New(),
		keys:     DefaultKeyMap(),
		spinner:  s,
		loading:  opts.Client != nil,
		styles:   st,
		toastR:   toast.New(st),
		config:   cfg,
		client:   opts.Client,
		logger:   logger,
		now:      now,
		title:    title,
	}
	m.recompute()
	return m
}

// Init starts loading the task document
func (m Model) Init() tea.Cmd {
	if m.client == nil {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.loadTasksCmd())
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refreshViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tasksLoadedMsg:
		m.loading = false
		m.loadErr = nil
		m.tasks = msg.tasks
		m.recompute()
		m.logger.Debug("tasks loaded", "count", len(msg.tasks), "diagnostics", len(m.result.Diagnostics))
		m.addToast(types.ToastSuccess, fmt.Sprintf("Loaded %d tasks", len(msg.tasks)))
		if n := len(m.result.Diagnostics); n > 0 {
			m.addToast(types.ToastWarning, fmt.Sprintf("%d issues, select a task for details", n))
		}
		return m, expireToastsCmd()

	case loadErrorMsg:
		m.loading = false
		m.loadErr = msg.err
		m.logger.Error("failed to load tasks", "error", msg.err)
		m.addToast(types.ToastError, "Load failed: "+msg.err.Error())
		m.recompute()
		return m, expireToastsCmd()

	case toastTickMsg:
		m.toasts = types.ActiveToasts(m.toasts, m.now())
		if len(m.toasts) > 0 {
			return m, expireToastsCmd()
		}
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// recompute rebuilds the visible rows and the layout. Rows follow filter,
// then sort, then the optional phase order.
func (m *Model) recompute() {
	visible := m.sort.Apply(m.filter.Apply(m.tasks))
	if m.phaseOrder {
		visible = phases.Order(visible)
	}
	m.visible = visible
	m.result = timeline.Compute(visible, m.nav.Window(), m.config.Geometry, m.nav.Now())
	if m.cursor.TaskID == "" {
		m.cursor.JumpToStart(visible)
	}
	m.refreshViewport()
}

// refreshViewport re-renders the rows into the viewport and keeps the cursor
// row on screen
func (m *Model) refreshViewport() {
	m.viewport.Width = m.width
	m.viewport.Height = m.bodyHeight()
	m.viewport.SetContent(joinLines(m.chart().Rows()))

	row := m.cursor.Row(m.visible)
	switch {
	case row < 0:
		m.viewport.GotoTop()
	case row < m.viewport.YOffset:
		m.viewport.SetYOffset(row)
	case row >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(row - m.viewport.Height + 1)
	}
}

// bodyHeight is the number of task rows that fit under the chrome
func (m Model) bodyHeight() int {
	h := m.height - chromeLines
	if m.help.ShowAll {
		h -= lipgloss.Height(m.help.View(m.keys))
	}
	return max(h, 1)
}

// chart lays the current result onto the terminal width
func (m Model) chart() *gantt.Chart {
	selected := ""
	if t, ok := m.cursor.Current(m.visible); ok {
		selected = t.ID
	}
	return gantt.New(m.result, m.visible, m.styles, gantt.Options{
		PixelsPerChar: m.pixelsPerChar(),
		LabelWidth:    m.config.UI.LabelWidth,
		Selected:      selected,
	})
}

// pixelsPerChar keeps the day-zoom cell at CharsPerCell columns and shrinks
// wider windows until they fit the terminal
func (m Model) pixelsPerChar() float64 {
	perCell := max(m.config.UI.CharsPerCell, 1)
	ppc := m.config.Zoom.Day.CellWidth / float64(perCell)
	if ppc <= 0 {
		ppc = timeline.DefaultZooms()[timeline.GranularityDay].CellWidth / float64(perCell)
	}
	if avail := m.width - m.config.UI.LabelWidth - 1; avail > 0 {
		ppc = max(ppc, m.result.Window.PixelWidth()/float64(avail))
	}
	return ppc
}

func (m *Model) addToast(level types.ToastLevel, message string) {
	m.toasts = append(m.toasts, types.NewToast(level, message, m.now()))
}

// sortCycle is the order the sort key steps through
var sortCycle = []domain.SortField{
	domain.SortNone,
	domain.SortByStart,
	domain.SortByStatus,
	domain.SortByPriority,
	domain.SortByTitle,
}

func nextSortField(f domain.SortField) domain.SortField {
	for i, s := range sortCycle {
		if s == f {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return domain.SortNone
}
