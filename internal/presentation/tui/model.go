package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/availnot/internal/application/settings"
	"github.com/tesso57/availnot/internal/domain/page"
	"github.com/tesso57/availnot/internal/presentation/tui/controller"
	"github.com/tesso57/availnot/internal/presentation/tui/paint"
	"github.com/tesso57/availnot/internal/presentation/tui/state"
	"github.com/tesso57/availnot/internal/presentation/tui/update"
	"github.com/tesso57/availnot/internal/presentation/tui/view"
)

// Model represents the main application state.
type Model struct {
	settings   settings.Settings
	workspace  update.Workspace
	controller *controller.Controller
	theme      paint.Theme
	state      *state.ModelState
}

// NewModel creates a new application model. The page starts on the
// signed-out home view while the cached session is restored.
func NewModel(cfg settings.Settings, ws update.Workspace) *Model {
	loc, err := cfg.Location()
	if err != nil {
		slog.Warn("falling back to local time zone", "error", err)
		loc = time.Local
	}

	m := &Model{
		settings:   cfg,
		workspace:  ws,
		controller: controller.New(controller.NewRegions(), update.Callbacks(), loc),
		theme:      newTheme(cfg.Theme),
		state:      newModelState(cfg),
	}
	update.Redraw(m.state, m.deps(), page.Home, nil)
	return m
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.state.Spinner.Tick, update.RestoreCmd(m.workspace))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps())
		if handled {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg)
	case update.IntentMsg:
		cmds = append(cmds, update.HandleIntent(m.state, msg.Type, m.deps()))
	case update.SessionRestoredMsg:
		update.HandleSessionRestoredMsg(m.state, msg, m.deps())
	case update.DeviceCodeMsg:
		cmds = append(cmds, update.HandleDeviceCodeMsg(m.state, msg, m.deps()))
	case update.SignedInMsg:
		update.HandleSignedInMsg(m.state, msg, m.deps())
	case update.SignedOutMsg:
		update.HandleSignedOutMsg(m.state, msg, m.deps())
	case update.LoadedMsg:
		update.HandleLoadedMsg(m.state, msg, m.deps())
	}

	if m.state.Loading {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func (m *Model) deps() update.Deps {
	return update.Deps{
		Workspace:   m.workspace,
		Controller:  m.controller,
		OpenBrowser: openBrowser,
	}
}

func newModelState(cfg settings.Settings) *state.ModelState {
	return &state.ModelState{
		Screen:      state.PageScreen,
		Help:        help.New(),
		Spinner:     newSpinner(cfg.Theme),
		Keys:        state.NewKeyMap(cfg.KeyMap),
		Loading:     true,
		LoadingText: "Restoring session...",
	}
}

func newSpinner(theme settings.ThemeConfig) spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	return s
}

func newTheme(cfg settings.ThemeConfig) paint.Theme {
	theme := paint.DefaultTheme()
	if cfg.Accent != "" {
		theme.Accent = lipgloss.Color(cfg.Accent)
	}
	if cfg.Muted != "" {
		theme.Muted = lipgloss.Color(cfg.Muted)
	}
	if cfg.Border != "" {
		theme.Border = lipgloss.Color(cfg.Border)
	}
	return theme
}
