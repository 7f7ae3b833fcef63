package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/ui/commands"
	"folio/internal/ui/input"
	"folio/internal/ui/screen"
	"folio/internal/ui/state"
	"folio/internal/ui/views"
)

// Model represents the application state
type Model struct {
	config  *config.Config
	content content.Provider
	state   *state.AppState

	inputHandler *input.Handler
	cmdExecutor  *commands.Executor
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
}

// NewModel creates a new Model
func NewModel(cfg *config.Config, provider content.Provider) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if provider == nil {
		provider = content.Default()
	}

	keys := input.DefaultKeyMap()
	m := &Model{
		config:       cfg,
		content:      provider,
		state:        state.NewAppState(),
		inputHandler: input.New(keys),
		renderer:     views.NewRenderer(keys.ShortHelp()),
		helpRenderer: NewHelpRenderer(keys),
	}
	m.cmdExecutor = commands.NewExecutor(m.state, cfg.PageStep, m.showHelp)
	return m
}

// State exposes the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), m.poll())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Resize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		if !m.state.IsRunning() {
			return m, nil
		}
		return m, tea.Batch(tea.WindowSize(), m.poll())

	case tea.KeyMsg:
		if !m.state.IsRunning() {
			return m, nil
		}
		ctx := &input.ModelContext{State: m.state}
		actions := m.inputHandler.HandleKey(msg, ctx)
		return m, m.cmdExecutor.ExecuteAll(actions)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil
	}

	return m, nil
}

// View renders the whole screen for the current state
func (m *Model) View() string {
	if !m.state.IsRunning() {
		return ""
	}

	frame := screen.NewFrame(m.state.Width, m.state.Height)
	lines := content.Lines(m.content.Content(m.state.CurrentPage))
	m.renderer.Render(frame, m.state, lines)
	return frame.String()
}

func (m *Model) poll() tea.Cmd {
	return tea.Tick(m.config.PollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) showHelp() tea.Cmd {
	title := m.state.CurrentPage.String()
	if t, ok := m.content.(content.Titled); ok {
		title = t.Title(m.state.CurrentPage)
	}
	return ShowHelpInPager(m.helpRenderer.RenderHelpContent(title))
}
