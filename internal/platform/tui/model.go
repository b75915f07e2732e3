package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-slingshot/internal/audio"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/registry"
)

// helpHeight is the number of rows below the playfield used by the help bar.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// worldSizer is implemented by games that accept pointer input in world units.
type worldSizer interface {
	WorldSize() core.Vec2
}

// Options carries the optional collaborators of a Model.
type Options struct {
	Logger *log.Logger
	Sound  *audio.SoundManager
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	input    core.InputFrame
	state    core.GameState
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	sound    *audio.SoundManager
	runID    string
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 1)),
		config: cfg,
		input:  core.NewInputFrame(),
		state:  game.State(),
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
		sound:  opts.Sound,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next tick. Quit is handled on the tick
// so the game sees it too.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a := m.keys.Action(msg); a != core.ActionNone {
		m.input.Set(a)
	}
	return m, nil
}

// handleMouse converts left-button mouse activity into world-space pointer events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ws, ok := m.game.(worldSizer)
	if !ok {
		return m, nil
	}

	var kind core.PointerKind
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		kind = core.PointerDown
	case tea.MouseActionRelease:
		kind = core.PointerUp
	case tea.MouseActionMotion:
		kind = core.PointerMove
	default:
		return m, nil
	}

	vp := core.NewViewport(ws.WorldSize(), m.screen.Width(), m.screen.Height())
	m.input.Push(kind, vp.ToWorld(msg.X, msg.Y))
	return m, nil
}

// handleResize keeps the screen buffer in step with the terminal. The world
// is rescaled on render, so the game is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.state
	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	if result.Quit {
		m.logger.Info("quit", "run", m.runID, "score", m.state.Score)
		m.quitting = true
		return m, tea.Quit
	}

	if prev.Phase != core.PhasePlaying && prev.Phase != core.PhaseOver && m.state.Phase == core.PhasePlaying {
		m.startRun()
	}
	m.logEvents(result.Events)
	m.sound.PlayEvents(result.Events)

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) startRun() {
	m.runID = uuid.NewString()
	m.logger.Info("round started", "game", m.game.ID(), "run", m.runID)
}

func (m *Model) logEvents(events []core.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case core.EventRestart:
			m.startRun()
		case core.EventRoundWon, core.EventRoundLost:
			m.logger.Info("round over", "run", m.runID, "outcome", ev.Kind, "score", m.state.Score)
		default:
			m.logger.Debug("event", "run", m.runID, "kind", ev.Kind, "index", ev.Index)
		}
	}
}

// State returns the game state after the most recent tick.
func (m Model) State() core.GameState {
	return m.state
}

// RunID returns the identifier of the current round, empty before the first start.
func (m Model) RunID() string {
	return m.runID
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program and blocks until the player quits.
// It returns the model as it was when the program exited.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	m, _ := final.(Model)
	return m, nil
}
