package slingshot

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/registry"
)

// ID is the registry name of the game.
const ID = "slingshot"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset by name.
func SetDifficultyPreset(preset string) error {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		return err
	}
	difficultyPreset = p
	return nil
}

// LoadConfig resolves the configuration the next Reset will use and checks
// that a scene can be built from it. A failure here means the game cannot start.
func LoadConfig() (config.SlingshotConfig, error) {
	cfg, err := config.LoadSlingshot(configPath)
	if err != nil {
		return cfg, fmt.Errorf("slingshot: %w", err)
	}
	config.ApplySlingshotPreset(&cfg, difficultyPreset)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("slingshot: %w", err)
	}
	if _, err := NewScene(cfg); err != nil {
		return cfg, fmt.Errorf("slingshot: scene setup: %w", err)
	}
	return cfg, nil
}

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// Game implements the slingshot game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.SlingshotConfig
	fixed   bool // cfg was supplied by the caller; Reset must not reload it

	scene   *Scene
	session Session
	launch  Launcher

	tick   int
	events []core.Event
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game bound to cfg. The game is ready to Step
// without a Reset and starts on the title screen.
func NewWithConfig(cfg config.SlingshotConfig) (*Game, error) {
	sc, err := NewScene(cfg)
	if err != nil {
		return nil, fmt.Errorf("slingshot: scene setup: %w", err)
	}
	g := &Game{cfg: cfg, fixed: true, runtime: core.DefaultConfig()}
	g.install(sc)
	return g, nil
}

func (g *Game) install(sc *Scene) {
	g.scene = sc
	g.session = NewSession(sc)
	g.launch = NewLauncher(g.cfg.Launch)
	g.tick = 0
	g.events = g.events[:0]
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Slingshot"
}

// Reset initializes the game and returns to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := LoadConfig()
		if err != nil {
			cfg = config.DefaultSlingshotConfig()
		}
		g.cfg = cfg
	}

	sc, err := NewScene(g.cfg)
	if err != nil {
		g.cfg = config.DefaultSlingshotConfig()
		if sc, err = NewScene(g.cfg); err != nil {
			panic(fmt.Sprintf("slingshot: built-in layout: %v", err))
		}
	}
	g.install(sc)
}

// Step handles one frame of input, then advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionQuit) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	g.handleActions(in)
	g.handlePointer(in.Pointer)

	wasOver := g.session.GameOver
	g.Update(g.runtime.Dt())
	if !wasOver && g.session.GameOver {
		if g.session.Outcome == OutcomeWin {
			g.emit(core.EventRoundWon, -1)
		} else {
			g.emit(core.EventRoundLost, -1)
		}
	}

	return core.StepResult{State: g.State(), Events: slices.Clone(g.events)}
}

// handleActions applies key actions to the session.
func (g *Game) handleActions(in core.InputFrame) {
	s := &g.session

	switch {
	case in.Has(core.ActionStart) && s.InMenu:
		s.InMenu = false
		s.ShowInstructions = false
		s.Active = 0
	case in.Has(core.ActionInstructions) && s.InMenu:
		s.ShowInstructions = true
	case in.Has(core.ActionBack) && s.InMenu:
		s.ShowInstructions = false
	case in.Has(core.ActionRestart) && !s.InMenu:
		g.Restart()
	}

	if in.Has(core.ActionPower) && g.playing() {
		if p := g.active(); p.Fired() && p.ActivatePower() {
			g.emit(core.EventPower, s.Active)
		}
	}
}

// handlePointer drains the frame's pointer events in arrival order.
func (g *Game) handlePointer(events []core.PointerEvent) {
	if !g.playing() {
		return
	}
	for _, ev := range events {
		switch g.launch.Handle(ev, g.active(), g.scene.Anchor) {
		case LaunchFired:
			g.emit(core.EventLaunch, g.session.Active)
		case LaunchPower:
			g.emit(core.EventPower, g.session.Active)
		}
	}
}

// Restart rebuilds the scene and refills every counter, staying out of the menu.
func (g *Game) Restart() {
	g.launch.Cancel(g.active())
	g.scene.Reset()
	g.session.Restart()
	g.tick = 0
	g.emit(core.EventRestart, -1)
}

func (g *Game) playing() bool {
	return !g.session.InMenu && !g.session.GameOver
}

func (g *Game) active() *Projectile {
	return &g.scene.Projectiles[g.session.Active]
}

func (g *Game) emit(kind core.EventKind, index int) {
	g.events = append(g.events, core.Event{Kind: kind, Index: index})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session
	phase := core.PhasePlaying
	switch {
	case s.InMenu && s.ShowInstructions:
		phase = core.PhaseInstructions
	case s.InMenu:
		phase = core.PhaseMenu
	case s.GameOver:
		phase = core.PhaseOver
	}

	return core.GameState{
		Phase:    phase,
		Score:    g.Score(),
		GameOver: s.GameOver,
		Won:      s.Outcome == OutcomeWin,
	}
}

// WorldSize returns the playfield size in world units.
func (g *Game) WorldSize() core.Vec2 {
	return core.V(g.cfg.World.Width, g.cfg.World.Height)
}

// ProjectilesLeft returns how many projectiles are still available.
func (g *Game) ProjectilesLeft() int { return g.session.ProjectilesLeft }

// TargetsLeft returns how many targets are still standing.
func (g *Game) TargetsLeft() int { return g.session.TargetsLeft }

// ObstaclesLeft returns how many obstacles are still standing.
func (g *Game) ObstaclesLeft() int { return g.session.ObstaclesLeft }

// Outcome returns the round result, OutcomeNone while it is running.
func (g *Game) Outcome() Outcome { return g.session.Outcome }

// Breakdown itemizes the current score.
func (g *Game) Breakdown() ScoreBreakdown { return g.session.Score(g.cfg.Scoring) }

// Score returns the current total score.
func (g *Game) Score() int { return g.Breakdown().Total() }

// Scene exposes the actors for rendering and inspection.
func (g *Game) Scene() *Scene { return g.scene }

// Session returns a copy of the round counters.
func (g *Game) Session() Session { return g.session }

// Active returns the projectile currently on the slingshot.
func (g *Game) Active() *Projectile { return g.active() }

// Launcher exposes the drag state for rendering the sling band.
func (g *Game) Launcher() *Launcher { return &g.launch }
