package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to derive the fixed timestep.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  128,
		ScreenH:  36,
		TickRate: 60,
	}
}

// Dt returns the fixed timestep in seconds implied by TickRate.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// Phase is the top-level screen a session is showing.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseInstructions
	PhasePlaying
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseInstructions:
		return "instructions"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase // Screen currently shown
	Score    int   // Current score
	GameOver bool  // Whether the round has ended
	Won      bool  // Whether the round ended with every target down
}

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventLaunch EventKind = iota
	EventTargetHit
	EventObstacleBroken
	EventPower
	EventRollerSummoned
	EventTurnOver
	EventRoundWon
	EventRoundLost
	EventRestart
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLaunch:
		return "launch"
	case EventTargetHit:
		return "target_hit"
	case EventObstacleBroken:
		return "obstacle_broken"
	case EventPower:
		return "power"
	case EventRollerSummoned:
		return "roller_summoned"
	case EventTurnOver:
		return "turn_over"
	case EventRoundWon:
		return "round_won"
	case EventRoundLost:
		return "round_lost"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step. Index refers to the projectile, target
// or obstacle involved, or -1 when not applicable.
type Event struct {
	Kind  EventKind
	Index int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
	Quit   bool // The game asked the platform to exit
}
