package slingshot

import "github.com/vovakirdan/tui-slingshot/internal/config"

// Outcome is the result of a finished round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	default:
		return "none"
	}
}

// Session holds the round counters mutated by the simulation loop.
type Session struct {
	ProjectilesLeft int
	TargetsLeft     int
	ObstaclesLeft   int
	Active          int // Index of the projectile on the slingshot

	InMenu           bool
	ShowInstructions bool
	GameOver         bool
	Outcome          Outcome

	projectiles int
	targets     int
	obstacles   int
}

// NewSession creates a session for the scene, starting on the title screen.
func NewSession(sc *Scene) Session {
	s := Session{
		InMenu:      true,
		projectiles: len(sc.Projectiles),
		targets:     len(sc.Targets),
		obstacles:   len(sc.Obstacles),
	}
	s.Restart()
	return s
}

// Restart refills every counter and clears the round result.
func (s *Session) Restart() {
	s.ProjectilesLeft = s.projectiles
	s.TargetsLeft = s.targets
	s.ObstaclesLeft = s.obstacles
	s.Active = 0
	s.GameOver = false
	s.Outcome = OutcomeNone
}

// End finishes the round. The round is won iff no targets remain.
func (s *Session) End() {
	s.GameOver = true
	if s.TargetsLeft == 0 {
		s.Outcome = OutcomeWin
	} else {
		s.Outcome = OutcomeLose
	}
}

// TargetsRemoved returns how many targets have been taken out.
func (s *Session) TargetsRemoved() int { return s.targets - s.TargetsLeft }

// ObstaclesRemoved returns how many obstacles have been broken.
func (s *Session) ObstaclesRemoved() int { return s.obstacles - s.ObstaclesLeft }

// ScoreBreakdown itemizes the score for the summary screen.
type ScoreBreakdown struct {
	ProjectilesLeft  int
	TargetsRemoved   int
	ObstaclesRemoved int

	ProjectilePoints int
	TargetPoints     int
	ObstaclePoints   int
}

// Total returns the sum of all line items.
func (b ScoreBreakdown) Total() int {
	return b.ProjectilePoints + b.TargetPoints + b.ObstaclePoints
}

// Score computes the breakdown from the current counters.
func (s *Session) Score(cfg config.ScoringConfig) ScoreBreakdown {
	b := ScoreBreakdown{
		ProjectilesLeft:  s.ProjectilesLeft,
		TargetsRemoved:   s.TargetsRemoved(),
		ObstaclesRemoved: s.ObstaclesRemoved(),
	}
	b.ProjectilePoints = b.ProjectilesLeft * cfg.ProjectileLeft
	b.TargetPoints = b.TargetsRemoved * cfg.Target
	b.ObstaclePoints = b.ObstaclesRemoved * cfg.Obstacle
	return b
}
