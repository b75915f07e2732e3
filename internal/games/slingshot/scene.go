package slingshot

import (
	"fmt"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// Scene holds every actor by value. Indices are stable for the life of the scene.
type Scene struct {
	Projectiles []Projectile
	Targets     []Target
	Obstacles   []Obstacle
	Ground      Actor
	Slingshot   Actor
	Roller      Roller
	Anchor      core.Vec2

	layout config.LayoutConfig
}

// NewScene builds a scene from the layout. Unknown kinds are reported as errors.
func NewScene(cfg config.SlingshotConfig) (*Scene, error) {
	l := cfg.Layout
	s := &Scene{
		Anchor:    core.V(l.Anchor.X, l.Anchor.Y),
		Ground:    staticActor(l.Ground),
		Slingshot: staticActor(l.Slingshot),
		Roller:    NewRoller(core.V(cfg.Roller.Width, cfg.Roller.Height)),
		layout:    l,
	}

	size := core.V(l.Queue.Size, l.Queue.Size)
	s.Projectiles = make([]Projectile, len(l.Projectiles))
	for i, name := range l.Projectiles {
		kind, err := ParseProjectileKind(name)
		if err != nil {
			return nil, fmt.Errorf("projectile %d: %w", i, err)
		}
		s.Projectiles[i] = NewProjectile(kind, core.Vec2{}, size, cfg.Power)
	}

	tsize := core.V(l.Targets.Size, l.Targets.Size)
	s.Targets = make([]Target, len(l.Targets.Positions))
	for i, p := range l.Targets.Positions {
		s.Targets[i] = NewTarget(core.V(p.X, p.Y), tsize)
	}

	s.Obstacles = make([]Obstacle, len(l.Obstacles))
	for i, o := range l.Obstacles {
		kind, err := ParseObstacleKind(o.Kind)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i, err)
		}
		s.Obstacles[i] = NewObstacle(kind, core.V(o.X, o.Y), core.V(o.W, o.H))
	}

	s.Reset()
	return s, nil
}

func staticActor(r config.RectConfig) Actor {
	return Actor{Pos: core.V(r.X, r.Y), Size: core.V(r.W, r.H), Visible: true}
}

// Reset restores every actor to the layout's initial placement.
func (s *Scene) Reset() {
	for i := range s.Projectiles {
		s.Projectiles[i].Reset(s.queuePos(i))
	}
	if len(s.Projectiles) > 0 {
		s.PlaceOnAnchor(0)
	}

	for i, p := range s.layout.Targets.Positions {
		s.Targets[i].Reset(core.V(p.X, p.Y))
	}

	for i, o := range s.layout.Obstacles {
		ob := &s.Obstacles[i]
		ob.Pos = core.V(o.X, o.Y)
		ob.Size = core.V(o.W, o.H)
		ob.Vel = core.Vec2{}
		ob.Visible = true
	}

	s.Roller.Reset()
}

// queuePos is where projectile i waits before its turn.
func (s *Scene) queuePos(i int) core.Vec2 {
	q := s.layout.Queue
	return core.V(q.X-float64(i)*q.Spacing, q.Y)
}

// PlaceOnAnchor centers projectile i on the launch anchor.
func (s *Scene) PlaceOnAnchor(i int) {
	s.Projectiles[i].CenterOn(s.Anchor)
}

// AdvanceQueue slides every projectile one slot toward the slingshot.
func (s *Scene) AdvanceQueue() {
	for i := range s.Projectiles {
		s.Projectiles[i].Pos.X += s.layout.Queue.Spacing
	}
}
