package slingshot

import (
	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// NoObstacle marks that a projectile is not ignoring any obstacle.
const NoObstacle = -1

// ProjectileState is the lifecycle stage of a projectile.
type ProjectileState int

const (
	Resting   ProjectileState = iota // Waiting in the queue or on the anchor
	Held                             // Being dragged by the pointer
	InFlight                         // Fired and still in play
	Exhausted                        // Retired after coming to rest
)

// String returns a human-readable name for the state.
func (s ProjectileState) String() string {
	switch s {
	case Resting:
		return "resting"
	case Held:
		return "held"
	case InFlight:
		return "in-flight"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Projectile is a launchable actor with a one-shot power.
type Projectile struct {
	Actor
	Kind ProjectileKind

	fired             bool
	held              bool
	activatedPower    bool
	gravitySuppressed bool
	collisions        int
	maxCollisions     int
	ignored           int

	defaultSize core.Vec2
	power       config.PowerConfig
}

// NewProjectile creates a resting projectile of the given kind at pos.
func NewProjectile(kind ProjectileKind, pos, size core.Vec2, power config.PowerConfig) Projectile {
	p := Projectile{
		Kind:        kind,
		defaultSize: size,
		power:       power,
	}
	p.Reset(pos)
	return p
}

// Reset returns the projectile to its freshly loaded state at pos.
func (p *Projectile) Reset(pos core.Vec2) {
	p.Pos = pos
	p.Size = p.defaultSize
	p.Vel = core.Vec2{}
	p.Speed = 1
	p.Visible = true

	p.fired = false
	p.held = false
	p.activatedPower = false
	p.gravitySuppressed = false
	p.collisions = 0
	p.maxCollisions = p.Kind.DefaultMaxCollisions()
	p.ignored = NoObstacle
}

// State derives the lifecycle stage from the projectile's flags.
func (p *Projectile) State() ProjectileState {
	switch {
	case p.fired && !p.Visible:
		return Exhausted
	case p.fired:
		return InFlight
	case p.held:
		return Held
	default:
		return Resting
	}
}

// Fired reports whether the projectile has been launched.
func (p *Projectile) Fired() bool { return p.fired }

// PowerActive reports whether the projectile's power has been triggered.
func (p *Projectile) PowerActive() bool { return p.activatedPower }

// GravitySuppressed reports whether gravity is currently skipped.
func (p *Projectile) GravitySuppressed() bool { return p.gravitySuppressed }

// Collisions returns how many obstacle contacts have been counted.
func (p *Projectile) Collisions() int { return p.collisions }

// MaxCollisions returns the obstacle-breaking budget.
func (p *Projectile) MaxCollisions() int { return p.maxCollisions }

// IgnoredObstacle returns the remembered obstacle index or NoObstacle.
func (p *Projectile) IgnoredObstacle() int { return p.ignored }

// CollidePossible reports whether the projectile may still break obstacles.
func (p *Projectile) CollidePossible() bool {
	return p.collisions < p.maxCollisions
}

// IgnoresObstacle reports whether index is the remembered ignored obstacle.
func (p *Projectile) IgnoresObstacle(index int) bool {
	return p.ignored == index
}

// Fire launches the projectile with the given velocity.
func (p *Projectile) Fire(vel core.Vec2) {
	p.Vel = vel
	p.fired = true
	p.held = false
}

// Move integrates a fired projectile. Leaving the playfield horizontally stops it.
func (p *Projectile) Move(dt, gravity, playWidth float64) {
	if !p.fired {
		return
	}
	if !p.gravitySuppressed {
		p.ApplyGravity(dt, gravity)
	}

	x := p.Pos.X
	p.Integrate(dt)
	if x < 0 || x > playWidth {
		p.Vel = core.Vec2{}
	}
}

// ActivatePower triggers the kind's power. Only the first call has an effect.
func (p *Projectile) ActivatePower() bool {
	if p.activatedPower {
		return false
	}
	p.activatedPower = true

	switch p.Kind {
	case Penguin:
		p.maxCollisions = 0
	case Duck:
		p.Size = p.Size.Scale(p.power.DuckGrowth)
		p.maxCollisions = p.power.PoweredCollisions
	case Chick:
		p.Vel.X = 0
	case Owl:
		p.Vel.X *= p.power.OwlBoost
		p.maxCollisions = p.power.PoweredCollisions
	case Chicken:
		p.Vel = core.V(0, -p.power.ChickenLift)
	}
	return true
}

// countCollision records an obstacle contact. The count saturates at the budget.
func (p *Projectile) countCollision() {
	if p.collisions < p.maxCollisions {
		p.collisions++
	}
}

func (p *Projectile) ignore(index int) {
	p.ignored = index
}
