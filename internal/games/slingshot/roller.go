package slingshot

import "github.com/vovakirdan/tui-slingshot/internal/core"

// Roller is the heavy actor the chicken calls down. It flattens everything it touches.
type Roller struct {
	Actor
}

// NewRoller creates a hidden roller of the given size.
func NewRoller(size core.Vec2) Roller {
	r := Roller{Actor: Actor{Size: size}}
	r.Reset()
	return r
}

// Summon shows the roller at pos falling at drift.
func (r *Roller) Summon(pos core.Vec2, drift float64) {
	r.Visible = true
	r.Pos = pos
	r.Vel = core.V(0, drift)
}

// Move drops the roller vertically, then accelerates it.
// The roller carries no speed multiplier, so its predicted displacement is zero.
func (r *Roller) Move(dt, gravity float64) {
	r.Pos.Y += r.Vel.Y * dt
	r.ApplyGravity(dt, gravity)
}

// Reset hides the roller off screen.
func (r *Roller) Reset() {
	r.Pos = core.V(-200, -200)
	r.Vel = core.Vec2{}
	r.Visible = false
}
