package slingshot

import "github.com/vovakirdan/tui-slingshot/internal/core"

// Target is a removable actor; clearing all of them wins the round.
type Target struct {
	Actor
	defaultSize core.Vec2
}

// NewTarget creates a visible target at pos.
func NewTarget(pos, size core.Vec2) Target {
	t := Target{defaultSize: size}
	t.Reset(pos)
	return t
}

// Reset places the target at pos at rest with its default size.
func (t *Target) Reset(pos core.Vec2) {
	t.Pos = pos
	t.Size = t.defaultSize
	t.Vel = core.Vec2{}
	t.Speed = 1
	t.Visible = true
}

// Move integrates the target. Gravity is applied by the collision phase.
func (t *Target) Move(dt float64) {
	t.Integrate(dt)
}

// Remove takes the target out of play.
func (t *Target) Remove() {
	t.Hide()
}
