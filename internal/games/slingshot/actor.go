package slingshot

import "github.com/vovakirdan/tui-slingshot/internal/core"

// Actor is the shared state of every simulated object.
// Pos is the top-left corner; velocity is scaled by Speed when integrating.
type Actor struct {
	Pos     core.Vec2
	Size    core.Vec2
	Vel     core.Vec2
	Speed   float64
	Visible bool
}

// Bounds returns the actor's axis-aligned box.
func (a *Actor) Bounds() core.Box {
	return core.BoxAt(a.Pos, a.Size)
}

// Center returns the midpoint of the actor's box.
func (a *Actor) Center() core.Vec2 {
	return a.Bounds().Center()
}

// ApplyGravity adds g*dt to the vertical velocity.
func (a *Actor) ApplyGravity(dt, g float64) {
	a.Vel.Y += g * dt
}

// Displacement returns the movement integrating would apply this frame.
func (a *Actor) Displacement(dt float64) core.Vec2 {
	return a.Vel.Scale(a.Speed * dt)
}

// Integrate advances the position by Displacement(dt).
func (a *Actor) Integrate(dt float64) {
	a.Pos = a.Pos.Add(a.Displacement(dt))
}

// BoundsOverlap reports whether the actor's box, shifted by d, overlaps other.
// Only the querying actor is displaced.
func (a *Actor) BoundsOverlap(other core.Box, d core.Vec2) bool {
	return a.Bounds().Offset(d.X, d.Y).Overlaps(other)
}

// ContainsPoint reports whether p lies strictly inside the actor.
func (a *Actor) ContainsPoint(p core.Vec2) bool {
	return a.Bounds().ContainsStrict(p)
}

// CenterOn moves the actor so its center is p.
func (a *Actor) CenterOn(p core.Vec2) {
	a.Pos = p.Sub(a.Size.Scale(0.5))
}

// Hide removes the actor from play.
func (a *Actor) Hide() {
	a.Visible = false
	a.Vel = core.Vec2{}
}
