package slingshot

import (
	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// LaunchResult tells the caller what a pointer event did.
type LaunchResult int

const (
	LaunchNone     LaunchResult = iota
	LaunchGrabbed               // Hold started
	LaunchCanceled              // Released too close to the anchor
	LaunchFired                 // Projectile launched
	LaunchPower                 // In-flight projectile's power triggered
)

// Launcher turns pointer events into drags and launches of the active projectile.
type Launcher struct {
	held    bool
	pointer core.Vec2
	cfg     config.LaunchConfig
}

// NewLauncher creates an idle launcher.
func NewLauncher(cfg config.LaunchConfig) Launcher {
	return Launcher{cfg: cfg}
}

// Held reports whether a drag is in progress.
func (l *Launcher) Held() bool { return l.held }

// Pointer returns the last pointer position, clamped while held.
func (l *Launcher) Pointer() core.Vec2 { return l.pointer }

// Cancel drops any hold without firing.
func (l *Launcher) Cancel(p *Projectile) {
	l.held = false
	if p != nil {
		p.held = false
	}
}

// Handle applies one pointer event to the active projectile.
func (l *Launcher) Handle(ev core.PointerEvent, p *Projectile, anchor core.Vec2) LaunchResult {
	l.pointer = ev.Pos

	switch ev.Kind {
	case core.PointerDown:
		if p.Fired() {
			if p.ActivatePower() {
				return LaunchPower
			}
			return LaunchNone
		}
		if p.ContainsPoint(ev.Pos) {
			l.held = true
			p.held = true
			return LaunchGrabbed
		}

	case core.PointerUp:
		if !l.held {
			return LaunchNone
		}
		l.held = false
		p.held = false

		if l.pointer.Dist(anchor) <= p.Size.X*l.cfg.CancelFactor {
			p.CenterOn(anchor)
			return LaunchCanceled
		}
		p.CenterOn(l.clamp(anchor))
		p.Fire(anchor.Sub(p.Center()).Scale(l.cfg.Multiplier))
		return LaunchFired
	}
	return LaunchNone
}

// Follow keeps a held projectile centered on the pointer, at most MaxDrag from the anchor.
func (l *Launcher) Follow(p *Projectile, anchor core.Vec2) {
	if !l.held {
		return
	}
	l.pointer = l.clamp(anchor)
	p.CenterOn(l.pointer)
}

func (l *Launcher) clamp(anchor core.Vec2) core.Vec2 {
	d := l.pointer.Sub(anchor)
	if d.Len() >= l.cfg.MaxDrag {
		return anchor.Add(d.Normalize().Scale(l.cfg.MaxDrag))
	}
	return l.pointer
}
