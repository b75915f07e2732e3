package slingshot

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

func pointerFrame(events ...core.PointerEvent) core.InputFrame {
	in := core.NewInputFrame()
	in.Pointer = append(in.Pointer, events...)
	return in
}

func down(x, y float64) core.PointerEvent { return core.PointerEvent{Kind: core.PointerDown, Pos: core.V(x, y)} }
func up(x, y float64) core.PointerEvent   { return core.PointerEvent{Kind: core.PointerUp, Pos: core.V(x, y)} }
func move(x, y float64) core.PointerEvent { return core.PointerEvent{Kind: core.PointerMove, Pos: core.V(x, y)} }

func TestLaunchCancelSnapsToAnchor(t *testing.T) {
	g := newStartedGame(t, config.DefaultSlingshotConfig())
	anchor := g.Scene().Anchor

	g.Step(pointerFrame(down(anchor.X, anchor.Y)))
	if !g.Launcher().Held() || g.Active().State() != Held {
		t.Fatal("pointer-down on the projectile should start a hold")
	}

	// 1.1 x 35 = 38.5, so 30 units away cancels
	g.Step(pointerFrame(move(anchor.X-30, anchor.Y)))
	g.Step(pointerFrame(up(anchor.X-30, anchor.Y)))

	p := g.Active()
	expected := core.V(anchor.X-p.Size.X/2, anchor.Y-p.Size.Y/2)
	if p.Pos != expected {
		t.Errorf("Pos = %v, expected exactly %v", p.Pos, expected)
	}
	if p.Fired() || g.Launcher().Held() {
		t.Error("canceled launch should leave the projectile unfired and released")
	}
}

func TestLaunchFiresTowardAnchor(t *testing.T) {
	g := newStartedGame(t, config.DefaultSlingshotConfig())
	anchor := g.Scene().Anchor

	res := g.Step(pointerFrame(down(anchor.X, anchor.Y), move(anchor.X-120, anchor.Y+90)))
	if len(res.Events) != 0 {
		t.Errorf("grabbing should not emit events, got %v", res.Events)
	}

	// Held projectile is clamped to MaxDrag from the anchor
	p := g.Active()
	if d := p.Center().Dist(anchor); math.Abs(d-60) > 1e-9 {
		t.Errorf("held distance = %v, expected 60", d)
	}

	res = g.Step(pointerFrame(up(anchor.X-120, anchor.Y+90)))
	if !hasEvent(res.Events, core.EventLaunch) {
		t.Errorf("expected launch event, got %v", res.Events)
	}
	if !p.Fired() {
		t.Fatal("projectile should be fired")
	}

	// Pull of (-48, 36) launches at 12x the opposite vector, plus one frame of gravity
	if math.Abs(p.Vel.X-576) > 1e-6 {
		t.Errorf("Vel.X = %v, expected 576", p.Vel.X)
	}
	if p.Vel.Y >= 0 {
		t.Errorf("Vel.Y = %v, expected upward launch", p.Vel.Y)
	}
}

func TestLaunchIgnoresPressOutsideProjectile(t *testing.T) {
	g := newStartedGame(t, config.DefaultSlingshotConfig())

	g.Step(pointerFrame(down(10, 10), up(900, 100)))
	if g.Launcher().Held() || g.Active().Fired() {
		t.Error("pressing away from the projectile should do nothing")
	}
}

func TestPointerDownInFlightActivatesPower(t *testing.T) {
	cfg := flatConfig([]string{"owl"}, []config.PointConfig{{X: 1000, Y: 100}}, nil)
	g := newStartedGame(t, cfg)
	g.Active().Fire(core.V(300, 0))

	res := g.Step(pointerFrame(down(0, 0)))
	if !hasEvent(res.Events, core.EventPower) {
		t.Errorf("expected power event, got %v", res.Events)
	}
	if g.Active().Vel.X != 600 {
		t.Errorf("owl Vel.X = %v, expected 600", g.Active().Vel.X)
	}

	// Second click does nothing more
	res = g.Step(pointerFrame(down(0, 0)))
	if hasEvent(res.Events, core.EventPower) || g.Active().Vel.X != 600 {
		t.Error("power should only trigger once")
	}
}

func TestLauncherClamp(t *testing.T) {
	l := NewLauncher(config.DefaultSlingshotConfig().Launch)
	anchor := core.V(325, 500)

	tests := []struct {
		name     string
		pointer  core.Vec2
		expected core.Vec2
	}{
		{"inside radius", core.V(300, 500), core.V(300, 500)},
		{"on radius", core.V(265, 500), core.V(265, 500)},
		{"beyond radius", core.V(325, 700), core.V(325, 560)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l.pointer = tc.pointer
			if got := l.clamp(anchor); got.Dist(tc.expected) > 1e-9 {
				t.Errorf("clamp() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
