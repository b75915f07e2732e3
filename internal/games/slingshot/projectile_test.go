package slingshot

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

func newTestProjectile(kind ProjectileKind) Projectile {
	return NewProjectile(kind, core.V(307.5, 482.5), core.V(35, 35), config.DefaultSlingshotConfig().Power)
}

func TestProjectileDefaults(t *testing.T) {
	for kind := Parrot; kind <= Chicken; kind++ {
		p := newTestProjectile(kind)
		expected := 1
		if kind == Penguin {
			expected = 0
		}
		if p.MaxCollisions() != expected {
			t.Errorf("%s: MaxCollisions() = %d, expected %d", kind, p.MaxCollisions(), expected)
		}
		if p.IgnoredObstacle() != NoObstacle {
			t.Errorf("%s: IgnoredObstacle() = %d, expected NoObstacle", kind, p.IgnoredObstacle())
		}
		if p.State() != Resting {
			t.Errorf("%s: State() = %v, expected resting", kind, p.State())
		}
	}
}

func TestActivatePower(t *testing.T) {
	tests := []struct {
		kind    ProjectileKind
		vel     core.Vec2
		size    core.Vec2
		maxColl int
	}{
		{Parrot, core.V(300, -200), core.V(35, 35), 1},
		{Penguin, core.V(300, -200), core.V(35, 35), 0},
		{Duck, core.V(300, -200), core.V(70, 70), 2},
		{Chick, core.V(0, -200), core.V(35, 35), 1},
		{Owl, core.V(600, -200), core.V(35, 35), 2},
		{Chicken, core.V(0, -1200), core.V(35, 35), 1},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p := newTestProjectile(tc.kind)
			p.Fire(core.V(300, -200))

			if !p.ActivatePower() {
				t.Fatal("first ActivatePower() should report activation")
			}
			if p.Vel != tc.vel {
				t.Errorf("Vel = %v, expected %v", p.Vel, tc.vel)
			}
			if p.Size != tc.size {
				t.Errorf("Size = %v, expected %v", p.Size, tc.size)
			}
			if p.MaxCollisions() != tc.maxColl {
				t.Errorf("MaxCollisions() = %d, expected %d", p.MaxCollisions(), tc.maxColl)
			}
		})
	}
}

func TestActivatePowerIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := ProjectileKind(rapid.IntRange(int(Parrot), int(Chicken)).Draw(t, "kind"))
		vel := core.V(rapid.Float64Range(-1000, 1000).Draw(t, "vx"), rapid.Float64Range(-1000, 1000).Draw(t, "vy"))

		once := newTestProjectile(kind)
		once.Fire(vel)
		once.ActivatePower()

		twice := newTestProjectile(kind)
		twice.Fire(vel)
		twice.ActivatePower()
		if twice.ActivatePower() {
			t.Fatal("second ActivatePower() should be a no-op")
		}

		if once != twice {
			t.Fatalf("state after two activations differs:\n once: %+v\ntwice: %+v", once, twice)
		}
	})
}

func TestProjectileResetRestoresDefaults(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := ProjectileKind(rapid.IntRange(int(Parrot), int(Chicken)).Draw(t, "kind"))
		p := newTestProjectile(kind)
		fresh := p

		// Scramble the projectile
		p.Fire(core.V(rapid.Float64Range(-900, 900).Draw(t, "vx"), rapid.Float64Range(-900, 900).Draw(t, "vy")))
		if rapid.Bool().Draw(t, "power") {
			p.ActivatePower()
		}
		for range rapid.IntRange(0, 5).Draw(t, "hits") {
			p.countCollision()
		}
		p.ignore(rapid.IntRange(0, 9).Draw(t, "ignored"))
		p.gravitySuppressed = rapid.Bool().Draw(t, "grounded")
		p.Speed = rapid.Float64Range(0, 3).Draw(t, "speed")
		if rapid.Bool().Draw(t, "hidden") {
			p.Hide()
		}
		for range rapid.IntRange(0, 30).Draw(t, "frames") {
			p.Move(1.0/60.0, 500, 1280)
		}

		p.Reset(fresh.Pos)
		if p != fresh {
			t.Fatalf("Reset() did not restore defaults:\n got: %+v\nwant: %+v", p, fresh)
		}
	})
}

func TestCollisionCountNeverExceedsBudget(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := ProjectileKind(rapid.IntRange(int(Parrot), int(Chicken)).Draw(t, "kind"))
		p := newTestProjectile(kind)
		p.Fire(core.V(400, -100))

		steps := rapid.SliceOfN(rapid.IntRange(0, 1), 0, 20).Draw(t, "steps")
		for _, s := range steps {
			if s == 0 {
				p.countCollision()
			} else {
				p.ActivatePower()
			}
			if p.Collisions() > p.MaxCollisions() {
				t.Fatalf("Collisions() = %d exceeds MaxCollisions() = %d", p.Collisions(), p.MaxCollisions())
			}
		}
	})
}

func TestProjectileMove(t *testing.T) {
	p := newTestProjectile(Parrot)

	// Unfired projectiles never move
	p.Move(1, 500, 1280)
	if p.Pos != core.V(307.5, 482.5) {
		t.Errorf("unfired projectile moved to %v", p.Pos)
	}

	p.Fire(core.V(600, 0))
	p.Move(0.5, 500, 1280)
	if p.Vel != core.V(600, 250) {
		t.Errorf("Vel = %v, expected gravity applied (600, 250)", p.Vel)
	}
	if p.Pos != core.V(607.5, 607.5) {
		t.Errorf("Pos = %v, expected (607.5, 607.5)", p.Pos)
	}

	p.gravitySuppressed = true
	p.Move(0.5, 500, 1280)
	if p.Vel != core.V(600, 250) {
		t.Errorf("suppressed gravity changed Vel to %v", p.Vel)
	}

	// Starting the frame past the right edge stops it
	p.Pos.X = 1300
	p.Move(0.5, 500, 1280)
	if !p.Vel.IsZero() {
		t.Errorf("projectile outside the playfield should stop, Vel = %v", p.Vel)
	}
}
