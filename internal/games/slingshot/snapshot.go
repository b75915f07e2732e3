package slingshot

import "math"

// Snapshot contains the complete simulation state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	ProjectilesLeft int
	TargetsLeft     int
	ObstaclesLeft   int
	Active          int
	GameOver        bool
	Outcome         int

	// Each projectile is 8 values: X, Y, W, H, VX, VY, Flags, Collisions
	ProjectileData []float64

	// Each target is 5 values: X, Y, VX, VY, Visible
	TargetData []float64

	// Each obstacle is 1 value: Visible
	ObstacleData []float64

	// Roller: X, Y, VY, Visible
	RollerData [4]float64
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	sc := g.scene
	snap := Snapshot{
		Tick:            uint64(g.tick), //#nosec G115 -- tick count is always positive
		ProjectilesLeft: g.session.ProjectilesLeft,
		TargetsLeft:     g.session.TargetsLeft,
		ObstaclesLeft:   g.session.ObstaclesLeft,
		Active:          g.session.Active,
		GameOver:        g.session.GameOver,
		Outcome:         int(g.session.Outcome),
	}

	snap.ProjectileData = make([]float64, 0, len(sc.Projectiles)*8)
	for i := range sc.Projectiles {
		p := &sc.Projectiles[i]
		flags := flag(p.Visible) + 2*flag(p.fired) + 4*flag(p.activatedPower) + 8*flag(p.gravitySuppressed)
		snap.ProjectileData = append(snap.ProjectileData,
			p.Pos.X, p.Pos.Y, p.Size.X, p.Size.Y, p.Vel.X, p.Vel.Y, flags, float64(p.collisions))
	}

	snap.TargetData = make([]float64, 0, len(sc.Targets)*5)
	for i := range sc.Targets {
		t := &sc.Targets[i]
		snap.TargetData = append(snap.TargetData, t.Pos.X, t.Pos.Y, t.Vel.X, t.Vel.Y, flag(t.Visible))
	}

	snap.ObstacleData = make([]float64, 0, len(sc.Obstacles))
	for i := range sc.Obstacles {
		snap.ObstacleData = append(snap.ObstacleData, flag(sc.Obstacles[i].Visible))
	}

	r := &sc.Roller
	snap.RollerData = [4]float64{r.Pos.X, r.Pos.Y, r.Vel.Y, flag(r.Visible)}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.ProjectilesLeft) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TargetsLeft)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ObstaclesLeft)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Active)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)         //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}

	for _, data := range [][]float64{snap.ProjectileData, snap.TargetData, snap.ObstacleData, snap.RollerData[:]} {
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}
	return h
}
