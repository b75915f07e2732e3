package slingshot

import "github.com/vovakirdan/tui-slingshot/internal/core"

// Update advances the simulation by dt seconds.
// Nothing moves on the title screen or after the round has ended.
func (g *Game) Update(dt float64) {
	if g.session.InMenu || g.session.GameOver {
		return
	}
	g.tick++

	g.targetPhase(dt)
	g.projectilePhase(dt)

	// Move everything with the velocities the collision phases left behind
	gravity := g.cfg.Physics.Gravity
	for i := range g.scene.Targets {
		g.scene.Targets[i].Move(dt)
	}
	for i := range g.scene.Projectiles {
		g.scene.Projectiles[i].Move(dt, gravity, g.cfg.World.Width)
	}

	g.powerEffects()
	g.rollerPhase(dt)
	g.advanceTurn()

	if !g.session.GameOver && g.session.TargetsLeft == 0 && !g.active().Fired() {
		g.session.End()
	}
}

// sideApproach reports whether a was horizontally clear of b before the move.
func sideApproach(a, b core.Box) bool {
	return a.Max.X < b.Min.X || a.Min.X > b.Max.X
}

// verticalApproach is the loose top/bottom test used after sideApproach fails.
func verticalApproach(a, b core.Box) bool {
	return a.Max.Y > b.Min.Y || a.Min.Y < b.Max.Y
}

// atRest reports whether v lies strictly inside the deadband.
func (g *Game) atRest(v float64) bool {
	r := g.cfg.Physics.RestThreshold
	return v > -r && v < r
}

// targetPhase applies gravity to targets and bounces them off obstacles and the ground.
// Velocity and predicted displacement are sampled before gravity is applied.
func (g *Game) targetPhase(dt float64) {
	phys := g.cfg.Physics
	ground := g.scene.Ground.Bounds()

	for i := range g.scene.Targets {
		t := &g.scene.Targets[i]
		if !t.Visible {
			continue
		}
		v := t.Vel
		d := t.Displacement(dt)
		box := t.Bounds()

		t.ApplyGravity(dt, phys.Gravity)

		for j := range g.scene.Obstacles {
			o := &g.scene.Obstacles[j]
			if !o.Visible || !t.BoundsOverlap(o.Bounds(), d) {
				continue
			}
			ob := o.Bounds()
			if sideApproach(box, ob) {
				t.Vel = core.V(-v.X/phys.ImpactDamping, v.Y)
			} else if verticalApproach(box, ob) {
				t.Vel = core.V(v.X/phys.ImpactDamping, -v.Y/phys.ImpactDamping)
			}
		}

		if t.BoundsOverlap(ground, d) {
			t.Vel = core.V(v.X/phys.ImpactDamping, -v.Y/phys.ImpactDamping)
			if g.atRest(v.Y) {
				t.Vel = core.Vec2{}
			}
		}
	}
}

// projectilePhase resolves projectile contacts with the ground, targets and obstacles.
// Every response is computed from velocities sampled at the start; the last one wins.
func (g *Game) projectilePhase(dt float64) {
	for i := range g.scene.Projectiles {
		p := &g.scene.Projectiles[i]
		if !p.Visible {
			continue
		}
		v := p.Vel
		d := p.Displacement(dt)
		box := p.Bounds()

		g.projectileGround(p, v, d, dt)
		g.projectileTargets(p, v, d)
		g.projectileObstacles(p, v, d, box)
	}
}

func (g *Game) projectileGround(p *Projectile, v, d core.Vec2, dt float64) {
	phys := g.cfg.Physics
	if !p.BoundsOverlap(g.scene.Ground.Bounds(), d) {
		p.gravitySuppressed = false
		return
	}

	switch {
	case !g.atRest(v.X):
		// Skid: bleed horizontal speed and damp the bounce
		bleed := phys.GroundFriction * dt
		if v.X > 0 {
			p.Vel = core.V(v.X-bleed, -v.Y/phys.GroundBounce)
		} else {
			p.Vel = core.V(v.X+bleed, -v.Y/phys.GroundBounce)
		}
	case p.Vel.Y > phys.RestThreshold:
		p.Vel = core.V(0, -v.Y/phys.GroundBounce)
	default:
		p.Vel = core.Vec2{}
	}
	p.gravitySuppressed = true
}

func (g *Game) projectileTargets(p *Projectile, v, d core.Vec2) {
	for j := range g.scene.Targets {
		t := &g.scene.Targets[j]
		if !t.Visible || !p.BoundsOverlap(t.Bounds(), d) {
			continue
		}
		t.Remove()
		g.session.TargetsLeft--
		p.Vel = core.V(v.X/g.cfg.Physics.ImpactDamping, v.Y)
		g.emit(core.EventTargetHit, j)
	}
}

func (g *Game) projectileObstacles(p *Projectile, v, d core.Vec2, box core.Box) {
	damp := g.cfg.Physics.ImpactDamping

	for j := range g.scene.Obstacles {
		o := &g.scene.Obstacles[j]
		canCollide := p.CollidePossible()
		ignoring := p.IgnoresObstacle(j)

		if !o.Visible || !p.BoundsOverlap(o.Bounds(), d) {
			continue
		}

		// A powered projectile punches through the first obstacle it meets
		if p.PowerActive() && p.IgnoresObstacle(NoObstacle) {
			p.ignore(j)
			canCollide = true
		}

		if o.Destructible() && canCollide && (p.Kind != Penguin || !ignoring) {
			o.Remove()
			g.session.ObstaclesLeft--
			g.emit(core.EventObstacleBroken, j)
		}

		// Horizontal check first; the vertical test is loose and only runs as a fallback
		blocked := !canCollide && !ignoring
		ob := o.Bounds()
		deflected := true
		if sideApproach(box, ob) && (blocked || !o.Destructible()) {
			p.Vel = core.V(-v.X/damp, v.Y)
		} else if verticalApproach(box, ob) && blocked {
			p.Vel = core.V(v.X/damp, -v.Y/damp)
		} else {
			deflected = false
		}
		// A deflection that leaves only deadband speed stops the projectile
		if deflected && g.atRest(p.Vel.X) && g.atRest(p.Vel.Y) {
			p.Vel = core.Vec2{}
		}

		if p.Kind != Penguin || !ignoring {
			p.countCollision()
		}
		if !ignoring {
			p.gravitySuppressed = true
		}
	}
}

// powerEffects applies the lasting side effects of triggered powers.
func (g *Game) powerEffects() {
	pc := g.cfg.Power
	rc := g.cfg.Roller

	for i := range g.scene.Projectiles {
		p := &g.scene.Projectiles[i]
		if !p.Visible || !p.PowerActive() {
			continue
		}
		switch p.Kind {
		case Penguin:
			p.Size = core.V(pc.PenguinSize, pc.PenguinSize)
		case Chicken:
			if p.Pos.Y >= rc.SummonHeight {
				continue
			}
			if !g.scene.Roller.Visible {
				g.emit(core.EventRollerSummoned, i)
			}
			g.scene.Roller.Summon(p.Pos, rc.DriftSpeed)
			p.Vel = core.V(0, rc.DriftSpeed)
		}
	}
}

// rollerPhase lets a visible roller flatten what it touches and land on the ground.
func (g *Game) rollerPhase(dt float64) {
	r := &g.scene.Roller
	if !r.Visible {
		return
	}
	d := r.Displacement(dt)

	for i := range g.scene.Targets {
		t := &g.scene.Targets[i]
		if t.Visible && r.BoundsOverlap(t.Bounds(), d) {
			t.Remove()
			g.session.TargetsLeft--
			g.emit(core.EventTargetHit, i)
		}
	}
	for i := range g.scene.Obstacles {
		o := &g.scene.Obstacles[i]
		if o.Visible && r.BoundsOverlap(o.Bounds(), d) {
			o.Remove()
			g.session.ObstaclesLeft--
			g.emit(core.EventObstacleBroken, i)
		}
	}

	if r.BoundsOverlap(g.scene.Ground.Bounds(), d) {
		r.Vel = core.Vec2{}
	}
	r.Move(dt, g.cfg.Physics.Gravity)
}

// advanceTurn drags a held projectile and retires the active one once it stops.
func (g *Game) advanceTurn() {
	s := &g.session
	p := g.active()
	g.launch.Follow(p, g.scene.Anchor)

	if !p.Fired() || !p.Vel.IsZero() {
		return
	}

	p.Hide()
	g.emit(core.EventTurnOver, s.Active)
	s.Active++
	s.ProjectilesLeft--

	if s.Active == len(g.scene.Projectiles) {
		s.Active = 0
		s.End()
		return
	}

	g.scene.AdvanceQueue()
	g.scene.PlaceOnAnchor(s.Active)
}
