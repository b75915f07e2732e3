package config

import (
	_ "embed"
)

//go:embed defaults/slingshot.yaml
var defaultSlingshotYAML []byte

// DefaultSlingshotYAML returns the embedded default configuration file.
func DefaultSlingshotYAML() []byte {
	out := make([]byte, len(defaultSlingshotYAML))
	copy(out, defaultSlingshotYAML)
	return out
}

// DefaultSlingshotConfig returns the default slingshot configuration.
func DefaultSlingshotConfig() SlingshotConfig {
	return SlingshotConfig{
		World: WorldConfig{Width: 1280, Height: 720},
		Physics: PhysicsConfig{
			Gravity:        500,
			RestThreshold:  10,
			GroundFriction: 500,
			GroundBounce:   5,
			ImpactDamping:  3,
		},
		Launch: LaunchConfig{
			MaxDrag:      60,
			CancelFactor: 1.1,
			Multiplier:   12,
		},
		Power: PowerConfig{
			DuckGrowth:        2,
			OwlBoost:          2,
			ChickenLift:       1200,
			PoweredCollisions: 2,
			PenguinSize:       50,
		},
		Roller: RollerConfig{
			Width:        150,
			Height:       100,
			SummonHeight: -100,
			DriftSpeed:   10,
		},
		Scoring: ScoringConfig{
			ProjectileLeft: 500,
			Target:         1000,
			Obstacle:       100,
		},
		Layout: LayoutConfig{
			Ground:      RectConfig{X: 0, Y: 600, W: 1280, H: 120},
			Slingshot:   RectConfig{X: 300, Y: 490, W: 60, H: 120},
			Anchor:      PointConfig{X: 325, Y: 500},
			Queue:       QueueConfig{X: 320, Y: 575, Spacing: 45, Size: 35},
			Projectiles: append([]string(nil), ProjectileKinds...),
			Targets: TargetLayout{
				Size: 35,
				Positions: []PointConfig{
					{X: 860, Y: 480},
					{X: 940, Y: 480},
					{X: 900, Y: 320},
					{X: 1100, Y: 360},
					{X: 900, Y: 200},
				},
			},
			Obstacles: []ObstacleConfig{
				{Kind: ObstacleMetal, X: 800, Y: 560, W: 40, H: 40},
				{Kind: ObstacleMetal, X: 900, Y: 560, W: 40, H: 40},
				{Kind: ObstacleMetal, X: 1000, Y: 560, W: 40, H: 40},
				{Kind: ObstacleWood, X: 800, Y: 520, W: 120, H: 40},
				{Kind: ObstacleWood, X: 920, Y: 520, W: 120, H: 40},
				{Kind: ObstacleWood, X: 800, Y: 360, W: 240, H: 40},
				{Kind: ObstacleWood, X: 800, Y: 400, W: 40, H: 120},
				{Kind: ObstacleWood, X: 1000, Y: 400, W: 40, H: 120},
				{Kind: ObstacleMetal, X: 1100, Y: 420, W: 40, H: 180},
				{Kind: ObstacleMetal, X: 900, Y: 250, W: 40, H: 40},
			},
		},
	}
}
