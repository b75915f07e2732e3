// Package config provides YAML-based configuration loading and
// difficulty presets for the slingshot game.
package config

// SlingshotConfig contains all tunable parameters and the scene layout.
type SlingshotConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Launch  LaunchConfig  `yaml:"launch"`
	Power   PowerConfig   `yaml:"power"`
	Roller  RollerConfig  `yaml:"roller"`
	Scoring ScoringConfig `yaml:"scoring"`
	Layout  LayoutConfig  `yaml:"layout"`
}

// WorldConfig defines the playfield size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines gravity and the ad-hoc collision response constants.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // Downward acceleration, units/s²
	RestThreshold  float64 `yaml:"rest_threshold"`  // |v| below this counts as stopped
	GroundFriction float64 `yaml:"ground_friction"` // Horizontal bleed on the ground, units/s²
	GroundBounce   float64 `yaml:"ground_bounce"`   // Vertical speed divisor on ground bounce
	ImpactDamping  float64 `yaml:"impact_damping"`  // Speed divisor on target and obstacle hits
}

// LaunchConfig defines slingshot drag and launch behavior.
type LaunchConfig struct {
	MaxDrag      float64 `yaml:"max_drag"`      // Maximum pull distance from the anchor
	CancelFactor float64 `yaml:"cancel_factor"` // Release within factor*width of the anchor cancels
	Multiplier   float64 `yaml:"multiplier"`    // Launch velocity per unit of pull
}

// PowerConfig defines the per-kind power effects.
type PowerConfig struct {
	DuckGrowth        float64 `yaml:"duck_growth"`        // Size multiplier
	OwlBoost          float64 `yaml:"owl_boost"`          // Horizontal speed multiplier
	ChickenLift       float64 `yaml:"chicken_lift"`       // Upward launch speed
	PoweredCollisions int     `yaml:"powered_collisions"` // Duck and owl collision budget
	PenguinSize       float64 `yaml:"penguin_size"`       // Powered penguin edge length
}

// RollerConfig defines the heavy roller summoned by the chicken.
type RollerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SummonHeight float64 `yaml:"summon_height"` // Chicken must rise above this y
	DriftSpeed   float64 `yaml:"drift_speed"`   // Initial fall speed of roller and chicken
}

// ScoringConfig defines points awarded at the end of a round.
type ScoringConfig struct {
	ProjectileLeft int `yaml:"projectile_left"`
	Target         int `yaml:"target"`
	Obstacle       int `yaml:"obstacle"`
}

// LayoutConfig describes the initial scene.
type LayoutConfig struct {
	Ground      RectConfig       `yaml:"ground"`
	Slingshot   RectConfig       `yaml:"slingshot"`
	Anchor      PointConfig      `yaml:"anchor"`
	Queue       QueueConfig      `yaml:"queue"`
	Projectiles []string         `yaml:"projectiles"`
	Targets     TargetLayout     `yaml:"targets"`
	Obstacles   []ObstacleConfig `yaml:"obstacles"`
}

// PointConfig is a position in world units.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RectConfig is an axis-aligned rectangle in world units.
type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// QueueConfig places waiting projectiles. Projectile i rests at
// (X - i*Spacing, Y); the active one rests on the anchor.
type QueueConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Spacing float64 `yaml:"spacing"`
	Size    float64 `yaml:"size"`
}

// TargetLayout places targets of a common size.
type TargetLayout struct {
	Size      float64       `yaml:"size"`
	Positions []PointConfig `yaml:"positions"`
}

// ObstacleConfig places one obstacle.
type ObstacleConfig struct {
	Kind string  `yaml:"kind"` // "metal" or "wood"
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h"`
}

// Projectile kind names accepted in layout.projectiles, in kind order.
var ProjectileKinds = []string{"parrot", "penguin", "duck", "chick", "owl", "chicken"}

// Obstacle kind names accepted in layout.obstacles[].kind.
const (
	ObstacleMetal = "metal"
	ObstacleWood  = "wood"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
