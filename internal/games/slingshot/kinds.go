package slingshot

import (
	"fmt"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// ProjectileKind selects a projectile's power.
type ProjectileKind int

const (
	Parrot  ProjectileKind = iota // No power
	Penguin                       // Ground-type: passes through obstacles
	Duck                          // Grows and breaks two obstacles
	Chick                         // Drops straight down
	Owl                           // Doubles horizontal speed, breaks two obstacles
	Chicken                       // Shoots upward and calls the roller
)

// ParseProjectileKind maps a config name to its kind.
func ParseProjectileKind(name string) (ProjectileKind, error) {
	for i, n := range config.ProjectileKinds {
		if n == name {
			return ProjectileKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown projectile kind %q", config.ErrInvalidConfig, name)
}

// String returns the config name of the kind.
func (k ProjectileKind) String() string {
	if k < 0 || int(k) >= len(config.ProjectileKinds) {
		return "unknown"
	}
	return config.ProjectileKinds[k]
}

// DefaultMaxCollisions is the obstacle budget a fresh projectile starts with.
func (k ProjectileKind) DefaultMaxCollisions() int {
	if k == Penguin {
		return 0
	}
	return 1
}

// Glyph returns the rune the projectile is drawn with.
func (k ProjectileKind) Glyph() rune {
	switch k {
	case Parrot:
		return 'P'
	case Penguin:
		return 'G'
	case Duck:
		return 'D'
	case Chick:
		return 'c'
	case Owl:
		return 'O'
	case Chicken:
		return 'C'
	default:
		return '?'
	}
}

// Color returns the projectile's display color.
func (k ProjectileKind) Color() core.Color {
	switch k {
	case Parrot:
		return core.ColorBrightRed
	case Penguin:
		return core.ColorBrightBlue
	case Duck:
		return core.ColorYellow
	case Chick:
		return core.ColorBrightYellow
	case Owl:
		return core.ColorMagenta
	case Chicken:
		return core.ColorWhite
	default:
		return core.ColorDefault
	}
}

// ObstacleKind distinguishes breakable obstacles from permanent ones.
type ObstacleKind int

const (
	Indestructible ObstacleKind = iota // Metal: only the roller removes it
	Destructible                       // Wood
)

// ParseObstacleKind maps a config name to its kind.
func ParseObstacleKind(name string) (ObstacleKind, error) {
	switch name {
	case config.ObstacleMetal:
		return Indestructible, nil
	case config.ObstacleWood:
		return Destructible, nil
	default:
		return 0, fmt.Errorf("%w: unknown obstacle kind %q", config.ErrInvalidConfig, name)
	}
}

// String returns the config name of the kind.
func (k ObstacleKind) String() string {
	if k == Indestructible {
		return config.ObstacleMetal
	}
	return config.ObstacleWood
}
