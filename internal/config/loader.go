package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration parses but cannot
// describe a playable scene.
var ErrInvalidConfig = errors.New("invalid config")

const slingshotFile = "slingshot.yaml"

// LoadSlingshot loads the slingshot configuration.
// Search order: customPath -> ~/.slingshot/configs/slingshot.yaml -> ./configs/slingshot.yaml -> embedded default
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadSlingshot(customPath string) (SlingshotConfig, error) {
	// Try custom path first; failures here are the caller's problem
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SlingshotConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return SlingshotConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return SlingshotConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(slingshotFile), filepath.Join("configs", slingshotFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultSlingshotYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultSlingshotConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decode(data []byte) (SlingshotConfig, error) {
	cfg := DefaultSlingshotConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SlingshotConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slingshot", "configs", filename)
}

// Validate reports whether the configuration describes a playable scene.
// Every error wraps ErrInvalidConfig.
func (c SlingshotConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		fail("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Physics.Gravity < 0 {
		fail("gravity must not be negative, got %v", c.Physics.Gravity)
	}
	if c.Physics.GroundBounce <= 0 || c.Physics.ImpactDamping <= 0 {
		fail("ground_bounce and impact_damping must be positive")
	}
	if c.Launch.MaxDrag <= 0 || c.Launch.Multiplier <= 0 || c.Launch.CancelFactor <= 0 {
		fail("launch max_drag, multiplier and cancel_factor must be positive")
	}
	if c.Roller.Width <= 0 || c.Roller.Height <= 0 {
		fail("roller size must be positive")
	}

	l := c.Layout
	if l.Ground.W <= 0 || l.Ground.H <= 0 {
		fail("ground size must be positive")
	}
	if l.Queue.Size <= 0 {
		fail("queue size must be positive, got %v", l.Queue.Size)
	}
	if len(l.Projectiles) == 0 {
		fail("at least one projectile is required")
	}
	for i, name := range l.Projectiles {
		if !slices.Contains(ProjectileKinds, name) {
			fail("projectile %d: unknown kind %q", i, name)
		}
	}
	if len(l.Targets.Positions) == 0 {
		fail("at least one target is required")
	}
	if l.Targets.Size <= 0 {
		fail("target size must be positive, got %v", l.Targets.Size)
	}
	for i, o := range l.Obstacles {
		if o.Kind != ObstacleMetal && o.Kind != ObstacleWood {
			fail("obstacle %d: unknown kind %q", i, o.Kind)
		}
		if o.W <= 0 || o.H <= 0 {
			fail("obstacle %d: size must be positive, got %vx%v", i, o.W, o.H)
		}
	}

	return errors.Join(errs...)
}
