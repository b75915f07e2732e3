package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slingshot.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := decode(defaultSlingshotYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSlingshotConfig()) {
		t.Errorf("embedded defaults differ from DefaultSlingshotConfig()\n got: %+v\nwant: %+v", cfg, DefaultSlingshotConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadSlingshotFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadSlingshot("")
	if err != nil {
		t.Fatalf("LoadSlingshot failed: %v", err)
	}
	if len(cfg.Layout.Targets.Positions) != 5 {
		t.Errorf("expected 5 targets, got %d", len(cfg.Layout.Targets.Positions))
	}
	if len(cfg.Layout.Obstacles) != 10 {
		t.Errorf("expected 10 obstacles, got %d", len(cfg.Layout.Obstacles))
	}
}

func TestLoadSlingshotUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".slingshot", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "slingshot.yaml"), []byte("physics:\n  gravity: 321\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSlingshot("")
	if err != nil {
		t.Fatalf("LoadSlingshot failed: %v", err)
	}
	if cfg.Physics.Gravity != 321 {
		t.Errorf("Gravity = %v, expected 321 from user config", cfg.Physics.Gravity)
	}
}

func TestLoadSlingshotCustomPathOverlay(t *testing.T) {
	path := writeConfig(t, `
physics:
  gravity: 250
layout:
  projectiles: [owl, owl]
`)

	cfg, err := LoadSlingshot(path)
	if err != nil {
		t.Fatalf("LoadSlingshot failed: %v", err)
	}
	if cfg.Physics.Gravity != 250 {
		t.Errorf("Gravity = %v, expected 250", cfg.Physics.Gravity)
	}
	if len(cfg.Layout.Projectiles) != 2 || cfg.Layout.Projectiles[0] != "owl" {
		t.Errorf("Projectiles = %v, expected [owl owl]", cfg.Layout.Projectiles)
	}
	// Untouched fields keep their defaults
	if cfg.Launch.MaxDrag != 60 {
		t.Errorf("MaxDrag = %v, expected default 60", cfg.Launch.MaxDrag)
	}
}

func TestLoadSlingshotErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool // expect ErrInvalidConfig rather than a parse error
	}{
		{"malformed yaml", "physics: [", false},
		{"unknown projectile", "layout:\n  projectiles: [eagle]\n", true},
		{"no projectiles", "layout:\n  projectiles: []\n", true},
		{"no targets", "layout:\n  targets:\n    positions: []\n", true},
		{"bad obstacle kind", "layout:\n  obstacles:\n    - {kind: glass, x: 0, y: 0, w: 10, h: 10}\n", true},
		{"zero obstacle size", "layout:\n  obstacles:\n    - {kind: wood, x: 0, y: 0, w: 0, h: 10}\n", true},
		{"negative gravity", "physics:\n  gravity: -1\n", true},
		{"zero max drag", "launch:\n  max_drag: 0\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadSlingshot(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, expected %v (err: %v)", got, tc.invalid, err)
			}
		})
	}
}

func TestLoadSlingshotMissingCustomPath(t *testing.T) {
	_, err := LoadSlingshot(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
