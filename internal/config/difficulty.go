package config

import (
	"fmt"
	"strings"
)

// ParseDifficulty converts a flag value into a preset.
// The empty string selects the normal preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalidConfig, s)
	}
}

// ApplySlingshotPreset modifies the config based on a difficulty preset.
// Easy softens gravity and lengthens the sling; hard does the opposite.
func ApplySlingshotPreset(cfg *SlingshotConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Gravity *= 0.8
		cfg.Launch.MaxDrag *= 1.25
	case DifficultyHard:
		cfg.Physics.Gravity *= 1.2
		cfg.Launch.MaxDrag *= 0.8
	}
}
