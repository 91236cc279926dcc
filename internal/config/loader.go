package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MaxTrailLength is the longest ball trail a config may ask for.
const MaxTrailLength = 10

// LoadNeonBounce loads the game configuration.
// Search order: customPath -> ~/.neonbounce/configs/neonbounce.yaml -> ./configs/neonbounce.yaml -> embedded default.
// Files are decoded on top of the built-in defaults, so partial files only override what they name.
func LoadNeonBounce(customPath string) (NeonBounceConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultNeonBounceConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultNeonBounceConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("neonbounce.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "neonbounce.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultNeonBounceYAML)
	if err != nil {
		return DefaultNeonBounceConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (NeonBounceConfig, error) {
	cfg := DefaultNeonBounceConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that a configuration can drive the simulation.
func Validate(cfg NeonBounceConfig) error {
	switch {
	case cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size must be positive", ErrInvalidConfig)
	case cfg.Paddle.Width <= 0 || cfg.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalidConfig)
	case cfg.Paddle.Width > cfg.Screen.Width:
		return fmt.Errorf("%w: paddle width %.0f exceeds screen width %.0f", ErrInvalidConfig, cfg.Paddle.Width, cfg.Screen.Width)
	case cfg.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case cfg.Ball.TrailLength < 0 || cfg.Ball.TrailLength > MaxTrailLength:
		return fmt.Errorf("%w: trail length %d outside [0, %d]", ErrInvalidConfig, cfg.Ball.TrailLength, MaxTrailLength)
	case cfg.PowerUps.SpawnChance < 0 || cfg.PowerUps.SpawnChance > 1:
		return fmt.Errorf("%w: power-up spawn chance %v outside [0, 1]", ErrInvalidConfig, cfg.PowerUps.SpawnChance)
	case cfg.Obstacles.MinWidth > cfg.Obstacles.MaxWidth || cfg.Obstacles.MinY > cfg.Obstacles.MaxY:
		return fmt.Errorf("%w: obstacle ranges are inverted", ErrInvalidConfig)
	case float64(cfg.Obstacles.MinX) > cfg.Screen.Width-float64(cfg.Obstacles.RightMargin):
		return fmt.Errorf("%w: obstacle x range is empty for this screen width", ErrInvalidConfig)
	case cfg.Particles.MinSize < 1 || cfg.Particles.MinSize > cfg.Particles.MaxSize:
		return fmt.Errorf("%w: particle sizes must satisfy 1 <= min <= max", ErrInvalidConfig)
	case cfg.Scoring.ComboStep <= 0:
		return fmt.Errorf("%w: combo step must be positive", ErrInvalidConfig)
	case cfg.Scoring.LevelThreshold <= 0:
		return fmt.Errorf("%w: level threshold must be positive", ErrInvalidConfig)
	case cfg.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive", ErrInvalidConfig)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonbounce", "configs", filename)
}

// ApplyNeonBouncePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyNeonBouncePreset(cfg *NeonBounceConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 160
		cfg.Physics.Gravity = 0.4
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 90
		cfg.Physics.Gravity = 0.6
	}
}

// LoadWithPreset loads the configuration, applies a difficulty preset and
// validates the combined result.
func LoadWithPreset(customPath string, preset DifficultyPreset) (NeonBounceConfig, error) {
	cfg, err := LoadNeonBounce(customPath)
	if err != nil {
		return cfg, err
	}
	ApplyNeonBouncePreset(&cfg, preset)
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("%s preset: %w", preset, err)
	}
	return cfg, nil
}
