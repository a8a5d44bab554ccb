package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadJumper loads the jumper configuration.
// Search order: customPath -> ~/.skyhop/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default
//
// Files are decoded on top of the defaults, so partial files only override what they set.
// A custom path that cannot be read, parsed or validated is an error; other sources
// fall through silently.
func LoadJumper(customPath string) (JumperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultJumperConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decodeJumper(data)
		if err != nil {
			return DefaultJumperConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("jumper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decodeJumper(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "jumper.yaml")); err == nil {
		if cfg, err := decodeJumper(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decodeJumper(defaultJumperYAML)
	if err != nil {
		return DefaultJumperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeJumper parses YAML over the defaults and validates the result.
func decodeJumper(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyhop", "configs", filename)
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust hazards based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Pickups.BombChance = 0.15
		cfg.Pickups.BombsPatrol = false
	case DifficultyNormal:
		cfg.Difficulty.Scaling.HazardIncrease = 0.1
	case DifficultyHard:
		cfg.Platforms.MovingScoreGate = 0
		cfg.Difficulty.Scaling.HazardIncrease = 0.2
		cfg.Difficulty.Scaling.MovingIncrease = 0.3
	}
}

// UserConfigPath returns ~/.skyhop/configs/jumper.yaml, or "" if home is unavailable.
func UserConfigPath() string {
	return userConfigPath("jumper.yaml")
}
