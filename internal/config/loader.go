package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInvaders loads the game configuration.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml ->
// ./configs/invaders.yaml -> embedded default.
// The returned config is always normalized (see Normalize).
func LoadInvaders(customPath string) (InvadersConfig, error) {
	var cfg InvadersConfig

	// Try custom path first; an explicit path that fails is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				cfg.Normalize()
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/invaders.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			cfg.Normalize()
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Normalize()
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if
// the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.StartingLives = 4
		cfg.Bullets.MaxLive = 7
		cfg.Fleet.Speed *= 0.75
	case DifficultyNormal:
		// Defaults are the normal preset.
	case DifficultyHard:
		cfg.Gameplay.StartingLives = 2
		cfg.Bullets.MaxLive = 3
		cfg.Fleet.Speed *= 1.5
		cfg.Difficulty.Scale += 0.05
	}
}

// ParsePreset validates a preset name from the CLI.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch name {
	case "", string(DifficultyNormal):
		return DifficultyNormal, nil
	case string(DifficultyEasy):
		return DifficultyEasy, nil
	case string(DifficultyHard):
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty preset %q", name)
	}
}
