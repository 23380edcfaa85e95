package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSnake loads the snake configuration and validates it.
// Search order: customPath -> ~/.snake-arcade/configs/snake.yaml ->
// ./configs/snake.yaml -> embedded default.
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig

	// A custom path is explicit: any failure there is reported.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Local configs directory
	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultSnakeConfig(), nil
	}
	return cfg, nil
}

// ApplySpeedPreset overrides the movement cadence from a named preset.
// Unknown or empty presets leave the config untouched.
func ApplySpeedPreset(cfg *SnakeConfig, preset SpeedPreset) {
	if ticks := MoveTicksForPreset(preset); ticks > 0 {
		cfg.Speed.MoveEveryTicks = ticks
	}
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake-arcade", "configs", filename)
}
