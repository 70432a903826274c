// Package config loads the game configuration. Values load from a YAML
// file over defaults; a missing file just means defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CameraConfig tunes the follow behavior.
type CameraConfig struct {
	FollowRate     float64 `yaml:"follow_rate"`
	Smoothing      bool    `yaml:"smoothing"`
	UseDeadzone    bool    `yaml:"use_deadzone"`
	DeadzoneWidth  float64 `yaml:"deadzone_width"`
	DeadzoneHeight float64 `yaml:"deadzone_height"`
}

// Config holds everything the game binary needs to construct the world.
type Config struct {
	Title        string `yaml:"title"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`

	WorldWidth  int `yaml:"world_width"`
	WorldHeight int `yaml:"world_height"`

	// Seed drives map variants, decor scatter, and camera shake.
	Seed int64 `yaml:"seed"`

	// StartHour is the time of day on day 1 (0-24).
	StartHour float64 `yaml:"start_hour"`
	// TimeSpeed is in-game minutes per real second.
	TimeSpeed float64 `yaml:"time_speed"`

	AssetDir string `yaml:"asset_dir"`

	Camera CameraConfig `yaml:"camera"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Title:        "Hearthvale",
		WindowWidth:  800,
		WindowHeight: 600,
		WorldWidth:   1600,
		WorldHeight:  1200,
		Seed:         42,
		StartHour:    8,
		TimeSpeed:    10,
		AssetDir:     "assets",
		Camera: CameraConfig{
			FollowRate:     5,
			Smoothing:      true,
			UseDeadzone:    false,
			DeadzoneWidth:  100,
			DeadzoneHeight: 80,
		},
	}
}

// Load reads a YAML config file over the defaults. A missing file returns
// the defaults without error; a malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}
