package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the simulation shell.
type Config struct {
	// Board half-extent: cells run over [-board_size, board_size] on
	// both axes.
	BoardSize int `yaml:"board_size"`

	// Seconds between ticks at session start.
	StepInterval float64 `yaml:"step_interval"`

	// Window
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`

	// Directory for the scoreboard and high-score files.
	DataDir string `yaml:"data_dir"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		BoardSize:    20,
		StepInterval: 0.20,
		WindowWidth:  1280,
		WindowHeight: 800,
		DataDir:      "data",
	}
}

// Load reads a yaml config from path over the defaults. A missing file
// is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	if c.BoardSize < 2 {
		return fmt.Errorf("board_size must be at least 2, got %d", c.BoardSize)
	}
	if c.StepInterval <= 0 {
		return fmt.Errorf("step_interval must be positive, got %g", c.StepInterval)
	}
	if c.WindowWidth < 320 || c.WindowHeight < 240 {
		return fmt.Errorf("window must be at least 320x240, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	return nil
}
