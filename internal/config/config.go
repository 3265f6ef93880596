package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"OTHELLO_LOG_FORMAT" env-default:"console"`
	Window    Window `yaml:"window"`
	Loop      Loop   `yaml:"loop"`
}

type Window struct {
	Title      string  `yaml:"title" env:"OTHELLO_WINDOW_TITLE" env-default:"Othello"`
	Width      int     `yaml:"width" env:"OTHELLO_WINDOW_WIDTH" env-default:"800"`
	Height     int     `yaml:"height" env:"OTHELLO_WINDOW_HEIGHT" env-default:"800"`
	BoardRatio float64 `yaml:"board-ratio" env:"OTHELLO_BOARD_RATIO" env-default:"0.6"`
}

type Loop struct {
	// StopWhenEmpty keeps the old behavior of halting the frame loop once
	// nothing is registered.
	StopWhenEmpty bool `yaml:"stop-when-empty" env:"OTHELLO_LOOP_STOP_WHEN_EMPTY" env-default:"false"`
}

var (
	ErrInvalidRatio  = errors.New("board ratio must be in (0, 1]")
	ErrInvalidWindow = errors.New("window size must be positive")
)

// Load reads the YAML file at path, with environment overrides. An empty path
// reads the environment alone, which is what the browser build does.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.BoardRatio <= 0 || c.Window.BoardRatio > 1 {
		return fmt.Errorf("window.board-ratio %v: %w", c.Window.BoardRatio, ErrInvalidRatio)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalidWindow)
	}
	return nil
}
