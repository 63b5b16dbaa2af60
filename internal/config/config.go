package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	View    ViewConfig    `toml:"view"`
	Swipe   SwipeConfig   `toml:"swipe"`
	Backend BackendConfig `toml:"backend"`
	Logging LoggingConfig `toml:"logging"`
	Theme   ThemeConfig   `toml:"theme"`
}

type ViewConfig struct {
	DefaultMode string `toml:"default_mode"` // list | grid | board
	PageSize    int    `toml:"page_size"`
	GridColumns int    `toml:"grid_columns"`
}

type SwipeConfig struct {
	MaxSwipe        float64 `toml:"max_swipe"`
	CommitThreshold float64 `toml:"commit_threshold"`
}

type BackendConfig struct {
	LatencyMS    int     `toml:"latency_ms"`
	FailureRate  float64 `toml:"failure_rate"`
	Seed         uint64  `toml:"seed"`
	StartOffline bool    `toml:"start_offline"`
}

type LoggingConfig struct {
	Level string `toml:"level"` // debug | info | warn | error
}

type ThemeConfig struct {
	Accent string `toml:"accent"`
}

func Default() Config {
	return Config{
		View: ViewConfig{
			DefaultMode: "list",
			PageSize:    50,
			GridColumns: 3,
		},
		Swipe: SwipeConfig{
			MaxSwipe:        80,
			CommitThreshold: 60,
		},
		Backend: BackendConfig{
			LatencyMS:   350,
			FailureRate: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Theme: ThemeConfig{
			Accent: "62",
		},
	}
}

func Load(path string, defaults Config) (Config, error) {
	cfg := defaults
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if len(content) == 0 {
		return cfg, nil
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.TrimSpace(strings.ToLower(c.View.DefaultMode)) {
	case "list", "grid", "board":
	default:
		return fmt.Errorf("invalid view.default_mode: %q", c.View.DefaultMode)
	}
	if c.View.PageSize < 0 {
		return errors.New("view.page_size must be >= 0")
	}
	if c.View.GridColumns < 1 {
		return errors.New("view.grid_columns must be >= 1")
	}

	if c.Swipe.MaxSwipe <= 0 {
		return errors.New("swipe.max_swipe must be > 0")
	}
	if c.Swipe.CommitThreshold <= 0 || c.Swipe.CommitThreshold >= c.Swipe.MaxSwipe {
		return errors.New("swipe.commit_threshold must be between 0 and swipe.max_swipe")
	}

	if c.Backend.LatencyMS < 0 {
		return errors.New("backend.latency_ms must be >= 0")
	}
	if c.Backend.FailureRate < 0 || c.Backend.FailureRate >= 1 {
		return errors.New("backend.failure_rate must be in [0, 1)")
	}

	switch strings.TrimSpace(strings.ToLower(c.Logging.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}

	return nil
}

func EnsureConfigDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
