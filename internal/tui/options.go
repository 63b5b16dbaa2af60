package tui

import (
	"time"

	"github.com/hylla/listan/internal/engine"
	"github.com/hylla/listan/internal/haptics"
	"github.com/hylla/listan/internal/swipe"
	"github.com/hylla/listan/internal/theme"
)

// ViewConfig controls pagination and the starting view mode.
type ViewConfig struct {
	DefaultMode engine.ViewMode
	PageSize    int
	GridColumns int
}

// DefaultViewConfig returns the rendering defaults.
func DefaultViewConfig() ViewConfig {
	return ViewConfig{
		DefaultMode: engine.ViewList,
		PageSize:    50,
		GridColumns: 3,
	}
}

// NetworkToggle is the network-status collaborator surface the model needs.
type NetworkToggle interface {
	Connected() bool
	Toggle() bool
}

type Option func(*Model)

func WithViewConfig(cfg ViewConfig) Option {
	return func(m *Model) {
		if cfg.DefaultMode != "" {
			m.viewMode = cfg.DefaultMode
		}
		if cfg.PageSize >= 0 {
			m.pageSize = cfg.PageSize
		}
		if cfg.GridColumns > 0 {
			m.gridColumns = cfg.GridColumns
		}
	}
}

func WithSwipeConfig(cfg swipe.Config) Option {
	return func(m *Model) {
		m.swipeCfg = cfg
	}
}

func WithTheme(tokens theme.Tokens) Option {
	return func(m *Model) {
		m.styles = tokens
	}
}

func WithNetwork(network NetworkToggle) Option {
	return func(m *Model) {
		m.network = network
	}
}

func WithHaptics(sink haptics.Sink) Option {
	return func(m *Model) {
		m.haptics = sink
	}
}

func WithClock(clock func() time.Time) Option {
	return func(m *Model) {
		m.clock = clock
	}
}
