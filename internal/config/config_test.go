package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() must validate, got %v", err)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), Default())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("   ", Default())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		"[view]",
		`default_mode = "board"`,
		"page_size = 25",
		"",
		"[swipe]",
		"commit_threshold = 40.0",
		"",
		"[backend]",
		"latency_ms = 10",
		"",
		"[logging]",
		`level = "debug"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path, Default())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.View.DefaultMode != "board" || cfg.View.PageSize != 25 {
		t.Fatalf("view not overridden: %+v", cfg.View)
	}
	if cfg.Swipe.CommitThreshold != 40 {
		t.Fatalf("swipe not overridden: %+v", cfg.Swipe)
	}
	if cfg.Swipe.MaxSwipe != 80 {
		t.Fatalf("untouched default lost: %+v", cfg.Swipe)
	}
	if cfg.Backend.LatencyMS != 10 {
		t.Fatalf("backend not overridden: %+v", cfg.Backend)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("logging not overridden: %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("view = {{"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path, Default()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad view mode", func(c *Config) { c.View.DefaultMode = "carousel" }},
		{"negative page size", func(c *Config) { c.View.PageSize = -1 }},
		{"zero grid columns", func(c *Config) { c.View.GridColumns = 0 }},
		{"zero max swipe", func(c *Config) { c.Swipe.MaxSwipe = 0 }},
		{"threshold above max", func(c *Config) { c.Swipe.CommitThreshold = 90 }},
		{"negative latency", func(c *Config) { c.Backend.LatencyMS = -1 }},
		{"failure rate one", func(c *Config) { c.Backend.FailureRate = 1 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestEnsureConfigDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "config.toml")
	if err := EnsureConfigDir(path); err != nil {
		t.Fatalf("EnsureConfigDir() error = %v", err)
	}
	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Fatalf("dir not created: %v", err)
	}
}
