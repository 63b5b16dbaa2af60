package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/hylla/listan/internal/engine"
)

// TestMain sets deterministic environment defaults for CLI tests.
func TestMain(m *testing.M) {
	_ = os.Setenv("LISTAN_DEV_MODE", "false")
	os.Exit(m.Run())
}

// fakeProgram represents fake program data used by this package.
type fakeProgram struct {
	runErr error
}

// Run runs the requested command flow.
func (f fakeProgram) Run() (tea.Model, error) {
	return nil, f.runErr
}

func withFakeProgram(t *testing.T, runErr error) {
	t.Helper()
	prev := programFactory
	programFactory = func(tea.Model) program {
		return fakeProgram{runErr: runErr}
	}
	t.Cleanup(func() { programFactory = prev })
}

func testEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("LISTAN_CONFIG", "")
}

func TestRunVersionFlag(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-version"}, &out, io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "listan") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunPathsCommand(t *testing.T) {
	testEnv(t)
	var out bytes.Buffer
	if err := run(context.Background(), []string{"paths"}, &out, io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, want := range []string{"config:", "data_dir:", "log:"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("paths output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunUnknownCommand(t *testing.T) {
	testEnv(t)
	err := run(context.Background(), []string{"frobnicate"}, io.Discard, io.Discard)
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Fatalf("expected unknown command error, got %v", err)
	}
}

func TestRunStartsProgram(t *testing.T) {
	testEnv(t)
	withFakeProgram(t, nil)
	if err := run(context.Background(), nil, io.Discard, io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	testEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[view]\ndefault_mode = \"carousel\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	err := run(context.Background(), []string{"-config", path}, io.Discard, io.Discard)
	if err == nil {
		t.Fatal("expected config validation error")
	}
}

func TestViewModeFromConfig(t *testing.T) {
	if viewModeFromConfig(" Board ") != engine.ViewBoard {
		t.Fatal("board mapping")
	}
	if viewModeFromConfig("grid") != engine.ViewGrid {
		t.Fatal("grid mapping")
	}
	if viewModeFromConfig("anything-else") != engine.ViewList {
		t.Fatal("list fallback")
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Setenv("LISTAN_TEST_FLAG", "yes")
	if got, ok := parseBoolEnv("LISTAN_TEST_FLAG"); !ok || !got {
		t.Fatalf("got %v %v", got, ok)
	}
	t.Setenv("LISTAN_TEST_FLAG", "off")
	if got, ok := parseBoolEnv("LISTAN_TEST_FLAG"); !ok || got {
		t.Fatalf("got %v %v", got, ok)
	}
	t.Setenv("LISTAN_TEST_FLAG", "maybe")
	if _, ok := parseBoolEnv("LISTAN_TEST_FLAG"); ok {
		t.Fatal("expected not ok")
	}
}

func TestFirstArg(t *testing.T) {
	if firstArg(nil) != "" {
		t.Fatal("empty args")
	}
	if firstArg([]string{"  paths  "}) != "paths" {
		t.Fatal("trimmed arg")
	}
}
