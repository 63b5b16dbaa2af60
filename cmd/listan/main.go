package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	charmLog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/hylla/listan/internal/app"
	"github.com/hylla/listan/internal/backend"
	"github.com/hylla/listan/internal/config"
	"github.com/hylla/listan/internal/engine"
	"github.com/hylla/listan/internal/haptics"
	"github.com/hylla/listan/internal/platform"
	"github.com/hylla/listan/internal/swipe"
	"github.com/hylla/listan/internal/theme"
	"github.com/hylla/listan/internal/tui"
)

// version stores a package-level helper value.
var version = "dev"

// program represents program data used by this package.
type program interface {
	Run() (tea.Model, error)
}

// programFactory stores a package-level helper value.
var programFactory = func(m tea.Model) program {
	return tea.NewProgram(m)
}

// main handles main.
func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run runs the requested command flow.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	fs := flag.NewFlagSet("listan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var (
		configPath string
		appName    string
		devMode    bool
		showVer    bool
		offline    bool
		bell       bool
	)
	defaultDevMode := version == "dev"
	if envDev, ok := parseBoolEnv("LISTAN_DEV_MODE"); ok {
		defaultDevMode = envDev
	}
	if envApp := strings.TrimSpace(os.Getenv("LISTAN_APP_NAME")); envApp != "" {
		appName = envApp
	} else {
		appName = "listan"
	}
	fs.StringVar(&configPath, "config", "", "path to config TOML")
	fs.StringVar(&appName, "app", appName, "application name for config/data path resolution")
	fs.BoolVar(&devMode, "dev", defaultDevMode, "use dev mode paths (<app>-dev)")
	fs.BoolVar(&showVer, "version", false, "show version")
	fs.BoolVar(&offline, "offline", false, "start with the network collaborator disconnected")
	fs.BoolVar(&bell, "bell", false, "emit a terminal bell on haptic events")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showVer {
		_, _ = fmt.Fprintf(stdout, "listan %s\n", version)
		return nil
	}

	paths, err := platform.DefaultPathsWithOptions(platform.Options{
		AppName: appName,
		DevMode: devMode,
	})
	if err != nil {
		return err
	}

	command := firstArg(fs.Args())
	switch command {
	case "paths":
		_, _ = fmt.Fprintf(stdout, "app: %s\n", appName)
		_, _ = fmt.Fprintf(stdout, "dev_mode: %t\n", devMode)
		_, _ = fmt.Fprintf(stdout, "config: %s\n", paths.ConfigPath)
		_, _ = fmt.Fprintf(stdout, "data_dir: %s\n", paths.DataDir)
		_, _ = fmt.Fprintf(stdout, "log: %s\n", paths.LogPath)
		return nil
	case "":
		// Continue.
	default:
		return fmt.Errorf("unknown command: %s", command)
	}

	if configPath == "" {
		if envPath := strings.TrimSpace(os.Getenv("LISTAN_CONFIG")); envPath != "" {
			configPath = envPath
		} else {
			configPath = paths.ConfigPath
		}
	}

	cfg, err := config.Load(configPath, config.Default())
	if err != nil {
		return fmt.Errorf("load config %q: %w", configPath, err)
	}
	if offline {
		cfg.Backend.StartOffline = true
	}

	logger, err := newRuntimeLogger(stderr, paths.LogPath, devMode, cfg.Logging)
	if err != nil {
		return fmt.Errorf("configure runtime logger: %w", err)
	}
	// Keep TUI rendering clean: runtime logs stay in the file sink while the
	// list is active.
	logger.SetConsoleEnabled(false)
	defer func() {
		if closeErr := logger.Close(); closeErr != nil {
			_, _ = fmt.Fprintf(stderr, "warning: close runtime log sink: %v\n", closeErr)
		}
	}()

	logger.Info("startup configuration resolved", "app", appName, "dev_mode", devMode)
	logger.Debug("runtime paths resolved", "config_path", configPath, "data_dir", paths.DataDir, "log_path", paths.LogPath)

	seed := cfg.Backend.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	client := backend.New(backend.Config{
		Latency:     time.Duration(cfg.Backend.LatencyMS) * time.Millisecond,
		FailureRate: cfg.Backend.FailureRate,
		Seed:        seed,
	}, backend.SeedSnapshot(time.Now()), logger.Sink())
	status := backend.NewNetStatus(!cfg.Backend.StartOffline)
	logger.Info("backend ready", "latency_ms", cfg.Backend.LatencyMS, "failure_rate", cfg.Backend.FailureRate, "online", status.Connected())

	var sink haptics.Sink = haptics.Noop()
	if bell {
		sink = haptics.NewBell(stderr)
	}

	coord := app.New(client, status, uuid.NewString, time.Now, app.Options{
		Haptics: sink,
		Logger:  logger.Sink(),
	})

	m := tui.NewModel(
		coord,
		tui.WithViewConfig(tui.ViewConfig{
			DefaultMode: viewModeFromConfig(cfg.View.DefaultMode),
			PageSize:    cfg.View.PageSize,
			GridColumns: cfg.View.GridColumns,
		}),
		tui.WithSwipeConfig(swipe.Config{
			MaxSwipe:        cfg.Swipe.MaxSwipe,
			CommitThreshold: cfg.Swipe.CommitThreshold,
			FPS:             60,
			Frequency:       7.0,
			Damping:         1.0,
		}),
		tui.WithTheme(theme.Default(cfg.Theme.Accent)),
		tui.WithNetwork(status),
		tui.WithHaptics(sink),
	)

	logger.Info("starting tui program loop")
	if _, err := programFactory(m).Run(); err != nil {
		logger.Error("tui program terminated with error", "err", err)
		return fmt.Errorf("run tui program: %w", err)
	}
	logger.Info("command flow complete", "command", "tui")
	return nil
}

// viewModeFromConfig maps the config string onto a view mode; Validate has
// already rejected anything else.
func viewModeFromConfig(mode string) engine.ViewMode {
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "grid":
		return engine.ViewGrid
	case "board":
		return engine.ViewBoard
	default:
		return engine.ViewList
	}
}

// firstArg returns the first positional argument.
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return strings.TrimSpace(args[0])
}

// parseBoolEnv reads a boolean environment flag.
func parseBoolEnv(name string) (bool, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return false, false
	}
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, true
	case "0", "f", "false", "n", "no", "off":
		return false, true
	default:
		return false, false
	}
}

// runtimeLogger pairs a muteable console sink with an always-on file sink.
type runtimeLogger struct {
	file           *os.File
	fileSink       *charmLog.Logger
	consoleSink    *charmLog.Logger
	consoleEnabled bool
}

// newRuntimeLogger opens the file sink next to the data dir and mirrors
// records to stderr until the console is muted.
func newRuntimeLogger(stderr io.Writer, logPath string, devMode bool, cfg config.LoggingConfig) (*runtimeLogger, error) {
	level, err := charmLog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	if err := config.EnsureConfigDir(logPath); err != nil {
		return nil, fmt.Errorf("ensure log dir: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	fileSink := charmLog.NewWithOptions(file, charmLog.Options{
		Level:           level,
		ReportTimestamp: true,
		Formatter:       charmLog.TextFormatter,
	})
	consoleSink := charmLog.NewWithOptions(stderr, charmLog.Options{
		Level:           level,
		ReportTimestamp: devMode,
		Formatter:       charmLog.TextFormatter,
	})

	return &runtimeLogger{
		file:           file,
		fileSink:       fileSink,
		consoleSink:    consoleSink,
		consoleEnabled: true,
	}, nil
}

// Sink returns the file logger for injection into long-lived components.
func (l *runtimeLogger) Sink() *charmLog.Logger { return l.fileSink }

// SetConsoleEnabled mutes or unmutes stderr mirroring.
func (l *runtimeLogger) SetConsoleEnabled(enabled bool) { l.consoleEnabled = enabled }

// Info logs to both sinks.
func (l *runtimeLogger) Info(msg string, kv ...any) {
	l.fileSink.Info(msg, kv...)
	if l.consoleEnabled {
		l.consoleSink.Info(msg, kv...)
	}
}

// Debug logs to both sinks.
func (l *runtimeLogger) Debug(msg string, kv ...any) {
	l.fileSink.Debug(msg, kv...)
	if l.consoleEnabled {
		l.consoleSink.Debug(msg, kv...)
	}
}

// Error logs to both sinks.
func (l *runtimeLogger) Error(msg string, kv ...any) {
	l.fileSink.Error(msg, kv...)
	if l.consoleEnabled {
		l.consoleSink.Error(msg, kv...)
	}
}

// Close releases the file sink.
func (l *runtimeLogger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
