package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sant0-9/finder/internal/config"
	"github.com/sant0-9/finder/internal/finder"
	"github.com/sant0-9/finder/internal/llm"
	"github.com/sant0-9/finder/internal/logger"
	"github.com/sant0-9/finder/internal/prompts"
	"github.com/sant0-9/finder/internal/tui"
)

var version = "dev"

// Flags holds command line flags
type Flags struct {
	version  *bool
	logLevel *string
	category *string
}

func main() {
	// Missing .env is fine
	_ = godotenv.Load()

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := parseCommandLineFlags(cfg)
	if *flags.version {
		fmt.Printf("finder %s\n", version)
		return
	}

	// Flag values apply to this run only and are never saved
	if *flags.logLevel != cfg.LogLevel {
		cfg.OverrideLogLevel(*flags.logLevel)
	}
	if *flags.category != "" {
		c, err := prompts.ParseCategory(*flags.category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		cfg.OverrideCategory(c.ID())
	}

	log := buildLogger(cfg)
	defer func() { _ = log.Sync() }()

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		log.Error("invalid provider configuration", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	service := finder.NewService(provider, cfg.Model, cfg.Timeout(), log)
	app := tui.NewApp(cfg, service, log)

	log.Info("starting finder",
		zap.String("version", version),
		zap.String("model", cfg.Model),
		zap.Duration("timeout", cfg.Timeout()),
		zap.Bool("key_set", cfg.HasAPIKey()))

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		log.Error("program exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Info("finder exited")
}

// loadConfig reads the config file, falling back to defaults, then applies
// environment overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func parseCommandLineFlags(cfg *config.Config) Flags {
	flags := Flags{
		version:  flag.Bool("version", false, "print version and exit"),
		logLevel: flag.String("log-level", cfg.LogLevel, "log level: debug, info, warn, error (overrides $FINDER_LOG_LEVEL)"),
		category: flag.String("category", "", "initial category: tool, business or service"),
	}

	flag.Parse()
	return flags
}

// buildLogger logs to a file since the terminal belongs to the UI. Logging
// problems never stop the program.
func buildLogger(cfg *config.Config) *zap.Logger {
	path, err := cfg.LogPath()
	if err != nil {
		return logger.Nop()
	}
	log, err := logger.New(cfg.LogLevel, path)
	if err != nil {
		return logger.Nop()
	}
	return log
}
