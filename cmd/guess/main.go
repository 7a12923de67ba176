package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/guess/cmd/guess/internal/app"
	"github.com/germanamz/guess/pkg/config"
	"github.com/germanamz/guess/pkg/feedback"
	"github.com/germanamz/guess/pkg/game"
	"github.com/joho/godotenv"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: guess [flags]\n\nGuess a number between 1 and 100.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	configPath := flag.String("config", config.DefaultPath, "path to configuration file (ignored if missing)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	logPath := flag.String("log", "", "write a debug log to this file (overrides log_file in config)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logPath != "" {
		cfg.LogFile = logPath
	}

	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := game.New()
	if err != nil {
		return err
	}
	log.Info("game started", "range_max", g.RangeMax(), "feedback_file", cfg.FeedbackFile)
	log.Debug("round started", "target", g.Target())

	model := app.New(g, feedback.New(cfg.FeedbackFile), app.Options{
		Title:  cfg.Title,
		Logger: log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithFilter(app.FilterStaleInput))

	_, err = p.Run()
	return err
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// newLogger returns a debug-level text logger writing to path, or a discarding
// logger when path is empty. The terminal belongs to the UI, so nothing is
// ever logged to stdout or stderr while the game runs.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return log, func() { _ = f.Close() }, nil
}
