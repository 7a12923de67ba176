// Package config loads the game configuration from an optional YAML file.
// A missing file yields the defaults, which match the classic game: feedback
// appended to feedback.txt in the working directory. The guessing range is
// fixed and deliberately not configurable.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/germanamz/guess/pkg/feedback"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when no path is given.
const DefaultPath = "guess.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the user-tunable settings.
type Config struct {
	Title        string `yaml:"title"`
	FeedbackFile string `yaml:"feedback_file"`
	LogFile      string `yaml:"log_file"` // Empty disables the debug log.
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:        "Guess the Number Game",
		FeedbackFile: feedback.DefaultPath,
	}
}

// Load reads path over the defaults. Environment variables referenced as
// ${VAR} or $VAR are expanded before parsing. Unknown keys are rejected.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration, not user input
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}

	dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the settings can start a game.
func (c Config) Validate() error {
	if c.FeedbackFile == "" {
		return fmt.Errorf("%w: feedback_file is required", ErrInvalid)
	}
	return nil
}
