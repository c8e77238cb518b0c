// Package config loads application settings from an optional YAML file with
// QUADCHESS_* environment overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quadkey/quadchess/internal/engine"
	"github.com/quadkey/quadchess/internal/game"
)

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = "quadchess.yaml"

// AISection configures the computer player.
type AISection struct {
	// Difficulty is easy, medium or hard.
	Difficulty string `yaml:"difficulty"`

	// MoveDelayMS is the minimum pause before an AI move is played.
	MoveDelayMS int `yaml:"move_delay_ms"`
}

// LogSection configures the logger.
type LogSection struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
	File   string `yaml:"file"`   // empty disables the file sink
}

// Config is the full application configuration.
type Config struct {
	// Mode preselects the start menu entry: human-vs-human,
	// human-vs-computer, computer-vs-human or computer-vs-computer.
	Mode string `yaml:"mode"`

	AI  AISection  `yaml:"ai"`
	Log LogSection `yaml:"log"`

	// DataDir holds the preference store. Empty picks a per-user default.
	DataDir string `yaml:"data_dir"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Mode: "human-vs-computer",
		AI: AISection{
			Difficulty:  "medium",
			MoveDelayMS: 1000,
		},
		Log: LogSection{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the YAML file at path (skipped when absent), then applies
// environment overrides. An empty path means DefaultFile.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults plus env only.
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := getenv("QUADCHESS_MODE"); v != "" {
		c.Mode = v
	}
	if v := getenv("QUADCHESS_AI_DIFFICULTY"); v != "" {
		c.AI.Difficulty = v
	}
	if v := getenv("QUADCHESS_AI_MOVE_DELAY_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.AI.MoveDelayMS = n
		}
	}
	if v := getenv("QUADCHESS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("QUADCHESS_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := getenv("QUADCHESS_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := getenv("QUADCHESS_DATA_DIR"); v != "" {
		c.DataDir = v
	}
}

func (c *Config) validate() error {
	if _, err := c.GameMode(); err != nil {
		return err
	}
	if _, err := c.Difficulty(); err != nil {
		return err
	}
	if c.AI.MoveDelayMS < 0 {
		return fmt.Errorf("ai.move_delay_ms must not be negative: %d", c.AI.MoveDelayMS)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json: %q", c.Log.Format)
	}
	return nil
}

// GameMode maps the configured mode name to a game.Mode.
func (c *Config) GameMode() (game.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(c.Mode)) {
	case "human-vs-human", "hvh":
		return game.HumanVsHuman, nil
	case "human-vs-computer", "hvc", "":
		return game.HumanVsComputer, nil
	case "computer-vs-human", "cvh":
		return game.ComputerVsHuman, nil
	case "computer-vs-computer", "cvc":
		return game.ComputerVsComputer, nil
	default:
		return 0, fmt.Errorf("unknown mode: %q", c.Mode)
	}
}

// Difficulty maps the configured difficulty name to an engine preset.
func (c *Config) Difficulty() (engine.Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(c.AI.Difficulty)) {
	case "easy":
		return engine.Easy, nil
	case "medium", "":
		return engine.Medium, nil
	case "hard":
		return engine.Hard, nil
	default:
		return 0, fmt.Errorf("unknown difficulty: %q", c.AI.Difficulty)
	}
}

// AIConfig builds the controller-facing AI settings.
func (c *Config) AIConfig() game.AIConfig {
	d, err := c.Difficulty()
	if err != nil {
		d = engine.Medium
	}
	return game.AIConfig{
		Difficulty: d,
		MoveDelay:  time.Duration(c.AI.MoveDelayMS) * time.Millisecond,
	}
}

func getenv(k string) string {
	return strings.TrimSpace(os.Getenv(k))
}
