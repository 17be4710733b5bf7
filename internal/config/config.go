package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const EnvPrefix = "LEVELUP"

var ErrInvalidConfig = errors.New("config: invalid value")

type RuntimeConfig struct {
	Environment string `envconfig:"ENVIRONMENT" default:"production"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile     string `envconfig:"LOG_FILE"`

	DataDir     string `envconfig:"DATA_DIR"`
	Store       string `envconfig:"STORE" default:"sqlite"`
	CatalogPath string `envconfig:"CATALOG"`

	DesktopNotifications bool `envconfig:"DESKTOP_NOTIFICATIONS" default:"false"`
	FocusWorkMinutes     int  `envconfig:"FOCUS_WORK_MINUTES" default:"25"`
	FocusBreakMinutes    int  `envconfig:"FOCUS_BREAK_MINUTES" default:"5"`
	SchedulerBuffer      int  `envconfig:"SCHEDULER_BUFFER" default:"64"`
}

// Load reads LEVELUP_* variables after merging any of the given .env files
// that exist. Variables already set in the environment win over the files.
func Load(envFiles ...string) (RuntimeConfig, error) {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return RuntimeConfig{}, fmt.Errorf("loading %s: %w", path, err)
		}
	}
	var cfg RuntimeConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return RuntimeConfig{}, fmt.Errorf("loading config: %w", err)
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))
	if err := cfg.Validate(); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

func (c RuntimeConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Store)) {
	case "sqlite", "file", "memory":
	default:
		return fmt.Errorf("%w: store %q", ErrInvalidConfig, c.Store)
	}
	if c.FocusWorkMinutes <= 0 || c.FocusBreakMinutes <= 0 {
		return fmt.Errorf("%w: focus minutes %d/%d", ErrInvalidConfig, c.FocusWorkMinutes, c.FocusBreakMinutes)
	}
	if c.SchedulerBuffer <= 0 {
		return fmt.Errorf("%w: scheduler buffer %d", ErrInvalidConfig, c.SchedulerBuffer)
	}
	return nil
}

func (c RuntimeConfig) Development() bool {
	return strings.EqualFold(c.Environment, "development")
}

// DataPath is DataDir, or <user config dir>/levelup when unset.
func (c RuntimeConfig) DataPath() (string, error) {
	if strings.TrimSpace(c.DataDir) != "" {
		return c.DataDir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve data dir: %w", err)
	}
	return filepath.Join(base, "levelup"), nil
}

// LogPath is where the TUI sends logs while it owns the terminal.
func (c RuntimeConfig) LogPath() (string, error) {
	if strings.TrimSpace(c.LogFile) != "" {
		return c.LogFile, nil
	}
	dir, err := c.DataPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "levelup.log"), nil
}
