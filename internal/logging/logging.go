// Package logging builds the zerolog logger shared by every component.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sandeepkv93/levelup/internal/config"
)

// New returns a logger writing to w: human-readable in development, JSON
// otherwise. An unknown level falls back to info.
func New(cfg config.RuntimeConfig, w io.Writer) zerolog.Logger {
	if cfg.Development() {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Str("app", "levelup").Logger()
}

// NewFile opens the configured log file for appending, so the TUI can keep
// stdout to itself. The returned closer releases the file.
func NewFile(cfg config.RuntimeConfig) (zerolog.Logger, io.Closer, error) {
	path, err := cfg.LogPath()
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	file := cfg
	file.Environment = "production"
	return New(file, f), f, nil
}
