// Package logging builds the charmbracelet/log loggers used across viagens.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/jask/viagens/internal/config"
)

// New returns a logger writing to w at the given level name. An empty level means info.
func New(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		lvl = parsed
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          prefix,
		ReportTimestamp: true,
	}), nil
}

// OpenFile opens the configured log file for appending, creating parent dirs.
// The TUI owns the terminal, so its diagnostic channel goes here.
func OpenFile(cfg config.LogConfig, prefix string) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := New(f, prefix, cfg.Level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
