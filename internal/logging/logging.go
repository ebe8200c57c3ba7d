// Package logging builds the structured logger shared by the CLI and the
// journal components.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level      string `json:"level" yaml:"level"`
	Console    bool   `json:"console" yaml:"console"`
	File       bool   `json:"file" yaml:"file"`
	FilePath   string `json:"file_path,omitempty" yaml:"file_path,omitempty"`
	MaxSize    int    `json:"max_size,omitempty" yaml:"max_size,omitempty"` // megabytes
	MaxBackups int    `json:"max_backups,omitempty" yaml:"max_backups,omitempty"`
	MaxAge     int    `json:"max_age,omitempty" yaml:"max_age,omitempty"` // days
}

// DefaultConfig logs warnings and above to the console only.
func DefaultConfig() Config {
	return Config{
		Level:      "warn",
		Console:    true,
		FilePath:   "./smcjournal.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     30,
	}
}

// Validate checks the level and the file settings.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Level); err != nil {
		return err
	}
	if c.File && c.FilePath == "" {
		return fmt.Errorf("log.file_path required when log.file is enabled")
	}
	return nil
}

// New creates a logger writing to console (normally stderr) and, if enabled,
// to a rotating file. The returned close func releases the file.
func New(cfg Config, console io.Writer) (zerolog.Logger, func() error, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), nop, err
	}

	var writers []io.Writer
	if cfg.Console {
		if console == nil {
			console = os.Stderr
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}

	closeFn := nop
	if cfg.File {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return zerolog.Nop(), nop, fmt.Errorf("log dir: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   true,
		}
		writers = append(writers, lj)
		closeFn = lj.Close
	}

	if len(writers) == 0 {
		return zerolog.Nop(), closeFn, nil
	}

	var w io.Writer = writers[0]
	if len(writers) > 1 {
		w = zerolog.MultiLevelWriter(writers...)
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
	return logger, closeFn, nil
}

// ParseLevel maps debug/info/warn/error (case-insensitive) to a zerolog level.
// Blank means info.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

func nop() error { return nil }
