package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rustyeddy/smcjournal/internal/logging"
	"github.com/rustyeddy/smcjournal/journal"
	"github.com/rustyeddy/smcjournal/report"
	"gopkg.in/yaml.v3"
)

// Config represents the complete journal configuration
type Config struct {
	Journal JournalConfig  `json:"journal" yaml:"journal"`
	Log     logging.Config `json:"log" yaml:"log"`
	Export  ExportConfig   `json:"export" yaml:"export"`
}

// JournalConfig contains the loss-lock rule
type JournalConfig struct {
	MaxConsecutiveLosses int `json:"max_consecutive_losses" yaml:"max_consecutive_losses"`
}

// ExportConfig selects how the end-of-session report is printed
type ExportConfig struct {
	Format string `json:"format" yaml:"format"` // "text", "org" or "csv"
}

// Export formats.
const (
	FormatText = report.FormatText
	FormatOrg  = report.FormatOrg
	FormatCSV  = report.FormatCSV
)

// Policy converts the journal settings into a store policy.
func (c *Config) Policy() journal.Policy {
	return journal.Policy{MaxConsecutiveLosses: c.Journal.MaxConsecutiveLosses}
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Journal.MaxConsecutiveLosses < 1 {
		return fmt.Errorf("journal.max_consecutive_losses must be at least 1")
	}
	switch c.Export.Format {
	case FormatText, FormatOrg, FormatCSV:
	default:
		return fmt.Errorf("export.format must be 'text', 'org' or 'csv'")
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			MaxConsecutiveLosses: journal.DefaultMaxConsecutiveLosses,
		},
		Log: logging.DefaultConfig(),
		Export: ExportConfig{
			Format: FormatText,
		},
	}
}
