package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/smcjournal/internal/logging"
	"github.com/rustyeddy/smcjournal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, 2, cfg.Journal.MaxConsecutiveLosses)
	assert.Equal(t, FormatText, cfg.Export.Format)
	assert.Equal(t, journal.DefaultPolicy(), cfg.Policy())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "zero loss limit",
			mutate:  func(c *Config) { c.Journal.MaxConsecutiveLosses = 0 },
			wantErr: true,
			errMsg:  "journal.max_consecutive_losses must be at least 1",
		},
		{
			name:   "org export",
			mutate: func(c *Config) { c.Export.Format = FormatOrg },
		},
		{
			name:    "unknown export format",
			mutate:  func(c *Config) { c.Export.Format = "pdf" },
			wantErr: true,
			errMsg:  "export.format must be",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: true,
			errMsg:  "unknown log level",
		},
		{
			name: "log file without path",
			mutate: func(c *Config) {
				c.Log = logging.Config{Level: "info", File: true}
			},
			wantErr: true,
			errMsg:  "log.file_path required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
		{"yml format", ".yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Journal.MaxConsecutiveLosses = 3
			cfg.Export.Format = FormatCSV
			path := filepath.Join(tmpDir, "test"+tt.ext)

			require.NoError(t, cfg.SaveToFile(path))

			_, err := os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("export:\n  format: org\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatOrg, cfg.Export.Format)
	assert.Equal(t, 2, cfg.Journal.MaxConsecutiveLosses)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("journal:\n  max_consecutive_losses: 0\n"), 0644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
