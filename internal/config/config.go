// ABOUTME: Configuration management for CLI defaults
// ABOUTME: Handles the default timezone, UTC mode, and output layout persisted as JSON

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harper/when/internal/tzdb"
)

// Config stores when CLI preferences.
type Config struct {
	// Timezone is the default output zone name. Empty means the system
	// timezone.
	Timezone string `json:"timezone,omitempty"`

	// UTC forces every instant to UTC, overriding Timezone.
	UTC bool `json:"utc,omitempty"`

	// Format is the default output layout in Go reference-time notation.
	// Empty means RFC 3339.
	Format string `json:"format,omitempty"`
}

// GetTimezone returns the configured zone name, defaulting to the system
// timezone.
func (c *Config) GetTimezone() string {
	if c.Timezone == "" {
		return tzdb.SystemTimezone()
	}
	return c.Timezone
}

// GetFormat returns the configured output layout, defaulting to RFC 3339.
func (c *Config) GetFormat() string {
	if c.Format == "" {
		return DefaultLayout
	}
	return c.Format
}

// Location resolves the configured zone, honoring the UTC override.
func (c *Config) Location() (*time.Location, error) {
	if c.UTC {
		return time.UTC, nil
	}
	return tzdb.Lookup(c.GetTimezone())
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "when", "config.json")
}

// Load reads config from disk. A missing file yields the zero config; a
// configured zone that no longer resolves is an error.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if cfg.Timezone != "" {
		if _, err := tzdb.Lookup(cfg.Timezone); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	return &cfg, nil
}

// Save writes config to disk, creating the directory as needed. The write
// goes through a temp file and rename so a crash never leaves a torn file.
func (c *Config) Save() error {
	path := GetConfigPath()
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPerms); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, DefaultFilePerms); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}
