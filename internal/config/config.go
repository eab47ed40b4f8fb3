// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Storage StorageConfig `toml:"storage"`
	UI      UIConfig      `toml:"ui"`
	Log     LogConfig     `toml:"log"`
}

// GridConfig holds slot grid display settings.
type GridConfig struct {
	ZoneLabel string `toml:"zone_label"` // appended to every summary line, e.g. "EST"
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"` // empty disables persistence
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
	Mouse bool   `toml:"mouse"`
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
	File  string `toml:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			ZoneLabel: "EST",
		},
		Storage: StorageConfig{
			DBPath: "~/.local/share/weekpick/weekpick.db",
		},
		UI: UIConfig{
			Theme: "frappe",
			Mouse: true,
		},
		Log: LogConfig{
			Level: "debug",
			File:  "~/.local/state/weekpick/debug.log",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "weekpick", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("WEEKPICK_ZONE_LABEL"); v != "" {
		cfg.Grid.ZoneLabel = v
	}

	// Set but empty disables persistence.
	if v, ok := os.LookupEnv("WEEKPICK_DB_PATH"); ok {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("WEEKPICK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("WEEKPICK_UI_MOUSE"); v != "" {
		mouse, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("WEEKPICK_UI_MOUSE: %w", err)
		}
		cfg.UI.Mouse = mouse
	}

	if v := os.Getenv("WEEKPICK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("WEEKPICK_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	return nil
}

func (c *Config) expandPaths() error {
	var err error
	if c.Storage.DBPath, err = homedir.Expand(c.Storage.DBPath); err != nil {
		return fmt.Errorf("expanding db_path: %w", err)
	}
	if c.Log.File, err = homedir.Expand(c.Log.File); err != nil {
		return fmt.Errorf("expanding log file: %w", err)
	}
	return nil
}

// PersistenceEnabled reports whether selections are stored between runs.
func (c *Config) PersistenceEnabled() bool {
	return c.Storage.DBPath != ""
}

var validThemes = map[string]bool{
	"mocha":     true,
	"macchiato": true,
	"frappe":    true,
	"latte":     true,
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Grid.ZoneLabel) == "" {
		return errors.New("zone_label must be set")
	}
	if strings.ContainsAny(c.Grid.ZoneLabel, "\n\r") {
		return fmt.Errorf("zone_label must be a single line, got %q", c.Grid.ZoneLabel)
	}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Log.File == "" {
		return errors.New("log file must be set")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Marshal renders the configuration as TOML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
