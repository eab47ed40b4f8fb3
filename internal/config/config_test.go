package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Grid.ZoneLabel != "EST" {
		t.Errorf("expected zone_label EST, got %s", cfg.Grid.ZoneLabel)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
	if !cfg.UI.Mouse {
		t.Error("expected mouse enabled by default")
	}
	if cfg.Storage.DBPath == "" {
		t.Error("expected a default db_path")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Grid.ZoneLabel != "EST" {
		t.Errorf("expected default zone_label, got %s", cfg.Grid.ZoneLabel)
	}
	if strings.HasPrefix(cfg.Storage.DBPath, "~") {
		t.Errorf("db_path not expanded: %s", cfg.Storage.DBPath)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[grid]
zone_label = "PST"

[storage]
db_path = "/tmp/test.db"

[ui]
theme = "latte"
mouse = false

[log]
level = "info"
file = "/tmp/weekpick.log"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Grid.ZoneLabel != "PST" {
		t.Errorf("expected zone_label PST, got %s", cfg.Grid.ZoneLabel)
	}
	if cfg.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("expected db_path /tmp/test.db, got %s", cfg.Storage.DBPath)
	}
	if cfg.UI.Theme != "latte" || cfg.UI.Mouse {
		t.Errorf("unexpected ui config: %+v", cfg.UI)
	}
	if cfg.Log.Level != "info" || cfg.Log.File != "/tmp/weekpick.log" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoadFrom_PartialFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[grid]\nzone_label = \"CET\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Grid.ZoneLabel != "CET" {
		t.Errorf("expected zone_label CET, got %s", cfg.Grid.ZoneLabel)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected default theme, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("[grid\nzone_label = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("WEEKPICK_ZONE_LABEL", "UTC")
	t.Setenv("WEEKPICK_UI_THEME", "mocha")
	t.Setenv("WEEKPICK_UI_MOUSE", "false")
	t.Setenv("WEEKPICK_LOG_LEVEL", "warn")
	t.Setenv("WEEKPICK_DB_PATH", "")

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Grid.ZoneLabel != "UTC" {
		t.Errorf("expected zone_label UTC, got %s", cfg.Grid.ZoneLabel)
	}
	if cfg.UI.Theme != "mocha" || cfg.UI.Mouse {
		t.Errorf("unexpected ui config: %+v", cfg.UI)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected log level warn, got %s", cfg.Log.Level)
	}
	if cfg.PersistenceEnabled() {
		t.Error("empty WEEKPICK_DB_PATH should disable persistence")
	}
}

func TestLoadFrom_BadMouseEnv(t *testing.T) {
	t.Setenv("WEEKPICK_UI_MOUSE", "sometimes")
	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Error("expected error for non-boolean WEEKPICK_UI_MOUSE")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty zone", func(c *Config) { c.Grid.ZoneLabel = " " }, true},
		{"multiline zone", func(c *Config) { c.Grid.ZoneLabel = "EST\nPST" }, true},
		{"unknown theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"theme case", func(c *Config) { c.UI.Theme = "Mocha" }, false},
		{"unknown level", func(c *Config) { c.Log.Level = "trace" }, true},
		{"no log file", func(c *Config) { c.Log.File = "" }, true},
		{"no db path", func(c *Config) { c.Storage.DBPath = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveTo(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Grid.ZoneLabel = "CST"
	cfg.Storage.DBPath = filepath.Join(tmpDir, "weekpick.db")

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.Grid.ZoneLabel != "CST" {
		t.Errorf("expected zone_label CST, got %s", loaded.Grid.ZoneLabel)
	}
	if loaded.Storage.DBPath != cfg.Storage.DBPath {
		t.Errorf("expected db_path %s, got %s", cfg.Storage.DBPath, loaded.Storage.DBPath)
	}
}
