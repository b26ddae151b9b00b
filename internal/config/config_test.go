package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vlog.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Default()
	if cfg.Server.Port != want.Server.Port {
		t.Errorf("Port = %d, want %d", cfg.Server.Port, want.Server.Port)
	}
	if cfg.Database.Path != want.Database.Path {
		t.Errorf("Database.Path = %q, want %q", cfg.Database.Path, want.Database.Path)
	}
	if cfg.MailEnabled() {
		t.Error("mail should be disabled by default")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
port = 9000

[database]
path = "/tmp/test-vlog.db"

[smtp]
host = "smtp.example.com"
port = 465
from = "site@example.com"
to = "owner@example.com"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Server.Port)
	}
	// Unset keys keep their defaults.
	if cfg.Server.TemplateDir != "web/templates" {
		t.Errorf("TemplateDir = %q, want default", cfg.Server.TemplateDir)
	}
	if cfg.Database.Path != "/tmp/test-vlog.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
	if !cfg.MailEnabled() {
		t.Error("mail should be enabled when smtp.host is set")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"port out of range", "[server]\nport = 70000\n"},
		{"empty database path", "[database]\npath = \"\"\n"},
		{"smtp host without recipient", "[smtp]\nhost = \"smtp.example.com\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.contents)); err == nil {
				t.Error("Load() should have failed")
			}
		})
	}
}

func TestPathHonoursEnvironment(t *testing.T) {
	t.Setenv(envConfigPath, "/etc/vlog/site.toml")
	if got := Path(); got != "/etc/vlog/site.toml" {
		t.Errorf("Path() = %q", got)
	}

	t.Setenv(envConfigPath, "")
	if got := Path(); got != "vlog.toml" {
		t.Errorf("Path() = %q, want default", got)
	}
}
