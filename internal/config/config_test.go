// ABOUTME: Tests for configuration loading and path expansion.
// ABOUTME: Uses env overrides to avoid touching the real home directory.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGetDataDirEnvOverride(t *testing.T) {
	t.Setenv("MESO_DATA_DIR", "/tmp/meso-test")

	cfg := &Config{DataDir: "/elsewhere"}
	if got := cfg.GetDataDir(); got != "/tmp/meso-test" {
		t.Errorf("expected env override, got %s", got)
	}
}

func TestGetDataDirConfigValue(t *testing.T) {
	t.Setenv("MESO_DATA_DIR", "")

	cfg := &Config{DataDir: "/custom/dir"}
	if got := cfg.GetDataDir(); got != "/custom/dir" {
		t.Errorf("expected configured dir, got %s", got)
	}
}

func TestLoadMissingConfigReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "" {
		t.Errorf("expected empty DataDir, got %s", cfg.DataDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{DataDir: "/my/data"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DataDir != "/my/data" {
		t.Errorf("DataDir mismatch: got %s", loaded.DataDir)
	}
}
