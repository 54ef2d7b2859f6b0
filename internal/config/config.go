// ABOUTME: Tool configuration: data directory location and storage factory.
// ABOUTME: Config lives at XDG_CONFIG_HOME/meso/config.json; data defaults to XDG data dir.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/liftlab/meso/internal/storage"
)

// Config stores tool configuration.
type Config struct {
	// DataDir is the root directory for data storage; meso.db and the live
	// session file live here. Supports ~ expansion. Defaults to
	// ~/.local/share/meso.
	DataDir string `json:"data_dir,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded.
// MESO_DATA_DIR overrides the config file; the default is the standard
// XDG data directory.
func (c *Config) GetDataDir() string {
	if dir := os.Getenv("MESO_DATA_DIR"); dir != "" {
		return ExpandPath(dir)
	}
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
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

// OpenStorage opens the SQLite store under the configured data directory.
func (c *Config) OpenStorage() (storage.Repository, error) {
	dbPath := filepath.Join(c.GetDataDir(), "meso.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "meso", "config.json")
}

// Load reads config from disk.
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
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
