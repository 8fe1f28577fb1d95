// ABOUTME: Liftlog configuration management: data directory and store paths.
// ABOUTME: JSON config under the XDG config dir with ~ expansion.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/liftlog/internal/storage"
)

// Config stores liftlog tool configuration.
type Config struct {
	// DataDir is the root directory for the store file and backups.
	// Supports ~ expansion. Defaults to ~/.local/share/liftlog.
	DataDir string `json:"data_dir,omitempty"`

	// SeedOnInit loads the starter exercise catalog when a store is opened.
	// Seeding is idempotent, so leaving this on is harmless.
	SeedOnInit bool `json:"seed_on_init,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DBPath returns the store file location.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "liftlog.db")
}

// BackupDir returns the directory backups are written to.
func (c *Config) BackupDir() string {
	return filepath.Join(c.GetDataDir(), "backups")
}

// OpenStore opens the configured store, seeding the starter catalog when
// enabled.
func (c *Config) OpenStore() (*storage.DB, error) {
	store, err := storage.Open(c.DBPath())
	if err != nil {
		return nil, err
	}
	if c.SeedOnInit {
		if _, err := store.SeedStarterCatalog(); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("seed starter catalog: %w", err)
		}
	}
	return store, nil
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
	return filepath.Join(configDir, "liftlog", "config.json")
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
