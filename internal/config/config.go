package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvDataDir overrides the data directory when set.
const EnvDataDir = "CREATORVAULT_DATA"

// Config describes where CreatorVault keeps its data: the single-file
// database image and the per-idea asset tree both live under DataDir.
type Config struct {
	Version string `json:"version,omitempty"`
	DataDir string `json:"data_dir"`
}

// Load reads a config.json from the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Resolve determines the data directory and ensures it exists.
// Resolution order: CREATORVAULT_DATA env var, then a data_dir redirect in
// <user-config-dir>/creatorvault/config.json, then the default directory.
func Resolve() (*Config, error) {
	dir := os.Getenv(EnvDataDir)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user config directory: %w", err)
		}
		dir = filepath.Join(base, "creatorvault")
		if cfg, err := Load(filepath.Join(dir, "config.json")); err == nil && cfg.DataDir != "" {
			dir = cfg.DataDir
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Config{DataDir: dir}, nil
}

// DatabasePath returns the path of the single-file database image.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "database.sqlite")
}

// AssetsDir returns the root of the per-idea asset tree.
func (c *Config) AssetsDir() string {
	return filepath.Join(c.DataDir, "assets")
}
