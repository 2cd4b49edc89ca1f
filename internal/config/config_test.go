package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/creatorvault/internal/config"
)

func TestResolveHonorsEnvOverride(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	t.Setenv(config.EnvDataDir, dir)

	cfg, err := config.Resolve()
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.DataDir != dir {
		t.Errorf("data dir = %q, want %q", cfg.DataDir, dir)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data dir not created: %v", err)
	}
}

func TestPathsDeriveFromDataDir(t *testing.T) {
	cfg := &config.Config{DataDir: "/data"}

	if got := cfg.DatabasePath(); got != filepath.Join("/data", "database.sqlite") {
		t.Errorf("database path = %q", got)
	}
	if got := cfg.AssetsDir(); got != filepath.Join("/data", "assets") {
		t.Errorf("assets dir = %q", got)
	}
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadReadsDataDirRedirect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"data_dir": "/elsewhere"}`), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/elsewhere" {
		t.Errorf("data_dir = %q", cfg.DataDir)
	}
}
