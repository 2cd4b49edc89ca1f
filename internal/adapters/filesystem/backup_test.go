package filesystem_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/creatorvault/internal/adapters/filesystem"
)

func TestBackupCreateLayout(t *testing.T) {
	live := t.TempDir()
	dbPath := filepath.Join(live, "database.sqlite")
	assetsDir := filepath.Join(live, "assets")
	writeFile(t, dbPath, "db image")
	writeFile(t, filepath.Join(assetsDir, "3", "clip.mp3"), "audio")

	store := filesystem.NewBackupStore(dbPath, assetsDir, "1.2.3")

	dest := t.TempDir()
	backupPath, err := store.Create(dest)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(backupPath), "CreatorVault_Backup_") {
		t.Errorf("backup folder name = %q", filepath.Base(backupPath))
	}

	if data, err := os.ReadFile(filepath.Join(backupPath, "database.sqlite")); err != nil || string(data) != "db image" {
		t.Errorf("database copy wrong: %q, %v", data, err)
	}
	if data, err := os.ReadFile(filepath.Join(backupPath, "assets", "3", "clip.mp3")); err != nil || string(data) != "audio" {
		t.Errorf("asset tree copy wrong: %q, %v", data, err)
	}

	raw, err := os.ReadFile(filepath.Join(backupPath, "metadata.json"))
	if err != nil {
		t.Fatalf("metadata missing: %v", err)
	}
	var meta struct {
		Version string `json:"version"`
		Type    string `json:"type"`
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		t.Fatalf("metadata not valid json: %v", err)
	}
	if meta.Version != "1.2.3" {
		t.Errorf("metadata version = %q", meta.Version)
	}
	if meta.Type != "CreatorVault_Backup" {
		t.Errorf("metadata type = %q", meta.Type)
	}

	if err := store.Validate(backupPath); err != nil {
		t.Errorf("Validate rejected a fresh backup: %v", err)
	}
}

func TestBackupValidateRejectsArbitraryFolder(t *testing.T) {
	store := filesystem.NewBackupStore("/nonexistent/db", "/nonexistent/assets", "dev")

	if err := store.Validate(t.TempDir()); err == nil {
		t.Error("expected validation failure for folder without database.sqlite")
	}
}

func TestBackupRestoreOverwritesLiveData(t *testing.T) {
	live := t.TempDir()
	dbPath := filepath.Join(live, "database.sqlite")
	assetsDir := filepath.Join(live, "assets")
	writeFile(t, dbPath, "current db")
	writeFile(t, filepath.Join(assetsDir, "1", "old.txt"), "old asset")

	backup := filepath.Join(t.TempDir(), "CreatorVault_Backup_2026-01-01_1")
	writeFile(t, filepath.Join(backup, "database.sqlite"), "backed up db")
	writeFile(t, filepath.Join(backup, "assets", "1", "restored.txt"), "restored asset")

	store := filesystem.NewBackupStore(dbPath, assetsDir, "dev")
	if err := store.Restore(backup); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	if data, _ := os.ReadFile(dbPath); string(data) != "backed up db" {
		t.Errorf("db after restore = %q", data)
	}
	if data, _ := os.ReadFile(filepath.Join(assetsDir, "1", "restored.txt")); string(data) != "restored asset" {
		t.Errorf("asset after restore = %q", data)
	}
	// Overwrite semantics: files absent from the backup are not cleaned up.
	if _, err := os.Stat(filepath.Join(assetsDir, "1", "old.txt")); err != nil {
		t.Errorf("pre-existing asset removed by restore: %v", err)
	}
}
