package filesystem

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
)

// backupMetadata describes a backup folder.
type backupMetadata struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
}

const backupType = "CreatorVault_Backup"

// BackupStore creates and restores backup folders. A backup folder holds
// database.sqlite, an assets/ tree, and metadata.json.
type BackupStore struct {
	dbPath    string
	assetsDir string
	version   string
}

// NewBackupStore creates a store for the given live data locations.
func NewBackupStore(dbPath, assetsDir, version string) *BackupStore {
	return &BackupStore{dbPath: dbPath, assetsDir: assetsDir, version: version}
}

// Create writes a timestamped backup folder under destDir and returns its
// path. The folder name carries both the date and a millisecond suffix so
// repeated backups on the same day never collide.
func (s *BackupStore) Create(destDir string) (string, error) {
	now := time.Now()
	name := fmt.Sprintf("CreatorVault_Backup_%s_%d",
		now.Format("2006-01-02"), now.UnixMilli())
	backupPath := filepath.Join(destDir, name)

	if err := os.MkdirAll(backupPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup folder: %w", err)
	}

	if _, err := os.Stat(s.dbPath); err == nil {
		if err := copyFile(s.dbPath, filepath.Join(backupPath, "database.sqlite")); err != nil {
			return "", fmt.Errorf("failed to back up database: %w", err)
		}
	}

	if err := copyTree(s.assetsDir, filepath.Join(backupPath, "assets")); err != nil {
		return "", fmt.Errorf("failed to back up assets: %w", err)
	}

	meta, err := json.MarshalIndent(backupMetadata{
		Version:   s.version,
		Timestamp: now.UTC().Format(time.RFC3339),
		Type:      backupType,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode backup metadata: %w", err)
	}
	if err := atomic.WriteFile(filepath.Join(backupPath, "metadata.json"), bytes.NewReader(meta)); err != nil {
		return "", fmt.Errorf("failed to write backup metadata: %w", err)
	}

	return backupPath, nil
}

// Validate checks that backupPath contains a database file.
func (s *BackupStore) Validate(backupPath string) error {
	if _, err := os.Stat(filepath.Join(backupPath, "database.sqlite")); err != nil {
		return fmt.Errorf("invalid backup folder: database.sqlite not found")
	}
	return nil
}

// Restore overwrites the live database file and asset tree from backupPath.
// Existing asset files not present in the backup are left in place.
func (s *BackupStore) Restore(backupPath string) error {
	if err := s.Validate(backupPath); err != nil {
		return err
	}

	if err := copyFile(filepath.Join(backupPath, "database.sqlite"), s.dbPath); err != nil {
		return fmt.Errorf("failed to restore database: %w", err)
	}

	if err := copyTree(filepath.Join(backupPath, "assets"), s.assetsDir); err != nil {
		return fmt.Errorf("failed to restore assets: %w", err)
	}
	return nil
}
