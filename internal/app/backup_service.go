package app

import (
	"context"
	"fmt"

	"github.com/example/creatorvault/internal/ports/primary"
	"github.com/example/creatorvault/internal/ports/secondary"
)

// BackupServiceImpl implements the BackupService interface.
type BackupServiceImpl struct {
	store     secondary.BackupStore
	dialogs   secondary.Dialogs
	restarter secondary.Restarter
}

// NewBackupService creates a new BackupService with injected dependencies.
func NewBackupService(
	store secondary.BackupStore,
	dialogs secondary.Dialogs,
	restarter secondary.Restarter,
) *BackupServiceImpl {
	return &BackupServiceImpl{store: store, dialogs: dialogs, restarter: restarter}
}

// CreateBackup picks a destination and writes a backup folder there.
func (s *BackupServiceImpl) CreateBackup(ctx context.Context) (*primary.BackupResult, error) {
	destDir, canceled, err := s.dialogs.PickDirectory("Select Backup Location")
	if err != nil {
		return nil, fmt.Errorf("failed to pick backup location: %w", err)
	}
	if canceled {
		return &primary.BackupResult{Canceled: true}, nil
	}

	path, err := s.store.Create(destDir)
	if err != nil {
		return nil, err
	}
	return &primary.BackupResult{Path: path}, nil
}

// RestoreBackup picks a backup folder, validates it, confirms the overwrite,
// restores, and restarts so the replacement process loads the restored file.
// Declining the confirmation is a cancellation, not an error.
func (s *BackupServiceImpl) RestoreBackup(ctx context.Context) (*primary.BackupResult, error) {
	backupPath, canceled, err := s.dialogs.PickDirectory("Select Backup Folder to Restore from")
	if err != nil {
		return nil, fmt.Errorf("failed to pick backup folder: %w", err)
	}
	if canceled {
		return &primary.BackupResult{Canceled: true}, nil
	}

	if err := s.store.Validate(backupPath); err != nil {
		return nil, err
	}

	ok, err := s.dialogs.Confirm(
		"This will OVERWRITE all current data. Are you sure?",
		"The application will restart after restoration.")
	if err != nil {
		return nil, fmt.Errorf("failed to confirm restore: %w", err)
	}
	if !ok {
		return &primary.BackupResult{Canceled: true}, nil
	}

	if err := s.store.Restore(backupPath); err != nil {
		return nil, err
	}

	if err := s.restarter.Restart(); err != nil {
		return nil, fmt.Errorf("restored but failed to restart: %w", err)
	}
	return &primary.BackupResult{Path: backupPath}, nil
}
