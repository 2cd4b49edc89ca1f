package primary

import "context"

// BackupService defines the primary port for backup and restore.
type BackupService interface {
	// CreateBackup asks the user for a destination and writes a
	// timestamped backup folder there.
	CreateBackup(ctx context.Context) (*BackupResult, error)

	// RestoreBackup asks the user for a backup folder, confirms the
	// destructive overwrite, replaces the live data, and restarts the
	// process. Unsaved in-memory state is discarded by intent.
	RestoreBackup(ctx context.Context) (*BackupResult, error)
}

// BackupResult reports the affected backup folder, or that the user
// canceled a dialog (including declining the restore confirmation).
type BackupResult struct {
	Canceled bool
	Path     string
}
