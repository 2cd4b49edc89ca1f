package secondary

// AssetStore manages the on-disk asset tree, one subdirectory per idea.
type AssetStore interface {
	// CopyIn copies src into the idea's asset directory, creating it if
	// needed. Name collisions overwrite silently. Returns the destination
	// path.
	CopyIn(src string, ideaID int64) (string, error)

	// Remove deletes a previously copied asset file.
	Remove(path string) error
}

// BackupStore creates and restores backup folders containing the database
// file, the asset tree, and a metadata descriptor.
type BackupStore interface {
	// Create writes a timestamped backup folder under destDir and returns
	// its path.
	Create(destDir string) (string, error)

	// Validate checks that backupPath looks like a backup folder (a
	// database file must be present).
	Validate(backupPath string) error

	// Restore overwrites the live database file and asset tree from
	// backupPath.
	Restore(backupPath string) error
}

// FileWriter writes export payloads to user-chosen paths.
type FileWriter interface {
	WriteFile(path string, data []byte) error
}
