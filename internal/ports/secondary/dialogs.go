package secondary

// Dialogs abstracts the hosting shell's file-picker, save-dialog and
// confirmation primitives. Cancellation is a distinct signal, never an
// error.
type Dialogs interface {
	// PickFile asks the user for an existing file.
	PickFile(title string) (path string, canceled bool, err error)

	// PickDirectory asks the user for a directory.
	PickDirectory(title string) (path string, canceled bool, err error)

	// SaveFile asks the user where to write a file, suggesting defaultName.
	SaveFile(title, defaultName string) (path string, canceled bool, err error)

	// Confirm asks the user to approve a destructive action.
	Confirm(message, detail string) (ok bool, err error)
}

// Restarter relaunches the process, used after a restore replaces the
// on-disk database out from under the live image.
type Restarter interface {
	Restart() error
}
