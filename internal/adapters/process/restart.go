// Package process implements the restarter port by relaunching the current
// executable.
package process

import (
	"fmt"
	"os"
	"os/exec"
)

// Relauncher restarts the running process with its original arguments. Used
// after a restore replaces the persisted database under the live image; the
// replacement process loads the restored file at startup.
type Relauncher struct{}

// New creates a relauncher.
func New() *Relauncher {
	return &Relauncher{}
}

// Restart spawns a replacement process and exits. It only returns on spawn
// failure.
func (r *Relauncher) Restart() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}

	cmd := exec.Command(exe, os.Args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to relaunch: %w", err)
	}

	os.Exit(0)
	return nil
}
