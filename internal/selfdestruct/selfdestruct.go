// Package selfdestruct removes the initializer's own binary once the
// template has been customized. The binary ships inside the template
// checkout and has no purpose after a successful run.
package selfdestruct

import (
	"fmt"
	"os"
	"path/filepath"
)

// Path returns the resolved location of the running binary. Symlinks
// are followed so the real file is removed, not the link.
func Path() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved, nil
	}
	return exe, nil
}

// Remove deletes the file at path. On Linux removing the running
// binary succeeds; the process keeps executing from the unlinked
// inode until it exits.
func Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
