// Package template applies the customization steps to the template
// tree: the package directory rename, the manifest rewrite, and the
// package marker file. Steps are independent; a failed step leaves
// whatever the earlier steps already changed in place.
package template

import (
	"fmt"
	"os"
	"path/filepath"
)

// RenamePackage moves the package directory sourceDir/oldName to
// sourceDir/newName as a single filesystem rename. It fails without
// touching anything when the source is missing or the destination
// already exists; existing directories are never overwritten.
func RenamePackage(sourceDir, oldName, newName string) error {
	oldPath := filepath.Join(sourceDir, oldName)
	newPath := filepath.Join(sourceDir, newName)

	if _, err := os.Stat(oldPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("package directory not found: %s", oldPath)
		}
		return fmt.Errorf("checking %s: %w", oldPath, err)
	}

	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("target directory already exists: %s", newPath)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("renaming %s to %s: %w", oldPath, newPath, err)
	}
	return nil
}
