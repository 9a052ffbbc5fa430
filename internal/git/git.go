// Package git provides the repository checks and the history reset
// for the initializer. Detection uses the go-git library; the re-init
// shells out to the git CLI so the fresh repository picks up the
// user's global configuration exactly as `git init` run by hand would.
package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

// MetadataDir is the repository metadata directory removed during a reset.
const MetadataDir = ".git"

// IsRepository reports whether dir itself is a git repository.
// Parent directories are deliberately not searched: the reset must
// only ever touch the template root.
func IsRepository(dir string) bool {
	_, err := gogit.PlainOpen(dir)
	return err == nil
}

// RemoveHistory deletes the repository metadata directory under dir if
// present. Returns true when a directory was actually removed.
func RemoveHistory(dir string) (bool, error) {
	gitPath := filepath.Join(dir, MetadataDir)
	if _, err := os.Stat(gitPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking %s: %w", gitPath, err)
	}

	if err := os.RemoveAll(gitPath); err != nil {
		return false, fmt.Errorf("removing %s: %w", gitPath, err)
	}
	return true, nil
}

// Init creates a fresh repository in dir by invoking the git CLI.
func Init(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, "git", "init")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("git init: %w: %s", err, msg)
		}
		return fmt.Errorf("git init: %w", err)
	}
	return nil
}
