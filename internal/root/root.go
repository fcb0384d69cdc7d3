// Package root locates the project directory pakk commands operate on.
package root

import (
	"os"
	"path/filepath"

	"github.com/conn-castle/pakk/internal/config"
)

// FindProjectRoot walks up from start looking for a directory containing
// pakk.toml. Returns the directory, whether one was found, and any stat
// error other than absence.
func FindProjectRoot(start string) (string, bool, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, config.FileName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", false, &os.PathError{Op: "stat", Path: candidate, Err: os.ErrInvalid}
			}
			return dir, true, nil
		}
		if !os.IsNotExist(err) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// FindRepoRoot resolves the directory new projects should be created in:
// the enclosing pakk project when one exists, else the enclosing git
// checkout, else start itself.
func FindRepoRoot(start string) (string, error) {
	dir, found, err := FindProjectRoot(start)
	if err != nil {
		return "", err
	}
	if found {
		return dir, nil
	}

	abs, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	dir = abs
	for {
		// .git may be a directory or, in worktrees, a file.
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return abs, nil
		}
		dir = parent
	}
}
