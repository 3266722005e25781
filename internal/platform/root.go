// Package platform wires the silt domain to the filesystem adapter and
// holds the repository discovery walk.
package platform

import (
	"os"
	"path/filepath"

	"github.com/aretw0/silt/pkg/core"
)

// FindRoot looks upwards from startDir for a directory containing a
// metadata directory (.git). The starting directory itself is the first
// candidate, then each parent in turn up to and including the filesystem
// root. The walk is an explicit parent loop rather than a string split so
// behavior is identical across platforms with different root conventions.
//
// If no ancestor qualifies, the error is a *core.NotARepositoryError
// carrying startDir as given, not the last ancestor probed.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &core.IOError{Op: "resolve", Path: startDir, Err: err}
	}

	dir := abs
	for {
		ok, err := containsGitDir(dir)
		if err != nil {
			return "", err
		}
		if ok {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", &core.NotARepositoryError{Start: startDir}
}

// containsGitDir reports whether dir exists, is a directory, and holds a
// .git entry. Probes are read-only; only genuine stat failures (not
// plain non-existence) surface as errors.
func containsGitDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &core.IOError{Op: "stat", Path: dir, Err: err}
	}
	if !info.IsDir() {
		return false, nil
	}

	gitDir := filepath.Join(dir, core.GitDirName)
	if _, err := os.Stat(gitDir); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &core.IOError{Op: "stat", Path: gitDir, Err: err}
	}
	return true, nil
}
