// Package fs implements repository skeleton creation on the local
// filesystem. It is the only package in silt that writes to disk.
package fs

import (
	"context"
	"log/slog"
	"os"

	"github.com/aretw0/silt/pkg/core"
)

// headRefPrefix is what HEAD contains in front of the branch ref.
const headRefPrefix = "ref: refs/heads/"

// descriptionPlaceholder is the default content of .git/description.
const descriptionPlaceholder = "Unnamed repository; edit this file 'description' to name the repository.\n"

// Repository creates and maintains the on-disk skeleton of a repository.
type Repository struct {
	layout core.Layout
	config Config
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path          string
	DefaultBranch string // branch HEAD points to on first init; defaults to core.DefaultBranch
	Logger        *slog.Logger
}

// NewRepository creates a new filesystem-backed repository rooted at
// config.Path. No I/O happens until Initialize is called.
func NewRepository(config Config) *Repository {
	if config.DefaultBranch == "" {
		config.DefaultBranch = core.DefaultBranch
	}
	return &Repository{
		layout: core.NewLayout(config.Path),
		config: config,
	}
}

// Layout returns the path layout of the repository.
func (r *Repository) Layout() core.Layout {
	return r.layout
}

// Initialize establishes the full metadata skeleton:
//
//	.git/refs/heads, .git/refs/tags, .git/objects/info, .git/objects/pack
//	.git/HEAD, .git/description, .git/config
//
// It is idempotent: directories that already exist are left alone, and a
// file that already exists is never overwritten. Re-initializing a
// repository must not reset a HEAD that points at another branch or a
// detached commit. Directories are created before any file, since the
// files live inside the metadata directory the mkdir calls establish.
//
// On failure the first underlying error is returned as a *core.IOError
// and nothing is rolled back; a partial skeleton is recovered by simply
// running Initialize again.
func (r *Repository) Initialize(ctx context.Context) error {
	dirs := []string{
		r.layout.Heads(),
		r.layout.Tags(),
		r.layout.ObjectsInfo(),
		r.layout.ObjectsPack(),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &core.IOError{Op: "mkdir", Path: dir, Err: err}
		}
	}

	files := []struct {
		path    string
		content []byte
	}{
		{r.layout.Head(), []byte(headRefPrefix + r.config.DefaultBranch)},
		{r.layout.Description(), []byte(descriptionPlaceholder)},
		{r.layout.Config(), nil},
	}
	for _, f := range files {
		created, err := ensureFile(f.path, f.content)
		if err != nil {
			return &core.IOError{Op: "create", Path: f.path, Err: err}
		}
		if created && r.config.Logger != nil {
			r.config.Logger.Debug("created repository file", "path", f.path)
		}
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("repository skeleton ready", "path", r.layout.Root())
	}
	return nil
}

// ensureFile writes content to path only if the file does not exist yet.
// It reports whether the file was created. An explicit stat guards the
// write, never a blind overwrite.
func ensureFile(path string, content []byte) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, err
	}
	return true, nil
}
