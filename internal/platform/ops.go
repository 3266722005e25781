package platform

import (
	"context"
	"os"

	"github.com/aretw0/silt/pkg/adapters/fs"
	"github.com/aretw0/silt/pkg/core"
)

// Init establishes the repository skeleton rooted at path. The directory
// does not need to exist and does not need to be a repository yet;
// re-running Init on an initialized repository is a no-op.
//
// It returns the Layout of the initialized repository.
func Init(path string, opts ...Option) (core.Layout, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	repo := fs.NewRepository(fs.Config{
		Path:          path,
		DefaultBranch: o.defaultBranch,
		Logger:        o.logger,
	})

	if err := repo.Initialize(context.Background()); err != nil {
		return core.Layout{}, err
	}

	return repo.Layout(), nil
}

// Locate resolves the repository that contains startDir by walking the
// ancestor chain, and returns a Layout rooted at the match.
func Locate(startDir string) (core.Layout, error) {
	root, err := FindRoot(startDir)
	if err != nil {
		return core.Layout{}, err
	}
	return core.NewLayout(root), nil
}

// LocateFromCwd resolves the repository that contains the process's
// current working directory.
func LocateFromCwd() (core.Layout, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return core.Layout{}, &core.IOError{Op: "getwd", Path: ".", Err: err}
	}
	return Locate(cwd)
}
