package silt

import (
	"log/slog"

	"github.com/aretw0/silt/internal/platform"
	"github.com/aretw0/silt/pkg/core"
)

// Version exposes the version of the library.
const Version = "0.1.0"

// --- Types ---

// Layout is a public alias for the repository path layout.
type Layout = core.Layout

// NotARepositoryError is a public alias for the locate miss error.
type NotARepositoryError = core.NotARepositoryError

// IOError is a public alias for the wrapped filesystem failure.
type IOError = core.IOError

// --- Configuration ---

// Option defines a functional option for configuring silt.
type Option = platform.Option

// WithLogger sets the logger used during initialization.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithDefaultBranch sets the branch a freshly created HEAD points to.
func WithDefaultBranch(name string) Option {
	return platform.WithDefaultBranch(name)
}

// --- Operations ---

// Init establishes the repository skeleton rooted at path. It is
// idempotent and never overwrites existing metadata files.
func Init(path string, opts ...Option) (Layout, error) {
	return platform.Init(path, opts...)
}

// Locate resolves the repository containing startDir by walking the
// ancestor chain up to the filesystem root.
func Locate(startDir string) (Layout, error) {
	return platform.Locate(startDir)
}

// LocateFromCwd resolves the repository containing the current working
// directory.
func LocateFromCwd() (Layout, error) {
	return platform.LocateFromCwd()
}

// FindRepoRoot looks upwards from startDir for the nearest directory
// containing a metadata directory and returns its path.
func FindRepoRoot(startDir string) (string, error) {
	return platform.FindRoot(startDir)
}

// IsNotARepository reports whether err is (or wraps) a NotARepositoryError.
func IsNotARepository(err error) bool {
	return core.IsNotARepository(err)
}

// --- Utils ---

// NewLayout constructs a Layout rooted at baseDir without touching the
// filesystem.
func NewLayout(baseDir string) Layout {
	return core.NewLayout(baseDir)
}
