// Package core holds the domain model of a silt repository: the pure
// path layout of the metadata directory and the error taxonomy shared by
// every adapter.
package core

import "path/filepath"

// Well-known names inside the metadata directory.
const (
	// GitDirName is the metadata directory that marks a repository root.
	GitDirName = ".git"

	headName        = "HEAD"
	descriptionName = "description"
	configName      = "config"
	refsName        = "refs"
	headsName       = "heads"
	tagsName        = "tags"
	objectsName     = "objects"
	infoName        = "info"
	packName        = "pack"
)

// DefaultBranch is the branch HEAD points to in a freshly initialized
// repository.
const DefaultBranch = "main"

// Layout computes the well-known paths of a repository rooted at a base
// directory. It performs no I/O: constructing a Layout never touches the
// filesystem and never fails, and every accessor is a deterministic join
// of the base directory with a fixed suffix. Existence checks are the
// caller's responsibility.
type Layout struct {
	baseDir string
}

// NewLayout returns a Layout rooted at baseDir. The directory does not
// need to exist; it does not even need to be a repository yet.
func NewLayout(baseDir string) Layout {
	return Layout{baseDir: baseDir}
}

// Root returns the base directory the layout was constructed from.
func (l Layout) Root() string {
	return l.baseDir
}

// GitDir returns the path of the metadata directory (.git).
func (l Layout) GitDir() string {
	return filepath.Join(l.baseDir, GitDirName)
}

// Head returns the path of the HEAD file (.git/HEAD).
func (l Layout) Head() string {
	return filepath.Join(l.GitDir(), headName)
}

// Description returns the path of the description file (.git/description).
func (l Layout) Description() string {
	return filepath.Join(l.GitDir(), descriptionName)
}

// Config returns the path of the repository config file (.git/config).
func (l Layout) Config() string {
	return filepath.Join(l.GitDir(), configName)
}

// Refs returns the path of the refs directory (.git/refs).
func (l Layout) Refs() string {
	return filepath.Join(l.GitDir(), refsName)
}

// Heads returns the path of the branch refs directory (.git/refs/heads).
func (l Layout) Heads() string {
	return filepath.Join(l.Refs(), headsName)
}

// Tags returns the path of the tag refs directory (.git/refs/tags).
func (l Layout) Tags() string {
	return filepath.Join(l.Refs(), tagsName)
}

// Objects returns the path of the object database (.git/objects).
func (l Layout) Objects() string {
	return filepath.Join(l.GitDir(), objectsName)
}

// ObjectsInfo returns the path of .git/objects/info.
func (l Layout) ObjectsInfo() string {
	return filepath.Join(l.Objects(), infoName)
}

// ObjectsPack returns the path of .git/objects/pack.
func (l Layout) ObjectsPack() string {
	return filepath.Join(l.Objects(), packName)
}
