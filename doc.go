// Package silt is the Composition Root for the silt library.
//
// It connects the pure domain model (repository path layout and error
// taxonomy) with the filesystem adapter that writes the on-disk skeleton.
//
// Philosophy:
//
// silt models one thing: the metadata directory of a git-style
// repository. It answers two questions, "which directory is the
// repository root?" and "how do I establish a fresh skeleton without
// destroying what is already there?", and deliberately nothing else.
// Object storage, ref resolution and config parsing belong to higher
// layers.
//
// Features:
//
//   - **Pure Layout**: path computation with no I/O (`core.Layout`).
//   - **Ancestor Discovery**: explicit parent walk from any starting
//     directory up to the filesystem root.
//   - **Idempotent Init**: re-running initialization any number of times
//     equals running it once; existing HEAD, description and config are
//     never overwritten.
//   - **Typed Errors**: callers distinguish "no repository here"
//     (NotARepositoryError) from real filesystem failures (IOError).
//
// Usage:
//
//	// Initialize a repository skeleton
//	layout, err := silt.Init("./project",
//		silt.WithLogger(logger),
//	)
//
//	// Resolve the enclosing repository
//	layout, err := silt.Locate(cwd)
package silt
