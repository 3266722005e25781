package core

import (
	"errors"
	"fmt"
)

// NotARepositoryError reports that a directory and none of its ancestors
// contain a metadata directory. It carries the original starting path of
// the search, not the last ancestor probed, so the message points at the
// place the user actually asked about.
type NotARepositoryError struct {
	Start string
}

func (e *NotARepositoryError) Error() string {
	return fmt.Sprintf("not a silt repository (or any parent up to the filesystem root): %s", e.Start)
}

// IsNotARepository reports whether err is (or wraps) a NotARepositoryError.
// Callers use this to tell a recoverable "no repository here" condition
// apart from a real filesystem failure.
func IsNotARepository(err error) bool {
	var target *NotARepositoryError
	return errors.As(err, &target)
}

// IOError wraps an underlying filesystem failure (permission denied,
// path collision, disk full) with the operation and path that triggered
// it. The cause is preserved for errors.Is/errors.As chaining.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
