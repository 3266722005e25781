package core

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"
)

func TestNotARepositoryError(t *testing.T) {
	err := &NotARepositoryError{Start: "/some/start/dir"}

	if !strings.Contains(err.Error(), "/some/start/dir") {
		t.Errorf("message should carry the starting path, got %q", err.Error())
	}

	if !IsNotARepository(err) {
		t.Error("IsNotARepository should match the error directly")
	}

	// Detection must survive wrapping.
	wrapped := fmt.Errorf("resolving repository: %w", err)
	if !IsNotARepository(wrapped) {
		t.Error("IsNotARepository should match through wrapping")
	}

	if IsNotARepository(errors.New("boom")) {
		t.Error("IsNotARepository should reject unrelated errors")
	}
}

func TestIOError(t *testing.T) {
	cause := fs.ErrPermission
	err := &IOError{Op: "mkdir", Path: "/repo/.git", Err: cause}

	if !errors.Is(err, fs.ErrPermission) {
		t.Error("IOError should unwrap to its cause")
	}

	var ioErr *IOError
	if !errors.As(fmt.Errorf("init: %w", err), &ioErr) {
		t.Fatal("errors.As should find the IOError through wrapping")
	}
	if ioErr.Path != "/repo/.git" {
		t.Errorf("Path = %q, want %q", ioErr.Path, "/repo/.git")
	}

	if IsNotARepository(err) {
		t.Error("an I/O failure is not a NotARepositoryError")
	}
}
