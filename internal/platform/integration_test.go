package platform_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/silt/internal/platform"
	"github.com/aretw0/silt/pkg/core"
)

// TestInitThenLocate covers the end-to-end contract: initializing an
// empty directory and locating from it returns the same directory, with
// the full skeleton on disk.
func TestInitThenLocate(t *testing.T) {
	tempDir := t.TempDir()

	layout, err := platform.Init(tempDir)
	require.NoError(t, err)
	assert.Equal(t, tempDir, layout.Root())

	located, err := platform.Locate(tempDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(tempDir), filepath.Clean(located.Root()))

	for _, file := range []string{located.Head(), located.Description(), located.Config()} {
		info, err := os.Stat(file)
		require.NoError(t, err, "expected file %s", file)
		assert.False(t, info.IsDir(), "%s should be a file", file)
	}
	for _, dir := range []string{located.Heads(), located.Tags(), located.ObjectsInfo(), located.ObjectsPack()} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "expected directory %s", dir)
		assert.True(t, info.IsDir(), "%s should be a directory", dir)
	}
}

// TestLocateFromNestedDir covers discovery from deep inside a work tree.
func TestLocateFromNestedDir(t *testing.T) {
	tempDir := t.TempDir()

	_, err := platform.Init(tempDir)
	require.NoError(t, err)

	nested := filepath.Join(tempDir, "src", "deeply", "nested")
	require.NoError(t, os.MkdirAll(nested, 0755))

	layout, err := platform.Locate(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(tempDir), filepath.Clean(layout.Root()))
}

// TestInitHonorsDefaultBranchOption verifies the option only affects a
// brand new HEAD.
func TestInitHonorsDefaultBranchOption(t *testing.T) {
	tempDir := t.TempDir()

	layout, err := platform.Init(tempDir, platform.WithDefaultBranch("develop"))
	require.NoError(t, err)

	head, err := os.ReadFile(layout.Head())
	require.NoError(t, err)
	assert.Equal(t, "ref: refs/heads/develop", string(head))

	// Re-init with a different branch must not rewrite HEAD.
	_, err = platform.Init(tempDir, platform.WithDefaultBranch("other"))
	require.NoError(t, err)

	head, err = os.ReadFile(layout.Head())
	require.NoError(t, err)
	assert.Equal(t, "ref: refs/heads/develop", string(head))
}

// TestLocateMissError verifies the error taxonomy on a miss.
func TestLocateMissError(t *testing.T) {
	tempDir := t.TempDir()
	start := filepath.Join(tempDir, "plain")
	require.NoError(t, os.MkdirAll(start, 0755))

	_, err := platform.Locate(start)
	require.Error(t, err)
	assert.True(t, core.IsNotARepository(err), "expected NotARepository, got: %v", err)
	assert.Contains(t, err.Error(), start)
}
