package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactTargetsAreRelative(t *testing.T) {
	for _, target := range ArtifactTargets() {
		assert.False(t, filepath.IsAbs(target.Path), "%s must be relative to the project root", target.Name)
		assert.NotEmpty(t, target.Description)
	}
}

func TestVenvTargetPath(t *testing.T) {
	assert.Equal(t, filepath.Join("local", "venv"), VenvTarget().Path)
}

func TestProjectRoot(t *testing.T) {
	// The resolver anchors on the running binary — here the test binary —
	// so the portable check is that it matches the documented derivation
	// (grandparent of the symlink-resolved executable) and passes the root
	// guard. The cmd tests swap the resolver out to point at fixture trees
	// instead, which is why this lives here.
	root, err := ProjectRoot()
	require.NoError(t, err)

	exe, err := os.Executable()
	require.NoError(t, err)
	exe, err = filepath.EvalSymlinks(exe)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(filepath.Dir(exe)), root)
	assert.True(t, filepath.IsAbs(root))
}

func TestValidateRoot(t *testing.T) {
	t.Run("accepts a normal directory", func(t *testing.T) {
		require.NoError(t, ValidateRoot(t.TempDir()))
	})

	t.Run("rejects empty", func(t *testing.T) {
		require.Error(t, ValidateRoot(""))
	})

	t.Run("rejects the filesystem root", func(t *testing.T) {
		require.Error(t, ValidateRoot(string(filepath.Separator)))
	})
}
