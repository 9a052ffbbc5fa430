package selfdestruct

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	t.Parallel()

	path, err := Path()
	require.NoError(t, err)
	assert.NotEmpty(t, path)
	assert.True(t, filepath.IsAbs(path))
}

func TestRemove(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "template-init")
		require.NoError(t, os.WriteFile(path, []byte("binary"), 0o755))

		require.NoError(t, Remove(path))
		assert.NoFileExists(t, path)
	})

	t.Run("missing file reports an error", func(t *testing.T) {
		t.Parallel()
		err := Remove(filepath.Join(t.TempDir(), "gone"))
		assert.Error(t, err)
	})
}
