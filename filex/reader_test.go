package filex

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	t.Run("should read the file bytes", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/tmp/a.txt", []byte("hello"), 0o644))

		content, err := NewReader(fsys).ReadFile("/tmp/a.txt")
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), content)
	})

	t.Run("should read an empty file", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/tmp/empty.bin", []byte{}, 0o644))

		content, err := NewReader(fsys).ReadFile("/tmp/empty.bin")
		require.NoError(t, err)
		assert.Empty(t, content)
	})

	t.Run("should return a not found error unmodified", func(t *testing.T) {
		fsys := afero.NewMemMapFs()

		_, err := NewReader(fsys).ReadFile("/tmp/missing.txt")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.False(t, IsPermission(err))
	})
}
