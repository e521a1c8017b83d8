package fingerprint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile(t *testing.T) {
	t.Run("digest is stable for identical content", func(t *testing.T) {
		tempDir := t.TempDir()
		a := filepath.Join(tempDir, "a.pdf")
		b := filepath.Join(tempDir, "b.pdf")
		require.NoError(t, os.WriteFile(a, []byte("chapter text"), 0644))
		require.NoError(t, os.WriteFile(b, []byte("chapter text"), 0644))

		da, err := File(a)
		require.NoError(t, err)
		db, err := File(b)
		require.NoError(t, err)

		assert.Equal(t, da, db)
		assert.Len(t, da, 64)
	})

	t.Run("digest differs for different content", func(t *testing.T) {
		tempDir := t.TempDir()
		a := filepath.Join(tempDir, "a.pdf")
		b := filepath.Join(tempDir, "b.pdf")
		require.NoError(t, os.WriteFile(a, []byte("chapter one"), 0644))
		require.NoError(t, os.WriteFile(b, []byte("chapter two"), 0644))

		da, err := File(a)
		require.NoError(t, err)
		db, err := File(b)
		require.NoError(t, err)

		assert.NotEqual(t, da, db)
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := File(filepath.Join(t.TempDir(), "missing.pdf"))
		assert.Error(t, err)
	})
}

func TestBytes(t *testing.T) {
	t.Run("matches File digest", func(t *testing.T) {
		tempDir := t.TempDir()
		path := filepath.Join(tempDir, "f.txt")
		require.NoError(t, os.WriteFile(path, []byte("same bytes"), 0644))

		fromFile, err := File(path)
		require.NoError(t, err)

		assert.Equal(t, fromFile, Bytes([]byte("same bytes")))
	})

	t.Run("empty input has well known digest", func(t *testing.T) {
		assert.Equal(t,
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			Bytes(nil))
	})
}
