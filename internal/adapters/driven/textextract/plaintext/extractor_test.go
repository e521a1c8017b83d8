package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankr-labs/eduingest/internal/core/domain"
)

func TestPages(t *testing.T) {
	ctx := context.Background()
	extractor := NewExtractor()

	t.Run("splits on form feeds", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "book.txt")
		require.NoError(t, os.WriteFile(path, []byte("page one\fpage two\fpage three"), 0600))

		pages, err := extractor.Pages(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, []string{"page one", "page two", "page three"}, pages)
	})

	t.Run("file without form feeds is one page", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "book.txt")
		require.NoError(t, os.WriteFile(path, []byte("single page content"), 0600))

		pages, err := extractor.Pages(ctx, path)

		require.NoError(t, err)
		assert.Equal(t, []string{"single page content"}, pages)
	})

	t.Run("missing file reports unreadable source", func(t *testing.T) {
		_, err := extractor.Pages(ctx, filepath.Join(t.TempDir(), "absent.txt"))

		assert.ErrorIs(t, err, domain.ErrUnreadableSource)
	})

	t.Run("cancelled context stops extraction", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := extractor.Pages(cancelled, "anything.txt")

		assert.ErrorIs(t, err, context.Canceled)
	})
}
