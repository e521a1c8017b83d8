package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankr-labs/eduingest/internal/core/domain"
)

func writeTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.pdf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestTextbookLedger_RegisterAndLookup(t *testing.T) {
	ctx := context.Background()
	ledger := NewTextbookLedger()

	key := domain.TextbookKey{Board: "ncert", Class: 10, Subject: "mathematics", BookCode: "jemh1", ChapterFile: "jemh105.pdf"}
	path := writeTestFile(t, "chapter content")

	registered, err := ledger.IsRegistered(ctx, key)
	require.NoError(t, err)
	assert.False(t, registered)

	assert.True(t, ledger.Register(ctx, key, path, domain.StatusCompleted, 9))

	registered, err = ledger.IsRegistered(ctx, key)
	require.NoError(t, err)
	assert.True(t, registered)

	rec, err := ledger.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, rec.Status)
	assert.Equal(t, 9, rec.Payload)
	assert.Len(t, rec.Fingerprint, 64)
}

func TestTextbookLedger_SharedFingerprintRegistersBothKeys(t *testing.T) {
	ctx := context.Background()
	ledger := NewTextbookLedger()
	path := writeTestFile(t, "identical bytes")

	a := domain.TextbookKey{Board: "ncert", Class: 10, Subject: "mathematics", BookCode: "jemh1", ChapterFile: "a.pdf"}
	b := a
	b.ChapterFile = "b.pdf"

	assert.True(t, ledger.Register(ctx, a, path, domain.StatusCompleted, 1))
	assert.True(t, ledger.Register(ctx, b, path, domain.StatusCompleted, 1))

	recA, err := ledger.Get(ctx, a)
	require.NoError(t, err)
	recB, err := ledger.Get(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, recA.Fingerprint, recB.Fingerprint)
}

func TestTextbookLedger_UnreadableFileGetsNoFingerprint(t *testing.T) {
	ctx := context.Background()
	ledger := NewTextbookLedger()

	a := domain.TextbookKey{Board: "ncert", Class: 10, Subject: "mathematics", BookCode: "jemh1", ChapterFile: "a.pdf"}
	b := a
	b.ChapterFile = "b.pdf"

	assert.True(t, ledger.Register(ctx, a, "/nonexistent/a.pdf", domain.StatusCompleted, 0))
	assert.True(t, ledger.Register(ctx, b, "/nonexistent/b.pdf", domain.StatusCompleted, 0))

	rec, err := ledger.Get(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, rec.Fingerprint)
}

func TestTextbookLedger_Stats(t *testing.T) {
	ctx := context.Background()
	ledger := NewTextbookLedger()

	k1 := domain.TextbookKey{Board: "ncert", Class: 10, Subject: "mathematics", BookCode: "jemh1", ChapterFile: "c1.pdf"}
	k2 := k1
	k2.ChapterFile = "c2.pdf"
	k3 := k1
	k3.Class = 9
	k3.ChapterFile = "c3.pdf"

	require.True(t, ledger.Register(ctx, k1, writeTestFile(t, "one"), domain.StatusCompleted, 3))
	require.True(t, ledger.Register(ctx, k2, writeTestFile(t, "two"), domain.StatusCompleted, 4))
	require.True(t, ledger.Register(ctx, k3, writeTestFile(t, "three"), domain.StatusCompleted, 5))

	stats, err := ledger.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.LedgerStats{Rows: 2, PayloadSum: 7}, stats["ncert/class-10"])
	assert.Equal(t, domain.LedgerStats{Rows: 1, PayloadSum: 5}, stats["ncert/class-9"])
}

func TestPastPaperLedger_RegisterAndStats(t *testing.T) {
	ctx := context.Background()
	ledger := NewPastPaperLedger()

	key := domain.PastPaperKey{Level: "igcse", SubjectCode: "0580", Year: 2023, Filename: "0580_s23_qp_21.pdf"}

	registered, err := ledger.IsRegistered(ctx, key)
	require.NoError(t, err)
	assert.False(t, registered)

	assert.True(t, ledger.Register(ctx, key, writeTestFile(t, "paper"), domain.StatusDownloaded, 0))

	rec, err := ledger.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDownloaded, rec.Status)

	stats, err := ledger.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats["igcse/0580"].Rows)
}

func TestPastPaperLedger_GetMissing(t *testing.T) {
	ledger := NewPastPaperLedger()

	_, err := ledger.Get(context.Background(), domain.PastPaperKey{Level: "igcse", SubjectCode: "0580", Year: 2020, Filename: "absent.pdf"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
