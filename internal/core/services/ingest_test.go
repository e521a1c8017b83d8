package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankr-labs/eduingest/internal/adapters/driven/storage/memory"
	"github.com/ankr-labs/eduingest/internal/adapters/driven/textextract/plaintext"
	"github.com/ankr-labs/eduingest/internal/core/domain"
	"github.com/ankr-labs/eduingest/internal/core/ports/driven"
)

// setupIngestService creates a service over in-memory ledgers and a
// plain text page extractor.
func setupIngestService(t *testing.T, outputDir string) (*IngestService, *memory.TextbookLedger, *memory.PastPaperLedger) {
	t.Helper()
	textbooks := memory.NewTextbookLedger()
	pastPapers := memory.NewPastPaperLedger()
	extractors := map[string]driven.PageTextExtractor{
		".txt": plaintext.NewExtractor(),
	}
	return NewIngestService(textbooks, pastPapers, extractors, outputDir), textbooks, pastPapers
}

// writeTextbook places chapter content at the conventional path under
// baseDir and returns the file path.
func writeTextbook(t *testing.T, baseDir, chapterFile, content string) string {
	t.Helper()
	dir := filepath.Join(baseDir, "ncert", "class-10", "mathematics", "jemh1")
	require.NoError(t, os.MkdirAll(dir, 0700))
	path := filepath.Join(dir, chapterFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const chapterFive = "5\nSOME HEADER\nIntroductory prose.\nEXERCISE 5.1\n1. What is the value of X here?\n"

func TestIngestTextbooks(t *testing.T) {
	ctx := context.Background()

	t.Run("registers new files and is idempotent", func(t *testing.T) {
		baseDir := t.TempDir()
		svc, textbooks, _ := setupIngestService(t, "")
		writeTextbook(t, baseDir, "jemh105.txt", chapterFive)

		summary, err := svc.IngestTextbooks(ctx, baseDir)
		require.NoError(t, err)
		assert.Equal(t, domain.IngestSummary{Registered: 1}, summary)

		key := domain.TextbookKey{
			Board: "ncert", Class: 10, Subject: "mathematics",
			BookCode: "jemh1", ChapterFile: "jemh105.txt",
		}
		rec, err := textbooks.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, rec.Status)
		assert.Equal(t, 1, rec.Payload)

		summary, err = svc.IngestTextbooks(ctx, baseDir)
		require.NoError(t, err)
		assert.Equal(t, domain.IngestSummary{Skipped: 1}, summary)
	})

	t.Run("writes classified extraction artifact", func(t *testing.T) {
		baseDir := t.TempDir()
		outputDir := filepath.Join(t.TempDir(), "artifacts")
		svc, _, _ := setupIngestService(t, outputDir)
		writeTextbook(t, baseDir, "jemh105.txt", chapterFive)

		_, err := svc.IngestTextbooks(ctx, baseDir)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(outputDir, "jemh105.json"))
		require.NoError(t, err)

		var artifact extractionArtifact
		require.NoError(t, json.Unmarshal(data, &artifact))
		assert.NotEmpty(t, artifact.RunID)
		assert.Equal(t, "jemh105.txt", artifact.Result.SourceFilename)
		require.Equal(t, 1, artifact.Result.Totals.QuestionCount)

		question := artifact.Result.Chapters[0].Exercises[0].Questions[0]
		assert.Equal(t, domain.DifficultyEasy, question.Difficulty)
		assert.Equal(t, []string{"general"}, question.Tags)
	})

	t.Run("ignores files outside the path convention", func(t *testing.T) {
		baseDir := t.TempDir()
		svc, _, _ := setupIngestService(t, "")
		require.NoError(t, os.WriteFile(filepath.Join(baseDir, "stray.txt"), []byte(chapterFive), 0600))

		summary, err := svc.IngestTextbooks(ctx, baseDir)
		require.NoError(t, err)
		assert.Equal(t, domain.IngestSummary{}, summary)
	})

	t.Run("ignores unsupported extensions", func(t *testing.T) {
		baseDir := t.TempDir()
		svc, _, _ := setupIngestService(t, "")
		writeTextbook(t, baseDir, "notes.md", chapterFive)

		summary, err := svc.IngestTextbooks(ctx, baseDir)
		require.NoError(t, err)
		assert.Equal(t, domain.IngestSummary{}, summary)
	})

	t.Run("file without structure still registers", func(t *testing.T) {
		baseDir := t.TempDir()
		svc, textbooks, _ := setupIngestService(t, "")
		writeTextbook(t, baseDir, "jemh199.txt", "prose with no recognisable headings")

		summary, err := svc.IngestTextbooks(ctx, baseDir)
		require.NoError(t, err)
		assert.Equal(t, domain.IngestSummary{Registered: 1}, summary)

		key := domain.TextbookKey{
			Board: "ncert", Class: 10, Subject: "mathematics",
			BookCode: "jemh1", ChapterFile: "jemh199.txt",
		}
		rec, err := textbooks.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, 0, rec.Payload)
	})
}

func TestScanPastPapers(t *testing.T) {
	ctx := context.Background()

	writePaper := func(t *testing.T, baseDir, filename string) string {
		t.Helper()
		dir := filepath.Join(baseDir, "igcse", "0580", "2023")
		require.NoError(t, os.MkdirAll(dir, 0700))
		path := filepath.Join(dir, filename)
		require.NoError(t, os.WriteFile(path, []byte("paper "+filename), 0600))
		return path
	}

	t.Run("registers pdfs as downloaded and others as collected", func(t *testing.T) {
		baseDir := t.TempDir()
		svc, _, pastPapers := setupIngestService(t, "")
		writePaper(t, baseDir, "0580_s23_qp_21.pdf")
		writePaper(t, baseDir, "0580_s23_ms_21.txt")

		summary, err := svc.ScanPastPapers(ctx, baseDir)
		require.NoError(t, err)
		assert.Equal(t, domain.IngestSummary{Registered: 2}, summary)

		rec, err := pastPapers.Get(ctx, domain.PastPaperKey{
			Level: "igcse", SubjectCode: "0580", Year: 2023, Filename: "0580_s23_qp_21.pdf",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusDownloaded, rec.Status)

		rec, err = pastPapers.Get(ctx, domain.PastPaperKey{
			Level: "igcse", SubjectCode: "0580", Year: 2023, Filename: "0580_s23_ms_21.txt",
		})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCollected, rec.Status)
	})

	t.Run("second sweep skips everything", func(t *testing.T) {
		baseDir := t.TempDir()
		svc, _, _ := setupIngestService(t, "")
		writePaper(t, baseDir, "0580_s23_qp_21.pdf")

		_, err := svc.ScanPastPapers(ctx, baseDir)
		require.NoError(t, err)

		summary, err := svc.ScanPastPapers(ctx, baseDir)
		require.NoError(t, err)
		assert.Equal(t, domain.IngestSummary{Skipped: 1}, summary)
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	baseDir := t.TempDir()
	svc, _, pastPapers := setupIngestService(t, "")
	writeTextbook(t, baseDir, "jemh105.txt", chapterFive)

	_, err := svc.IngestTextbooks(ctx, baseDir)
	require.NoError(t, err)

	require.True(t, pastPapers.Register(ctx, domain.PastPaperKey{
		Level: "igcse", SubjectCode: "0580", Year: 2023, Filename: "paper.pdf",
	}, "/nonexistent/paper.pdf", domain.StatusDownloaded, 0))

	report, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Textbooks["ncert/class-10"].Rows)
	assert.Equal(t, 1, report.Textbooks["ncert/class-10"].PayloadSum)
	assert.Equal(t, 1, report.PastPapers["igcse/0580"].Rows)
	assert.Equal(t, 2, report.TotalRows())
}
