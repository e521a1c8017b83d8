package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChapters(t *testing.T) {
	t.Run("detects numeric header followed by capitalised title", func(t *testing.T) {
		text := "front matter\n5\nARITHMETIC PROGRESSIONS\nbody text follows here"

		chapters := Chapters(text)

		require.Len(t, chapters, 1)
		assert.Equal(t, 5, chapters[0].Number)
		assert.Equal(t, "ARITHMETIC PROGRESSIONS", chapters[0].Title)
		assert.Equal(t, len(text), chapters[0].End)
	})

	t.Run("detects explicit chapter marker", func(t *testing.T) {
		text := "intro\nChapter 3: Pair of Linear Equations\nsome body\n"

		chapters := Chapters(text)

		require.Len(t, chapters, 1)
		assert.Equal(t, 3, chapters[0].Number)
		assert.Equal(t, "Pair of Linear Equations", chapters[0].Title)
	})

	t.Run("detects short dotted heading", func(t *testing.T) {
		text := "7. Coordinate Geometry\nbody body body\n"

		chapters := Chapters(text)

		require.Len(t, chapters, 1)
		assert.Equal(t, 7, chapters[0].Number)
		assert.Equal(t, "Coordinate Geometry", chapters[0].Title)
	})

	t.Run("question lines are not headings", func(t *testing.T) {
		text := "1. What is the capital of France?\n2. Why so; explain.\n"

		chapters := Chapters(text)

		assert.Empty(t, chapters)
	})

	t.Run("rejects implausible chapter numbers", func(t *testing.T) {
		text := "99\nRUNNING PAGE NUMBER\nand later\n21. Appendix Tables\n"

		chapters := Chapters(text)

		assert.Empty(t, chapters)
	})

	t.Run("rejects implausible titles", func(t *testing.T) {
		long := strings.Repeat("Very Long Title ", 10)
		text := "4\nAB\nnoise\nChapter 6: " + long + "\n"

		chapters := Chapters(text)

		assert.Empty(t, chapters)
	})

	t.Run("duplicate numbers keep the first occurrence", func(t *testing.T) {
		text := "3\nREAL NUMBERS\nbody referring back\nChapter 3: Real Numbers revisited\ntail\n"

		chapters := Chapters(text)

		require.Len(t, chapters, 1)
		assert.Equal(t, 3, chapters[0].Number)
		assert.Equal(t, 0, chapters[0].Start)
		assert.Equal(t, "REAL NUMBERS", chapters[0].Title)
	})

	t.Run("spans are exhaustive from first chapter to end of text", func(t *testing.T) {
		text := "preface material\n" +
			"1\nREAL NUMBERS\n" + strings.Repeat("alpha ", 50) + "\n" +
			"2\nPOLYNOMIALS\n" + strings.Repeat("beta ", 50) + "\n" +
			"3\nTRIANGLES\n" + strings.Repeat("gamma ", 50)

		chapters := Chapters(text)

		require.Len(t, chapters, 3)
		for i := 0; i < len(chapters)-1; i++ {
			assert.Equal(t, chapters[i+1].Start, chapters[i].End, "gap between chapters %d and %d", chapters[i].Number, chapters[i+1].Number)
		}
		assert.Equal(t, len(text), chapters[len(chapters)-1].End)
		assert.Positive(t, chapters[0].WordCount)
	})

	t.Run("output is ordered by chapter number even when positions disagree", func(t *testing.T) {
		// Printed numbering disagrees with physical order; ordering by
		// number is the documented (best-effort) behaviour.
		text := "2\nPOLYNOMIALS\n" + strings.Repeat("later ", 30) + "\n" +
			"1\nREAL NUMBERS\n" + strings.Repeat("earlier ", 30)

		chapters := Chapters(text)

		require.Len(t, chapters, 2)
		assert.Equal(t, 1, chapters[0].Number)
		assert.Equal(t, 2, chapters[1].Number)
		// Spans still run forward in the text.
		for _, ch := range chapters {
			assert.Less(t, ch.Start, ch.End)
		}
	})

	t.Run("no structure yields empty result not error", func(t *testing.T) {
		assert.Empty(t, Chapters(""))
		assert.Empty(t, Chapters("plain prose without any heading at all"))
	})
}
