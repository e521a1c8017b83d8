package extractor

import (
	"path/filepath"

	"github.com/ankr-labs/eduingest/internal/core/domain"
)

// Extract runs the full structural pass over a document: chapters, then
// worked examples and exercises within each chapter. Question units come
// back unclassified; the caller applies the classifier.
func Extract(doc domain.RawDocument) domain.ExtractionResult {
	text := doc.Text()

	chapters := Chapters(text)
	for i := range chapters {
		body := text[chapters[i].Start:chapters[i].End]
		chapters[i].Examples = Examples(body, chapters[i].Number)
		chapters[i].Exercises = Exercises(body, chapters[i].Number)
	}

	result := domain.ExtractionResult{
		SourceFilename: filepath.Base(doc.SourceName),
		Chapters:       chapters,
	}
	result.ComputeTotals()
	return result
}
