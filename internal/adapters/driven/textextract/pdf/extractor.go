// Package pdf extracts per-page plain text from PDF files using
// github.com/ledongthuc/pdf, a pure Go PDF reader.
package pdf

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/ankr-labs/eduingest/internal/core/domain"
	"github.com/ankr-labs/eduingest/internal/core/ports/driven"
	"github.com/ankr-labs/eduingest/internal/logger"
)

// Ensure Extractor implements the interface.
var _ driven.PageTextExtractor = (*Extractor)(nil)

// Extractor implements driven.PageTextExtractor for PDF files.
type Extractor struct{}

// NewExtractor creates a new PDF page text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Pages extracts the plain text of each page of the PDF at path.
// Pages whose text cannot be decoded are included as empty strings so
// page numbering stays aligned with the document.
func (e *Extractor) Pages(ctx context.Context, path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", domain.ErrUnreadableSource, path, err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			logger.Debug("page %d of %s: %v", i, path, err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	return pages, nil
}
