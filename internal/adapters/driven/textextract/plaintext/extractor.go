// Package plaintext extracts per-page text from plain text files.
// Pages are delimited by form feed characters; a file without form
// feeds is a single page.
package plaintext

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ankr-labs/eduingest/internal/core/domain"
	"github.com/ankr-labs/eduingest/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.PageTextExtractor = (*Extractor)(nil)

// Extractor implements driven.PageTextExtractor for plain text files.
type Extractor struct{}

// NewExtractor creates a new plain text page extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Pages reads the file at path and splits it on form feeds.
func (e *Extractor) Pages(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", domain.ErrUnreadableSource, path, err)
	}

	return strings.Split(string(data), "\f"), nil
}
