package driven

import "context"

// PageTextExtractor produces the plain text of a source file, one
// string per page. Implementations exist for PDF and plain text files.
type PageTextExtractor interface {
	// Pages extracts the page texts of the file at path.
	// Returns domain.ErrUnreadableSource wrapped with detail when the
	// file cannot be opened or parsed.
	Pages(ctx context.Context, path string) ([]string, error)
}
