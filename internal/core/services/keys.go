package services

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ankr-labs/eduingest/internal/core/domain"
)

// ParseTextbookPath derives a textbook natural key from a file path
// relative to the ingest base directory. The expected layout is
// <board>/class-<N>/<subject>/<book_code>/<file>. Paths that do not
// match report domain.ErrMalformedPath.
func ParseTextbookPath(baseDir, path string) (domain.TextbookKey, error) {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return domain.TextbookKey{}, fmt.Errorf("%w: %s", domain.ErrMalformedPath, path)
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != 5 {
		return domain.TextbookKey{}, fmt.Errorf("%w: %s", domain.ErrMalformedPath, rel)
	}

	class, ok := strings.CutPrefix(parts[1], "class-")
	if !ok {
		return domain.TextbookKey{}, fmt.Errorf("%w: %s", domain.ErrMalformedPath, rel)
	}
	classNum, err := strconv.Atoi(class)
	if err != nil || classNum < 1 {
		return domain.TextbookKey{}, fmt.Errorf("%w: %s", domain.ErrMalformedPath, rel)
	}

	return domain.TextbookKey{
		Board:       parts[0],
		Class:       classNum,
		Subject:     parts[2],
		BookCode:    parts[3],
		ChapterFile: parts[4],
	}, nil
}

// ParsePastPaperPath derives a past-paper natural key from a file path
// relative to the scan base directory. The expected layout is
// <level>/<subject_code>/<year>/<file>. Paths that do not match report
// domain.ErrMalformedPath.
func ParsePastPaperPath(baseDir, path string) (domain.PastPaperKey, error) {
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return domain.PastPaperKey{}, fmt.Errorf("%w: %s", domain.ErrMalformedPath, path)
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != 4 {
		return domain.PastPaperKey{}, fmt.Errorf("%w: %s", domain.ErrMalformedPath, rel)
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil || year < 1990 || year > 2100 {
		return domain.PastPaperKey{}, fmt.Errorf("%w: %s", domain.ErrMalformedPath, rel)
	}

	return domain.PastPaperKey{
		Level:       parts[0],
		SubjectCode: parts[1],
		Year:        year,
		Filename:    parts[3],
	}, nil
}
