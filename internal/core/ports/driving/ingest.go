package driving

import (
	"context"

	"github.com/ankr-labs/eduingest/internal/core/domain"
)

// Ingestor coordinates structural extraction and ledger registration.
type Ingestor interface {
	// IngestTextbooks walks baseDir for textbook chapter files, extracts
	// their structure and registers each new file in the ledger.
	IngestTextbooks(ctx context.Context, baseDir string) (domain.IngestSummary, error)

	// ScanPastPapers walks baseDir for past paper files and registers
	// each new file in the ledger without structural extraction.
	ScanPastPapers(ctx context.Context, baseDir string) (domain.IngestSummary, error)

	// Stats returns ledger statistics for both record families, keyed
	// by group label.
	Stats(ctx context.Context) (domain.StatsReport, error)
}
