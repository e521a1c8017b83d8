package driven

import (
	"context"

	"github.com/ankr-labs/eduingest/internal/core/domain"
)

// TextbookLedger persists registrations of textbook chapter files.
// Each natural key is recorded at most once; re-registering an already
// known key updates the existing row rather than adding a new one.
type TextbookLedger interface {
	// IsRegistered reports whether the key already has a ledger row.
	IsRegistered(ctx context.Context, key domain.TextbookKey) (bool, error)

	// Register records the file under its key. The content fingerprint
	// is computed from the file at filePath; an unreadable file is
	// recorded without a fingerprint. Returns true if a row was written.
	Register(ctx context.Context, key domain.TextbookKey, filePath string, status domain.RecordStatus, payload int) bool

	// Get retrieves the ledger record for a key.
	// Returns domain.ErrNotFound if the key is not registered.
	Get(ctx context.Context, key domain.TextbookKey) (*domain.LedgerRecord, error)

	// Stats returns row and payload counts grouped by board and class.
	Stats(ctx context.Context) (map[string]domain.LedgerStats, error)
}

// PastPaperLedger persists registrations of past paper files.
// Same once-only semantics as TextbookLedger.
type PastPaperLedger interface {
	// IsRegistered reports whether the key already has a ledger row.
	IsRegistered(ctx context.Context, key domain.PastPaperKey) (bool, error)

	// Register records the file under its key. Returns true if a row
	// was written.
	Register(ctx context.Context, key domain.PastPaperKey, filePath string, status domain.RecordStatus, payload int) bool

	// Get retrieves the ledger record for a key.
	// Returns domain.ErrNotFound if the key is not registered.
	Get(ctx context.Context, key domain.PastPaperKey) (*domain.LedgerRecord, error)

	// Stats returns row and payload counts grouped by level and subject code.
	Stats(ctx context.Context) (map[string]domain.LedgerStats, error)
}
