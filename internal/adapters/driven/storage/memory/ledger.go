// Package memory provides in-memory implementations of driven ports for
// testing. The ledgers mirror the SQLite adapter's semantics, including
// the shared-fingerprint audit on registration.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ankr-labs/eduingest/internal/core/domain"
	"github.com/ankr-labs/eduingest/internal/core/ports/driven"
	"github.com/ankr-labs/eduingest/internal/fingerprint"
	"github.com/ankr-labs/eduingest/internal/logger"
)

// Ensure the ledgers implement the interfaces.
var (
	_ driven.TextbookLedger  = (*TextbookLedger)(nil)
	_ driven.PastPaperLedger = (*PastPaperLedger)(nil)
)

// TextbookLedger is an in-memory implementation of driven.TextbookLedger.
type TextbookLedger struct {
	mu      sync.RWMutex
	records map[domain.TextbookKey]domain.LedgerRecord
}

// NewTextbookLedger creates a new in-memory textbook ledger.
func NewTextbookLedger() *TextbookLedger {
	return &TextbookLedger{
		records: make(map[domain.TextbookKey]domain.LedgerRecord),
	}
}

// IsRegistered checks if the key already has a record.
func (l *TextbookLedger) IsRegistered(_ context.Context, key domain.TextbookKey) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.records[key]
	return ok, nil
}

// Register records the file under its key. Returns true if a record was
// written.
func (l *TextbookLedger) Register(
	_ context.Context,
	key domain.TextbookKey,
	filePath string,
	status domain.RecordStatus,
	payload int,
) bool {
	fp, err := fingerprint.File(filePath)
	if err != nil {
		fp = ""
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if fp != "" {
		for k, rec := range l.records {
			if k != key && rec.Fingerprint == fp {
				logger.Warn("textbook %v shares its fingerprint with %v", key, k)
			}
		}
	}

	l.records[key] = domain.LedgerRecord{
		Fingerprint: fp,
		RecordedAt:  time.Now().UTC(),
		Status:      status,
		Payload:     payload,
	}
	return true
}

// Get retrieves the record for a key.
func (l *TextbookLedger) Get(_ context.Context, key domain.TextbookKey) (*domain.LedgerRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, ok := l.records[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// Stats groups records by "<board>/class-<N>".
func (l *TextbookLedger) Stats(_ context.Context) (map[string]domain.LedgerStats, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := make(map[string]domain.LedgerStats)
	for key, rec := range l.records {
		group := fmt.Sprintf("%s/class-%d", key.Board, key.Class)
		s := stats[group]
		s.Rows++
		s.PayloadSum += rec.Payload
		stats[group] = s
	}
	return stats, nil
}

// PastPaperLedger is an in-memory implementation of driven.PastPaperLedger.
type PastPaperLedger struct {
	mu      sync.RWMutex
	records map[domain.PastPaperKey]domain.LedgerRecord
}

// NewPastPaperLedger creates a new in-memory past paper ledger.
func NewPastPaperLedger() *PastPaperLedger {
	return &PastPaperLedger{
		records: make(map[domain.PastPaperKey]domain.LedgerRecord),
	}
}

// IsRegistered checks if the key already has a record.
func (l *PastPaperLedger) IsRegistered(_ context.Context, key domain.PastPaperKey) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.records[key]
	return ok, nil
}

// Register records the file under its key. Returns true if a record was
// written.
func (l *PastPaperLedger) Register(
	_ context.Context,
	key domain.PastPaperKey,
	filePath string,
	status domain.RecordStatus,
	payload int,
) bool {
	fp, err := fingerprint.File(filePath)
	if err != nil {
		fp = ""
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if fp != "" {
		for k, rec := range l.records {
			if k != key && rec.Fingerprint == fp {
				logger.Warn("past paper %v shares its fingerprint with %v", key, k)
			}
		}
	}

	l.records[key] = domain.LedgerRecord{
		Fingerprint: fp,
		RecordedAt:  time.Now().UTC(),
		Status:      status,
		Payload:     payload,
	}
	return true
}

// Get retrieves the record for a key.
func (l *PastPaperLedger) Get(_ context.Context, key domain.PastPaperKey) (*domain.LedgerRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rec, ok := l.records[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

// Stats groups records by "<level>/<subject_code>".
func (l *PastPaperLedger) Stats(_ context.Context) (map[string]domain.LedgerStats, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := make(map[string]domain.LedgerStats)
	for key, rec := range l.records {
		group := key.Level + "/" + key.SubjectCode
		s := stats[group]
		s.Rows++
		s.PayloadSum += rec.Payload
		stats[group] = s
	}
	return stats, nil
}
