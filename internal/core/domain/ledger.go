package domain

import (
	"fmt"
	"time"
)

// RecordStatus is the lifecycle state of a ledger record. A record is
// created in one of these states by registration and only ever
// overwritten in place; there is no transition back to absent.
type RecordStatus string

// Ledger record statuses.
const (
	// StatusCompleted marks a source whose extraction pipeline ran to
	// completion (textbook chapters).
	StatusCompleted RecordStatus = "completed"

	// StatusDownloaded marks a collected past-paper PDF awaiting
	// processing.
	StatusDownloaded RecordStatus = "downloaded"

	// StatusCollected marks a supplementary (non-PDF) resource.
	StatusCollected RecordStatus = "collected"
)

// Valid reports whether s is a known status.
func (s RecordStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusDownloaded, StatusCollected:
		return true
	}
	return false
}

// TextbookKey is the natural key for one textbook chapter file.
// It is unique per ledger table.
type TextbookKey struct {
	// Board is the curriculum board (e.g. "ncert", "icse").
	Board string

	// Class is the class/grade number.
	Class int

	// Subject is the subject name (e.g. "mathematics").
	Subject string

	// BookCode is the publisher's book code (e.g. "jemh1").
	BookCode string

	// ChapterFile is the chapter file's base name.
	ChapterFile string
}

// String renders the key for logging.
func (k TextbookKey) String() string {
	return fmt.Sprintf("%s/class-%d/%s/%s/%s", k.Board, k.Class, k.Subject, k.BookCode, k.ChapterFile)
}

// PastPaperKey is the natural key for one past-paper file.
// It is unique per ledger table.
type PastPaperKey struct {
	// Level is the qualification level (e.g. "igcse", "a-level").
	Level string

	// SubjectCode is the syllabus code (e.g. "0580").
	SubjectCode string

	// Year is the examination year.
	Year int

	// Filename is the paper file's base name.
	Filename string
}

// String renders the key for logging.
func (k PastPaperKey) String() string {
	return fmt.Sprintf("%s/%s/%d/%s", k.Level, k.SubjectCode, k.Year, k.Filename)
}

// LedgerRecord is one durable ingestion record. The natural key lives
// outside the record (it is the row's identity). Two keys sharing a
// Fingerprint marks a renamed or copied file; the ledger registers both
// and logs the collision for audit. An empty Fingerprint means the
// source file was unreadable at registration time.
type LedgerRecord struct {
	// Fingerprint is the hex SHA-256 digest of the file's bytes, or
	// empty when the file could not be read.
	Fingerprint string

	// RecordedAt is when the record was last written.
	RecordedAt time.Time

	// Status is the record's lifecycle state.
	Status RecordStatus

	// Payload is the source-specific payload count (for textbooks,
	// the number of questions extracted).
	Payload int
}

// LedgerStats aggregates one source class's table.
type LedgerStats struct {
	// Rows is the number of registered records.
	Rows int `json:"rows"`

	// PayloadSum is the sum of every record's payload count.
	PayloadSum int `json:"payload_sum"`
}

// StatsReport aggregates both ledger tables for display or export.
type StatsReport struct {
	// Textbooks groups textbook rows by "<board>/class-<N>".
	Textbooks map[string]LedgerStats `json:"textbooks"`

	// PastPapers groups past-paper rows by "<level>/<subject_code>".
	PastPapers map[string]LedgerStats `json:"past_papers"`
}

// TotalRows sums the row counts of every group in both tables.
func (r StatsReport) TotalRows() int {
	var n int
	for _, s := range r.Textbooks {
		n += s.Rows
	}
	for _, s := range r.PastPapers {
		n += s.Rows
	}
	return n
}

// IngestSummary reports one ingestion sweep.
type IngestSummary struct {
	// Registered counts files extracted and registered this sweep.
	Registered int

	// Skipped counts files whose natural key was already registered.
	Skipped int

	// Failed counts files that could not be read, extracted or
	// registered. Failures are isolated per file.
	Failed int
}
