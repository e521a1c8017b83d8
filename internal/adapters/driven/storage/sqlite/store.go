package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ankr-labs/eduingest/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/ankr-labs/eduingest/internal/core/domain"
	"github.com/ankr-labs/eduingest/internal/core/ports/driven"
	"github.com/ankr-labs/eduingest/internal/fingerprint"
	"github.com/ankr-labs/eduingest/internal/logger"
)

// Store is a unified SQLite-based storage that provides access to
// both ledger interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.eduingest/data/ledger.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".eduingest", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "ledger.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// TextbookLedger returns a TextbookLedger interface backed by this store.
func (s *Store) TextbookLedger() driven.TextbookLedger {
	return &textbookLedger{store: s}
}

// PastPaperLedger returns a PastPaperLedger interface backed by this store.
func (s *Store) PastPaperLedger() driven.PastPaperLedger {
	return &pastPaperLedger{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Textbook Ledger ====================

// textbookLedger implements driven.TextbookLedger.
type textbookLedger struct {
	store *Store
}

var _ driven.TextbookLedger = (*textbookLedger)(nil)

// IsRegistered checks if the key already has a row.
func (l *textbookLedger) IsRegistered(ctx context.Context, key domain.TextbookKey) (bool, error) {
	var count int
	err := l.store.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM textbook_records
		WHERE board = ? AND class = ? AND subject = ? AND book_code = ? AND chapter_file = ?
	`, key.Board, key.Class, key.Subject, key.BookCode, key.ChapterFile).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking textbook registration: %w", err)
	}
	return count > 0, nil
}

// Register records the file under its key. Returns true if a row was
// written. Storage failures are logged, never propagated.
func (l *textbookLedger) Register(
	ctx context.Context,
	key domain.TextbookKey,
	filePath string,
	status domain.RecordStatus,
	payload int,
) bool {
	fp := fileFingerprint(filePath)
	l.auditFingerprint(ctx, key, fp)

	_, err := l.store.db.ExecContext(ctx, `
		INSERT INTO textbook_records
			(board, class, subject, book_code, chapter_file, fingerprint, status, payload, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(board, class, subject, book_code, chapter_file) DO UPDATE SET
			fingerprint = excluded.fingerprint,
			status = excluded.status,
			payload = excluded.payload,
			recorded_at = excluded.recorded_at
	`, key.Board, key.Class, key.Subject, key.BookCode, key.ChapterFile,
		fp, string(status), payload, time.Now().UTC())

	if err != nil {
		logger.Error("registering textbook %s: %v", key, err)
		return false
	}
	return true
}

// auditFingerprint flags byte-identical files already held under other
// keys. Shared fingerprints are permitted, only surfaced for audit.
func (l *textbookLedger) auditFingerprint(ctx context.Context, key domain.TextbookKey, fp sql.NullString) {
	if !fp.Valid {
		return
	}
	var count int
	err := l.store.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM textbook_records
		WHERE fingerprint = ?
		AND NOT (board = ? AND class = ? AND subject = ? AND book_code = ? AND chapter_file = ?)
	`, fp.String, key.Board, key.Class, key.Subject, key.BookCode, key.ChapterFile).Scan(&count)
	if err != nil || count == 0 {
		return
	}
	logger.Warn("textbook %s shares its fingerprint with %d existing record(s)", key, count)
}

// Get retrieves the ledger record for a key.
func (l *textbookLedger) Get(ctx context.Context, key domain.TextbookKey) (*domain.LedgerRecord, error) {
	row := l.store.db.QueryRowContext(ctx, `
		SELECT fingerprint, status, payload, recorded_at
		FROM textbook_records
		WHERE board = ? AND class = ? AND subject = ? AND book_code = ? AND chapter_file = ?
	`, key.Board, key.Class, key.Subject, key.BookCode, key.ChapterFile)

	return scanRecord(row)
}

// Stats groups textbook rows by "<board>/class-<N>".
func (l *textbookLedger) Stats(ctx context.Context) (map[string]domain.LedgerStats, error) {
	rows, err := l.store.db.QueryContext(ctx, `
		SELECT board, class, COUNT(*), COALESCE(SUM(payload), 0)
		FROM textbook_records
		GROUP BY board, class
	`)
	if err != nil {
		return nil, fmt.Errorf("querying textbook stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]domain.LedgerStats)
	for rows.Next() {
		var board string
		var class int
		var s domain.LedgerStats
		if err := rows.Scan(&board, &class, &s.Rows, &s.PayloadSum); err != nil {
			return nil, fmt.Errorf("scanning textbook stats: %w", err)
		}
		stats[fmt.Sprintf("%s/class-%d", board, class)] = s
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating textbook stats: %w", err)
	}

	return stats, nil
}

// ==================== Past Paper Ledger ====================

// pastPaperLedger implements driven.PastPaperLedger.
type pastPaperLedger struct {
	store *Store
}

var _ driven.PastPaperLedger = (*pastPaperLedger)(nil)

// IsRegistered checks if the key already has a row.
func (l *pastPaperLedger) IsRegistered(ctx context.Context, key domain.PastPaperKey) (bool, error) {
	var count int
	err := l.store.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM past_paper_records
		WHERE level = ? AND subject_code = ? AND year = ? AND filename = ?
	`, key.Level, key.SubjectCode, key.Year, key.Filename).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking past paper registration: %w", err)
	}
	return count > 0, nil
}

// Register records the file under its key. Returns true if a row was
// written. Storage failures are logged, never propagated.
func (l *pastPaperLedger) Register(
	ctx context.Context,
	key domain.PastPaperKey,
	filePath string,
	status domain.RecordStatus,
	payload int,
) bool {
	fp := fileFingerprint(filePath)
	l.auditFingerprint(ctx, key, fp)

	_, err := l.store.db.ExecContext(ctx, `
		INSERT INTO past_paper_records
			(level, subject_code, year, filename, fingerprint, status, payload, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(level, subject_code, year, filename) DO UPDATE SET
			fingerprint = excluded.fingerprint,
			status = excluded.status,
			payload = excluded.payload,
			recorded_at = excluded.recorded_at
	`, key.Level, key.SubjectCode, key.Year, key.Filename,
		fp, string(status), payload, time.Now().UTC())

	if err != nil {
		logger.Error("registering past paper %s: %v", key, err)
		return false
	}
	return true
}

// auditFingerprint flags byte-identical files already held under other
// keys. Shared fingerprints are permitted, only surfaced for audit.
func (l *pastPaperLedger) auditFingerprint(ctx context.Context, key domain.PastPaperKey, fp sql.NullString) {
	if !fp.Valid {
		return
	}
	var count int
	err := l.store.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM past_paper_records
		WHERE fingerprint = ?
		AND NOT (level = ? AND subject_code = ? AND year = ? AND filename = ?)
	`, fp.String, key.Level, key.SubjectCode, key.Year, key.Filename).Scan(&count)
	if err != nil || count == 0 {
		return
	}
	logger.Warn("past paper %s shares its fingerprint with %d existing record(s)", key, count)
}

// Get retrieves the ledger record for a key.
func (l *pastPaperLedger) Get(ctx context.Context, key domain.PastPaperKey) (*domain.LedgerRecord, error) {
	row := l.store.db.QueryRowContext(ctx, `
		SELECT fingerprint, status, payload, recorded_at
		FROM past_paper_records
		WHERE level = ? AND subject_code = ? AND year = ? AND filename = ?
	`, key.Level, key.SubjectCode, key.Year, key.Filename)

	return scanRecord(row)
}

// Stats groups past-paper rows by "<level>/<subject_code>".
func (l *pastPaperLedger) Stats(ctx context.Context) (map[string]domain.LedgerStats, error) {
	rows, err := l.store.db.QueryContext(ctx, `
		SELECT level, subject_code, COUNT(*), COALESCE(SUM(payload), 0)
		FROM past_paper_records
		GROUP BY level, subject_code
	`)
	if err != nil {
		return nil, fmt.Errorf("querying past paper stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]domain.LedgerStats)
	for rows.Next() {
		var level, subjectCode string
		var s domain.LedgerStats
		if err := rows.Scan(&level, &subjectCode, &s.Rows, &s.PayloadSum); err != nil {
			return nil, fmt.Errorf("scanning past paper stats: %w", err)
		}
		stats[level+"/"+subjectCode] = s
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating past paper stats: %w", err)
	}

	return stats, nil
}

// ==================== Helper Functions ====================

// fileFingerprint hashes the file's bytes. An unreadable file is
// recorded without a fingerprint.
func fileFingerprint(path string) sql.NullString {
	fp, err := fingerprint.File(path)
	if err != nil {
		logger.Warn("fingerprinting %s: %v", path, err)
		return sql.NullString{}
	}
	return sql.NullString{String: fp, Valid: true}
}

// scanRecord scans a single ledger row.
func scanRecord(row *sql.Row) (*domain.LedgerRecord, error) {
	var rec domain.LedgerRecord
	var fp sql.NullString
	var status string
	var recordedAt sql.NullTime
	if err := row.Scan(&fp, &status, &rec.Payload, &recordedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning ledger record: %w", err)
	}

	rec.Fingerprint = fp.String
	rec.Status = domain.RecordStatus(status)
	if recordedAt.Valid {
		rec.RecordedAt = recordedAt.Time
	}

	return &rec, nil
}
