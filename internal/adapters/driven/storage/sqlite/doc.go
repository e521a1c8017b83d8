// Package sqlite provides a SQLite-based implementation of the ledger ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. It implements both ledger
// interfaces through a single database connection:
//
//   - TextbookLedger: Registration ledger for textbook chapter files
//   - PastPaperLedger: Registration ledger for past paper files
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.eduingest/data/ledger.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
