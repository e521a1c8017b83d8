package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnreadableSource indicates a source file could not be opened
	// or decoded. Fatal for that one file's ingestion, never for the
	// whole run.
	ErrUnreadableSource = errors.New("unreadable source")

	// ErrMalformedPath indicates a file's path does not match the
	// naming convention for its source class. Callers skip these
	// silently; they count as neither success nor failure.
	ErrMalformedPath = errors.New("path does not match source convention")
)
