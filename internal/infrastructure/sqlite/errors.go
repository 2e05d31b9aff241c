package sqlite

import "errors"

// Sentinel errors for SQLite stores.
//
// These errors can be checked using errors.Is() for specific handling:
//
//	if errors.Is(err, sqlite.ErrDuplicate) {
//	    // row already present, treat as idempotent success
//	}
var (
	// ErrInvalidSchema is returned when a table description cannot render SQL.
	ErrInvalidSchema = errors.New("sqlite: invalid schema")

	// ErrDuplicate is returned when an insert violates a uniqueness constraint.
	ErrDuplicate = errors.New("sqlite: constraint violation")

	// ErrArityMismatch is returned when Insert receives the wrong number of values.
	ErrArityMismatch = errors.New("sqlite: value count does not match schema")
)
