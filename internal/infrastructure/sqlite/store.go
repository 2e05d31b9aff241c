package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Row is one record returned from a query: an ordered tuple of column values.
type Row []any

// Store is a table accessor bound to a Schema.
//
// It provides the three operations every table in the pipeline needs —
// insert a full row, read everything back, and an escape hatch for arbitrary
// parameterised statements — without hard-coding any one record shape.
type Store struct {
	db     *DB
	schema Schema
}

// NewStore binds a Store to an open database and a table description.
// EnsureSchema should have been called for the schema beforehand.
func NewStore(db *DB, schema Schema) *Store {
	return &Store{db: db, schema: schema}
}

// Schema returns the table description the store is bound to.
func (s *Store) Schema() Schema {
	return s.schema
}

// Insert adds one row with values in declared column order.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - values: One value per column, in Schema.Columns order
//
// Returns:
//   - error: ErrArityMismatch if the value count is wrong, ErrDuplicate if
//     the primary key already exists, or a wrapped driver error
func (s *Store) Insert(ctx context.Context, values ...any) error {
	if len(values) != len(s.schema.Columns) {
		return fmt.Errorf("%w: table %s has %d columns, got %d values",
			ErrArityMismatch, s.schema.Table, len(s.schema.Columns), len(values))
	}

	if _, err := s.db.DB.ExecContext(ctx, s.schema.insertSQL(), values...); err != nil {
		if IsConstraint(err) {
			return fmt.Errorf("%w: table %s", ErrDuplicate, s.schema.Table)
		}
		return fmt.Errorf("inserting into %s: %w", s.schema.Table, err)
	}
	return nil
}

// ReadAll returns every row in the table, one tuple per record, columns in
// declaration order. Row order is whatever the storage engine provides.
func (s *Store) ReadAll(ctx context.Context) ([]Row, error) {
	return s.Query(ctx, s.schema.selectAllSQL())
}

// Query executes an arbitrary row-returning statement with positional ?
// placeholders against the same file.
//
// Arguments are always passed to the driver for substitution; they are never
// interpolated into the query text.
func (s *Store) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.schema.Table, err)
	}
	defer rows.Close() //nolint:errcheck // Read-side cleanup

	return scanRows(rows)
}

// Exec executes an arbitrary mutating statement with positional ?
// placeholders and returns the number of affected rows.
func (s *Store) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := s.db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if IsConstraint(err) {
			return 0, fmt.Errorf("%w: table %s", ErrDuplicate, s.schema.Table)
		}
		return 0, fmt.Errorf("executing on %s: %w", s.schema.Table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("executing on %s: %w", s.schema.Table, err)
	}
	return affected, nil
}

// With opens the database file, bootstraps the schema, runs fn against a
// bound Store, and closes the file on every exit path — including when fn
// fails mid-query. Pending writes are flushed by the close.
//
// Example:
//
//	err := sqlite.With(ctx, cfg, schema, func(st *sqlite.Store) error {
//	    return st.Insert(ctx, id, 1, 2, 3, 0.1, 0.2, 0.3)
//	})
func With(ctx context.Context, cfg Config, schema Schema, fn func(*Store) error) (err error) {
	db, err := Open(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err = db.EnsureSchema(ctx, schema); err != nil {
		return err
	}

	return fn(NewStore(db, schema))
}

// IsConstraint reports whether err is a SQLite constraint violation
// (duplicate primary key, NOT NULL failure, foreign key breach).
func IsConstraint(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrConstraint
	}
	return false
}

// scanRows drains a result set into ordered value tuples.
func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading result columns: %w", err)
	}

	var results []Row
	for rows.Next() {
		values := make(Row, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		results = append(results, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return results, nil
}
