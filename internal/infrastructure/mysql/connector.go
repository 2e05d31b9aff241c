package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	driver "github.com/go-sql-driver/mysql"
)

// Connector constants.
const (
	// connectTimeout bounds the initial ping when establishing a session.
	connectTimeout = 10 * time.Second
)

// Params is the fixed set of connection parameters.
// Host may carry an explicit port ("db.example.org:3307"); without one the
// driver default (3306) applies.
type Params struct {
	Host     string
	Database string
	Username string
	Password string
}

// Row is one record returned from a query: an ordered tuple of column values.
type Row []any

// Connector owns a single session to a MySQL server.
//
// The session is established by an explicit Connect and released by Close.
// Query methods fail cleanly with ErrNotConnected while no session is open.
// A Connector is not safe for concurrent use from multiple goroutines; each
// caller should own its own instance or use WithSession.
type Connector struct {
	params Params
	db     *sql.DB
}

// NewConnector creates a Connector for the given parameters.
// No network activity happens until Connect is called.
func NewConnector(params Params) *Connector {
	return &Connector{params: params}
}

// Connect establishes and verifies a session with the server.
//
// Calling Connect on an already-connected Connector returns
// ErrAlreadyConnected; a second session is never opened behind the first.
//
// Parameters:
//   - ctx: Context for cancellation; the verification ping is additionally
//     bounded by connectTimeout
//
// Returns:
//   - error: ErrAlreadyConnected, or ErrConnectionFailed wrapping the driver
//     error (unreachable host, bad credentials, unknown database)
func (c *Connector) Connect(ctx context.Context) error {
	if c.db != nil {
		return ErrAlreadyConnected
	}

	db, err := sql.Open("mysql", buildDSN(c.params))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close() //nolint:errcheck // Best effort cleanup on error path
		return fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	c.db = db
	return nil
}

// Connected reports whether a session is currently open.
func (c *Connector) Connected() bool {
	return c.db != nil
}

// Query executes a row-returning statement with positional ? placeholders.
//
// Arguments are always passed to the driver for substitution; they are never
// interpolated into the query text.
//
// Returns:
//   - []Row: The ordered result rows, each a tuple of column values
//   - error: ErrNotConnected, or ErrQueryFailed wrapping the driver error
func (c *Connector) Query(ctx context.Context, query string, args ...any) ([]Row, error) {
	if c.db == nil {
		return nil, ErrNotConnected
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer rows.Close() //nolint:errcheck // Read-side cleanup

	return scanRows(rows)
}

// Exec executes a mutating statement with positional ? placeholders and
// returns the number of affected rows.
//
// Returns:
//   - int64: Affected row count
//   - error: ErrNotConnected, or ErrQueryFailed wrapping the driver error
func (c *Connector) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if c.db == nil {
		return 0, ErrNotConnected
	}

	result, err := c.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return affected, nil
}

// Close releases the session. It is a no-op when no session is open, so it
// is always safe to defer.
func (c *Connector) Close() error {
	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil
	if err != nil {
		return fmt.Errorf("closing session: %w", err)
	}
	return nil
}

// WithSession runs fn against a freshly connected Connector and guarantees
// the session is released on every exit path, including when fn fails.
//
// Example:
//
//	err := mysql.WithSession(ctx, params, func(c *mysql.Connector) error {
//	    rows, err := c.Query(ctx, "SELECT 1")
//	    ...
//	})
func WithSession(ctx context.Context, params Params, fn func(*Connector) error) (err error) {
	c := NewConnector(params)
	if err = c.Connect(ctx); err != nil {
		return err
	}

	defer func() {
		if closeErr := c.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(c)
}

// buildDSN renders the driver DSN from the fixed parameter set.
// Uses the driver's own config type rather than string concatenation.
func buildDSN(params Params) string {
	cfg := driver.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = params.Host
	cfg.DBName = params.Database
	cfg.User = params.Username
	cfg.Passwd = params.Password
	return cfg.FormatDSN()
}

// scanRows drains a result set into ordered value tuples.
func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	var results []Row
	for rows.Next() {
		values := make(Row, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
		results = append(results, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return results, nil
}
