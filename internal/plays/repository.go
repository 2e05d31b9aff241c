package plays

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hbpbot/hbp-core/internal/infrastructure/sqlite"
)

// Repository defines the interface for play persistence operations.
// This abstraction allows for different implementations (SQLite, mock, etc.)
// and enables unit testing without database dependencies.
type Repository interface {
	// GetByID retrieves a play by its unique identifier.
	// Returns ErrPlayNotFound if the play does not exist.
	GetByID(ctx context.Context, playID string) (*Play, error)

	// ReadAll retrieves every play, ordered by game date then play id.
	ReadAll(ctx context.Context) ([]Play, error)

	// ListByPitcher retrieves all plays where the given player threw the pitch.
	ListByPitcher(ctx context.Context, pitcherID int64) ([]Play, error)

	// ListByBatter retrieves all plays where the given player was hit.
	ListByBatter(ctx context.Context, batterID int64) ([]Play, error)

	// ListBySeason retrieves all plays whose game date falls in the given year.
	ListBySeason(ctx context.Context, year int) ([]Play, error)

	// Insert adds a new play.
	// Returns ErrPlayExists if a play with the same id already exists.
	Insert(ctx context.Context, play *Play) error

	// SafeInsert adds the play only if its id is absent, reporting whether a
	// row was written.
	SafeInsert(ctx context.Context, play *Play) (bool, error)

	// Remove deletes a play by id.
	// Returns ErrPlayNotFound if the play does not exist.
	Remove(ctx context.Context, playID string) error

	// SetFlag marks a workflow stage complete for a play.
	// Returns ErrPlayNotFound if the play does not exist.
	SetFlag(ctx context.Context, playID string, flag Flag) error

	// HasFlag reports whether a workflow stage is complete for a play.
	HasFlag(ctx context.Context, playID string, flag Flag) (bool, error)
}

// SQLiteRepository implements Repository using SQLite.
type SQLiteRepository struct {
	db    *sql.DB
	table string
}

// NewSQLiteRepository creates a new SQLite-backed repository over the default
// hbpdata table. The db parameter should be an open SQLite connection whose
// schema has been bootstrapped with DefaultSchema.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return NewSQLiteRepositoryForTable(db, DefaultTable)
}

// NewSQLiteRepositoryForTable creates a repository over a custom table name,
// matching SchemaFor(table).
func NewSQLiteRepositoryForTable(db *sql.DB, table string) *SQLiteRepository {
	return &SQLiteRepository{db: db, table: table}
}

// playColumns is the column list shared by every SELECT, in schema order.
const playColumns = "play_id, game_pk, game_date, pitcher_id, batter_id, end_speed, x_pos, z_pos, downloaded, analyzed, skeeted"

// GetByID retrieves a play by its unique identifier.
func (r *SQLiteRepository) GetByID(ctx context.Context, playID string) (*Play, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE play_id = ?", playColumns, r.table)

	row := r.db.QueryRowContext(ctx, query, playID)
	play, err := scanPlay(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrPlayNotFound, playID)
		}
		return nil, fmt.Errorf("querying play by id: %w", err)
	}
	return play, nil
}

// ReadAll retrieves every play, ordered by game date then play id.
func (r *SQLiteRepository) ReadAll(ctx context.Context) ([]Play, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY game_date, play_id", playColumns, r.table)
	return r.queryPlays(ctx, query)
}

// ListByPitcher retrieves all plays where the given player threw the pitch.
func (r *SQLiteRepository) ListByPitcher(ctx context.Context, pitcherID int64) ([]Play, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE pitcher_id = ? ORDER BY game_date", playColumns, r.table)
	return r.queryPlays(ctx, query, pitcherID)
}

// ListByBatter retrieves all plays where the given player was hit.
func (r *SQLiteRepository) ListByBatter(ctx context.Context, batterID int64) ([]Play, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE batter_id = ? ORDER BY game_date", playColumns, r.table)
	return r.queryPlays(ctx, query, batterID)
}

// ListBySeason retrieves all plays whose game date falls in the given year.
func (r *SQLiteRepository) ListBySeason(ctx context.Context, year int) ([]Play, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE game_date BETWEEN ? AND ? ORDER BY game_date", playColumns, r.table)
	start := fmt.Sprintf("%04d-01-01", year)
	end := fmt.Sprintf("%04d-12-31", year)
	return r.queryPlays(ctx, query, start, end)
}

// Insert adds a new play with workflow flags as carried on the struct.
func (r *SQLiteRepository) Insert(ctx context.Context, play *Play) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, r.table, playColumns)

	_, err := r.db.ExecContext(ctx, query,
		play.PlayID, play.GamePK, play.GameDate, play.PitcherID, play.BatterID,
		play.EndSpeed, play.PlateX, play.PlateZ,
		boolToInt(play.Downloaded), boolToInt(play.Analyzed), boolToInt(play.Skeeted),
	)
	if err != nil {
		if sqlite.IsConstraint(err) {
			return fmt.Errorf("%w: %s", ErrPlayExists, play.PlayID)
		}
		return fmt.Errorf("inserting play: %w", err)
	}
	return nil
}

// SafeInsert adds the play only if its id is absent, reporting whether a row
// was written. A concurrent duplicate between check and insert is reported
// as not-inserted rather than an error.
func (r *SQLiteRepository) SafeInsert(ctx context.Context, play *Play) (bool, error) {
	_, err := r.GetByID(ctx, play.PlayID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrPlayNotFound) {
		return false, err
	}

	if err := r.Insert(ctx, play); err != nil {
		if errors.Is(err, ErrPlayExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes a play by id.
func (r *SQLiteRepository) Remove(ctx context.Context, playID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE play_id = ?", r.table)

	result, err := r.db.ExecContext(ctx, query, playID)
	if err != nil {
		return fmt.Errorf("deleting play: %w", err)
	}
	return checkSingleRow(result, playID)
}

// SetFlag marks a workflow stage complete for a play.
func (r *SQLiteRepository) SetFlag(ctx context.Context, playID string, flag Flag) error {
	if !flag.valid() {
		return fmt.Errorf("%w: %s", ErrInvalidFlag, flag)
	}

	// flag is from the closed Flag set above, never caller-supplied text
	query := fmt.Sprintf("UPDATE %s SET %s = 1 WHERE play_id = ?", r.table, flag)

	result, err := r.db.ExecContext(ctx, query, playID)
	if err != nil {
		return fmt.Errorf("updating %s flag: %w", flag, err)
	}
	return checkSingleRow(result, playID)
}

// HasFlag reports whether a workflow stage is complete for a play.
// Returns ErrPlayNotFound if the play does not exist at all.
func (r *SQLiteRepository) HasFlag(ctx context.Context, playID string, flag Flag) (bool, error) {
	if !flag.valid() {
		return false, fmt.Errorf("%w: %s", ErrInvalidFlag, flag)
	}

	play, err := r.GetByID(ctx, playID)
	if err != nil {
		return false, err
	}

	switch flag {
	case FlagDownloaded:
		return play.Downloaded, nil
	case FlagAnalyzed:
		return play.Analyzed, nil
	default:
		return play.Skeeted, nil
	}
}

// queryPlays runs a multi-row query and scans the results.
func (r *SQLiteRepository) queryPlays(ctx context.Context, query string, args ...any) ([]Play, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying plays: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-side cleanup

	var result []Play
	for rows.Next() {
		play, err := scanPlay(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning play: %w", err)
		}
		result = append(result, *play)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plays: %w", err)
	}
	return result, nil
}

// scanner abstracts sql.Row and sql.Rows for scanPlay.
type scanner interface {
	Scan(dest ...any) error
}

// scanPlay reads one play from a row in playColumns order.
func scanPlay(row scanner) (*Play, error) {
	var play Play
	var downloaded, analyzed, skeeted int

	err := row.Scan(
		&play.PlayID, &play.GamePK, &play.GameDate, &play.PitcherID, &play.BatterID,
		&play.EndSpeed, &play.PlateX, &play.PlateZ,
		&downloaded, &analyzed, &skeeted,
	)
	if err != nil {
		return nil, err
	}

	play.Downloaded = downloaded != 0
	play.Analyzed = analyzed != 0
	play.Skeeted = skeeted != 0
	return &play, nil
}

// checkSingleRow enforces that a by-id statement touched exactly one row.
func checkSingleRow(result sql.Result, playID string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	switch {
	case affected == 0:
		return fmt.Errorf("%w: %s", ErrPlayNotFound, playID)
	case affected > 1:
		return fmt.Errorf("%w: %s", ErrAmbiguousUpdate, playID)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
