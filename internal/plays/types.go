package plays

import "github.com/hbpbot/hbp-core/internal/infrastructure/sqlite"

// Play is one hit-by-pitch event as tracked by the pipeline.
//
// The first eight fields are the pitch record itself; the three flags track
// how far the play has moved through the downloader/plotter/skeeter
// workflows.
type Play struct {
	// PlayID uniquely identifies the play (statcast UUID).
	PlayID string

	// GamePK is the game's primary key in the upstream feed.
	GamePK int64

	// GameDate is the game date in YYYY-MM-DD form.
	GameDate string

	// PitcherID and BatterID identify the players involved.
	PitcherID int64
	BatterID  int64

	// EndSpeed is the pitch speed at the plate (mph).
	EndSpeed float64

	// PlateX and PlateZ locate the pitch as it crossed the plate (feet).
	PlateX float64
	PlateZ float64

	// Workflow flags.
	Downloaded bool
	Analyzed   bool
	Skeeted    bool
}

// Flag names a workflow stage tracked on each play.
type Flag string

// Workflow flags, in pipeline order.
const (
	FlagDownloaded Flag = "downloaded"
	FlagAnalyzed   Flag = "analyzed"
	FlagSkeeted    Flag = "skeeted"
)

// valid reports whether the flag names a real column. Guarding here keeps
// flag names out of reach of query text built from caller input.
func (f Flag) valid() bool {
	switch f {
	case FlagDownloaded, FlagAnalyzed, FlagSkeeted:
		return true
	}
	return false
}

// DefaultTable is the table name used when none is configured.
const DefaultTable = "hbpdata"

// DefaultSchema describes the hbpdata table: play id, three integer fields,
// three floating-point fields, plus the game date and workflow flags.
func DefaultSchema() sqlite.Schema {
	return SchemaFor(DefaultTable)
}

// SchemaFor returns the play table description under a custom table name,
// for settings files that override [database] hbp_table.
func SchemaFor(table string) sqlite.Schema {
	return sqlite.Schema{
		Table: table,
		Columns: []sqlite.Column{
			{Name: "play_id", Type: "TEXT", PrimaryKey: true},
			{Name: "game_pk", Type: "INTEGER", NotNull: true},
			{Name: "game_date", Type: "TEXT", NotNull: true, Default: "''"},
			{Name: "pitcher_id", Type: "INTEGER", NotNull: true},
			{Name: "batter_id", Type: "INTEGER", NotNull: true},
			{Name: "end_speed", Type: "REAL", NotNull: true},
			{Name: "x_pos", Type: "REAL", NotNull: true},
			{Name: "z_pos", Type: "REAL", NotNull: true},
			{Name: "downloaded", Type: "INTEGER", NotNull: true, Default: "0"},
			{Name: "analyzed", Type: "INTEGER", NotNull: true, Default: "0"},
			{Name: "skeeted", Type: "INTEGER", NotNull: true, Default: "0"},
		},
	}
}
