// HBP Core - hit-by-pitch database check
//
// hbpdb is the diagnostic entry point for the HBP data-access core. It loads
// the settings file, opens (creating if needed) the local play database,
// writes a few sample plays, and dumps what came back. With -mysql it also
// verifies the network database session from the [mysql] section.
//
// The real pipeline entry points (downloader, plotter, skeeter) live outside
// this repository and consume the same internal packages.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"

	"github.com/hbpbot/hbp-core/internal/infrastructure/config"
	"github.com/hbpbot/hbp-core/internal/infrastructure/logging"
	"github.com/hbpbot/hbp-core/internal/infrastructure/mysql"
	"github.com/hbpbot/hbp-core/internal/infrastructure/sqlite"
	"github.com/hbpbot/hbp-core/internal/plays"
)

// Version information - set at build time via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

// Default configuration file path
const defaultConfigPath = "configs/settings.ini"

// options carries the parsed command line.
type options struct {
	configPath string
	noLog      bool
	verbose    bool
	checkMySQL bool
}

func main() {
	opts := parseFlags(os.Args[1:])

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags builds options from the argument list.
func parseFlags(args []string) options {
	var opts options
	fs := flag.NewFlagSet("hbpdb", flag.ExitOnError)
	fs.StringVar(&opts.configPath, "config", defaultConfigPath, "settings file to load")
	fs.BoolVar(&opts.noLog, "nolog", false, "disable the log file, console only")
	fs.BoolVar(&opts.verbose, "verbose", false, "dump the loaded configuration")
	fs.BoolVar(&opts.checkMySQL, "mysql", false, "also verify the [mysql] session")
	fs.Parse(args) //nolint:errcheck // ExitOnError flag set
	return opts
}

// run is the actual application logic, separated from main for testability.
func run(ctx context.Context, opts options) error {
	log := logging.Default()
	log.Info("starting hbpdb", "version", version, "config", opts.configPath)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Route output through a timestamped log file unless disabled.
	var output io.Writer = os.Stdout
	if !opts.noLog {
		logDir, err := cfg.Get("paths", "log_dir")
		if err != nil {
			return err
		}
		prefix, err := cfg.Get("logging", "dbtest_prefix")
		if err != nil {
			return err
		}

		tee, err := logging.NewFileTee(logDir, prefix, os.Stdout)
		if err != nil {
			return fmt.Errorf("setting up log file: %w", err)
		}
		defer func() {
			if closeErr := tee.Close(); closeErr != nil {
				fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", closeErr)
			}
		}()
		output = tee
	}

	level, err := cfg.Get("logging", "level")
	if err != nil {
		level = "info"
	}
	format, err := cfg.Get("logging", "format")
	if err != nil {
		format = "text"
	}
	log = logging.New(logging.Config{Level: level, Format: format}, output, version)
	log.Info("starting database check", "commit", commit)

	if opts.verbose {
		for section, keys := range cfg.All() {
			for key, value := range keys {
				log.Debug("setting", "section", section, "key", key, "value", value)
			}
		}
	}

	if err := checkSQLite(ctx, cfg, log); err != nil {
		return err
	}

	if opts.checkMySQL {
		if err := checkMySQL(ctx, cfg, log); err != nil {
			return err
		}
	}

	log.Info("database check complete")
	return nil
}

// checkSQLite exercises the local play database end to end: open, bootstrap,
// insert sample plays, read everything back, run a filtered query.
func checkSQLite(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	dbDir, err := cfg.Get("paths", "db_dir")
	if err != nil {
		return err
	}
	dbFile, err := cfg.Get("database", "hbp_db_filename")
	if err != nil {
		return err
	}
	table, err := cfg.Get("database", "hbp_table")
	if err != nil {
		table = plays.DefaultTable
	}

	dbPath := filepath.Join(dbDir, dbFile)
	log = log.With("component", "sqlite")
	log.Info("opening play database", "path", dbPath, "table", table)

	db, err := sqlite.Open(sqlite.Config{Path: dbPath, WALMode: true, BusyTimeout: 5})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()

	if err := db.EnsureSchema(ctx, plays.SchemaFor(table)); err != nil {
		return err
	}

	repo := plays.NewSQLiteRepositoryForTable(db.DB, table)

	samples := []plays.Play{
		{PlayID: uuid.NewString(), GamePK: 111111, GameDate: "2025-04-12", PitcherID: 222222, BatterID: 333333, EndSpeed: 86.7, PlateX: 3.14, PlateZ: 6.28},
		{PlayID: uuid.NewString(), GamePK: 444444, GameDate: "2025-06-30", PitcherID: 555555, BatterID: 666666, EndSpeed: 92.1, PlateX: 14.5, PlateZ: 9.01},
		{PlayID: uuid.NewString(), GamePK: 777777, GameDate: "2025-09-01", PitcherID: 888888, BatterID: 999999, EndSpeed: 95.5, PlateX: 7.77, PlateZ: 19.77},
	}
	for i := range samples {
		if err := repo.Insert(ctx, &samples[i]); err != nil {
			return fmt.Errorf("inserting sample play: %w", err)
		}
	}
	log.Info("sample plays inserted", "count", len(samples))

	all, err := repo.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("reading plays: %w", err)
	}
	for _, p := range all {
		log.Info("play",
			"play_id", p.PlayID,
			"game_pk", p.GamePK,
			"game_date", p.GameDate,
			"end_speed", p.EndSpeed,
		)
	}

	byPitcher, err := repo.ListByPitcher(ctx, samples[1].PitcherID)
	if err != nil {
		return fmt.Errorf("filtering plays: %w", err)
	}
	log.Info("filtered by pitcher", "pitcher_id", samples[1].PitcherID, "count", len(byPitcher))

	return nil
}

// checkMySQL verifies the network database session described by the [mysql]
// section: connect, run SELECT 1, disconnect.
func checkMySQL(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	params, err := mysqlParams(cfg)
	if err != nil {
		return err
	}

	log = log.With("component", "mysql")
	log.Info("verifying session", "host", params.Host, "database", params.Database)

	return mysql.WithSession(ctx, params, func(c *mysql.Connector) error {
		rows, err := c.Query(ctx, "SELECT 1")
		if err != nil {
			return err
		}
		log.Info("session verified", "rows", len(rows))
		return nil
	})
}

// mysqlParams reads the fixed connection parameter set from the [mysql]
// section.
func mysqlParams(cfg *config.Config) (mysql.Params, error) {
	var params mysql.Params
	var err error

	if params.Host, err = cfg.Get("mysql", "hostname"); err != nil {
		return params, err
	}
	if params.Database, err = cfg.Get("mysql", "database"); err != nil {
		return params, err
	}
	if params.Username, err = cfg.Get("mysql", "username"); err != nil {
		return params, err
	}
	if params.Password, err = cfg.Get("mysql", "password"); err != nil {
		return params, err
	}
	return params, nil
}
