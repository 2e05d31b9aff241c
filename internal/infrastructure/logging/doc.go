// Package logging provides structured logging for HBP Core.
//
// This package manages:
//   - slog-based structured logging with level filtering
//   - Text output for development, JSON for production
//   - FileTee, a duplicating sink that writes to the console and a
//     timestamped log file at the same time
//
// The FileTee is an explicit, injected writer rather than a process-wide
// stdout replacement, so nothing in this package touches global state.
//
// Usage:
//
//	tee, err := logging.NewFileTee("logs", "downloader", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tee.Close()
//
//	logger := logging.New(logging.Config{Level: "info", Format: "text"}, tee, version)
//	logger.Info("starting run")
package logging
