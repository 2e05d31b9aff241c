package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// File tee constants.
const (
	// dirPermissions is the permission mode for the log directory.
	dirPermissions = 0750

	// filePermissions is the permission mode for log files.
	filePermissions = 0640

	// timestampLayout names one log file per process invocation.
	timestampLayout = "2006-01-02_15-04-05"
)

// FileTee duplicates everything written to it to a console writer and a
// timestamped log file.
//
// It replaces the old trick of swapping the process-wide stdout: instead of
// mutating global state, a FileTee is constructed once and handed to the
// logger (or any other writer-taking component) explicitly. Tests can run
// side by side without interfering with each other's output.
//
// Thread Safety:
//   - Write and Close are safe for concurrent use.
type FileTee struct {
	console io.Writer
	file    *os.File
	path    string

	mu       sync.Mutex
	closed   bool
	closeErr error
}

// NewFileTee creates the log directory if absent, opens a new timestamped
// log file under it, and returns a writer that duplicates output to both
// console and file.
//
// The file is named <prefix>_<timestamp>.log so repeated invocations never
// collide within clock resolution.
//
// Parameters:
//   - dir: Directory for log files, created if absent
//   - prefix: Log file name prefix (e.g. "downloader")
//   - console: Secondary writer, typically os.Stdout; nil disables echoing
//
// Returns:
//   - *FileTee: Open tee; callers must Close it to flush buffered lines
//   - error: If the directory or file cannot be created
func NewFileTee(dir, prefix string, console io.Writer) (*FileTee, error) {
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.log", prefix, time.Now().Format(timestampLayout))
	path := filepath.Join(dir, name)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePermissions)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	return &FileTee{
		console: console,
		file:    file,
		path:    path,
	}, nil
}

// Write writes p to the log file and echoes it to the console writer.
//
// The returned count and error reflect the file write; a console failure
// cannot be meaningfully handled and must not poison the log file.
func (t *FileTee) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, ErrTeeClosed
	}

	if t.console != nil {
		_, _ = t.console.Write(p) //nolint:errcheck // Console echo is best effort
	}

	n, err := t.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing log file: %w", err)
	}
	return n, nil
}

// Close flushes and closes the log file. It is safe to call more than once;
// the file is released exactly once and later calls return the same result.
func (t *FileTee) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return t.closeErr
	}
	t.closed = true

	if err := t.file.Sync(); err != nil {
		t.closeErr = fmt.Errorf("flushing log file: %w", err)
		_ = t.file.Close() //nolint:errcheck // Best effort after failed sync
		return t.closeErr
	}

	if err := t.file.Close(); err != nil {
		t.closeErr = fmt.Errorf("closing log file: %w", err)
	}
	return t.closeErr
}

// Path returns the full path of the log file.
func (t *FileTee) Path() string {
	return t.path
}
