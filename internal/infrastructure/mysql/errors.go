package mysql

import "errors"

// Sentinel errors for MySQL sessions.
//
// Connection errors and statement errors are distinct kinds so callers can
// tell an unreachable server apart from a bad query:
//
//	if errors.Is(err, mysql.ErrConnectionFailed) {
//	    // server-side problem, nothing wrong with the statement
//	}
var (
	// ErrNotConnected is returned when querying before Connect or after Close.
	ErrNotConnected = errors.New("mysql: not connected")

	// ErrAlreadyConnected is returned when Connect is called on an open session.
	ErrAlreadyConnected = errors.New("mysql: already connected")

	// ErrConnectionFailed is returned when a session cannot be established.
	ErrConnectionFailed = errors.New("mysql: connection failed")

	// ErrQueryFailed is returned when a statement fails (syntax error,
	// constraint violation, scan failure).
	ErrQueryFailed = errors.New("mysql: query failed")
)
