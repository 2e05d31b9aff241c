// Package mysql wraps a single MySQL session for HBP Core.
//
// This package manages:
//   - Session lifecycle with an explicit Connect/Close pair
//   - Parameterised Query/Exec with driver-side placeholder substitution
//   - Scoped acquisition via WithSession so a failing query can never leak
//     the session
//
// Security Considerations:
//   - Query arguments are never interpolated into statement text
//   - Credentials come from the settings file or environment overrides
//
// Deliberately absent (callers own these policies):
//   - No retries or backoff
//   - No pooling configuration beyond database/sql defaults
//
// Usage:
//
//	err := mysql.WithSession(ctx, params, func(c *mysql.Connector) error {
//	    rows, err := c.Query(ctx, "SELECT game_pk FROM games WHERE season = ?", 2025)
//	    ...
//	})
package mysql
