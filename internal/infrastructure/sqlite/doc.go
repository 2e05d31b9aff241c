// Package sqlite provides local SQLite storage for HBP Core.
//
// This package manages:
//   - Database connection with WAL mode and busy timeout pragmas
//   - Table bootstrapping driven by a Schema description (table name,
//     ordered column list, types) rather than a hard-coded record shape
//   - A generic Store with insert-row, read-all and parameterised
//     query/exec escape hatches
//   - Scoped acquisition via With so a failing query can never leak the
//     file handle
//
// Security Considerations:
//   - All statements use parameterised placeholders (no SQL injection)
//   - Database file permissions are set to 0600 (owner read/write only)
//
// Deliberately absent (by project policy):
//   - No migration engine; EnsureSchema only creates missing tables
//   - No transaction isolation guarantees beyond the driver's
//
// Usage:
//
//	db, err := sqlite.Open(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	if err := db.EnsureSchema(ctx, schema); err != nil {
//	    log.Fatal(err)
//	}
//	store := sqlite.NewStore(db, schema)
package sqlite
