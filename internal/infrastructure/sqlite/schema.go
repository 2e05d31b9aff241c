package sqlite

import (
	"fmt"
	"strings"
)

// Column describes one column of a table.
type Column struct {
	// Name is the column name as it appears in SQL.
	Name string

	// Type is the SQLite type name: TEXT, INTEGER or REAL.
	Type string

	// PrimaryKey marks the column as the table's primary key.
	PrimaryKey bool

	// NotNull adds a NOT NULL constraint.
	NotNull bool

	// Default is an optional SQL literal used as the column default,
	// e.g. "0" or "''". Empty means no default.
	Default string
}

// Schema describes a table: its name and ordered column list.
//
// A Schema is the contract between a Store and the file on disk. The same
// Store code serves any record shape; callers describe their table once and
// bind a Store to it.
type Schema struct {
	Table   string
	Columns []Column
}

// Validate checks the schema is well formed enough to render SQL.
func (s Schema) Validate() error {
	if s.Table == "" {
		return fmt.Errorf("%w: empty table name", ErrInvalidSchema)
	}
	if len(s.Columns) == 0 {
		return fmt.Errorf("%w: table %s has no columns", ErrInvalidSchema, s.Table)
	}
	for _, col := range s.Columns {
		if col.Name == "" {
			return fmt.Errorf("%w: table %s has an unnamed column", ErrInvalidSchema, s.Table)
		}
		if col.Type == "" {
			return fmt.Errorf("%w: column %s.%s has no type", ErrInvalidSchema, s.Table, col.Name)
		}
	}
	return nil
}

// CreateSQL renders the CREATE TABLE IF NOT EXISTS statement for the schema.
func (s Schema) CreateSQL() string {
	defs := make([]string, 0, len(s.Columns))
	for _, col := range s.Columns {
		def := col.Name + " " + col.Type
		if col.PrimaryKey {
			def += " PRIMARY KEY"
		}
		if col.NotNull {
			def += " NOT NULL"
		}
		if col.Default != "" {
			def += " DEFAULT " + col.Default
		}
		defs = append(defs, def)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", s.Table, strings.Join(defs, ",\n\t"))
}

// ColumnNames returns the column names in declaration order.
func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}

// insertSQL renders the parameterised INSERT statement covering all columns.
func (s Schema) insertSQL() string {
	names := s.ColumnNames()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.Table, strings.Join(names, ", "), placeholders)
}

// selectAllSQL renders the full-table SELECT in declared column order.
func (s Schema) selectAllSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(s.ColumnNames(), ", "), s.Table)
}
