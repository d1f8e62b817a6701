package database

import (
	"fmt"
	"strings"
)

// Dialect names the SQL flavour a store speaks; it matches config's database.driver.
type Dialect string

const (
	MySQL  Dialect = "mysql"
	SQLite Dialect = "sqlite"
)

// DialectOf maps a sqlx driver name to its dialect.
func DialectOf(driverName string) Dialect {
	if strings.HasPrefix(driverName, "sqlite") {
		return SQLite
	}
	return MySQL
}

// BuildInsertIgnore builds a single-row INSERT that silently does nothing when a
// unique key already holds the row. Callers read RowsAffected to learn whether the
// row was created, which keeps get-or-create a single atomic statement.
func BuildInsertIgnore(d Dialect, table string, columns []string) string {
	placeholders := "(" + strings.Repeat("?, ", len(columns)-1) + "?)"
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", table, strings.Join(columns, ", "), placeholders)
	if d == SQLite {
		return query + " ON CONFLICT DO NOTHING"
	}
	return query + " ON DUPLICATE KEY UPDATE id = id"
}

// ForShare returns the clause that turns a SELECT into a locking read, which sees
// rows committed after the transaction's InnoDB snapshot was taken.
func ForShare(d Dialect) string {
	if d == SQLite {
		return ""
	}
	return " LOCK IN SHARE MODE"
}
