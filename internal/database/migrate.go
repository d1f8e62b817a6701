package database

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/dante-library/dante/schemas"
)

// Migrate applies every embedded migration for the db's dialect in file name order.
// Statements are idempotent, so running it against a migrated database is a no-op.
// It returns the applied file names.
func Migrate(ctx context.Context, db *sqlx.DB) ([]string, error) {
	return migrateFS(ctx, db, schemas.Migrations, path.Join("migrations", string(DialectOf(db.DriverName()))))
}

func migrateFS(ctx context.Context, db *sqlx.DB, fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		for _, stmt := range splitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return nil, fmt.Errorf("apply migration %s: %w", name, err)
			}
		}
	}
	return names, nil
}

func splitStatements(script string) []string {
	var stmts []string
	for _, s := range strings.Split(script, ";") {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
