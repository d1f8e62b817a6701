// Package testutil provides shared test helpers for config files, content trees and stores.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/dante-library/dante/internal/curriculum"
	"github.com/dante-library/dante/internal/database"
)

// SetupTestConfig writes a config.yml that points at a SQLite database and a
// content root inside tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	contentRoot := filepath.Join(tmpDir, "content")
	require.NoError(t, os.MkdirAll(contentRoot, 0755))

	configContent := fmt.Sprintf(`database:
  driver: sqlite
  path: %s
  connect_retries: 0
content:
  root_directory: %s
log:
  level: error
`,
		filepath.Join(tmpDir, "dante.db"),
		contentRoot,
	)

	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath
}

// WriteContentTree creates files under root. Keys are slash-separated paths
// relative to root; a key ending in "/" creates an empty directory.
func WriteContentTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	}
}

// TouchAll sets the modification time of every path under root to ts so that
// stored metadata is predictable.
func TouchAll(t *testing.T, root string, ts time.Time) {
	t.Helper()

	err := filepath.WalkDir(root, func(p string, _ os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return os.Chtimes(p, ts, ts)
	})
	require.NoError(t, err)
}

// NewSQLiteDB opens a migrated in-memory SQLite database closed at test cleanup.
func NewSQLiteDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = database.Migrate(context.Background(), db)
	require.NoError(t, err)
	return db
}

// NewSQLiteStore returns a DBStore over NewSQLiteDB.
func NewSQLiteStore(t *testing.T) *curriculum.DBStore {
	t.Helper()
	return curriculum.NewDBStore(NewSQLiteDB(t))
}
