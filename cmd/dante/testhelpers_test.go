package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dante-library/dante/internal/curriculum"
	"github.com/dante-library/dante/internal/database"
	"github.com/dante-library/dante/internal/testutil"
)

// setConfigFile sets the global configFile variable and registers a cleanup to restore it.
func setConfigFile(t *testing.T, cfgPath string) {
	t.Helper()
	oldConfigFile := configFile
	configFile = cfgPath
	t.Cleanup(func() { configFile = oldConfigFile })
}

// setupBrokenConfigFile creates a config file with invalid YAML that causes Load() to fail.
func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{invalid yaml content"), 0644))
	return cfgPath
}

// keepGlobalLogger restores the global zap logger that commands replace.
func keepGlobalLogger(t *testing.T) {
	t.Helper()
	old := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(old) })
}

// setupWorkspace writes a config and a content tree into a temp dir, points the
// commands at it and applies the schema. It returns the temp dir.
func setupWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	keepGlobalLogger(t)
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))
	testutil.WriteContentTree(t, filepath.Join(tmpDir, "content"), files)

	_, err := execute(t, newMigrateCommand())
	require.NoError(t, err)
	return tmpDir
}

// execute runs cmd with args and returns what it wrote to stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// openWorkspaceStore opens the SQLite database SetupTestConfig configured.
func openWorkspaceStore(t *testing.T, tmpDir string) *curriculum.DBStore {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(tmpDir, "dante.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return curriculum.NewDBStore(db)
}

// onlyLesson returns the single lesson stored in the workspace.
func onlyLesson(t *testing.T, store *curriculum.DBStore) curriculum.Lesson {
	t.Helper()
	ctx := context.Background()
	grades, err := store.ListGrades(ctx)
	require.NoError(t, err)
	require.Len(t, grades, 1)
	lessons, err := store.ListLessonsByGrade(ctx, grades[0].ID)
	require.NoError(t, err)
	require.Len(t, lessons, 1)
	return lessons[0]
}
