package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dante-library/dante/internal/ingest"
)

var sampleContent = map[string]string{
	"10/Biology_1/Chapter_1/Part_1/intro.html": "<p>intro</p>",
	"10/Biology_1/Chapter_1/Part_2/cells.html": "<p>cells</p>",
}

func TestNewIngestCommand(t *testing.T) {
	cmd := newIngestCommand()

	assert.Equal(t, "ingest", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	tests := []struct {
		flag   string
		defVal string
	}{
		{flag: "root", defVal: ""},
		{flag: "language", defVal: ""},
		{flag: "dry-run", defVal: "false"},
		{flag: "grade", defVal: "[]"},
		{flag: "tx-scope", defVal: ""},
		{flag: "part-numbering", defVal: ""},
	}
	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.flag)
			require.NotNil(t, f)
			assert.Equal(t, tt.defVal, f.DefValue)
		})
	}
}

func TestNewIngestCommand_RunE_configError(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	_, err := execute(t, newIngestCommand())
	assert.ErrorContains(t, err, "load config")
}

func TestNewIngestCommand_RunE(t *testing.T) {
	setupWorkspace(t, sampleContent)

	out, err := execute(t, newIngestCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "[NEW]")
	assert.Contains(t, out, "\nIngest Summary:\n")
	assert.Contains(t, out, "  Parts:      2 new, 0 existing\n")
	assert.Contains(t, out, "  Stored:     1 grades, 1 subjects, 1 lessons, 1 chapters, 2 parts\n")
	assert.NotContains(t, out, "Catalog cache invalidated.")

	out, err = execute(t, newIngestCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "  Grades:     0 new, 1 existing\n")
	assert.Contains(t, out, "  Parts:      0 new, 2 existing\n")
	assert.Contains(t, out, "  Stored:     1 grades, 1 subjects, 1 lessons, 1 chapters, 2 parts\n")
}

func TestNewIngestCommand_RunE_dryRun(t *testing.T) {
	tmpDir := setupWorkspace(t, sampleContent)

	out, err := execute(t, newIngestCommand(), "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Ingest Summary (dry run, nothing was written):")
	assert.Contains(t, out, "  Parts:      2 new, 0 existing\n")
	assert.NotContains(t, out, "Stored:")

	totals, err := openWorkspaceStore(t, tmpDir).Totals(t.Context())
	require.NoError(t, err)
	assert.Zero(t, totals.Parts)
	assert.Zero(t, totals.Grades)
}

func TestNewIngestCommand_RunE_flags(t *testing.T) {
	tmpDir := setupWorkspace(t, nil)
	other := filepath.Join(tmpDir, "other")
	require.NoError(t, os.MkdirAll(other, 0755))
	for _, grade := range []string{"9", "10", "11"} {
		p := filepath.Join(other, grade, "Physics", "Chapter_1", "Part_1", "a.html")
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("a"), 0644))
	}

	out, err := execute(t, newIngestCommand(),
		"--root", other, "--grade", "9", "--grade", "11",
		"--tx-scope", "run", "--part-numbering", "sequential", "--language", "en")
	require.NoError(t, err)
	assert.Contains(t, out, "  Grades:     2 new, 0 existing\n")

	store := openWorkspaceStore(t, tmpDir)
	grades, err := store.ListGrades(t.Context())
	require.NoError(t, err)
	require.Len(t, grades, 2)
	assert.Equal(t, "9", grades[0].Code)
	assert.Equal(t, "11", grades[1].Code)

	subjects, err := store.ListSubjects(t.Context())
	require.NoError(t, err)
	require.Len(t, subjects, 1)
	assert.Equal(t, "en", subjects[0].Language)
}

func TestNewIngestCommand_RunE_invalidFlag(t *testing.T) {
	setupWorkspace(t, sampleContent)

	_, err := execute(t, newIngestCommand(), "--tx-scope", "chapter")
	assert.ErrorContains(t, err, "tx-scope")
}

func TestNewIngestCommand_RunE_missingRoot(t *testing.T) {
	tmpDir := setupWorkspace(t, nil)

	out, err := execute(t, newIngestCommand(), "--root", filepath.Join(tmpDir, "absent"))
	assert.ErrorIs(t, err, ingest.ErrRootNotFound)
	assert.NotContains(t, out, "Ingest Summary")
}

func TestNewIngestCommand_RunE_missingRootBeforeDatabase(t *testing.T) {
	keepGlobalLogger(t)
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "no-such-dir", "dante.db")
	cfgPath := filepath.Join(tmpDir, "config.yml")
	cfg := fmt.Sprintf("database:\n  driver: sqlite\n  path: %s\n  connect_retries: 0\nlog:\n  level: error\n", dbPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))
	setConfigFile(t, cfgPath)

	_, err := execute(t, newIngestCommand(), "--root", filepath.Join(tmpDir, "absent"))
	assert.ErrorIs(t, err, ingest.ErrRootNotFound)
	assert.NotContains(t, err.Error(), "ping database")
	assert.NoFileExists(t, dbPath)
}

func TestNewIngestCommand_RunE_invalidatesCache(t *testing.T) {
	tmpDir := setupWorkspace(t, sampleContent)
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("catalog:grades", "[]"))
	require.NoError(t, mr.Set("rate_limit:api:127.0.0.1", "3"))

	cfgPath := filepath.Join(tmpDir, "config.yml")
	f, err := os.OpenFile(cfgPath, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = fmt.Fprintf(f, "redis:\n  addr: %s\n", mr.Addr())
	require.NoError(t, err)
	require.NoError(t, f.Close())

	out, err := execute(t, newIngestCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog cache invalidated.")
	assert.False(t, mr.Exists("catalog:grades"))
	assert.True(t, mr.Exists("rate_limit:api:127.0.0.1"))

	require.NoError(t, mr.Set("catalog:grades", "[]"))
	out, err = execute(t, newIngestCommand())
	require.NoError(t, err)
	assert.NotContains(t, out, "Catalog cache invalidated.")
	assert.True(t, mr.Exists("catalog:grades"))
}
