package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dante-library/dante/internal/config"
	"github.com/dante-library/dante/internal/testutil"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{name: "debug mode enabled", debugMode: true, level: "warn", wantDebug: true, wantInfo: true},
		{name: "configured level", level: "info", wantInfo: true},
		{name: "quiet level", level: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keepGlobalLogger(t)
			old := debugMode
			debugMode = tt.debugMode
			t.Cleanup(func() { debugMode = old })

			require.NoError(t, setupLogger(config.LogConfig{Mode: "development", Level: tt.level}))
			assert.Equal(t, tt.wantDebug, zap.L().Core().Enabled(zap.DebugLevel))
			assert.Equal(t, tt.wantInfo, zap.L().Core().Enabled(zap.InfoLevel))
		})
	}
}

func TestSetupLogger_InvalidLevel(t *testing.T) {
	keepGlobalLogger(t)
	assert.Error(t, setupLogger(config.LogConfig{Level: "loud"}))
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "dante", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("debug"))

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"migrate", "ingest", "preview", "export", "check-locators"}, names)
}

func TestNewMigrateCommand(t *testing.T) {
	t.Run("applies the schema", func(t *testing.T) {
		keepGlobalLogger(t)
		setConfigFile(t, testutil.SetupTestConfig(t, t.TempDir()))

		out, err := execute(t, newMigrateCommand())
		require.NoError(t, err)
		assert.Equal(t, "Applied 0001_curriculum.sql\n", out)

		out, err = execute(t, newMigrateCommand())
		require.NoError(t, err)
		assert.Equal(t, "Applied 0001_curriculum.sql\n", out)
	})

	t.Run("config error", func(t *testing.T) {
		setConfigFile(t, setupBrokenConfigFile(t))

		_, err := execute(t, newMigrateCommand())
		assert.ErrorContains(t, err, "load config")
	})
}
