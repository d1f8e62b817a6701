package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dante-library/dante/internal/config"
	"github.com/dante-library/dante/internal/logger"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	rootCommand := newRootCommand()
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		_ = zap.L().Sync()
		os.Exit(1)
	}
	_ = zap.L().Sync()
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "dante",
		Short:         "Ingest and inspect curriculum content",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(config.LogConfig{Mode: "development", Level: "info"})
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newMigrateCommand(),
		newIngestCommand(),
		newPreviewCommand(),
		newExportCommand(),
		newCheckLocatorsCommand(),
	)
	return rootCommand
}

// setupLogger replaces the global zap logger. --debug overrides the configured level.
func setupLogger(cfg config.LogConfig) error {
	level := cfg.Level
	if debugMode {
		level = "debug"
	}
	l, err := logger.New(cfg.Mode, level)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	zap.ReplaceGlobals(l)
	return nil
}
