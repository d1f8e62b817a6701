package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dante-library/dante/internal/curriculum"
	"github.com/dante-library/dante/internal/locatorcheck"
)

func newCheckLocatorsCommand() *cobra.Command {
	var (
		baseURL string
		retries uint
	)

	cmd := &cobra.Command{
		Use:   "check-locators",
		Short: "Verify that every URL part resolves on the static content host",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("base-url") {
				baseURL = cfg.Static.BaseURL
			}
			if baseURL == "" {
				return errors.New("no base URL: set --base-url or static.base_url")
			}

			db, err := openDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			checker := locatorcheck.NewChecker(curriculum.NewDBStore(db), baseURL, retries, zap.L())
			report, err := checker.Check(ctx)
			if err != nil {
				return err
			}
			if err := report.Write(cmd.OutOrStdout()); err != nil {
				return err
			}
			if !report.OK() {
				return fmt.Errorf("%d of %d locators do not resolve", len(report.Failures), report.Checked)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Base URL of the static content host (default from static.base_url)")
	cmd.Flags().UintVar(&retries, "retries", locatorcheck.DefaultRetries, "Extra attempts for 5xx and 429 answers")
	return cmd
}
