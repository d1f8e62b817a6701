package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dante-library/dante/internal/curriculum"
	"github.com/dante-library/dante/internal/outline"
)

func newExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored curriculum data",
	}
	cmd.AddCommand(newExportOutlineCommand())
	return cmd
}

func newExportOutlineCommand() *cobra.Command {
	var (
		lessonID  string
		outputDir string
		withPDF   bool
	)

	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Write a Markdown outline of a lesson, optionally as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := uuid.Parse(lessonID)
			if err != nil {
				return fmt.Errorf("--lesson must be a valid UUID: %w", err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := openDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			o, err := outline.Load(ctx, curriculum.NewDBStore(db), id)
			if err != nil {
				return fmt.Errorf("load outline: %w", err)
			}
			paths, err := o.Write(outputDir, withPDF)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&lessonID, "lesson", "", "Lesson ID")
	cmd.Flags().StringVar(&outputDir, "output", "./export", "Output directory")
	cmd.Flags().BoolVar(&withPDF, "pdf", false, "Also render the outline as PDF")
	_ = cmd.MarkFlagRequired("lesson")
	return cmd
}
