package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dante-library/dante/internal/preview"
)

func newPreviewCommand() *cobra.Command {
	var root string
	format := preview.FormatText

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the hierarchy a content directory would produce without touching the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			opts, err := scanOptions(cmd, cfg.Content, ingestFlags{root: root})
			if err != nil {
				return err
			}

			tree, err := preview.Scan(cmd.Context(), opts, zap.L())
			if err != nil {
				return fmt.Errorf("preview %s: %w", opts.RootPath, err)
			}
			return tree.Write(cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Content root directory (default from content.root_directory)")
	cmd.Flags().Var(&format, "format", "Output format: text or yaml")
	return cmd
}
