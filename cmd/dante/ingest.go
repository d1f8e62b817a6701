package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dante-library/dante/internal/cache"
	"github.com/dante-library/dante/internal/catalog"
	"github.com/dante-library/dante/internal/config"
	"github.com/dante-library/dante/internal/curriculum"
	"github.com/dante-library/dante/internal/ingest"
)

type ingestFlags struct {
	root          string
	language      string
	dryRun        bool
	grades        []string
	txScope       ingest.TxScope
	partNumbering ingest.PartNumbering
}

func newIngestCommand() *cobra.Command {
	var flags ingestFlags

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Scan the content directory and store its curriculum hierarchy",
		Long: `Scan the content directory and store its curriculum hierarchy.

HTML files placed directly in a subject folder go to chapter 1 (or
content.chapter_number_fallback) and are numbered 1, 2, ... in name order.
A Chapter_1 folder in the same subject shares that chapter, so its parts can
claim the same numbers. Such parts are reported as [COLLISION] and keep the
row stored first; use --part-numbering sequential or move the loose files
into their own chapter folder.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			opts, err := scanOptions(cmd, cfg.Content, flags)
			if err != nil {
				return err
			}

			if err := ingest.CheckRoot(opts.RootPath); err != nil {
				return fmt.Errorf("ingest %s: %w", opts.RootPath, err)
			}

			db, err := openDatabase(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()
			store := curriculum.NewDBStore(db)

			result, err := ingest.NewScanner(store, opts, out, zap.L()).Scan(ctx)
			if result != nil {
				result.WriteSummary(out)
			}
			if err != nil {
				return fmt.Errorf("ingest %s: %w", opts.RootPath, err)
			}
			if result.DryRun {
				return nil
			}

			if err := printTotals(ctx, out, store); err != nil {
				return err
			}
			if result.Created() {
				invalidateCatalog(cmd, cfg.Redis, store)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", "", "Content root directory (default from content.root_directory)")
	cmd.Flags().StringVar(&flags.language, "language", "", "Language tag for new subjects (default from content.default_language)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Scan and report without writing to the database")
	cmd.Flags().StringSliceVar(&flags.grades, "grade", nil, "Only ingest these grade folders (repeatable)")
	cmd.Flags().Var(&flags.txScope, "tx-scope", "Transaction scope: grade or run (default from content.tx_scope)")
	cmd.Flags().Var(&flags.partNumbering, "part-numbering", "Part numbering: offset or sequential (default from content.part_numbering)")
	return cmd
}

// scanOptions merges the content config with the flags that were set explicitly.
func scanOptions(cmd *cobra.Command, content config.ContentConfig, flags ingestFlags) (ingest.Options, error) {
	opts := ingest.Options{
		RootPath:              content.RootDirectory,
		DefaultLanguage:       content.DefaultLanguage,
		ChapterNumberFallback: content.ChapterNumberFallback,
		PartNumberFallback:    content.PartNumberFallback,
		StaticPrefix:          content.StaticPrefix,
		DryRun:                flags.dryRun,
		Grades:                flags.grades,
	}
	if err := opts.PartNumbering.Set(content.PartNumbering); err != nil {
		return opts, fmt.Errorf("content.part_numbering: %w", err)
	}
	if err := opts.TxScope.Set(content.TxScope); err != nil {
		return opts, fmt.Errorf("content.tx_scope: %w", err)
	}

	fs := cmd.Flags()
	if fs.Changed("root") {
		opts.RootPath = flags.root
	}
	if fs.Changed("language") {
		opts.DefaultLanguage = flags.language
	}
	if fs.Changed("tx-scope") {
		opts.TxScope = flags.txScope
	}
	if fs.Changed("part-numbering") {
		opts.PartNumbering = flags.partNumbering
	}
	return opts, nil
}

func printTotals(ctx context.Context, out io.Writer, store *curriculum.DBStore) error {
	t, err := store.Totals(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  Stored:     %d grades, %d subjects, %d lessons, %d chapters, %d parts\n",
		t.Grades, t.Subjects, t.Lessons, t.Chapters, t.Parts)
	return nil
}

// invalidateCatalog drops the read API cache. The ingest itself has committed, so
// a cache failure is only logged.
func invalidateCatalog(cmd *cobra.Command, cfg config.RedisConfig, store *curriculum.DBStore) {
	ctx := cmd.Context()
	client, err := cache.NewClient(ctx, cfg)
	if err != nil {
		zap.L().Warn("catalog cache not invalidated", zap.Error(err))
		return
	}
	if client == nil {
		return
	}
	defer func() { _ = client.Close() }()

	svc := catalog.NewService(store, cache.New(client, time.Duration(cfg.CacheTTLSeconds)*time.Second), zap.L())
	if err := svc.Invalidate(ctx); err != nil {
		zap.L().Warn("catalog cache not invalidated", zap.Error(err))
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Catalog cache invalidated.")
}
