package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dante-library/dante/internal/config"
	"github.com/dante-library/dante/internal/database"
)

// loadConfig loads configFile and applies its log settings.
func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("load config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := setupLogger(cfg.Log); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openDatabase opens the configured database and waits until it answers.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.WaitReady(ctx, db, cfg.ConnectRetries); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
