// Package cli implements lemonctl, the operator tool for the restaurant API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"littlelemon/internal/config"
	"littlelemon/internal/db"
	"littlelemon/internal/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "lemonctl",
		Short:         "Operate the Little Lemon restaurant API",
		Long:          `lemonctl previews table availability, imports the menu and seeds the database used by the Little Lemon API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSlotsCmd(), newMenuCmd(), newSeedCmd())
	return root
}

func Execute() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openDB connects to DB_DSN. The returned cleanup closes the pool and flushes the logger.
func openDB(ctx context.Context) (*pgxpool.Pool, *zap.Logger, func(), error) {
	cfg := config.FromEnv()
	if cfg.DBConnString == "" {
		return nil, nil, nil, errors.New("DB_DSN is required")
	}
	logger, err := logging.New("lemonctl", cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, err
	}
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, nil, fmt.Errorf("connect db: %w", err)
	}
	return pool, logger, func() {
		pool.Close()
		_ = logger.Sync()
	}, nil
}
