package main

import (
	"context"

	"littlelemon/internal/config"
	"littlelemon/internal/db"
	"littlelemon/internal/logging"
	"littlelemon/internal/migrate"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger, err := logging.New("migrate", cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.DBConnString == "" {
		logger.Fatal("DB_DSN is required")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	version, err := migrate.Apply(ctx, pool, logger)
	if err != nil {
		logger.Fatal("apply migrations", zap.Error(err))
	}
	logger.Info("schema up to date", zap.Uint("version", version))
}
