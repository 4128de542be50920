package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"

	"littlelemon/internal/importer"
	menurepo "littlelemon/internal/repository/menu"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

//go:embed menu.csv
var menuCSV []byte

// LoadMenu writes the weekly specials into w and returns how many dishes were written.
func LoadMenu(ctx context.Context, w importer.MenuWriter) (int, error) {
	return importer.NewCSVImporter(bytes.NewReader(menuCSV), w).Run(ctx)
}

// Apply inserts the weekly specials into Postgres. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	n, err := LoadMenu(ctx, menurepo.NewPostgres(pool, logger))
	if err != nil {
		return fmt.Errorf("seed menu: %w", err)
	}
	logger.Info("menu seeded", zap.Int("items", n))
	return nil
}
