package menu

import (
	"context"
	"errors"

	"littlelemon/internal/domain"
	"littlelemon/internal/repository/money"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.MenuItem, error) {
	const q = `
SELECT id, title, description, price_cents, image, created_at
FROM menu_items
ORDER BY created_at ASC, id ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Debug("listed menu items", zap.Int("count", len(items)))
	return items, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	const q = `
SELECT id, title, description, price_cents, image, created_at
FROM menu_items
WHERE id = $1
`
	item, err := scanMenuItem(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	const q = `
INSERT INTO menu_items (id, title, description, price_cents, image)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE
SET title = EXCLUDED.title,
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    image = EXCLUDED.image
RETURNING id, title, description, price_cents, image, created_at
`
	return scanMenuItem(r.pool.QueryRow(ctx, q,
		item.ID,
		item.Title,
		item.Description,
		money.ToCents(item.Price),
		item.Image,
	))
}

func scanMenuItem(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	var cents int64
	if err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&cents,
		&item.Image,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	item.Price = money.FromCents(cents)
	return &item, nil
}
