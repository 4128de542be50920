package menu

import (
	"context"

	"littlelemon/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Upsert(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
}
