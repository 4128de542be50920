package order

import (
	"context"

	"littlelemon/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, o domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
