package booking

import (
	"context"

	"littlelemon/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, b domain.Booking) error
}
