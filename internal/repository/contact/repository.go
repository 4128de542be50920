package contact

import (
	"context"

	"littlelemon/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, m domain.ContactMessage) error
}
