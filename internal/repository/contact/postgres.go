package contact

import (
	"context"

	"littlelemon/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, m domain.ContactMessage) error {
	const q = `
INSERT INTO contact_messages (id, name, email, phone, message, seating, newsletter, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := r.pool.Exec(ctx, q, m.ID, m.Name, m.Email, m.Phone, m.Message, m.Seating, m.Newsletter, m.CreatedAt)
	return err
}
