package booking

import (
	"context"
	"errors"
	"time"

	"littlelemon/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, b domain.Booking) error {
	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO bookings (id, confirmation_code, full_name, email, booking_date, booking_time, party_size, occasion, special_requests, submitted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`
	_, err = r.pool.Exec(ctx, q,
		b.ID,
		b.ConfirmationCode,
		b.FullName,
		b.Email,
		date,
		b.Time,
		b.PartySize,
		b.Occasion,
		b.SpecialRequests,
		b.SubmittedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrAlreadyExists
	}
	return err
}
