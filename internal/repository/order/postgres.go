package order

import (
	"context"
	"encoding/json"
	"errors"

	"littlelemon/internal/domain"
	"littlelemon/internal/repository/money"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) error {
	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return err
	}
	var delivery []byte
	if o.Delivery != nil {
		if delivery, err = json.Marshal(o.Delivery); err != nil {
			return err
		}
	}

	const q = `
INSERT INTO orders (id, order_type, scheduled_time, notes, delivery, lines, subtotal_cents, service_fee_cents, tax_cents, total_cents, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`
	_, err = r.pool.Exec(ctx, q,
		o.ID,
		o.OrderType,
		o.ScheduledTime,
		o.Notes,
		delivery,
		lines,
		money.ToCents(o.Subtotal),
		money.ToCents(o.ServiceFee),
		money.ToCents(o.Tax),
		money.ToCents(o.Total),
		o.CreatedAt,
	)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id, order_type, scheduled_time, notes, delivery, lines, subtotal_cents, service_fee_cents, tax_cents, total_cents, created_at
FROM orders
WHERE id = $1
`
	var (
		o                         domain.Order
		delivery, lines           []byte
		subtotal, fee, tax, total int64
	)
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&o.ID,
		&o.OrderType,
		&o.ScheduledTime,
		&o.Notes,
		&delivery,
		&lines,
		&subtotal,
		&fee,
		&tax,
		&total,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(lines, &o.Lines); err != nil {
		return nil, err
	}
	if len(delivery) > 0 {
		o.Delivery = &domain.DeliveryDetails{}
		if err := json.Unmarshal(delivery, o.Delivery); err != nil {
			return nil, err
		}
	}
	o.Subtotal = money.FromCents(subtotal)
	o.ServiceFee = money.FromCents(fee)
	o.Tax = money.FromCents(tax)
	o.Total = money.FromCents(total)
	return &o, nil
}
