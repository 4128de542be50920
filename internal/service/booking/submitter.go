package booking

import (
	"context"
	"time"

	"littlelemon/internal/domain"
)

// Submitter hands a validated booking to the reservation backend.
type Submitter interface {
	Submit(ctx context.Context, b domain.Booking) error
}

// MockSubmitter accepts every booking after Delay, like a slow remote reservation desk.
type MockSubmitter struct {
	Delay time.Duration
}

func (m MockSubmitter) Submit(ctx context.Context, _ domain.Booking) error {
	if m.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(m.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type bookingWriter interface {
	Create(ctx context.Context, b domain.Booking) error
}

// PostgresSubmitter records bookings in the bookings table.
type PostgresSubmitter struct {
	repo bookingWriter
}

func NewPostgresSubmitter(repo bookingWriter) *PostgresSubmitter {
	return &PostgresSubmitter{repo: repo}
}

func (p *PostgresSubmitter) Submit(ctx context.Context, b domain.Booking) error {
	return p.repo.Create(ctx, b)
}
