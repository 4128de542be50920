package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"littlelemon/internal/availability"
	"littlelemon/internal/domain"
	"littlelemon/internal/events"
	"littlelemon/internal/idempotency"

	"github.com/google/uuid"
	"github.com/lucsky/cuid"
	"go.uber.org/zap"
)

type Service struct {
	submitter Submitter
	idem      idempotency.Store
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

// New wires a booking Service. idem may be nil to disable request replay.
func New(submitter Submitter, idem idempotency.Store, publisher events.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.Nop()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		submitter: submitter,
		idem:      idem,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

type Availability struct {
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

// Result mirrors the reservation desk reply. Replayed is set when an earlier
// result was returned for the same idempotency key.
type Result struct {
	OK       bool           `json:"ok"`
	Booking  domain.Booking `json:"payload"`
	Replayed bool           `json:"replayed,omitempty"`
}

// Availability returns the open slots for date (YYYY-MM-DD), defaulting to today.
func (s *Service) Availability(date string) (Availability, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = s.today()
	}
	times, err := availability.ForDateString(date)
	if err != nil {
		verr := domain.NewValidationError()
		verr.Add("date", "Enter the date as YYYY-MM-DD.")
		return Availability{}, verr
	}
	return Availability{Date: date, Times: times}, nil
}

func (s *Service) Submit(ctx context.Context, req Request, idemKey string) (Result, error) {
	req = req.normalized()
	if err := Validate(req, s.today()); err != nil {
		return Result{}, err
	}

	idemKey = strings.TrimSpace(idemKey)
	if idemKey != "" && s.idem != nil {
		if res, ok, err := s.replay(ctx, idemKey); err != nil || ok {
			return res, err
		}
	}

	b := domain.Booking{
		ID:               uuid.NewString(),
		ConfirmationCode: cuid.New(),
		FullName:         req.FullName,
		Email:            req.Email,
		Date:             req.Date,
		Time:             req.Time,
		PartySize:        req.PartySize,
		Occasion:         req.Occasion,
		SpecialRequests:  req.SpecialRequests,
		SubmittedAt:      s.now().UTC(),
	}
	if err := s.submitter.Submit(ctx, b); err != nil {
		return Result{}, fmt.Errorf("submit booking: %w", err)
	}
	res := Result{OK: true, Booking: b}

	if idemKey != "" && s.idem != nil {
		if earlier, replaced := s.remember(ctx, idemKey, res); replaced {
			return earlier, nil
		}
	}

	s.publish(ctx, b)
	s.logger.Info("booking confirmed",
		zap.String("booking_id", b.ID),
		zap.String("date", b.Date),
		zap.String("time", b.Time),
		zap.Int("party_size", b.PartySize),
	)
	return res, nil
}

func (s *Service) replay(ctx context.Context, idemKey string) (Result, bool, error) {
	raw, ok, err := s.idem.Get(ctx, idempotency.BookingKey(idemKey))
	if err != nil {
		return Result{}, false, fmt.Errorf("idempotency lookup: %w", err)
	}
	if !ok {
		return Result{}, false, nil
	}
	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return Result{}, false, fmt.Errorf("decode stored booking: %w", err)
	}
	res.Replayed = true
	return res, true, nil
}

// remember stores res under idemKey. When a concurrent request stored first, its
// result is returned with replaced set.
func (s *Service) remember(ctx context.Context, idemKey string, res Result) (Result, bool) {
	raw, err := json.Marshal(res)
	if err != nil {
		s.logger.Warn("encode booking for idempotency", zap.Error(err))
		return Result{}, false
	}
	written, err := s.idem.Put(ctx, idempotency.BookingKey(idemKey), string(raw), idempotency.DefaultTTL)
	if err != nil {
		s.logger.Warn("store idempotency key", zap.String("key", idemKey), zap.Error(err))
		return Result{}, false
	}
	if written {
		return Result{}, false
	}
	earlier, ok, err := s.replay(ctx, idemKey)
	if err != nil || !ok {
		return Result{}, false
	}
	return earlier, true
}

func (s *Service) publish(ctx context.Context, b domain.Booking) {
	env, err := events.NewEnvelope(events.TypeBookingConfirmed, b.ID, b)
	if err == nil {
		err = s.publisher.Publish(ctx, env)
	}
	if err != nil {
		s.logger.Warn("publish booking event", zap.String("booking_id", b.ID), zap.Error(err))
	}
}

func (s *Service) today() string {
	return availability.FormatDate(s.now())
}
