package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"littlelemon/internal/domain"
	"littlelemon/internal/events"
	"littlelemon/internal/idempotency"

	"github.com/google/uuid"
)

type stubSubmitter struct {
	mu    sync.Mutex
	calls []domain.Booking
	err   error
}

func (s *stubSubmitter) Submit(_ context.Context, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, b)
	return s.err
}

type stubWriter struct {
	created *domain.Booking
	err     error
}

func (s *stubWriter) Create(_ context.Context, b domain.Booking) error {
	s.created = &b
	return s.err
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(sub Submitter, idem idempotency.Store, pub events.Publisher) *Service {
	svc := New(sub, idem, pub, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestAvailability(t *testing.T) {
	svc := newTestService(&stubSubmitter{}, nil, nil)

	got, err := svc.Availability("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Date != "2024-05-01" {
		t.Fatalf("default date = %q", got.Date)
	}
	want := []string{"17:00", "17:30", "18:00", "20:00", "21:00"}
	if len(got.Times) != len(want) {
		t.Fatalf("times = %v, want %v", got.Times, want)
	}
	for i := range want {
		if got.Times[i] != want[i] {
			t.Fatalf("times = %v, want %v", got.Times, want)
		}
	}

	if _, err := svc.Availability("tomorrow"); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestSubmitEchoesPayload(t *testing.T) {
	sub := &stubSubmitter{}
	rec := &events.Recorder{}
	svc := newTestService(sub, nil, rec)

	req := validRequest()
	req.FullName = "  Jane Doe "
	req.SpecialRequests = "Window seat"
	res, err := svc.Submit(context.Background(), req, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.OK || res.Replayed {
		t.Fatalf("unexpected result flags %+v", res)
	}
	b := res.Booking
	if b.FullName != "Jane Doe" || b.Email != "jane@example.com" || b.Date != "2024-05-01" || b.Time != "18:00" {
		t.Fatalf("payload not echoed: %+v", b)
	}
	if b.SpecialRequests != "Window seat" || b.PartySize != 2 || b.Occasion != "birthday" {
		t.Fatalf("payload not echoed: %+v", b)
	}
	if !b.SubmittedAt.Equal(fixedNow) {
		t.Fatalf("submittedAt = %v", b.SubmittedAt)
	}
	if _, err := uuid.Parse(b.ID); err != nil {
		t.Fatalf("id %q is not a uuid", b.ID)
	}
	if b.ConfirmationCode == "" {
		t.Fatalf("missing confirmation code")
	}
	if len(sub.calls) != 1 || sub.calls[0].ID != b.ID {
		t.Fatalf("submitter calls = %+v", sub.calls)
	}

	evs := rec.Events()
	if len(evs) != 1 || evs[0].EventType != events.TypeBookingConfirmed || evs[0].CorrelationID != b.ID {
		t.Fatalf("events = %+v", evs)
	}
	payload, err := events.Decode[domain.Booking](evs[0])
	if err != nil || payload.ConfirmationCode != b.ConfirmationCode {
		t.Fatalf("event payload %+v err=%v", payload, err)
	}
}

func TestSubmitValidationSkipsSubmitter(t *testing.T) {
	sub := &stubSubmitter{}
	svc := newTestService(sub, nil, nil)
	req := validRequest()
	req.PartySize = 12

	_, err := svc.Submit(context.Background(), req, "")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(sub.calls) != 0 {
		t.Fatalf("submitter should not be called")
	}
}

func TestSubmitSubmitterError(t *testing.T) {
	boom := errors.New("desk offline")
	rec := &events.Recorder{}
	svc := newTestService(&stubSubmitter{err: boom}, nil, rec)
	if _, err := svc.Submit(context.Background(), validRequest(), ""); !errors.Is(err, boom) {
		t.Fatalf("expected submitter error, got %v", err)
	}
	if len(rec.Events()) != 0 {
		t.Fatalf("no event expected on failure")
	}
}

func TestSubmitIdempotencyReplays(t *testing.T) {
	sub := &stubSubmitter{}
	rec := &events.Recorder{}
	svc := newTestService(sub, idempotency.NewMemory(), rec)
	ctx := context.Background()

	first, err := svc.Submit(ctx, validRequest(), "key-1")
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.Submit(ctx, validRequest(), "key-1")
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if !second.Replayed || second.Booking.ID != first.Booking.ID {
		t.Fatalf("expected replay of %s, got %+v", first.Booking.ID, second)
	}
	if len(sub.calls) != 1 || len(rec.Events()) != 1 {
		t.Fatalf("replay must not resubmit: calls=%d events=%d", len(sub.calls), len(rec.Events()))
	}

	third, err := svc.Submit(ctx, validRequest(), "key-2")
	if err != nil {
		t.Fatalf("third submit: %v", err)
	}
	if third.Replayed || third.Booking.ID == first.Booking.ID {
		t.Fatalf("different key must create a new booking")
	}
}

func TestMockSubmitter(t *testing.T) {
	if err := (MockSubmitter{}).Submit(context.Background(), domain.Booking{}); err != nil {
		t.Fatalf("zero delay: %v", err)
	}

	start := time.Now()
	if err := (MockSubmitter{Delay: 20 * time.Millisecond}).Submit(context.Background(), domain.Booking{}); err != nil {
		t.Fatalf("delay: %v", err)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatalf("mock returned before its delay")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := (MockSubmitter{Delay: time.Hour}).Submit(ctx, domain.Booking{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestPostgresSubmitterDelegates(t *testing.T) {
	w := &stubWriter{}
	b := domain.Booking{ID: uuid.NewString(), FullName: "Jane Doe"}
	if err := NewPostgresSubmitter(w).Submit(context.Background(), b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.created == nil || w.created.ID != b.ID {
		t.Fatalf("booking not written")
	}

	w.err = domain.ErrAlreadyExists
	if err := NewPostgresSubmitter(w).Submit(context.Background(), b); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}
