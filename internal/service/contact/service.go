package contact

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"littlelemon/internal/domain"
	"littlelemon/internal/events"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultSeating = "dining"

	missingFieldsMessage = "Please share your name, email, and how we can help."
	thankYouMessage      = "Thank you! Our team will be in touch soon."
)

var (
	emailPattern = regexp.MustCompile(`[^\s@]+@[^\s@]+\.[^\s@]+`)

	seatings = map[string]bool{"dining": true, "patio": true, "bar": true}
)

type messageRepo interface {
	Create(ctx context.Context, m domain.ContactMessage) error
}

type Service struct {
	repo      messageRepo
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func New(repo messageRepo, publisher events.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.Nop()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, publisher: publisher, logger: logger, now: time.Now}
}

type Request struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message"`
	Seating    string `json:"seating,omitempty"`
	Newsletter bool   `json:"newsletter"`
}

type Receipt struct {
	Message domain.ContactMessage `json:"message"`
	Reply   string                `json:"reply"`
}

// Submit stores the message and publishes ContactReceived.
func (s *Service) Submit(ctx context.Context, req Request) (Receipt, error) {
	req = normalize(req)
	if err := validate(req); err != nil {
		return Receipt{}, err
	}

	msg := domain.ContactMessage{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		Seating:    req.Seating,
		Newsletter: req.Newsletter,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return Receipt{}, fmt.Errorf("store contact message: %w", err)
	}

	env, err := events.NewEnvelope(events.TypeContactReceived, msg.ID, msg)
	if err == nil {
		err = s.publisher.Publish(ctx, env)
	}
	if err != nil {
		s.logger.Warn("publish contact event", zap.String("message_id", msg.ID), zap.Error(err))
	}
	s.logger.Info("contact message received", zap.String("message_id", msg.ID), zap.Bool("newsletter", msg.Newsletter))

	return Receipt{Message: msg, Reply: thankYouMessage}, nil
}

func normalize(req Request) Request {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)
	req.Seating = strings.TrimSpace(req.Seating)
	if req.Seating == "" {
		req.Seating = defaultSeating
	}
	return req
}

func validate(req Request) error {
	verr := domain.NewValidationError()
	if req.Name == "" {
		verr.Add("name", missingFieldsMessage)
	}
	if req.Email == "" {
		verr.Add("email", missingFieldsMessage)
	} else if !emailPattern.MatchString(req.Email) {
		verr.Add("email", "Enter a valid email address.")
	}
	if req.Message == "" {
		verr.Add("message", missingFieldsMessage)
	}
	if !seatings[req.Seating] {
		verr.Add("seating", "Choose the dining room, patio or chef's counter.")
	}
	return verr.OrNil()
}
