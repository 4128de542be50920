package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"littlelemon/internal/cart"
	"littlelemon/internal/domain"
	"littlelemon/internal/events"

	"github.com/lucsky/cuid"
	"go.uber.org/zap"
)

const (
	defaultScheduledTime = "18:30"
	minAddressLength     = 5

	// EmptyCartMessage is shown when a guest checks out with nothing in the cart.
	EmptyCartMessage = "Your cart is empty. Add a few dishes to continue."
)

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) error
}

type Service struct {
	orders    orderRepo
	publisher events.Publisher
	logger    *zap.Logger
	now       func() time.Time
}

func New(orders orderRepo, publisher events.Publisher, logger *zap.Logger) *Service {
	if publisher == nil {
		publisher = events.Nop()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{orders: orders, publisher: publisher, logger: logger, now: time.Now}
}

type Request struct {
	OrderType     string                  `json:"orderType"`
	ScheduledTime string                  `json:"scheduledTime"`
	Notes         string                  `json:"notes,omitempty"`
	Delivery      *domain.DeliveryDetails `json:"delivery,omitempty"`
}

type Confirmation struct {
	Order   domain.Order `json:"order"`
	Message string       `json:"message"`
}

func (s *Service) Quote(snap cart.Snapshot, orderType string) (Quote, error) {
	return QuoteFor(snap, orderType)
}

// PlaceOrder records the cart in store as an order, publishes OrderPlaced and empties
// the cart. An empty cart yields domain.ErrEmptyCart.
func (s *Service) PlaceOrder(ctx context.Context, store *cart.Store, req Request) (Confirmation, error) {
	snap := store.Snapshot()
	if snap.IsEmpty() {
		return Confirmation{}, domain.ErrEmptyCart
	}

	req, err := normalizeRequest(req)
	if err != nil {
		return Confirmation{}, err
	}
	quote, err := QuoteFor(snap, req.OrderType)
	if err != nil {
		return Confirmation{}, err
	}

	order := domain.Order{
		ID:            cuid.New(),
		OrderType:     quote.OrderType,
		ScheduledTime: req.ScheduledTime,
		Notes:         req.Notes,
		Delivery:      req.Delivery,
		Lines:         orderLines(snap),
		Subtotal:      quote.Subtotal,
		ServiceFee:    quote.ServiceFee,
		Tax:           quote.Tax,
		Total:         quote.Total,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return Confirmation{}, fmt.Errorf("record order: %w", err)
	}

	if !store.ClearIf(snap) {
		s.logger.Warn("cart changed during checkout, leaving it in place", zap.String("order_id", order.ID))
	}
	s.publish(ctx, order)
	s.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.String("order_type", order.OrderType),
		zap.String("total", order.Total.StringFixed(2)),
	)

	return Confirmation{
		Order: order,
		Message: fmt.Sprintf("Order confirmed for %s at %s. Total: %s.",
			orderTypeLabels[order.OrderType], order.ScheduledTime, formatUSD(order.Total)),
	}, nil
}

func normalizeRequest(req Request) (Request, error) {
	req.OrderType = normalizeOrderType(req.OrderType)
	req.ScheduledTime = strings.TrimSpace(req.ScheduledTime)
	if req.ScheduledTime == "" {
		req.ScheduledTime = defaultScheduledTime
	}
	req.Notes = strings.TrimSpace(req.Notes)

	verr := domain.NewValidationError()
	if _, ok := serviceFees[req.OrderType]; !ok {
		verr.Add("orderType", "Choose dineIn, pickup or delivery.")
	}
	if _, err := time.Parse("15:04", req.ScheduledTime); err != nil {
		verr.Add("scheduledTime", "Choose a time as HH:MM.")
	}

	if req.OrderType == domain.OrderTypeDelivery {
		d := domain.DeliveryDetails{}
		if req.Delivery != nil {
			d = *req.Delivery
		}
		d.Address = strings.TrimSpace(d.Address)
		d.City = strings.TrimSpace(d.City)
		d.Instructions = strings.TrimSpace(d.Instructions)
		if len([]rune(d.Address)) < minAddressLength {
			verr.Add("delivery.address", "Please share a delivery address so we know where to bring dinner.")
		}
		req.Delivery = &d
	} else {
		req.Delivery = nil
	}

	return req, verr.OrNil()
}

func orderLines(snap cart.Snapshot) []domain.OrderLine {
	lines := make([]domain.OrderLine, 0, len(snap.Items))
	for _, it := range snap.Items {
		lines = append(lines, domain.OrderLine{
			MenuItemID: it.ID,
			Title:      it.Title,
			UnitPrice:  it.Price,
			Quantity:   it.Quantity,
			Total:      it.Total(),
		})
	}
	return lines
}

func (s *Service) publish(ctx context.Context, o domain.Order) {
	env, err := events.NewEnvelope(events.TypeOrderPlaced, o.ID, o)
	if err == nil {
		err = s.publisher.Publish(ctx, env)
	}
	if err != nil {
		s.logger.Warn("publish order event", zap.String("order_id", o.ID), zap.Error(err))
	}
}
