package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"littlelemon/internal/cart"
	"littlelemon/internal/domain"
)

// ErrInvalidAction marks a rejected update action. No action of the batch is applied.
var ErrInvalidAction = errors.New("invalid cart action")

type Service struct {
	menuRepo menuRepo
}

type menuRepo interface {
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
}

func New(menuRepo menuRepo) *Service {
	return &Service{menuRepo: menuRepo}
}

type UpdateInput struct {
	Actions []UpdateAction `json:"actions"`
}

// UpdateAction names a cart command. ID is a menu item id, which is also the line item id.
type UpdateAction struct {
	Action   string `json:"action"`
	ID       string `json:"id,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// AddItem adds quantity of the menu item to store using the catalog's title, price and image.
func (s *Service) AddItem(ctx context.Context, store *cart.Store, menuItemID string, quantity int) (cart.Snapshot, error) {
	item, err := s.lookup(ctx, menuItemID)
	if err != nil {
		return cart.Snapshot{}, err
	}
	store.AddItem(item, quantity)
	return store.Snapshot(), nil
}

func (s *Service) ChangeQuantity(store *cart.Store, id string, quantity int) (cart.Snapshot, error) {
	if quantity <= 0 {
		verr := domain.NewValidationError()
		verr.Add("quantity", "quantity must be positive")
		return cart.Snapshot{}, verr
	}
	store.UpdateQuantity(id, quantity)
	return store.Snapshot(), nil
}

func (s *Service) Remove(store *cart.Store, id string) cart.Snapshot {
	store.RemoveItem(id)
	return store.Snapshot()
}

func (s *Service) Clear(store *cart.Store) cart.Snapshot {
	store.ClearCart()
	return store.Snapshot()
}

// Update validates every action, then applies them to store in order as one unit.
// Nothing is applied when any action is rejected.
func (s *Service) Update(ctx context.Context, store *cart.Store, in UpdateInput) (cart.Snapshot, error) {
	if len(in.Actions) == 0 {
		return cart.Snapshot{}, invalid("actions required")
	}

	cmds := make([]cart.Command, 0, len(in.Actions))
	for i, action := range in.Actions {
		cmd, err := s.command(ctx, action)
		if err != nil {
			return cart.Snapshot{}, fmt.Errorf("action %d: %w", i, err)
		}
		cmds = append(cmds, cmd)
	}

	store.Dispatch(cmds...)
	return store.Snapshot(), nil
}

func (s *Service) command(ctx context.Context, action UpdateAction) (cart.Command, error) {
	id := strings.TrimSpace(action.ID)
	switch strings.ToLower(strings.TrimSpace(action.Action)) {
	case "addlineitem":
		if action.Quantity < 0 {
			return nil, invalid("quantity must be positive")
		}
		item, err := s.lookup(ctx, id)
		if err != nil {
			return nil, err
		}
		return cart.AddItem{Item: item, Quantity: action.Quantity}, nil
	case "removelineitem":
		if id == "" {
			return nil, invalid("id required")
		}
		return cart.RemoveItem{ID: id}, nil
	case "changelineitemquantity":
		if id == "" {
			return nil, invalid("id required")
		}
		if action.Quantity <= 0 {
			return nil, invalid("quantity must be positive")
		}
		return cart.UpdateQuantity{ID: id, Quantity: action.Quantity}, nil
	case "clearcart":
		return cart.ClearCart{}, nil
	default:
		return nil, invalid("unsupported action")
	}
}

func (s *Service) lookup(ctx context.Context, menuItemID string) (cart.Item, error) {
	id := strings.TrimSpace(menuItemID)
	if id == "" {
		return cart.Item{}, invalid("id required")
	}
	if s.menuRepo == nil {
		return cart.Item{}, errors.New("menu repository unavailable")
	}
	m, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return cart.Item{}, err
	}
	return cart.Item{ID: m.ID, Title: m.Title, Price: m.Price, Image: m.Image}, nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidAction, msg)
}
