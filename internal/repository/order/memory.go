package order

import (
	"context"
	"sync"

	"littlelemon/internal/domain"
)

type memoryRepo struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewMemory() Repository {
	return &memoryRepo{orders: make(map[string]domain.Order)}
}

func (r *memoryRepo) Create(_ context.Context, o domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.orders[o.ID]; exists {
		return domain.ErrAlreadyExists
	}
	r.orders[o.ID] = o
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}
