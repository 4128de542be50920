package menu

import (
	"context"
	"sync"
	"time"

	"littlelemon/internal/domain"
)

type memoryRepo struct {
	mu    sync.RWMutex
	order []string
	items map[string]domain.MenuItem
}

// NewMemory returns a Repository kept in process memory. List preserves insertion order.
func NewMemory() Repository {
	return &memoryRepo{items: make(map[string]domain.MenuItem)}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.MenuItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func (r *memoryRepo) Upsert(_ context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.items[item.ID]; ok {
		item.CreatedAt = existing.CreatedAt
	} else {
		r.order = append(r.order, item.ID)
		if item.CreatedAt.IsZero() {
			item.CreatedAt = time.Now().UTC()
		}
	}
	r.items[item.ID] = item
	return &item, nil
}
