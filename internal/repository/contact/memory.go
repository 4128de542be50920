package contact

import (
	"context"
	"sync"

	"littlelemon/internal/domain"
)

type memoryRepo struct {
	mu       sync.Mutex
	messages []domain.ContactMessage
}

func NewMemory() Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) Create(_ context.Context, m domain.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
	return nil
}
