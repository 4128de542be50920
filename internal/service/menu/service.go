package menu

import (
	"context"
	"strings"

	"littlelemon/internal/domain"
)

type repo interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
}

type Service struct {
	repo repo
}

func New(r repo) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return items, nil
}

// Get returns domain.ErrNotFound for blank or unknown ids.
func (s *Service) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}
