package contact

import (
	"context"
	"testing"

	"littlelemon/internal/domain"
)

func TestMemoryCreate(t *testing.T) {
	repo := NewMemory().(*memoryRepo)
	ctx := context.Background()
	for _, name := range []string{"Ada", "Grace"} {
		if err := repo.Create(ctx, domain.ContactMessage{ID: name, Name: name}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if len(repo.messages) != 2 || repo.messages[1].Name != "Grace" {
		t.Fatalf("messages = %+v", repo.messages)
	}
}
