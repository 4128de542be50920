package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"littlelemon/internal/domain"
)

type stubMenuRepo struct {
	items []domain.MenuItem
	err   error
}

func (s *stubMenuRepo) Upsert(_ context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.items = append(s.items, item)
	return &item, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `id,title,description,price,image
greek-salad,Greek Salad,"Crispy lettuce, peppers, olives",12.99,/images/greek-salad.jpg
,,,,
bruschetta,Bruschetta,Grilled bread with garlic,5.99,`

	repo := &stubMenuRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 || len(repo.items) != 2 {
		t.Fatalf("expected 2 dishes imported, got %d (%d saved)", count, len(repo.items))
	}

	first := repo.items[0]
	if first.ID != "greek-salad" || first.Title != "Greek Salad" || first.Price.StringFixed(2) != "12.99" {
		t.Fatalf("unexpected first dish: %+v", first)
	}
	if first.Description != "Crispy lettuce, peppers, olives" || first.Image != "/images/greek-salad.jpg" {
		t.Fatalf("unexpected optional fields: %+v", first)
	}
	if repo.items[1].Image != "" {
		t.Fatalf("expected empty image, got %q", repo.items[1].Image)
	}
}

func TestCSVImporter_MissingColumn(t *testing.T) {
	imp := NewCSVImporter(strings.NewReader("id,title\nx,y\n"), &stubMenuRepo{})
	if _, err := imp.Run(context.Background()); err == nil || !strings.Contains(err.Error(), `"price"`) {
		t.Fatalf("expected missing price column error, got %v", err)
	}
}

func TestCSVImporter_InvalidRows(t *testing.T) {
	cases := map[string]string{
		"missing title":  "id,title,price\nx,,1.00\n",
		"bad price":      "id,title,price\nx,X,abc\n",
		"negative price": "id,title,price\nx,X,-2\n",
	}
	for name, data := range cases {
		imp := NewCSVImporter(strings.NewReader(data), &stubMenuRepo{})
		if _, err := imp.Run(context.Background()); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestCSVImporter_RepoError(t *testing.T) {
	repo := &stubMenuRepo{err: errors.New("boom")}
	imp := NewCSVImporter(strings.NewReader("id,title,price\nx,X,1\n"), repo)
	count, err := imp.Run(context.Background())
	if err == nil || !errors.Is(err, repo.err) || count != 0 {
		t.Fatalf("expected wrapped repo error, got %d %v", count, err)
	}
}
