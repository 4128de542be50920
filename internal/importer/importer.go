package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"littlelemon/internal/domain"

	"github.com/shopspring/decimal"
)

type MenuWriter interface {
	Upsert(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
}

// CSVImporter reads menu CSV files (id,title,description,price,image) and upserts dishes.
type CSVImporter struct {
	reader *csv.Reader
	menu   MenuWriter
}

func NewCSVImporter(r io.Reader, menu MenuWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	csvr.TrimLeadingSpace = true
	return &CSVImporter{
		reader: csvr,
		menu:   menu,
	}
}

// Run parses every row and upserts it, returning how many dishes were written.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"id", "title", "price"} {
		if _, ok := index[required]; !ok {
			return 0, fmt.Errorf("missing column %q", required)
		}
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		item, skip, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if skip {
			continue
		}
		if _, err := i.menu.Upsert(ctx, item); err != nil {
			return imported, fmt.Errorf("upsert menu item %q: %w", item.ID, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (domain.MenuItem, bool, error) {
	id := pick(record, index, "id")
	title := pick(record, index, "title")
	priceStr := pick(record, index, "price")

	if id == "" && title == "" && priceStr == "" {
		return domain.MenuItem{}, true, nil
	}
	if id == "" || title == "" || priceStr == "" {
		return domain.MenuItem{}, false, fmt.Errorf("invalid menu row (missing required fields) for id %q", id)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return domain.MenuItem{}, false, fmt.Errorf("invalid price for id %q: %w", id, err)
	}
	if price.IsNegative() {
		return domain.MenuItem{}, false, fmt.Errorf("negative price for id %q", id)
	}

	return domain.MenuItem{
		ID:          id,
		Title:       title,
		Description: pick(record, index, "description"),
		Price:       price.Round(2),
		Image:       pick(record, index, "image"),
	}, false, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
