// Package cart holds the in-memory order cart: a pure reducer over tagged commands
// and a Store that applies them one at a time.
package cart

import "github.com/shopspring/decimal"

// MaxQuantity caps the quantity of a single line item.
const MaxQuantity = 99

// Item is the menu data a line item is created from.
type Item struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image,omitempty"`
}

// LineItem is one distinct dish in the cart and how many were ordered.
type LineItem struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image,omitempty"`
	Quantity int             `json:"quantity"`
}

// Total is Price * Quantity.
func (l LineItem) Total() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// State is the cart contents in insertion order. The zero value is an empty cart.
type State struct {
	Items []LineItem
}

// ItemCount sums the quantities of all line items.
func (s State) ItemCount() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal sums price * quantity over all line items.
func (s State) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range s.Items {
		subtotal = subtotal.Add(item.Total())
	}
	return subtotal
}

func (s State) indexOf(id string) int {
	for i, item := range s.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Snapshot is a read-only copy of the cart with its derived aggregates.
type Snapshot struct {
	Items     []LineItem      `json:"items"`
	ItemCount int             `json:"itemCount"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// IsEmpty reports whether the snapshot has no line items.
func (s Snapshot) IsEmpty() bool {
	return len(s.Items) == 0
}

func snapshotOf(s State) Snapshot {
	items := make([]LineItem, len(s.Items))
	copy(items, s.Items)
	return Snapshot{
		Items:     items,
		ItemCount: s.ItemCount(),
		Subtotal:  s.Subtotal(),
	}
}

func clampQuantity(q int) int {
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}
