package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a dish guests can add to their order.
type MenuItem struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
