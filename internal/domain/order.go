package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order types offered at checkout.
const (
	OrderTypeDineIn   = "dineIn"
	OrderTypePickup   = "pickup"
	OrderTypeDelivery = "delivery"
)

// OrderLine is a cart line captured when the order was placed.
type OrderLine struct {
	MenuItemID string          `json:"menuItemId"`
	Title      string          `json:"title"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	Total      decimal.Decimal `json:"total"`
}

// DeliveryDetails is only set for delivery orders.
type DeliveryDetails struct {
	Address      string `json:"address"`
	City         string `json:"city,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// Order is a placed food order.
type Order struct {
	ID            string           `json:"id"`
	OrderType     string           `json:"orderType"`
	ScheduledTime string           `json:"scheduledTime"`
	Notes         string           `json:"notes,omitempty"`
	Delivery      *DeliveryDetails `json:"delivery,omitempty"`
	Lines         []OrderLine      `json:"lines"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	ServiceFee    decimal.Decimal  `json:"serviceFee"`
	Tax           decimal.Decimal  `json:"tax"`
	Total         decimal.Decimal  `json:"total"`
	CreatedAt     time.Time        `json:"createdAt"`
}
