package checkout

import (
	"strings"

	"littlelemon/internal/cart"
	"littlelemon/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	taxRate = decimal.RequireFromString("0.08")

	serviceFees = map[string]decimal.Decimal{
		domain.OrderTypeDineIn:   decimal.Zero,
		domain.OrderTypePickup:   decimal.Zero,
		domain.OrderTypeDelivery: decimal.RequireFromString("4.50"),
	}

	orderTypeLabels = map[string]string{
		domain.OrderTypeDineIn:   "dine in",
		domain.OrderTypePickup:   "pickup",
		domain.OrderTypeDelivery: "delivery",
	}
)

type Quote struct {
	OrderType  string          `json:"orderType"`
	ItemCount  int             `json:"itemCount"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	ServiceFee decimal.Decimal `json:"serviceFee"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
}

// QuoteFor prices snap for orderType. A blank order type means pickup. Tax is 8% of
// the subtotal rounded to cents.
func QuoteFor(snap cart.Snapshot, orderType string) (Quote, error) {
	orderType = normalizeOrderType(orderType)
	fee, ok := serviceFees[orderType]
	if !ok {
		verr := domain.NewValidationError()
		verr.Add("orderType", "Choose dineIn, pickup or delivery.")
		return Quote{}, verr
	}
	subtotal := snap.Subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	return Quote{
		OrderType:  orderType,
		ItemCount:  snap.ItemCount,
		Subtotal:   subtotal,
		ServiceFee: fee,
		Tax:        tax,
		Total:      subtotal.Add(fee).Add(tax),
	}, nil
}

func normalizeOrderType(orderType string) string {
	orderType = strings.TrimSpace(orderType)
	if orderType == "" {
		return domain.OrderTypePickup
	}
	return orderType
}

// formatUSD renders d like "$1,234.50".
func formatUSD(d decimal.Decimal) string {
	fixed := d.Abs().StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}
