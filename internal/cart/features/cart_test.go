package features

import (
	"context"
	"fmt"
	"testing"

	"littlelemon/internal/cart"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type cartTestContext struct {
	store *cart.Store
}

func (c *cartTestContext) reset() {
	c.store = cart.NewStore()
}

func (c *cartTestContext) anEmptyCart() error {
	c.store = cart.NewStore()
	return nil
}

func (c *cartTestContext) iAddOfPriced(qty int, id string, price string) error {
	p, err := decimal.NewFromString(price)
	if err != nil {
		return err
	}
	c.store.AddItem(cart.Item{ID: id, Title: id, Price: p}, qty)
	return nil
}

func (c *cartTestContext) iSetTheQuantityOfTo(id string, qty int) error {
	c.store.UpdateQuantity(id, qty)
	return nil
}

func (c *cartTestContext) iRemove(id string) error {
	c.store.RemoveItem(id)
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.store.ClearCart()
	return nil
}

func (c *cartTestContext) theCartHasLineItems(n int) error {
	if got := len(c.store.Snapshot().Items); got != n {
		return fmt.Errorf("expected %d line items, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) lineHasQuantity(id string, qty int) error {
	for _, line := range c.store.Snapshot().Items {
		if line.ID == id {
			if line.Quantity != qty {
				return fmt.Errorf("expected quantity %d for %s, got %d", qty, id, line.Quantity)
			}
			return nil
		}
	}
	return fmt.Errorf("line %s not in cart", id)
}

func (c *cartTestContext) theItemCountIs(n int) error {
	if got := c.store.Snapshot().ItemCount; got != n {
		return fmt.Errorf("expected item count %d, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theSubtotalIs(want string) error {
	if got := c.store.Snapshot().Subtotal.StringFixed(2); got != want {
		return fmt.Errorf("expected subtotal %s, got %s", want, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^an empty cart$`, tc.anEmptyCart)

	ctx.Step(`^I add (\d+) of "([^"]*)" priced ([0-9.]+)$`, tc.iAddOfPriced)
	ctx.Step(`^I set the quantity of "([^"]*)" to (-?\d+)$`, tc.iSetTheQuantityOfTo)
	ctx.Step(`^I remove "([^"]*)"$`, tc.iRemove)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)

	ctx.Step(`^the cart has (\d+) line items$`, tc.theCartHasLineItems)
	ctx.Step(`^line "([^"]*)" has quantity (\d+)$`, tc.lineHasQuantity)
	ctx.Step(`^the item count is (\d+)$`, tc.theItemCountIs)
	ctx.Step(`^the subtotal is "([^"]*)"$`, tc.theSubtotalIs)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
