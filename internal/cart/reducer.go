package cart

// Command is one of AddItem, RemoveItem, UpdateQuantity or ClearCart.
type Command interface {
	apply(State) State
}

// AddItem merges Item into the cart. A Quantity below 1 counts as 1.
type AddItem struct {
	Item     Item
	Quantity int
}

// RemoveItem drops the line item with ID. Unknown ids are ignored.
type RemoveItem struct {
	ID string
}

// UpdateQuantity sets the quantity of the line item with ID.
// Quantities below 1 and unknown ids leave the cart unchanged.
type UpdateQuantity struct {
	ID       string
	Quantity int
}

// ClearCart empties the cart.
type ClearCart struct{}

// Reduce applies cmd to state and returns the new state. The input state is never
// modified; a nil command returns state as is.
func Reduce(state State, cmd Command) State {
	if cmd == nil {
		return state
	}
	return cmd.apply(state)
}

func (c AddItem) apply(s State) State {
	qty := c.Quantity
	if qty < 1 {
		qty = 1
	}

	idx := s.indexOf(c.Item.ID)
	if idx >= 0 {
		items := cloneItems(s.Items)
		items[idx].Quantity = clampQuantity(items[idx].Quantity + qty)
		return State{Items: items}
	}

	items := make([]LineItem, len(s.Items), len(s.Items)+1)
	copy(items, s.Items)
	items = append(items, LineItem{
		ID:       c.Item.ID,
		Title:    c.Item.Title,
		Price:    c.Item.Price,
		Image:    c.Item.Image,
		Quantity: clampQuantity(qty),
	})
	return State{Items: items}
}

func (c RemoveItem) apply(s State) State {
	if s.indexOf(c.ID) < 0 {
		return s
	}
	items := make([]LineItem, 0, len(s.Items)-1)
	for _, item := range s.Items {
		if item.ID != c.ID {
			items = append(items, item)
		}
	}
	return State{Items: items}
}

func (c UpdateQuantity) apply(s State) State {
	if c.Quantity < 1 {
		return s
	}
	idx := s.indexOf(c.ID)
	if idx < 0 {
		return s
	}
	items := cloneItems(s.Items)
	items[idx].Quantity = clampQuantity(c.Quantity)
	return State{Items: items}
}

func (ClearCart) apply(State) State {
	return State{}
}

func cloneItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
