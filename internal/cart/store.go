package cart

import "sync"

// Store owns the cart of a single browsing session. Commands are applied under a
// mutex so each one completes before the next starts.
type Store struct {
	mu    sync.RWMutex
	state State
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{}
}

// Dispatch applies cmds in order as one unit.
func (s *Store) Dispatch(cmds ...Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cmd := range cmds {
		s.state = Reduce(s.state, cmd)
	}
}

// AddItem adds quantity of item, merging with an existing line for the same id.
func (s *Store) AddItem(item Item, quantity int) {
	s.Dispatch(AddItem{Item: item, Quantity: quantity})
}

// RemoveItem deletes the line item with id if present.
func (s *Store) RemoveItem(id string) {
	s.Dispatch(RemoveItem{ID: id})
}

// UpdateQuantity sets the quantity of line item id; quantities below 1 are ignored.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.Dispatch(UpdateQuantity{ID: id, Quantity: quantity})
}

// ClearCart resets the cart to empty.
func (s *Store) ClearCart() {
	s.Dispatch(ClearCart{})
}

// Snapshot returns a copy of the current contents with fresh aggregates.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshotOf(s.state)
}

// ClearIf empties the cart only if its line ids and quantities still match
// expected, and reports whether it did.
func (s *Store) ClearIf(expected Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := snapshotOf(s.state)
	if !sameContents(current, expected) {
		return false
	}
	s.state = State{}
	return true
}

func sameContents(a, b Snapshot) bool {
	if len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if a.Items[i].ID != b.Items[i].ID || a.Items[i].Quantity != b.Items[i].Quantity {
			return false
		}
	}
	return true
}
