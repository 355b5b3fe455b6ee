// Package cart holds the working set of items a user is assembling into
// one order. The cart is owned by a single session and assumes a
// single-goroutine caller; it carries no locking of its own.
package cart

import (
	"food-court/internal/model"
)

// Cart is the session-scoped collection of line items awaiting checkout.
// At most one entry exists per item ID, and insertion order is preserved
// for display.
type Cart struct {
	items []model.LineItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts an item into the cart. If an entry with the same ID already
// exists its quantity is incremented by the incoming quantity and every
// other field of the existing entry is preserved, including its position.
// A new ID is appended to the end.
func (c *Cart) Add(item model.LineItem) {
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove deletes the entry with the given ID. Removing an absent ID is a
// no-op, not an error.
func (c *Cart) Remove(id int64) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity of the entry with the given ID. A
// quantity of zero removes the entry, so the cart never holds a
// zero-quantity line. Negative quantities are rejected with
// ErrInvalidQuantity. An absent ID is a no-op.
func (c *Cart) UpdateQuantity(id int64, quantity int) error {
	if quantity < 0 {
		return model.ErrInvalidQuantity
	}
	if quantity == 0 {
		c.Remove(id)
		return nil
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// Total returns the sum of price × quantity over all entries. It is pure
// and returns 0 for an empty cart.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the current entries in insertion order. Mutating
// the returned slice does not affect the cart.
func (c *Cart) Items() []model.LineItem {
	items := make([]model.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of distinct entries in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}
