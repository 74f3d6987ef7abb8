// Package cart accumulates selected menu lines before checkout. The
// aggregator is pure in-memory state with no side effects; persistence
// and sync belong to the checkout step, not here.
package cart

import "github.com/ryo-harano/coffee-app/internal/menu"

// Cart holds lines in insertion order. It is not safe for concurrent
// use; the session controller serializes access.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add appends a line for the item, or increments the quantity of an
// existing line with the same (item, size, temperature) key. The unit
// price is looked up once, at add time. Quantities below one are
// ignored.
func (c *Cart) Add(item menu.Item, size menu.Size, quantity int, temp menu.Temperature) {
	if quantity < 1 {
		return
	}

	key := Key{ItemID: item.ID, Size: size, Temperature: temp}
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines[i].Quantity += quantity
			return
		}
	}

	c.lines = append(c.lines, Line{
		ItemID:        item.ID,
		Name:          item.Name,
		Category:      item.Category,
		Size:          size,
		Temperature:   temp,
		Quantity:      quantity,
		SelectedPrice: item.Prices.For(size),
	})
}

// Remove deletes the whole line matching the key, regardless of its
// quantity. Removing a missing key is a no-op.
func (c *Cart) Remove(key Key) {
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}
