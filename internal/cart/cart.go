// Package cart holds the in-progress selection for one point-of-sale
// checkout session. A Cart belongs to a single request and is not safe for
// concurrent use; stock ceilings are enforced locally here and re-checked by
// the store when the checkout commits.
package cart

import "buildmart/internal/domain"

// Line pairs a stocked item with the quantity requested so far.
type Line struct {
	Item     domain.InventoryItem
	Quantity int
}

// TotalPaise is the line total at the item's current selling price.
func (l Line) TotalPaise() int64 {
	return l.Item.SellingPricePaise * int64(l.Quantity)
}

// Cart accumulates lines in insertion order, keyed by inventory item ID.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of item in the cart: a new line at quantity 1, or an
// increment of an existing line. The increment is rejected with
// ErrStockLimitExceeded when it would pass the item's stock, leaving the
// cart unchanged.
func (c *Cart) Add(item domain.InventoryItem) error {
	for i, line := range c.lines {
		if line.Item.ID == item.ID {
			if line.Quantity+1 > item.StockQuantity {
				return domain.ErrStockLimitExceeded
			}
			c.lines[i].Item = item
			c.lines[i].Quantity++
			return nil
		}
	}
	if item.StockQuantity < 1 {
		return domain.ErrStockLimitExceeded
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
	return nil
}

// SetQuantity replaces a line's quantity. Zero removes the line. A quantity
// above the item's stock is rejected with ErrStockLimitExceeded and the line
// keeps its prior quantity.
func (c *Cart) SetQuantity(itemID string, quantity int) error {
	if quantity == 0 {
		c.Remove(itemID)
		return nil
	}
	if quantity < 0 {
		return domain.ErrStockLimitExceeded
	}
	for i, line := range c.lines {
		if line.Item.ID == itemID {
			if quantity > line.Item.StockQuantity {
				return domain.ErrStockLimitExceeded
			}
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return domain.ErrNotFound
}

// Remove deletes the line unconditionally. Removing an absent item is a no-op.
func (c *Cart) Remove(itemID string) {
	for i, line := range c.lines {
		if line.Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// TotalPaise sums quantity times selling price across all lines. Integer
// paise arithmetic keeps the total exact.
func (c *Cart) TotalPaise() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.TotalPaise()
	}
	return total
}

// Lines returns a copy of the cart contents in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Clear empties the cart. Safe to call repeatedly.
func (c *Cart) Clear() {
	c.lines = nil
}
