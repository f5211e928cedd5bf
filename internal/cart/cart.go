package cart

import (
	"velour/internal/model"

	"github.com/google/uuid"
)

// Cart holds the line items for one session. Lines are identified by a
// (product, colour, size) triple: adding the same triple again merges
// quantities, while a different colour or size for the same product
// opens a new line.
//
// Cart is not safe for concurrent use; the owning service serialises
// access.
type Cart struct {
	items []model.CartItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []model.CartItem {
	items := make([]model.CartItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// AddLine adds a product selection to the cart. A quantity below 1 is
// clamped to 1. If a line with the same (product, colour, size) triple
// exists, the quantities merge into it; otherwise a new line is
// appended.
func (c *Cart) AddLine(product model.Product, color, size string, quantity int) model.CartItem {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.items {
		item := &c.items[i]
		if item.Product.ID == product.ID && item.SelectedColor == color && item.SelectedSize == size {
			item.Quantity += quantity
			return *item
		}
	}

	item := model.CartItem{
		ID:            uuid.New(),
		Product:       product,
		SelectedColor: color,
		SelectedSize:  size,
		Quantity:      quantity,
	}
	c.items = append(c.items, item)
	return item
}

// UpdateQuantity sets a line's quantity, clamped to a floor of 1. The
// stepper can never drive a line to zero; removal is a separate
// operation.
func (c *Cart) UpdateQuantity(lineID uuid.UUID, quantity int) (model.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.items {
		if c.items[i].ID == lineID {
			c.items[i].Quantity = quantity
			return c.items[i], nil
		}
	}

	return model.CartItem{}, model.ErrLineNotFound
}

// RemoveLine deletes the line entirely, regardless of quantity. Other
// lines keep their order.
func (c *Cart) RemoveLine(lineID uuid.UUID) error {
	for i := range c.items {
		if c.items[i].ID == lineID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return model.ErrLineNotFound
}

// Clear empties the cart, e.g. after a successful checkout.
func (c *Cart) Clear() {
	c.items = nil
}
