package model

import "github.com/google/uuid"

// CartItem is one line in a cart: a product with a specific color/size
// choice and a quantity. The line ID is distinct from the product ID so
// that the same product added in two colorways yields two lines.
type CartItem struct {
	ID            uuid.UUID `json:"id"`
	Product       Product   `json:"product"`
	SelectedColor string    `json:"selectedColor"`
	SelectedSize  string    `json:"selectedSize,omitempty"`
	Quantity      int       `json:"quantity"`
}

// AddItemRequest is the payload for adding a product to the cart.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Color     string `json:"color"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

// UpdateQuantityRequest is the payload for changing a line's quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
