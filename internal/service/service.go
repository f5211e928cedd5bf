package service

import (
	"context"

	"velour/internal/catalog"
	"velour/internal/filter"
	"velour/internal/model"
	"velour/internal/pricing"

	"github.com/google/uuid"
)

// ListResult is the outcome of a storefront listing: the visible
// products plus the badge count of engaged filters.
type ListResult struct {
	Products      []model.Product `json:"products"`
	Total         int             `json:"total"`
	ActiveFilters int             `json:"activeFilters"`
}

// StorefrontService defines catalogue browsing operations. Filter state
// is loaded from and persisted to the session store around every call,
// so preferences survive across sessions.
type StorefrontService interface {
	// ListProducts returns the filtered, sorted product list for the
	// session's current filter state.
	ListProducts(ctx context.Context, session, query string, sortKey filter.SortKey) (*ListResult, error)

	// GetProduct retrieves a product and records it as recently viewed.
	GetProduct(ctx context.Context, session, id string) (*model.Product, error)

	// Facets returns the filterable dimensions of the catalogue.
	Facets() catalog.Facets

	// FilterState returns the session's current filter state.
	FilterState(ctx context.Context, session string) filter.State

	// UpdateFilters replaces the session's filter state, sanitised
	// against the catalogue bounds, and persists it.
	UpdateFilters(ctx context.Context, session string, state filter.State) filter.State

	// ResetFilters restores the default full-range state.
	ResetFilters(ctx context.Context, session string) filter.State
}

// CartService defines cart management and pricing operations.
type CartService interface {
	// AddItem adds a product selection to the session's cart, merging
	// into an existing line when the (product, colour, size) triple
	// matches.
	AddItem(ctx context.Context, session string, req *model.AddItemRequest) (model.CartItem, error)

	// UpdateQuantity sets a line's quantity, clamped to a floor of 1.
	UpdateQuantity(ctx context.Context, session string, lineID uuid.UUID, quantity int) (model.CartItem, error)

	// RemoveItem deletes a line regardless of quantity.
	RemoveItem(ctx context.Context, session string, lineID uuid.UUID) error

	// Items returns the session's cart lines in insertion order.
	Items(ctx context.Context, session string) []model.CartItem

	// Clear empties the session's cart.
	Clear(ctx context.Context, session string)

	// Summary prices the cart against the session's referral discounts
	// and the chosen delivery partner (the cheapest partner when none
	// is chosen).
	Summary(ctx context.Context, session, partnerID string) (*pricing.OrderSummary, *model.DeliveryPartner, error)
}

// ProfileService defines the persisted per-session helpers: wishlist
// membership and the recently-viewed list.
type ProfileService interface {
	// Wishlist returns the wishlisted products still present in the
	// catalogue.
	Wishlist(ctx context.Context, session string) []model.Product

	// ToggleWishlist flips a product's wishlist membership and reports
	// whether it is wishlisted afterwards.
	ToggleWishlist(ctx context.Context, session, productID string) (bool, error)

	// RecentlyViewed returns the recently-viewed products, most recent
	// first.
	RecentlyViewed(ctx context.Context, session string) []model.Product
}
