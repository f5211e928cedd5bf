package catalog

import (
	"context"

	"velour/internal/model"
)

// Loader defines the interface for loading catalogue files.
type Loader interface {
	// Load reads a JSON catalogue file and returns its products.
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// Catalog is the product catalogue for a session: loaded once, then
// read-only. All lookups and the derived facets are computed up front.
type Catalog struct {
	products []model.Product
	byID     map[string]model.Product
	facets   Facets
}

// New builds a catalogue from the loaded products. The slice is copied
// so later mutations by the caller cannot leak into the catalogue.
func New(products []model.Product) *Catalog {
	c := &Catalog{
		products: make([]model.Product, len(products)),
		byID:     make(map[string]model.Product, len(products)),
	}
	copy(c.products, products)
	for _, p := range c.products {
		c.byID[p.ID] = p
	}
	c.facets = DeriveFacets(c.products)
	return c
}

// Products returns the catalogue in its original order. The returned
// slice must not be modified.
func (c *Catalog) Products() []model.Product {
	return c.products
}

// Get retrieves a product by ID.
func (c *Catalog) Get(id string) (model.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Len returns the number of products in the catalogue.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Facets returns the filterable dimensions derived from the catalogue.
func (c *Catalog) Facets() Facets {
	return c.facets
}
