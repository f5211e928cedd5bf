package catalog

import (
	"testing"

	"velour/internal/model"

	"github.com/stretchr/testify/assert"
)

func original(v float64) *float64 { return &v }

func testProducts() []model.Product {
	return []model.Product{
		{
			ID: "P001", Name: "Silk Slip Dress", Price: 890.50, Category: "Dresses",
			Colors:  []model.Color{{Name: "Champagne", Swatch: "#F7E7CE"}, {Name: "Noir", Swatch: "#1B1B1B"}},
			Sizes:   []model.Size{{Name: "S", InStock: true}, {Name: "M", InStock: true}},
			Tags:    []string{"new", "evening"},
			Rating:  4.8, ReviewCount: 124, InStock: true,
		},
		{
			ID: "P002", Name: "Cashmere Wrap Coat", Price: 2450, Category: "Outerwear",
			Colors: []model.Color{{Name: "Camel", Swatch: "#C19A6B"}, {Name: "Noir", Swatch: "#1B1B1B"}},
			Sizes:  []model.Size{{Name: "M", InStock: true}, {Name: "L", InStock: true}},
			Tags:   []string{"bestseller"},
			Rating: 4.9, ReviewCount: 86, InStock: true,
		},
		{
			ID: "P003", Name: "Printed Silk Scarf", Price: 340.25, Category: "Accessories",
			Colors: []model.Color{{Name: "Emerald", Swatch: "#2E8B57"}},
			Tags:   []string{"gift", "new"},
			Rating: 4.4, ReviewCount: 58, InStock: false,
		},
	}
}

func TestDeriveFacets(t *testing.T) {
	facets := DeriveFacets(testProducts())

	assert.Equal(t, 340.0, facets.MinPrice, "min price should be floored")
	assert.Equal(t, 2450.0, facets.MaxPrice, "max price should be ceiled")
	assert.Equal(t, []string{"All", "Dresses", "Outerwear", "Accessories"}, facets.Categories)
	assert.Equal(t, []string{"Champagne", "Noir", "Camel", "Emerald"}, facets.Colors)
	assert.Equal(t, []string{"S", "M", "L"}, facets.Sizes)
	assert.Equal(t, []string{"new", "evening", "bestseller", "gift"}, facets.Tags)
}

func TestDeriveFacets_FractionalBounds(t *testing.T) {
	facets := DeriveFacets([]model.Product{
		{ID: "P1", Name: "A", Price: 10.99},
		{ID: "P2", Name: "B", Price: 99.01},
	})

	assert.Equal(t, 10.0, facets.MinPrice)
	assert.Equal(t, 100.0, facets.MaxPrice)
}

func TestDeriveFacets_EmptyCatalog(t *testing.T) {
	facets := DeriveFacets(nil)

	assert.Equal(t, 0.0, facets.MinPrice)
	assert.Equal(t, 0.0, facets.MaxPrice)
	assert.Equal(t, []string{"All"}, facets.Categories)
	assert.Empty(t, facets.Colors)
	assert.Empty(t, facets.Sizes)
	assert.Empty(t, facets.Tags)
}

func TestCatalog_Get(t *testing.T) {
	cat := New(testProducts())

	p, ok := cat.Get("P002")
	assert.True(t, ok)
	assert.Equal(t, "Cashmere Wrap Coat", p.Name)

	_, ok = cat.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, 3, cat.Len())
}

func TestCatalog_CopiesInput(t *testing.T) {
	products := testProducts()
	cat := New(products)

	products[0].Name = "mutated"

	p, ok := cat.Get("P001")
	assert.True(t, ok)
	assert.Equal(t, "Silk Slip Dress", p.Name)
}

func TestProduct_DiscountFraction(t *testing.T) {
	withOriginal := model.Product{Price: 80, OriginalPrice: original(100)}
	assert.InDelta(t, 0.2, withOriginal.DiscountFraction(), 1e-9)

	noOriginal := model.Product{Price: 80}
	assert.Equal(t, 0.0, noOriginal.DiscountFraction())
}
