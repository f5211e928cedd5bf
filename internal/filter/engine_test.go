package filter

import (
	"testing"

	"velour/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func original(v float64) *float64 { return &v }

func fixtureCatalog() []model.Product {
	return []model.Product{
		{
			ID: "dress", Name: "Silk Slip Dress", Price: 890, Category: "Dresses",
			Colors: []model.Color{{Name: "Champagne"}, {Name: "Noir"}},
			Sizes:  []model.Size{{Name: "S", InStock: true}, {Name: "M", InStock: true}},
			Tags:   []string{"new", "evening"},
			Rating: 4.8, Quality: 9.2, Popularity: 87, InStock: true,
		},
		{
			ID: "coat", Name: "Cashmere Wrap Coat", Price: 2450, Category: "Outerwear",
			Colors: []model.Color{{Name: "Camel"}},
			Sizes:  []model.Size{{Name: "M", InStock: true}, {Name: "L", InStock: true}},
			Tags:   []string{"bestseller"},
			Rating: 4.9, Quality: 9.7, Popularity: 93, InStock: true,
		},
		{
			ID: "tote", Name: "Grained Leather Tote", Price: 1320, Category: "Bags",
			OriginalPrice: original(1650),
			Colors:        []model.Color{{Name: "Cognac"}, {Name: "Noir"}},
			Tags:          []string{"icon"},
			Rating:        4.6, Quality: 8.9, Popularity: 95, InStock: true,
		},
		{
			ID: "scarf", Name: "Printed Silk Scarf", Price: 340, Category: "Accessories",
			OriginalPrice: original(425),
			Colors:        []model.Color{{Name: "Emerald"}},
			Tags:          []string{"gift", "new"},
			Rating:        4.4, Quality: 8.1, Popularity: 44, InStock: false,
		},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApply_DefaultStateIsIdentity(t *testing.T) {
	catalog := fixtureCatalog()
	state := DefaultState(340, 2450)

	result := Apply(catalog, state, "")

	assert.Equal(t, ids(catalog), ids(result), "no-restriction state must pass every product in order")
}

func TestApply_ReturnsSubset(t *testing.T) {
	catalog := fixtureCatalog()
	state := State{
		Category:   "All",
		PriceRange: []float64{340, 2450},
		Colors:     []string{"Noir"},
	}

	result := Apply(catalog, state, "silk")

	inCatalog := map[string]bool{}
	for _, p := range catalog {
		inCatalog[p.ID] = true
	}
	seen := map[string]bool{}
	for _, p := range result {
		assert.True(t, inCatalog[p.ID], "no product may be invented")
		assert.False(t, seen[p.ID], "no product may be duplicated")
		seen[p.ID] = true
	}
}

func TestApply_SearchQuery(t *testing.T) {
	catalog := fixtureCatalog()
	state := DefaultState(340, 2450)

	result := Apply(catalog, state, "SILK")

	require.Len(t, result, 2)
	assert.Equal(t, []string{"dress", "scarf"}, ids(result))
}

func TestApply_Category(t *testing.T) {
	catalog := fixtureCatalog()
	state := DefaultState(340, 2450)
	state.Category = "Bags"

	result := Apply(catalog, state, "")

	assert.Equal(t, []string{"tote"}, ids(result))
}

func TestApply_PriceRangeInclusive(t *testing.T) {
	catalog := fixtureCatalog()
	state := DefaultState(340, 2450)
	state.PriceRange = []float64{340, 890}

	result := Apply(catalog, state, "")

	// Both bounds are inclusive.
	assert.Equal(t, []string{"dress", "scarf"}, ids(result))
}

func TestApply_Colors(t *testing.T) {
	catalog := fixtureCatalog()
	state := DefaultState(340, 2450)
	state.Colors = []string{"Noir"}

	result := Apply(catalog, state, "")

	assert.Equal(t, []string{"dress", "tote"}, ids(result))
}

func TestApply_Sizes(t *testing.T) {
	catalog := fixtureCatalog()
	state := DefaultState(340, 2450)
	state.Sizes = []string{"L"}

	result := Apply(catalog, state, "")

	assert.Equal(t, []string{"coat"}, ids(result))
}

func TestApply_Tags(t *testing.T) {
	catalog := fixtureCatalog()
	state := DefaultState(340, 2450)
	state.Tags = []string{"new"}

	result := Apply(catalog, state, "")

	assert.Equal(t, []string{"dress", "scarf"}, ids(result))
}

func TestApply_InStockOnly(t *testing.T) {
	catalog := fixtureCatalog()
	state := DefaultState(340, 2450)
	state.InStockOnly = true

	result := Apply(catalog, state, "")

	assert.Equal(t, []string{"dress", "coat", "tote"}, ids(result))
}

func TestApply_CombinedFilters(t *testing.T) {
	catalog := fixtureCatalog()
	state := State{
		Category:    "Dresses",
		PriceRange:  []float64{500, 1000},
		Colors:      []string{"Noir"},
		Sizes:       []string{"M"},
		Tags:        []string{"new"},
		InStockOnly: true,
	}

	result := Apply(catalog, state, "silk")

	assert.Equal(t, []string{"dress"}, ids(result))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	catalog := fixtureCatalog()
	before := ids(catalog)

	state := DefaultState(340, 2450)
	state.Colors = []string{"Emerald"}
	_ = Apply(catalog, state, "")

	assert.Equal(t, before, ids(catalog))
}

func TestSortProducts(t *testing.T) {
	catalog := fixtureCatalog()

	tests := []struct {
		key      SortKey
		expected []string
	}{
		{SortRating, []string{"coat", "dress", "tote", "scarf"}},
		{SortQuality, []string{"coat", "dress", "tote", "scarf"}},
		{SortPopular, []string{"tote", "coat", "dress", "scarf"}},
		{SortPriceLow, []string{"scarf", "dress", "tote", "coat"}},
		{SortPriceHigh, []string{"coat", "tote", "dress", "scarf"}},
		{SortDiscount, []string{"tote", "scarf", "dress", "coat"}},
		{SortName, []string{"coat", "tote", "scarf", "dress"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			result := SortProducts(catalog, tt.key)
			assert.Equal(t, tt.expected, ids(result))
		})
	}
}

func TestSortProducts_Stable(t *testing.T) {
	products := []model.Product{
		{ID: "a", Name: "A", Price: 100, Rating: 4.5},
		{ID: "b", Name: "B", Price: 100, Rating: 4.5},
		{ID: "c", Name: "C", Price: 100, Rating: 4.5},
	}

	once := SortProducts(products, SortRating)
	twice := SortProducts(once, SortRating)

	assert.Equal(t, []string{"a", "b", "c"}, ids(once), "ties must keep original order")
	assert.Equal(t, ids(once), ids(twice), "sorting twice must not reshuffle")
}

func TestSortProducts_PriceLowReversedEqualsPriceHigh(t *testing.T) {
	catalog := fixtureCatalog() // distinct prices

	low := SortProducts(catalog, SortPriceLow)
	high := SortProducts(catalog, SortPriceHigh)

	reversed := make([]string, len(low))
	for i, p := range low {
		reversed[len(low)-1-i] = p.ID
	}

	assert.Equal(t, ids(high), reversed)
}

func TestSortProducts_DiscountTreatsMissingOriginalAsZero(t *testing.T) {
	products := []model.Product{
		{ID: "full-price", Name: "A", Price: 100},
		{ID: "marked-down", Name: "B", Price: 50, OriginalPrice: original(100)},
	}

	result := SortProducts(products, SortDiscount)

	assert.Equal(t, []string{"marked-down", "full-price"}, ids(result))
}

func TestSortProducts_DoesNotMutateInput(t *testing.T) {
	catalog := fixtureCatalog()
	before := ids(catalog)

	_ = SortProducts(catalog, SortPriceLow)

	assert.Equal(t, before, ids(catalog))
}
