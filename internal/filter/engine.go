package filter

import (
	"math"
	"sort"
	"strings"

	"velour/internal/catalog"
	"velour/internal/model"
)

// Apply derives the visible product list from the full catalogue. The
// pipeline runs in a fixed order: search query, category, price range,
// colours, sizes, tags, stock. All predicates commute, so the order only
// affects how quickly the list shrinks. The input slice is never
// mutated; the result is always a fresh slice.
func Apply(products []model.Product, s State, query string) []model.Product {
	query = strings.ToLower(strings.TrimSpace(query))

	colors := toSet(s.Colors)
	sizes := toSet(s.Sizes)
	tags := toSet(s.Tags)

	low, high := priceBounds(s)

	result := make([]model.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if s.Category != catalog.CategoryAll && p.Category != s.Category {
			continue
		}
		if p.Price < low || p.Price > high {
			continue
		}
		if len(colors) > 0 && !hasAnyColor(p, colors) {
			continue
		}
		if len(sizes) > 0 && !hasAnySize(p, sizes) {
			continue
		}
		if len(tags) > 0 && !hasAnyTag(p, tags) {
			continue
		}
		if s.InStockOnly && !p.InStock {
			continue
		}
		result = append(result, p)
	}

	return result
}

// SortProducts returns the products ordered by the given key. The sort
// is stable: ties keep their original relative order. The input slice is
// left untouched.
func SortProducts(products []model.Product, key SortKey) []model.Product {
	sorted := make([]model.Product, len(products))
	copy(sorted, products)

	var less func(a, b model.Product) bool
	switch key {
	case SortQuality:
		less = func(a, b model.Product) bool { return a.Quality > b.Quality }
	case SortPopular:
		less = func(a, b model.Product) bool { return a.Popularity > b.Popularity }
	case SortPriceLow:
		less = func(a, b model.Product) bool { return a.Price < b.Price }
	case SortPriceHigh:
		less = func(a, b model.Product) bool { return a.Price > b.Price }
	case SortDiscount:
		less = func(a, b model.Product) bool { return a.DiscountFraction() > b.DiscountFraction() }
	case SortName:
		less = func(a, b model.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	default:
		less = func(a, b model.Product) bool { return a.Rating > b.Rating }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// priceBounds returns the effective inclusive price window. A state with
// no usable range passes every price.
func priceBounds(s State) (float64, float64) {
	if len(s.PriceRange) != 2 {
		return 0, math.MaxFloat64
	}
	return s.PriceRange[0], s.PriceRange[1]
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func hasAnyColor(p model.Product, wanted map[string]bool) bool {
	for _, c := range p.Colors {
		if wanted[c.Name] {
			return true
		}
	}
	return false
}

func hasAnySize(p model.Product, wanted map[string]bool) bool {
	for _, s := range p.Sizes {
		if wanted[s.Name] {
			return true
		}
	}
	return false
}

func hasAnyTag(p model.Product, wanted map[string]bool) bool {
	for _, t := range p.Tags {
		if wanted[t] {
			return true
		}
	}
	return false
}
