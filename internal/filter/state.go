package filter

import (
	"encoding/json"

	"velour/internal/catalog"

	"github.com/rs/zerolog"
)

// SortKey selects the comparator used to order the visible product list.
type SortKey string

// Supported sort orders.
const (
	SortRating    SortKey = "rating"
	SortQuality   SortKey = "quality"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortPopular   SortKey = "popular"
	SortDiscount  SortKey = "discount"
	SortName      SortKey = "name"
)

// DefaultSort is the sort order used when none has been chosen.
const DefaultSort = SortRating

// ParseSortKey validates a sort key received from the outside.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortRating, SortQuality, SortPriceLow, SortPriceHigh, SortPopular, SortDiscount, SortName:
		return SortKey(s), true
	}
	return "", false
}

// State holds the user-selected filter criteria. An empty selection list
// for any facet means "all values pass", never "none pass". The price
// range is always kept within the catalogue-derived bounds.
type State struct {
	Category    string    `json:"category"`
	PriceRange  []float64 `json:"priceRange"`
	Colors      []string  `json:"colors"`
	Sizes       []string  `json:"sizes"`
	Tags        []string  `json:"tags"`
	InStockOnly bool      `json:"inStockOnly"`
}

// DefaultState returns the no-restriction state spanning the full
// catalogue price range.
func DefaultState(minPrice, maxPrice float64) State {
	return State{
		Category:    catalog.CategoryAll,
		PriceRange:  []float64{minPrice, maxPrice},
		Colors:      []string{},
		Sizes:       []string{},
		Tags:        []string{},
		InStockOnly: false,
	}
}

// LoadInitialState rebuilds a filter state from its persisted JSON form.
// Missing or malformed data never surfaces as an error: the default
// state is substituted. A persisted price range that is absent, not a
// pair, or outside the current catalogue bounds is corrected to
// [minPrice, maxPrice].
func LoadInitialState(raw []byte, minPrice, maxPrice float64, logger zerolog.Logger) State {
	if len(raw) == 0 {
		return DefaultState(minPrice, maxPrice)
	}

	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		logger.Debug().Err(err).Msg("discarding malformed persisted filter state")
		return DefaultState(minPrice, maxPrice)
	}

	return s.Sanitized(minPrice, maxPrice)
}

// Sanitized enforces the state invariants against the current catalogue
// bounds: the "All" category fallback, a clamped two-element price
// range, and non-nil selection lists.
func (s State) Sanitized(minPrice, maxPrice float64) State {
	if s.Category == "" {
		s.Category = catalog.CategoryAll
	}

	if len(s.PriceRange) != 2 {
		s.PriceRange = []float64{minPrice, maxPrice}
	} else {
		low, high := s.PriceRange[0], s.PriceRange[1]
		if low < minPrice {
			low = minPrice
		}
		if high > maxPrice {
			high = maxPrice
		}
		if low > high {
			low, high = minPrice, maxPrice
		}
		s.PriceRange = []float64{low, high}
	}

	if s.Colors == nil {
		s.Colors = []string{}
	}
	if s.Sizes == nil {
		s.Sizes = []string{}
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}

	return s
}

// CountActive returns the number of engaged facets: category, a narrowed
// price range, colours, sizes, tags and the in-stock toggle each count
// at most once, no matter how many values are selected within them.
func CountActive(s State, minPrice, maxPrice float64) int {
	count := 0
	if s.Category != catalog.CategoryAll {
		count++
	}
	if len(s.PriceRange) == 2 && (s.PriceRange[0] > minPrice || s.PriceRange[1] < maxPrice) {
		count++
	}
	if len(s.Colors) > 0 {
		count++
	}
	if len(s.Sizes) > 0 {
		count++
	}
	if len(s.Tags) > 0 {
		count++
	}
	if s.InStockOnly {
		count++
	}
	return count
}
