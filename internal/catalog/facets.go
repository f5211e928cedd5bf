package catalog

import (
	"math"

	"velour/internal/model"
)

// CategoryAll is the sentinel category meaning "no category restriction".
const CategoryAll = "All"

// Facets holds the filterable dimensions derived from a catalogue:
// the price bounds and the distinct categories, colours, sizes and tags.
type Facets struct {
	MinPrice   float64  `json:"minPrice"`
	MaxPrice   float64  `json:"maxPrice"`
	Categories []string `json:"categories"`
	Colors     []string `json:"colors"`
	Sizes      []string `json:"sizes"`
	Tags       []string `json:"tags"`
}

// DeriveFacets scans the catalogue and computes its facets. The price
// bounds are the floor of the lowest price and the ceiling of the
// highest; categories are prefixed with the "All" sentinel. Value lists
// keep catalogue order with duplicates removed.
//
// An empty catalogue yields the zero-value facets (MinPrice=MaxPrice=0,
// empty value lists) rather than undefined bounds, so the function is
// total.
func DeriveFacets(products []model.Product) Facets {
	if len(products) == 0 {
		return Facets{
			Categories: []string{CategoryAll},
			Colors:     []string{},
			Sizes:      []string{},
			Tags:       []string{},
		}
	}

	minPrice := products[0].Price
	maxPrice := products[0].Price

	categories := []string{CategoryAll}
	seenCategory := map[string]bool{}
	colors := []string{}
	sizes := []string{}
	tags := []string{}
	seenColor := map[string]bool{}
	seenSize := map[string]bool{}
	seenTag := map[string]bool{}

	for _, p := range products {
		if p.Price < minPrice {
			minPrice = p.Price
		}
		if p.Price > maxPrice {
			maxPrice = p.Price
		}

		if p.Category != "" && !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			categories = append(categories, p.Category)
		}
		for _, c := range p.Colors {
			if !seenColor[c.Name] {
				seenColor[c.Name] = true
				colors = append(colors, c.Name)
			}
		}
		for _, s := range p.Sizes {
			if !seenSize[s.Name] {
				seenSize[s.Name] = true
				sizes = append(sizes, s.Name)
			}
		}
		for _, t := range p.Tags {
			if !seenTag[t] {
				seenTag[t] = true
				tags = append(tags, t)
			}
		}
	}

	return Facets{
		MinPrice:   math.Floor(minPrice),
		MaxPrice:   math.Ceil(maxPrice),
		Categories: categories,
		Colors:     colors,
		Sizes:      sizes,
		Tags:       tags,
	}
}
