package model

// Color is one selectable colorway of a product.
type Color struct {
	Name   string `json:"name"`
	Swatch string `json:"swatch"`
}

// Size is one selectable size of a product. One-size products carry an
// empty size list.
type Size struct {
	Name    string `json:"name"`
	InStock bool   `json:"inStock"`
}

// Product represents a catalogue entry. Products are loaded once per
// session and treated as immutable; nothing in this module mutates one.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Category      string   `json:"category"`
	Colors        []Color  `json:"colors"`
	Sizes         []Size   `json:"sizes,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	InStock       bool     `json:"inStock"`
	Quality       float64  `json:"quality,omitempty"`
	Popularity    float64  `json:"popularity,omitempty"`
}

// DiscountFraction returns the fractional markdown implied by the
// original price, or 0 when the product has no original price.
func (p Product) DiscountFraction() float64 {
	if p.OriginalPrice == nil || *p.OriginalPrice <= 0 {
		return 0
	}
	return (*p.OriginalPrice - p.Price) / *p.OriginalPrice
}

// HasColor reports whether the product is offered in the named colorway.
func (p Product) HasColor(name string) bool {
	for _, c := range p.Colors {
		if c.Name == name {
			return true
		}
	}
	return false
}

// HasSize reports whether the product is offered in the named size.
func (p Product) HasSize(name string) bool {
	for _, s := range p.Sizes {
		if s.Name == name {
			return true
		}
	}
	return false
}

// HasTag reports whether the product carries the named tag.
func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
