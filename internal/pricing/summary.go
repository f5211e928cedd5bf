package pricing

import (
	"time"

	"velour/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxRate is the flat sales tax applied to the subtotal.
var TaxRate = decimal.NewFromFloat(0.08)

// LineTotal is the priced form of one cart line.
type LineTotal struct {
	LineID          uuid.UUID               `json:"lineId"`
	ProductID       string                  `json:"productId"`
	Quantity        int                     `json:"quantity"`
	UnitPrice       Cents                   `json:"unitPrice"`
	EffectivePrice  Cents                   `json:"effectivePrice"`
	Total           Cents                   `json:"total"`
	AppliedDiscount *model.ReferralDiscount `json:"appliedDiscount,omitempty"`
}

// OrderSummary is the derived money breakdown for a cart. It is
// recomputed on every relevant change and never mutated independently.
type OrderSummary struct {
	Lines       []LineTotal `json:"lines"`
	Subtotal    Cents       `json:"subtotal"`
	DeliveryFee Cents       `json:"deliveryFee"`
	Tax         Cents       `json:"tax"`
	Total       Cents       `json:"total"`
}

// Summarize prices the cart: the subtotal is the sum of effective unit
// prices times quantities, tax is 8% of the subtotal rounded half-up,
// and the total adds the selected partner's flat delivery fee. An empty
// cart yields a zero subtotal and tax with only the delivery fee in the
// total; guarding checkout against empty carts is the caller's job.
func Summarize(items []model.CartItem, discounts []model.ReferralDiscount, partner model.DeliveryPartner, now time.Time) OrderSummary {
	lines := make([]LineTotal, 0, len(items))

	subtotal := Cents(0)
	for _, item := range items {
		unit := ToCents(item.Product.Price)
		effective, applied := ApplyBestDiscount(unit, discounts, now)
		lineTotal := effective * Cents(item.Quantity)
		subtotal += lineTotal

		lines = append(lines, LineTotal{
			LineID:          item.ID,
			ProductID:       item.Product.ID,
			Quantity:        item.Quantity,
			UnitPrice:       unit,
			EffectivePrice:  effective,
			Total:           lineTotal,
			AppliedDiscount: applied,
		})
	}

	tax := roundToCents(decimal.New(int64(subtotal), -2).Mul(TaxRate))
	deliveryFee := ToCents(partner.Price)

	return OrderSummary{
		Lines:       lines,
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Total:       subtotal + deliveryFee + tax,
	}
}
