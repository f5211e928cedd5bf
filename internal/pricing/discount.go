package pricing

import (
	"time"

	"velour/internal/model"

	"github.com/shopspring/decimal"
)

// ApplyBestDiscount applies at most one referral discount to a unit
// price. Eligible discounts are active and unexpired; when several
// qualify, exactly one is chosen deterministically: referrer discounts
// beat referred ones, then the highest percentage wins, then the most
// recently created. The discounted price is rounded half-up to whole
// cents.
//
// When nothing qualifies the price is returned unchanged with a nil
// applied discount, so callers can show the original price without a
// strikethrough.
func ApplyBestDiscount(unitPrice Cents, discounts []model.ReferralDiscount, now time.Time) (Cents, *model.ReferralDiscount) {
	var best *model.ReferralDiscount
	for i := range discounts {
		d := &discounts[i]
		if !d.Eligible(now) {
			continue
		}
		if best == nil || preferDiscount(*d, *best) {
			best = d
		}
	}

	if best == nil {
		return unitPrice, nil
	}

	factor := decimal.NewFromInt(100).Sub(decimal.NewFromFloat(best.Percentage)).Div(decimal.NewFromInt(100))
	discounted := roundToCents(decimal.New(int64(unitPrice), -2).Mul(factor))

	applied := *best
	return discounted, &applied
}

// preferDiscount reports whether candidate should replace current under
// the discount tie-break rules.
func preferDiscount(candidate, current model.ReferralDiscount) bool {
	if candidate.Type != current.Type {
		return candidate.Type == model.DiscountTypeReferrer
	}
	if candidate.Percentage != current.Percentage {
		return candidate.Percentage > current.Percentage
	}
	return candidate.CreatedAt.After(current.CreatedAt)
}
