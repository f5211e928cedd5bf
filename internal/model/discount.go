package model

import "time"

// Discount types. A referrer earned the discount by referring someone;
// a referred user received it by signing up through a referral link.
const (
	DiscountTypeReferrer = "referrer"
	DiscountTypeReferred = "referred"
)

// ReferralDiscount is a percentage price reduction granted through the
// referral programme. At most one discount is applied per price
// calculation, regardless of how many are eligible.
type ReferralDiscount struct {
	ID         string     `json:"id"`
	Type       string     `json:"type"`
	Percentage float64    `json:"percentage"`
	Active     bool       `json:"active"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Eligible reports whether the discount may be applied at the given
// instant: it must be active and not expired.
func (d ReferralDiscount) Eligible(now time.Time) bool {
	if !d.Active {
		return false
	}
	if d.ExpiresAt != nil && !now.Before(*d.ExpiresAt) {
		return false
	}
	return true
}
