package referral

import (
	"context"

	"velour/internal/model"
)

// Source supplies the referral discounts granted to a session. The
// pricing engine only consumes and filters this list; discounts are
// created elsewhere by the referral programme.
type Source interface {
	// Discounts returns all discounts recorded for the session,
	// eligible or not. Filtering happens at pricing time.
	Discounts(ctx context.Context, session string) ([]model.ReferralDiscount, error)
}

// staticSource serves a fixed discount table. Used as the default when
// no discount file is configured, and in tests.
type staticSource struct {
	bySession map[string][]model.ReferralDiscount
}

// NewStaticSource creates a source over a fixed session-to-discounts
// table. A nil table behaves as an empty one.
func NewStaticSource(bySession map[string][]model.ReferralDiscount) Source {
	if bySession == nil {
		bySession = map[string][]model.ReferralDiscount{}
	}
	return &staticSource{bySession: bySession}
}

// Discounts returns the discounts recorded for the session.
func (s *staticSource) Discounts(_ context.Context, session string) ([]model.ReferralDiscount, error) {
	discounts := s.bySession[session]
	out := make([]model.ReferralDiscount, len(discounts))
	copy(out, discounts)
	return out, nil
}
