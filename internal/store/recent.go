package store

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
)

// RecentLimit bounds the recently-viewed list to the five most recent
// distinct products.
const RecentLimit = 5

// RecentlyViewed manages the persisted recently-viewed product list for
// a session: most recent first, no duplicates, at most RecentLimit
// entries. Like the wishlist, everything is best-effort.
type RecentlyViewed struct {
	store  Store
	logger zerolog.Logger
}

// NewRecentlyViewed creates a recently-viewed tracker backed by the
// given store.
func NewRecentlyViewed(store Store, logger zerolog.Logger) *RecentlyViewed {
	return &RecentlyViewed{
		store:  store,
		logger: logger.With().Str("component", "recently-viewed").Logger(),
	}
}

// List returns the recently-viewed product ids, most recent first.
func (r *RecentlyViewed) List(ctx context.Context, session string) []string {
	raw, err := r.store.Load(ctx, RecentKey(session))
	if err != nil {
		if err != ErrNotFound {
			r.logger.Warn().Err(err).Str("session", session).Msg("failed to load recently viewed")
		}
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		r.logger.Debug().Err(err).Str("session", session).Msg("discarding malformed recently-viewed list")
		return []string{}
	}
	return ids
}

// Record marks a product as viewed: it moves to the front, duplicates
// are dropped, and the list is trimmed to RecentLimit.
func (r *RecentlyViewed) Record(ctx context.Context, session, productID string) {
	ids := r.List(ctx, session)

	next := make([]string, 0, len(ids)+1)
	next = append(next, productID)
	for _, id := range ids {
		if id == productID {
			continue
		}
		next = append(next, id)
	}
	if len(next) > RecentLimit {
		next = next[:RecentLimit]
	}

	raw, err := json.Marshal(next)
	if err != nil {
		r.logger.Error().Err(err).Str("session", session).Msg("failed to encode recently-viewed list")
		return
	}
	if err := r.store.Save(ctx, RecentKey(session), raw); err != nil {
		r.logger.Warn().Err(err).Str("session", session).Msg("failed to persist recently-viewed list")
	}
}
