package store

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
)

// Wishlist manages the persisted set of wishlisted product ids for a
// session. All operations are best-effort: storage failures and
// malformed persisted data are logged and the empty list substituted,
// never surfaced to the caller.
type Wishlist struct {
	store  Store
	logger zerolog.Logger
}

// NewWishlist creates a wishlist backed by the given store.
func NewWishlist(store Store, logger zerolog.Logger) *Wishlist {
	return &Wishlist{
		store:  store,
		logger: logger.With().Str("component", "wishlist").Logger(),
	}
}

// List returns the wishlisted product ids for the session, in the order
// they were added.
func (w *Wishlist) List(ctx context.Context, session string) []string {
	raw, err := w.store.Load(ctx, WishlistKey(session))
	if err != nil {
		if err != ErrNotFound {
			w.logger.Warn().Err(err).Str("session", session).Msg("failed to load wishlist")
		}
		return []string{}
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		w.logger.Debug().Err(err).Str("session", session).Msg("discarding malformed wishlist")
		return []string{}
	}
	return ids
}

// Contains reports whether the product is on the session's wishlist.
func (w *Wishlist) Contains(ctx context.Context, session, productID string) bool {
	for _, id := range w.List(ctx, session) {
		if id == productID {
			return true
		}
	}
	return false
}

// Toggle adds the product to the wishlist if absent, removes it if
// present, and reports whether it is wishlisted afterwards.
func (w *Wishlist) Toggle(ctx context.Context, session, productID string) bool {
	ids := w.List(ctx, session)

	next := make([]string, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == productID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, productID)
	}

	w.save(ctx, session, next)
	return !removed
}

func (w *Wishlist) save(ctx context.Context, session string, ids []string) {
	raw, err := json.Marshal(ids)
	if err != nil {
		w.logger.Error().Err(err).Str("session", session).Msg("failed to encode wishlist")
		return
	}
	if err := w.store.Save(ctx, WishlistKey(session), raw); err != nil {
		w.logger.Warn().Err(err).Str("session", session).Msg("failed to persist wishlist")
	}
}
