package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// Store is the persisted string-keyed state repository backing filter
// preferences, wishlists and recently-viewed lists. It is injected into
// the services so the engines stay pure and testable; implementations
// exist for memory and PostgreSQL.
type Store interface {
	// Load returns the value stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save writes the value under key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Session-scoped key builders. Keys are fixed per concern so a state
// write always lands on the same entry.
func FilterKey(session string) string   { return "filters:" + session }
func WishlistKey(session string) string { return "wishlist:" + session }
func RecentKey(session string) string   { return "recent:" + session }
