package service

import (
	"context"

	"velour/internal/catalog"
	"velour/internal/model"
	"velour/internal/store"

	"github.com/rs/zerolog"
)

// profileService implements ProfileService over the persisted wishlist
// and recently-viewed helpers.
type profileService struct {
	catalog  *catalog.Catalog
	wishlist *store.Wishlist
	recent   *store.RecentlyViewed
	logger   zerolog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(cat *catalog.Catalog, wishlist *store.Wishlist, recent *store.RecentlyViewed, logger zerolog.Logger) ProfileService {
	return &profileService{
		catalog:  cat,
		wishlist: wishlist,
		recent:   recent,
		logger:   logger.With().Str("service", "profile").Logger(),
	}
}

// Wishlist returns the wishlisted products still present in the
// catalogue. Ids for products that have left the catalogue are dropped
// silently.
func (s *profileService) Wishlist(ctx context.Context, session string) []model.Product {
	return s.resolve(s.wishlist.List(ctx, session))
}

// ToggleWishlist flips a product's wishlist membership.
func (s *profileService) ToggleWishlist(ctx context.Context, session, productID string) (bool, error) {
	if _, ok := s.catalog.Get(productID); !ok {
		s.logger.Debug().Str("product_id", productID).Msg("product not found")
		return false, model.ErrProductNotFound
	}

	wishlisted := s.wishlist.Toggle(ctx, session, productID)

	s.logger.Info().
		Str("session", session).
		Str("product_id", productID).
		Bool("wishlisted", wishlisted).
		Msg("wishlist toggled")

	return wishlisted, nil
}

// RecentlyViewed returns the recently-viewed products, most recent
// first.
func (s *profileService) RecentlyViewed(ctx context.Context, session string) []model.Product {
	return s.resolve(s.recent.List(ctx, session))
}

// resolve maps product ids to catalogue entries, keeping order and
// skipping ids no longer in the catalogue.
func (s *profileService) resolve(ids []string) []model.Product {
	products := make([]model.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.catalog.Get(id); ok {
			products = append(products, p)
		}
	}
	return products
}
