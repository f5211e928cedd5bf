package service

import (
	"context"
	"encoding/json"

	"velour/internal/catalog"
	"velour/internal/filter"
	"velour/internal/model"
	"velour/internal/store"

	"github.com/rs/zerolog"
)

// storefrontService implements StorefrontService over an immutable
// catalogue and an injected session store.
type storefrontService struct {
	catalog *catalog.Catalog
	store   store.Store
	recent  *store.RecentlyViewed
	logger  zerolog.Logger
}

// NewStorefrontService creates a new storefront service.
func NewStorefrontService(cat *catalog.Catalog, st store.Store, recent *store.RecentlyViewed, logger zerolog.Logger) StorefrontService {
	return &storefrontService{
		catalog: cat,
		store:   st,
		recent:  recent,
		logger:  logger.With().Str("service", "storefront").Logger(),
	}
}

// ListProducts returns the filtered, sorted product list for the
// session's current filter state.
func (s *storefrontService) ListProducts(ctx context.Context, session, query string, sortKey filter.SortKey) (*ListResult, error) {
	if sortKey == "" {
		sortKey = filter.DefaultSort
	}

	state := s.loadState(ctx, session)
	facets := s.catalog.Facets()

	filtered := filter.Apply(s.catalog.Products(), state, query)
	sorted := filter.SortProducts(filtered, sortKey)

	s.logger.Debug().
		Str("session", session).
		Str("query", query).
		Str("sort", string(sortKey)).
		Int("visible", len(sorted)).
		Int("catalogue", s.catalog.Len()).
		Msg("listed products")

	return &ListResult{
		Products:      sorted,
		Total:         len(sorted),
		ActiveFilters: filter.CountActive(state, facets.MinPrice, facets.MaxPrice),
	}, nil
}

// GetProduct retrieves a product and records it as recently viewed.
func (s *storefrontService) GetProduct(ctx context.Context, session, id string) (*model.Product, error) {
	if id == "" {
		return nil, model.ErrProductNotFound
	}

	product, ok := s.catalog.Get(id)
	if !ok {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	s.recent.Record(ctx, session, id)

	return &product, nil
}

// Facets returns the filterable dimensions of the catalogue.
func (s *storefrontService) Facets() catalog.Facets {
	return s.catalog.Facets()
}

// FilterState returns the session's current filter state.
func (s *storefrontService) FilterState(ctx context.Context, session string) filter.State {
	return s.loadState(ctx, session)
}

// UpdateFilters replaces the session's filter state, sanitised against
// the catalogue bounds, and persists it best-effort.
func (s *storefrontService) UpdateFilters(ctx context.Context, session string, state filter.State) filter.State {
	facets := s.catalog.Facets()
	state = state.Sanitized(facets.MinPrice, facets.MaxPrice)

	s.saveState(ctx, session, state)
	return state
}

// ResetFilters restores the default full-range state. The persisted
// entry is replaced rather than deleted so a concurrent reload sees the
// reset immediately.
func (s *storefrontService) ResetFilters(ctx context.Context, session string) filter.State {
	facets := s.catalog.Facets()
	state := filter.DefaultState(facets.MinPrice, facets.MaxPrice)

	s.saveState(ctx, session, state)

	s.logger.Debug().Str("session", session).Msg("filters reset")
	return state
}

// loadState rebuilds the session's filter state from the store. Missing
// or malformed data silently falls back to the default state.
func (s *storefrontService) loadState(ctx context.Context, session string) filter.State {
	facets := s.catalog.Facets()

	raw, err := s.store.Load(ctx, store.FilterKey(session))
	if err != nil && err != store.ErrNotFound {
		s.logger.Warn().Err(err).Str("session", session).Msg("failed to load filter state")
		raw = nil
	}

	return filter.LoadInitialState(raw, facets.MinPrice, facets.MaxPrice, s.logger)
}

// saveState persists the filter state best-effort: failures are logged,
// never surfaced.
func (s *storefrontService) saveState(ctx context.Context, session string, state filter.State) {
	raw, err := json.Marshal(state)
	if err != nil {
		s.logger.Error().Err(err).Str("session", session).Msg("failed to encode filter state")
		return
	}

	if err := s.store.Save(ctx, store.FilterKey(session), raw); err != nil {
		s.logger.Warn().Err(err).Str("session", session).Msg("failed to persist filter state")
	}
}
