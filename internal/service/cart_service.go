package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"velour/internal/cart"
	"velour/internal/catalog"
	"velour/internal/model"
	"velour/internal/pricing"
	"velour/internal/referral"
	"velour/internal/shipping"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService with one in-memory cart per
// session. Carts are transient by design; only filter state, wishlist
// and recently-viewed survive in the session store.
type cartService struct {
	mu        sync.Mutex
	carts     map[string]*cart.Cart
	catalog   *catalog.Catalog
	discounts referral.Source
	now       func() time.Time
	logger    zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(cat *catalog.Catalog, discounts referral.Source, logger zerolog.Logger) CartService {
	return &cartService{
		carts:     make(map[string]*cart.Cart),
		catalog:   cat,
		discounts: discounts,
		now:       time.Now,
		logger:    logger.With().Str("service", "cart").Logger(),
	}
}

// AddItem adds a product selection to the session's cart.
func (s *cartService) AddItem(ctx context.Context, session string, req *model.AddItemRequest) (model.CartItem, error) {
	if req == nil || req.ProductID == "" {
		return model.CartItem{}, model.ErrProductNotFound
	}

	product, ok := s.catalog.Get(req.ProductID)
	if !ok {
		s.logger.Debug().Str("product_id", req.ProductID).Msg("product not found")
		return model.CartItem{}, model.ErrProductNotFound
	}

	if !product.HasColor(req.Color) {
		s.logger.Debug().
			Str("product_id", req.ProductID).
			Str("color", req.Color).
			Msg("colour not offered")
		return model.CartItem{}, model.ErrInvalidOption
	}
	if req.Size != "" && !product.HasSize(req.Size) {
		s.logger.Debug().
			Str("product_id", req.ProductID).
			Str("size", req.Size).
			Msg("size not offered")
		return model.CartItem{}, model.ErrInvalidOption
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.sessionCart(session).AddLine(product, req.Color, req.Size, req.Quantity)

	s.logger.Info().
		Str("session", session).
		Str("product_id", product.ID).
		Str("line_id", item.ID.String()).
		Int("quantity", item.Quantity).
		Msg("item added to cart")

	return item, nil
}

// UpdateQuantity sets a line's quantity, clamped to a floor of 1.
func (s *cartService) UpdateQuantity(ctx context.Context, session string, lineID uuid.UUID, quantity int) (model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.sessionCart(session).UpdateQuantity(lineID, quantity)
	if err != nil {
		s.logger.Debug().
			Str("session", session).
			Str("line_id", lineID.String()).
			Msg("cart line not found")
		return model.CartItem{}, err
	}

	return item, nil
}

// RemoveItem deletes a line regardless of quantity.
func (s *cartService) RemoveItem(ctx context.Context, session string, lineID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessionCart(session).RemoveLine(lineID); err != nil {
		s.logger.Debug().
			Str("session", session).
			Str("line_id", lineID.String()).
			Msg("cart line not found")
		return err
	}

	s.logger.Info().
		Str("session", session).
		Str("line_id", lineID.String()).
		Msg("cart line removed")

	return nil
}

// Items returns the session's cart lines in insertion order.
func (s *cartService) Items(ctx context.Context, session string) []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessionCart(session).Items()
}

// Clear empties the session's cart.
func (s *cartService) Clear(ctx context.Context, session string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionCart(session).Clear()

	s.logger.Info().Str("session", session).Msg("cart cleared")
}

// Summary prices the cart against the session's referral discounts and
// the chosen delivery partner.
func (s *cartService) Summary(ctx context.Context, session, partnerID string) (*pricing.OrderSummary, *model.DeliveryPartner, error) {
	partner := shipping.Default()
	if partnerID != "" {
		p, ok := shipping.Get(partnerID)
		if !ok {
			s.logger.Debug().Str("partner_id", partnerID).Msg("unknown delivery partner")
			return nil, nil, model.ErrPartnerNotFound
		}
		partner = p
	}

	discounts, err := s.discounts.Discounts(ctx, session)
	if err != nil {
		s.logger.Error().Err(err).Str("session", session).Msg("failed to fetch referral discounts")
		return nil, nil, fmt.Errorf("failed to fetch referral discounts: %w", err)
	}

	s.mu.Lock()
	items := s.sessionCart(session).Items()
	s.mu.Unlock()

	summary := pricing.Summarize(items, discounts, partner, s.now())

	s.logger.Debug().
		Str("session", session).
		Str("partner", partner.ID).
		Int("lines", len(summary.Lines)).
		Str("total", summary.Total.String()).
		Msg("order summary computed")

	return &summary, &partner, nil
}

// sessionCart returns the session's cart, creating it on first use.
// Callers must hold s.mu.
func (s *cartService) sessionCart(session string) *cart.Cart {
	c, ok := s.carts[session]
	if !ok {
		c = cart.New()
		s.carts[session] = c
	}
	return c
}
