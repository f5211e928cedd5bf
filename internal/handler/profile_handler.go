package handler

import (
	"net/http"

	"velour/internal/service"

	"github.com/rs/zerolog"
)

// ProfileHandler handles wishlist and recently-viewed HTTP requests.
type ProfileHandler struct {
	service service.ProfileService
	logger  zerolog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(service service.ProfileService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("handler", "profile").Logger(),
	}
}

// toggleResponse reports a product's wishlist membership after a toggle.
type toggleResponse struct {
	ProductID  string `json:"productId"`
	Wishlisted bool   `json:"wishlisted"`
}

// Wishlist handles GET /api/wishlist requests.
func (h *ProfileHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Wishlist(r.Context(), sessionFrom(r)))
}

// Toggle handles POST /api/wishlist/{productId} requests.
func (h *ProfileHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/wishlist/{productId}
	path := r.URL.Path
	if len(path) <= len("/api/wishlist/") {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}
	productID := path[len("/api/wishlist/"):]

	wishlisted, err := h.service.ToggleWishlist(r.Context(), sessionFrom(r), productID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, toggleResponse{ProductID: productID, Wishlisted: wishlisted})
}

// RecentlyViewed handles GET /api/recently-viewed requests.
func (h *ProfileHandler) RecentlyViewed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.RecentlyViewed(r.Context(), sessionFrom(r)))
}
