package handler

import (
	"encoding/json"
	"net/http"

	"velour/internal/filter"
	"velour/internal/service"
	"velour/internal/shipping"

	"github.com/rs/zerolog"
)

// StorefrontHandler handles catalogue browsing HTTP requests.
type StorefrontHandler struct {
	service service.StorefrontService
	logger  zerolog.Logger
}

// NewStorefrontHandler creates a new storefront handler.
func NewStorefrontHandler(service service.StorefrontService, logger zerolog.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		service: service,
		logger:  logger.With().Str("handler", "storefront").Logger(),
	}
}

// ListProducts handles GET /api/products requests with search and sort
// query parameters.
func (h *StorefrontHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query().Get("q")

	sortKey := filter.DefaultSort
	if raw := r.URL.Query().Get("sort"); raw != "" {
		parsed, ok := filter.ParseSortKey(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid sort parameter", h.logger)
			return
		}
		sortKey = parsed
	}

	result, err := h.service.ListProducts(r.Context(), sessionFrom(r), query, sortKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetByID handles GET /api/products/{id} requests.
func (h *StorefrontHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/products/{id}
	path := r.URL.Path
	if len(path) <= len("/api/products/") {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}
	productID := path[len("/api/products/"):]

	product, err := h.service.GetProduct(r.Context(), sessionFrom(r), productID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Facets handles GET /api/facets requests.
func (h *StorefrontHandler) Facets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Facets())
}

// Filters routes /api/filters requests by method: GET returns the
// session's state, PUT replaces it, DELETE resets it to defaults.
func (h *StorefrontHandler) Filters(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.service.FilterState(r.Context(), session))

	case http.MethodPut:
		var state filter.State
		if err := json.NewDecoder(r.Body).Decode(&state); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON in request body", h.logger)
			return
		}
		writeJSON(w, http.StatusOK, h.service.UpdateFilters(r.Context(), session, state))

	case http.MethodDelete:
		writeJSON(w, http.StatusOK, h.service.ResetFilters(r.Context(), session))

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// DeliveryPartners handles GET /api/delivery-partners requests.
func (h *StorefrontHandler) DeliveryPartners(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, shipping.Partners())
}
