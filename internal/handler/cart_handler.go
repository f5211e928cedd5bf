package handler

import (
	"encoding/json"
	"net/http"

	"velour/internal/model"
	"velour/internal/pricing"
	"velour/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse wraps the cart lines with their count.
type cartResponse struct {
	Items []model.CartItem `json:"items"`
	Count int              `json:"count"`
}

// summaryResponse pairs the order summary with the partner it was
// priced against.
type summaryResponse struct {
	Partner *model.DeliveryPartner `json:"partner"`
	Summary *pricing.OrderSummary  `json:"summary"`
}

// Cart routes /api/cart requests by method: GET returns the lines,
// DELETE clears the cart.
func (h *CartHandler) Cart(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	switch r.Method {
	case http.MethodGet:
		items := h.service.Items(r.Context(), session)
		writeJSON(w, http.StatusOK, cartResponse{Items: items, Count: len(items)})

	case http.MethodDelete:
		h.service.Clear(r.Context(), session)
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON in request body", h.logger)
		return
	}

	item, err := h.service.AddItem(r.Context(), sessionFrom(r), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Line routes /api/cart/items/{id} requests by method: PATCH updates the
// quantity, DELETE removes the line.
func (h *CartHandler) Line(w http.ResponseWriter, r *http.Request) {
	// Expecting path: /api/cart/items/{id}
	path := r.URL.Path
	if len(path) <= len("/api/cart/items/") {
		writeError(w, http.StatusBadRequest, "line ID is required", h.logger)
		return
	}

	lineID, err := uuid.Parse(path[len("/api/cart/items/"):])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid line ID", h.logger)
		return
	}

	session := sessionFrom(r)

	switch r.Method {
	case http.MethodPatch:
		var req model.UpdateQuantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON in request body", h.logger)
			return
		}

		item, err := h.service.UpdateQuantity(r.Context(), session, lineID, req.Quantity)
		if err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		writeJSON(w, http.StatusOK, item)

	case http.MethodDelete:
		if err := h.service.RemoveItem(r.Context(), session, lineID); err != nil {
			writeDomainError(w, err, h.logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// Summary handles GET /api/cart/summary requests. The optional partner
// query parameter selects the delivery partner; the cheapest partner is
// used when it is absent.
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	summary, partner, err := h.service.Summary(r.Context(), sessionFrom(r), r.URL.Query().Get("partner"))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{Partner: partner, Summary: summary})
}
