package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"velour/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProfileService is a mock implementation of service.ProfileService.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Wishlist(ctx context.Context, session string) []model.Product {
	args := m.Called(ctx, session)
	return args.Get(0).([]model.Product)
}

func (m *MockProfileService) ToggleWishlist(ctx context.Context, session, productID string) (bool, error) {
	args := m.Called(ctx, session, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProfileService) RecentlyViewed(ctx context.Context, session string) []model.Product {
	args := m.Called(ctx, session)
	return args.Get(0).([]model.Product)
}

func TestProfileHandler_Wishlist(t *testing.T) {
	mockService := new(MockProfileService)
	h := NewProfileHandler(mockService, zerolog.Nop())

	mockService.On("Wishlist", mock.Anything, "s1").
		Return([]model.Product{{ID: "dress", Name: "Silk Slip Dress"}})

	req := httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
	req.Header.Set("X-Session-ID", "s1")
	w := httptest.NewRecorder()

	h.Wishlist(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "dress", got[0].ID)

	mockService.AssertExpectations(t)
}

func TestProfileHandler_Toggle(t *testing.T) {
	mockService := new(MockProfileService)
	h := NewProfileHandler(mockService, zerolog.Nop())

	mockService.On("ToggleWishlist", mock.Anything, "s1", "dress").Return(true, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/wishlist/dress", nil)
	req.Header.Set("X-Session-ID", "s1")
	w := httptest.NewRecorder()

	h.Toggle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got toggleResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, "dress", got.ProductID)
	assert.True(t, got.Wishlisted)

	mockService.AssertExpectations(t)
}

func TestProfileHandler_Toggle_Errors(t *testing.T) {
	t.Run("unknown product", func(t *testing.T) {
		mockService := new(MockProfileService)
		h := NewProfileHandler(mockService, zerolog.Nop())

		mockService.On("ToggleWishlist", mock.Anything, "anonymous", "missing").
			Return(false, model.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/wishlist/missing", nil)
		w := httptest.NewRecorder()

		h.Toggle(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing product id", func(t *testing.T) {
		h := NewProfileHandler(new(MockProfileService), zerolog.Nop())

		req := httptest.NewRequest(http.MethodPost, "/api/wishlist/", nil)
		w := httptest.NewRecorder()

		h.Toggle(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GET not allowed", func(t *testing.T) {
		h := NewProfileHandler(new(MockProfileService), zerolog.Nop())

		req := httptest.NewRequest(http.MethodGet, "/api/wishlist/dress", nil)
		w := httptest.NewRecorder()

		h.Toggle(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestProfileHandler_RecentlyViewed(t *testing.T) {
	mockService := new(MockProfileService)
	h := NewProfileHandler(mockService, zerolog.Nop())

	mockService.On("RecentlyViewed", mock.Anything, "s1").
		Return([]model.Product{{ID: "coat"}, {ID: "dress"}})

	req := httptest.NewRequest(http.MethodGet, "/api/recently-viewed", nil)
	req.Header.Set("X-Session-ID", "s1")
	w := httptest.NewRecorder()

	h.RecentlyViewed(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []model.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, "coat", got[0].ID)

	mockService.AssertExpectations(t)
}
