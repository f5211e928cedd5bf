package router

import (
	"net/http"
	"strings"

	"velour/internal/handler"
	"velour/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	storefrontHandler *handler.StorefrontHandler,
	cartHandler *handler.CartHandler,
	profileHandler *handler.ProfileHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Check if this is a request for a specific product ID
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			storefrontHandler.GetByID(w, r)
			return
		}
		storefrontHandler.ListProducts(w, r)
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	mux.HandleFunc("/api/facets", storefrontHandler.Facets)
	mux.HandleFunc("/api/filters", storefrontHandler.Filters)
	mux.HandleFunc("/api/delivery-partners", storefrontHandler.DeliveryPartners)

	// Cart handler function
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/cart" || r.URL.Path == "/api/cart/":
			cartHandler.Cart(w, r)
		case r.URL.Path == "/api/cart/summary":
			cartHandler.Summary(w, r)
		case r.URL.Path == "/api/cart/items" || r.URL.Path == "/api/cart/items/":
			cartHandler.AddItem(w, r)
		case strings.HasPrefix(r.URL.Path, "/api/cart/items/"):
			cartHandler.Line(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}

	// Register cart routes (both with and without trailing slash)
	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	// Wishlist handler function
	wishlistRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/wishlist" && r.URL.Path != "/api/wishlist/" {
			profileHandler.Toggle(w, r)
			return
		}
		profileHandler.Wishlist(w, r)
	}

	mux.HandleFunc("/api/wishlist", wishlistRouteHandler)
	mux.HandleFunc("/api/wishlist/", wishlistRouteHandler)

	mux.HandleFunc("/api/recently-viewed", profileHandler.RecentlyViewed)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
