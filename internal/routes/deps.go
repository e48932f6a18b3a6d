package routes

import (
	"net/http"

	"github.com/velastore/vela/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for the public API routes
type StorefrontDeps struct {
	// Catalog (list, detail, reviews, recommendations)
	ProductHandler *storefront.ProductHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Auth (sign-up, sign-in, sign-out)
	AuthHandler *storefront.AuthHandler

	// Ops endpoints
	HealthHandler  http.HandlerFunc
	MetricsHandler http.Handler
}
