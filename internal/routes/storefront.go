// Package routes binds handlers to URL patterns.
package routes

import (
	"github.com/velastore/vela/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing API routes.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Product browsing
	r.Get("/api/products", deps.ProductHandler.List)
	r.Get("/api/products/{id}", deps.ProductHandler.Detail)
	r.Get("/api/products/{id}/reviews", deps.ProductHandler.Reviews)
	r.Get("/api/products/{id}/recommendations", deps.ProductHandler.Recommendations)

	// Shopping cart
	r.Get("/api/cart", deps.CartHandler.View)
	r.Delete("/api/cart", deps.CartHandler.Clear)
	r.Post("/api/cart/items", deps.CartHandler.AddItem)
	r.Patch("/api/cart/items/{id}", deps.CartHandler.UpdateItem)
	r.Delete("/api/cart/items/{id}", deps.CartHandler.RemoveItem)

	// Authentication
	r.Post("/api/auth/sign-up", deps.AuthHandler.SignUp)
	r.Post("/api/auth/sign-in", deps.AuthHandler.SignIn)
	r.Post("/api/auth/sign-out", deps.AuthHandler.SignOut)

	// Ops
	if deps.HealthHandler != nil {
		r.Get("/health", deps.HealthHandler)
	}
	if deps.MetricsHandler != nil {
		r.Handle("GET", "/metrics", deps.MetricsHandler)
	}
}
