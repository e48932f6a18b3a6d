package storefront

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/velastore/vela/internal/domain"
	"github.com/velastore/vela/internal/handler"
	"github.com/velastore/vela/internal/service"
)

// CartHandler serves the cart endpoints. Ownership is resolved per request
// by the session service; a first touch by an anonymous visitor creates a
// guest session and sets its cookie.
type CartHandler struct {
	carts    service.CartService
	sessions service.SessionService
	logger   *slog.Logger
}

// NewCartHandler creates a cart handler.
func NewCartHandler(carts service.CartService, sessions service.SessionService, logger *slog.Logger) *CartHandler {
	return &CartHandler{carts: carts, sessions: sessions, logger: logger}
}

// View handles GET /api/cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	owner, err := h.sessions.ResolveIdentity(r.Context(), w, r)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	cart, err := h.carts.GetCart(r.Context(), owner)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	handler.JSON(w, http.StatusOK, cart)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var input service.AddItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handler.Error(w, h.logger, domain.Invalid("cart.add_item", "invalid request body"))
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}

	owner, err := h.sessions.ResolveIdentity(r.Context(), w, r)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	cart, err := h.carts.AddItem(r.Context(), owner, input)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	handler.JSON(w, http.StatusOK, cart)
}

// UpdateItem handles PATCH /api/cart/items/{id}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateItemInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handler.Error(w, h.logger, domain.Invalid("cart.update_item", "invalid request body"))
		return
	}
	input.CartItemID = r.PathValue("id")

	owner, err := h.sessions.ResolveIdentity(r.Context(), w, r)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	cart, err := h.carts.UpdateItem(r.Context(), owner, input)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	handler.JSON(w, http.StatusOK, cart)
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	owner, err := h.sessions.ResolveIdentity(r.Context(), w, r)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	cart, err := h.carts.RemoveItem(r.Context(), owner, r.PathValue("id"))
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	handler.JSON(w, http.StatusOK, cart)
}

// Clear handles DELETE /api/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	owner, err := h.sessions.ResolveIdentity(r.Context(), w, r)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	cart, err := h.carts.ClearCart(r.Context(), owner)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	handler.JSON(w, http.StatusOK, cart)
}
