package storefront

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/velastore/vela/internal/auth"
	"github.com/velastore/vela/internal/domain"
	"github.com/velastore/vela/internal/repository"
	"github.com/velastore/vela/internal/service"
)

// testLogger discards everything.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockCatalogService implements service.CatalogService with func fields.
type mockCatalogService struct {
	GetAllProductsFunc         func(ctx context.Context, filter domain.ProductFilter) (*domain.ProductList, error)
	GetProductFunc             func(ctx context.Context, productID string) (*domain.ProductDetail, error)
	GetProductReviewsFunc      func(ctx context.Context, productID string) ([]domain.Review, error)
	GetRecommendedProductsFunc func(ctx context.Context, productID string, limit int) ([]domain.RecommendedProduct, error)
}

func (m *mockCatalogService) GetAllProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductList, error) {
	return m.GetAllProductsFunc(ctx, filter)
}

func (m *mockCatalogService) GetProduct(ctx context.Context, productID string) (*domain.ProductDetail, error) {
	return m.GetProductFunc(ctx, productID)
}

func (m *mockCatalogService) GetProductReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	return m.GetProductReviewsFunc(ctx, productID)
}

func (m *mockCatalogService) GetRecommendedProducts(ctx context.Context, productID string, limit int) ([]domain.RecommendedProduct, error) {
	return m.GetRecommendedProductsFunc(ctx, productID, limit)
}

var _ service.CatalogService = (*mockCatalogService)(nil)

// mockCartService implements service.CartService with func fields.
type mockCartService struct {
	EnsureActiveCartFunc func(ctx context.Context, owner domain.Identity) (*domain.ActiveCart, error)
	GetCartFunc          func(ctx context.Context, owner domain.Identity) (*domain.Cart, error)
	AddItemFunc          func(ctx context.Context, owner domain.Identity, input service.AddItemInput) (*domain.Cart, error)
	UpdateItemFunc       func(ctx context.Context, owner domain.Identity, input service.UpdateItemInput) (*domain.Cart, error)
	RemoveItemFunc       func(ctx context.Context, owner domain.Identity, cartItemID string) (*domain.Cart, error)
	ClearCartFunc        func(ctx context.Context, owner domain.Identity) (*domain.Cart, error)
	MergeFunc            func(ctx context.Context, userID, guestID string) error
}

func (m *mockCartService) EnsureActiveCart(ctx context.Context, owner domain.Identity) (*domain.ActiveCart, error) {
	return m.EnsureActiveCartFunc(ctx, owner)
}

func (m *mockCartService) GetCart(ctx context.Context, owner domain.Identity) (*domain.Cart, error) {
	return m.GetCartFunc(ctx, owner)
}

func (m *mockCartService) AddItem(ctx context.Context, owner domain.Identity, input service.AddItemInput) (*domain.Cart, error) {
	return m.AddItemFunc(ctx, owner, input)
}

func (m *mockCartService) UpdateItem(ctx context.Context, owner domain.Identity, input service.UpdateItemInput) (*domain.Cart, error) {
	return m.UpdateItemFunc(ctx, owner, input)
}

func (m *mockCartService) RemoveItem(ctx context.Context, owner domain.Identity, cartItemID string) (*domain.Cart, error) {
	return m.RemoveItemFunc(ctx, owner, cartItemID)
}

func (m *mockCartService) ClearCart(ctx context.Context, owner domain.Identity) (*domain.Cart, error) {
	return m.ClearCartFunc(ctx, owner)
}

func (m *mockCartService) MergeGuestCartIntoUserCart(ctx context.Context, userID, guestID string) error {
	return m.MergeFunc(ctx, userID, guestID)
}

var _ service.CartService = (*mockCartService)(nil)

// mockSessionService implements service.SessionService with func fields.
// The zero value resolves everything to a fixed guest identity.
type mockSessionService struct {
	ResolveIdentityFunc  func(ctx context.Context, w http.ResponseWriter, r *http.Request) (domain.Identity, error)
	GuestFromRequestFunc func(ctx context.Context, r *http.Request) (*repository.Guest, error)
	ClearedGuestCookie   bool
}

func (m *mockSessionService) CurrentUser(ctx context.Context, r *http.Request) *auth.User {
	return nil
}

func (m *mockSessionService) ResolveIdentity(ctx context.Context, w http.ResponseWriter, r *http.Request) (domain.Identity, error) {
	if m.ResolveIdentityFunc != nil {
		return m.ResolveIdentityFunc(ctx, w, r)
	}
	return domain.GuestIdentity("11111111-1111-1111-1111-111111111111"), nil
}

func (m *mockSessionService) GuestFromRequest(ctx context.Context, r *http.Request) (*repository.Guest, error) {
	if m.GuestFromRequestFunc != nil {
		return m.GuestFromRequestFunc(ctx, r)
	}
	return nil, nil
}

func (m *mockSessionService) ClearGuestCookie(w http.ResponseWriter) {
	m.ClearedGuestCookie = true
}

var _ service.SessionService = (*mockSessionService)(nil)
