package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/velastore/vela/internal/repository"
)

// fakeQuerier implements repository.Querier with func fields. Unset lookup
// funcs behave like an empty database (pgx.ErrNoRows); unset mutation funcs
// succeed silently.
type fakeQuerier struct {
	CreateGuestFunc         func(ctx context.Context, arg repository.CreateGuestParams) (repository.Guest, error)
	GetGuestByTokenFunc     func(ctx context.Context, sessionToken string) (repository.Guest, error)
	DeleteGuestFunc         func(ctx context.Context, id pgtype.UUID) error
	DeleteExpiredGuestsFunc func(ctx context.Context) (int64, error)

	GetCartByUserIDFunc  func(ctx context.Context, userID pgtype.UUID) (repository.Cart, error)
	GetCartByGuestIDFunc func(ctx context.Context, guestID pgtype.UUID) (repository.Cart, error)
	CreateUserCartFunc   func(ctx context.Context, userID pgtype.UUID) (repository.Cart, error)
	CreateGuestCartFunc  func(ctx context.Context, guestID pgtype.UUID) (repository.Cart, error)
	DeleteCartFunc       func(ctx context.Context, id pgtype.UUID) error
	UpsertCartItemFunc   func(ctx context.Context, arg repository.UpsertCartItemParams) error
	GetCartItemFunc      func(ctx context.Context, id pgtype.UUID) (repository.CartItem, error)
	UpdateCartItemFunc   func(ctx context.Context, arg repository.UpdateCartItemParams) error
	DeleteCartItemFunc   func(ctx context.Context, arg repository.DeleteCartItemParams) error
	ClearCartFunc        func(ctx context.Context, cartID pgtype.UUID) error
	MergeCartItemsFunc   func(ctx context.Context, arg repository.MergeCartItemsParams) error
	GetCartItemsFunc     func(ctx context.Context, cartID pgtype.UUID) ([]repository.GetCartItemsRow, error)

	ListProductsFunc            func(ctx context.Context, arg repository.ListProductsParams) ([]repository.ListProductsRow, error)
	CountProductsFunc           func(ctx context.Context, arg repository.ListProductsParams) (int64, error)
	GetProductFunc              func(ctx context.Context, id pgtype.UUID) (repository.GetProductRow, error)
	ListProductVariantsFunc     func(ctx context.Context, productID pgtype.UUID) ([]repository.ListProductVariantsRow, error)
	ListProductImagesFunc       func(ctx context.Context, productID pgtype.UUID) ([]repository.ListProductImagesRow, error)
	ListProductReviewsFunc      func(ctx context.Context, productID pgtype.UUID) ([]repository.ListProductReviewsRow, error)
	GetProductDimensionsFunc    func(ctx context.Context, id pgtype.UUID) (repository.GetProductDimensionsRow, error)
	ListRecommendedProductsFunc func(ctx context.Context, arg repository.ListRecommendedProductsParams) ([]repository.ListRecommendedProductsRow, error)
}

var _ repository.Querier = (*fakeQuerier)(nil)

func (f *fakeQuerier) CreateGuest(ctx context.Context, arg repository.CreateGuestParams) (repository.Guest, error) {
	if f.CreateGuestFunc != nil {
		return f.CreateGuestFunc(ctx, arg)
	}
	return repository.Guest{SessionToken: arg.SessionToken, ExpiresAt: arg.ExpiresAt}, nil
}

func (f *fakeQuerier) GetGuestByToken(ctx context.Context, sessionToken string) (repository.Guest, error) {
	if f.GetGuestByTokenFunc != nil {
		return f.GetGuestByTokenFunc(ctx, sessionToken)
	}
	return repository.Guest{}, pgx.ErrNoRows
}

func (f *fakeQuerier) DeleteGuest(ctx context.Context, id pgtype.UUID) error {
	if f.DeleteGuestFunc != nil {
		return f.DeleteGuestFunc(ctx, id)
	}
	return nil
}

func (f *fakeQuerier) DeleteExpiredGuests(ctx context.Context) (int64, error) {
	if f.DeleteExpiredGuestsFunc != nil {
		return f.DeleteExpiredGuestsFunc(ctx)
	}
	return 0, nil
}

func (f *fakeQuerier) GetCartByUserID(ctx context.Context, userID pgtype.UUID) (repository.Cart, error) {
	if f.GetCartByUserIDFunc != nil {
		return f.GetCartByUserIDFunc(ctx, userID)
	}
	return repository.Cart{}, pgx.ErrNoRows
}

func (f *fakeQuerier) GetCartByGuestID(ctx context.Context, guestID pgtype.UUID) (repository.Cart, error) {
	if f.GetCartByGuestIDFunc != nil {
		return f.GetCartByGuestIDFunc(ctx, guestID)
	}
	return repository.Cart{}, pgx.ErrNoRows
}

func (f *fakeQuerier) CreateUserCart(ctx context.Context, userID pgtype.UUID) (repository.Cart, error) {
	if f.CreateUserCartFunc != nil {
		return f.CreateUserCartFunc(ctx, userID)
	}
	return repository.Cart{ID: userID, UserID: userID}, nil
}

func (f *fakeQuerier) CreateGuestCart(ctx context.Context, guestID pgtype.UUID) (repository.Cart, error) {
	if f.CreateGuestCartFunc != nil {
		return f.CreateGuestCartFunc(ctx, guestID)
	}
	return repository.Cart{ID: guestID, GuestID: guestID}, nil
}

func (f *fakeQuerier) DeleteCart(ctx context.Context, id pgtype.UUID) error {
	if f.DeleteCartFunc != nil {
		return f.DeleteCartFunc(ctx, id)
	}
	return nil
}

func (f *fakeQuerier) UpsertCartItem(ctx context.Context, arg repository.UpsertCartItemParams) error {
	if f.UpsertCartItemFunc != nil {
		return f.UpsertCartItemFunc(ctx, arg)
	}
	return nil
}

func (f *fakeQuerier) GetCartItem(ctx context.Context, id pgtype.UUID) (repository.CartItem, error) {
	if f.GetCartItemFunc != nil {
		return f.GetCartItemFunc(ctx, id)
	}
	return repository.CartItem{}, pgx.ErrNoRows
}

func (f *fakeQuerier) UpdateCartItem(ctx context.Context, arg repository.UpdateCartItemParams) error {
	if f.UpdateCartItemFunc != nil {
		return f.UpdateCartItemFunc(ctx, arg)
	}
	return nil
}

func (f *fakeQuerier) DeleteCartItem(ctx context.Context, arg repository.DeleteCartItemParams) error {
	if f.DeleteCartItemFunc != nil {
		return f.DeleteCartItemFunc(ctx, arg)
	}
	return nil
}

func (f *fakeQuerier) ClearCart(ctx context.Context, cartID pgtype.UUID) error {
	if f.ClearCartFunc != nil {
		return f.ClearCartFunc(ctx, cartID)
	}
	return nil
}

func (f *fakeQuerier) MergeCartItems(ctx context.Context, arg repository.MergeCartItemsParams) error {
	if f.MergeCartItemsFunc != nil {
		return f.MergeCartItemsFunc(ctx, arg)
	}
	return nil
}

func (f *fakeQuerier) GetCartItems(ctx context.Context, cartID pgtype.UUID) ([]repository.GetCartItemsRow, error) {
	if f.GetCartItemsFunc != nil {
		return f.GetCartItemsFunc(ctx, cartID)
	}
	return nil, nil
}

func (f *fakeQuerier) ListProducts(ctx context.Context, arg repository.ListProductsParams) ([]repository.ListProductsRow, error) {
	if f.ListProductsFunc != nil {
		return f.ListProductsFunc(ctx, arg)
	}
	return nil, nil
}

func (f *fakeQuerier) CountProducts(ctx context.Context, arg repository.ListProductsParams) (int64, error) {
	if f.CountProductsFunc != nil {
		return f.CountProductsFunc(ctx, arg)
	}
	return 0, nil
}

func (f *fakeQuerier) GetProduct(ctx context.Context, id pgtype.UUID) (repository.GetProductRow, error) {
	if f.GetProductFunc != nil {
		return f.GetProductFunc(ctx, id)
	}
	return repository.GetProductRow{}, pgx.ErrNoRows
}

func (f *fakeQuerier) ListProductVariants(ctx context.Context, productID pgtype.UUID) ([]repository.ListProductVariantsRow, error) {
	if f.ListProductVariantsFunc != nil {
		return f.ListProductVariantsFunc(ctx, productID)
	}
	return nil, nil
}

func (f *fakeQuerier) ListProductImages(ctx context.Context, productID pgtype.UUID) ([]repository.ListProductImagesRow, error) {
	if f.ListProductImagesFunc != nil {
		return f.ListProductImagesFunc(ctx, productID)
	}
	return nil, nil
}

func (f *fakeQuerier) ListProductReviews(ctx context.Context, productID pgtype.UUID) ([]repository.ListProductReviewsRow, error) {
	if f.ListProductReviewsFunc != nil {
		return f.ListProductReviewsFunc(ctx, productID)
	}
	return nil, nil
}

func (f *fakeQuerier) GetProductDimensions(ctx context.Context, id pgtype.UUID) (repository.GetProductDimensionsRow, error) {
	if f.GetProductDimensionsFunc != nil {
		return f.GetProductDimensionsFunc(ctx, id)
	}
	return repository.GetProductDimensionsRow{}, pgx.ErrNoRows
}

func (f *fakeQuerier) ListRecommendedProducts(ctx context.Context, arg repository.ListRecommendedProductsParams) ([]repository.ListRecommendedProductsRow, error) {
	if f.ListRecommendedProductsFunc != nil {
		return f.ListRecommendedProductsFunc(ctx, arg)
	}
	return nil, nil
}

// mustUUID builds a pgtype.UUID from its canonical string form.
func mustUUID(s string) pgtype.UUID {
	var u pgtype.UUID
	if err := u.Scan(s); err != nil {
		panic(err)
	}
	return u
}

// numeric builds a valid pgtype.Numeric from a string like "59.99".
func numeric(s string) pgtype.Numeric {
	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		panic(err)
	}
	return n
}

// text builds a valid pgtype.Text.
func text(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}
