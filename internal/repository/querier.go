package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// Querier is the query surface consumed by the service layer. *Queries
// implements it; tests substitute fakes.
type Querier interface {
	// Guests
	CreateGuest(ctx context.Context, arg CreateGuestParams) (Guest, error)
	GetGuestByToken(ctx context.Context, sessionToken string) (Guest, error)
	DeleteGuest(ctx context.Context, id pgtype.UUID) error
	DeleteExpiredGuests(ctx context.Context) (int64, error)

	// Carts
	GetCartByUserID(ctx context.Context, userID pgtype.UUID) (Cart, error)
	GetCartByGuestID(ctx context.Context, guestID pgtype.UUID) (Cart, error)
	CreateUserCart(ctx context.Context, userID pgtype.UUID) (Cart, error)
	CreateGuestCart(ctx context.Context, guestID pgtype.UUID) (Cart, error)
	DeleteCart(ctx context.Context, id pgtype.UUID) error
	UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) error
	GetCartItem(ctx context.Context, id pgtype.UUID) (CartItem, error)
	UpdateCartItem(ctx context.Context, arg UpdateCartItemParams) error
	DeleteCartItem(ctx context.Context, arg DeleteCartItemParams) error
	ClearCart(ctx context.Context, cartID pgtype.UUID) error
	MergeCartItems(ctx context.Context, arg MergeCartItemsParams) error
	GetCartItems(ctx context.Context, cartID pgtype.UUID) ([]GetCartItemsRow, error)

	// Catalog
	ListProducts(ctx context.Context, arg ListProductsParams) ([]ListProductsRow, error)
	CountProducts(ctx context.Context, arg ListProductsParams) (int64, error)
	GetProduct(ctx context.Context, id pgtype.UUID) (GetProductRow, error)
	ListProductVariants(ctx context.Context, productID pgtype.UUID) ([]ListProductVariantsRow, error)
	ListProductImages(ctx context.Context, productID pgtype.UUID) ([]ListProductImagesRow, error)
	ListProductReviews(ctx context.Context, productID pgtype.UUID) ([]ListProductReviewsRow, error)
	GetProductDimensions(ctx context.Context, id pgtype.UUID) (GetProductDimensionsRow, error)
	ListRecommendedProducts(ctx context.Context, arg ListRecommendedProductsParams) ([]ListRecommendedProductsRow, error)
}

var _ Querier = (*Queries)(nil)
