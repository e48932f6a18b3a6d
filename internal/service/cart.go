package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/velastore/vela/internal/domain"
	"github.com/velastore/vela/internal/repository"
)

// Postgres error codes checked when mapping constraint violations.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// CartService provides business logic for shopping cart operations. Every
// mutation returns the full recomputed cart snapshot.
type CartService interface {
	EnsureActiveCart(ctx context.Context, owner domain.Identity) (*domain.ActiveCart, error)
	GetCart(ctx context.Context, owner domain.Identity) (*domain.Cart, error)
	AddItem(ctx context.Context, owner domain.Identity, input AddItemInput) (*domain.Cart, error)
	UpdateItem(ctx context.Context, owner domain.Identity, input UpdateItemInput) (*domain.Cart, error)
	RemoveItem(ctx context.Context, owner domain.Identity, cartItemID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, owner domain.Identity) (*domain.Cart, error)
	MergeGuestCartIntoUserCart(ctx context.Context, userID, guestID string) error
}

// AddItemInput adds a quantity of one variant to the cart.
type AddItemInput struct {
	VariantID string `json:"variantId" validate:"required,uuid"`
	Quantity  int32  `json:"quantity" validate:"required,min=1"`
}

// UpdateItemInput partially updates one cart line. Nil fields are left
// untouched.
type UpdateItemInput struct {
	CartItemID string  `json:"-" validate:"required,uuid"`
	Quantity   *int32  `json:"quantity" validate:"omitempty,min=1"`
	VariantID  *string `json:"variantId" validate:"omitempty,uuid"`
}

type cartService struct {
	repo        repository.Querier
	shippingFee decimal.Decimal
}

// NewCartService creates a CartService. estimatedShipping is the flat fee
// applied to non-empty carts.
func NewCartService(repo repository.Querier, estimatedShipping float64) CartService {
	return &cartService{
		repo:        repo,
		shippingFee: decimal.NewFromFloat(estimatedShipping),
	}
}

func (s *cartService) EnsureActiveCart(ctx context.Context, owner domain.Identity) (*domain.ActiveCart, error) {
	const op = "cart.ensure_active_cart"

	if owner.IsZero() {
		return nil, domain.Invalid(op, "cart owner is required")
	}
	ownerID, err := scanUUID(op, "owner id", owner.ID)
	if err != nil {
		return nil, err
	}

	var (
		cart   repository.Cart
		find   func(context.Context, pgtype.UUID) (repository.Cart, error)
		create func(context.Context, pgtype.UUID) (repository.Cart, error)
	)
	if owner.IsUser() {
		find, create = s.repo.GetCartByUserID, s.repo.CreateUserCart
	} else {
		find, create = s.repo.GetCartByGuestID, s.repo.CreateGuestCart
	}

	cart, err = find(ctx, ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		cart, err = create(ctx, ownerID)
		// A concurrent request may have created the cart first; the unique
		// owner column turns that into a constraint violation we can
		// resolve by re-reading.
		if isPgError(err, pgUniqueViolation) {
			cart, err = find(ctx, ownerID)
		}
	}
	if err != nil {
		return nil, domain.Internal(err, op, "failed to resolve cart")
	}

	return &domain.ActiveCart{CartID: uuidString(cart.ID), Owner: owner}, nil
}

func (s *cartService) GetCart(ctx context.Context, owner domain.Identity) (*domain.Cart, error) {
	active, err := s.EnsureActiveCart(ctx, owner)
	if err != nil {
		return nil, err
	}
	return s.summary(ctx, active.CartID)
}

func (s *cartService) AddItem(ctx context.Context, owner domain.Identity, input AddItemInput) (*domain.Cart, error) {
	const op = "cart.add_item"

	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	active, err := s.EnsureActiveCart(ctx, owner)
	if err != nil {
		return nil, err
	}
	cartID, err := scanUUID(op, "cart id", active.CartID)
	if err != nil {
		return nil, err
	}
	variantID, err := scanUUID(op, "variant id", input.VariantID)
	if err != nil {
		return nil, err
	}

	err = s.repo.UpsertCartItem(ctx, repository.UpsertCartItemParams{
		CartID:           cartID,
		ProductVariantID: variantID,
		Quantity:         input.Quantity,
	})
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return nil, ErrVariantNotFound
		}
		return nil, domain.Internal(err, op, "failed to add item to cart")
	}

	return s.summary(ctx, active.CartID)
}

func (s *cartService) UpdateItem(ctx context.Context, owner domain.Identity, input UpdateItemInput) (*domain.Cart, error) {
	const op = "cart.update_item"

	if err := validateInput(op, input); err != nil {
		return nil, err
	}

	active, err := s.EnsureActiveCart(ctx, owner)
	if err != nil {
		return nil, err
	}
	itemID, err := scanUUID(op, "cart item id", input.CartItemID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.GetCartItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCartItemNotFound
		}
		return nil, domain.Internal(err, op, "failed to load cart item")
	}
	// A line in someone else's cart is indistinguishable from a missing one.
	if uuidString(item.CartID) != active.CartID {
		return nil, ErrCartItemNotFound
	}

	params := repository.UpdateCartItemParams{ID: itemID}
	if input.Quantity != nil {
		params.Quantity = pgtype.Int4{Int32: *input.Quantity, Valid: true}
	}
	if input.VariantID != nil {
		variantID, err := scanUUID(op, "variant id", *input.VariantID)
		if err != nil {
			return nil, err
		}
		params.ProductVariantID = variantID
	}

	if err := s.repo.UpdateCartItem(ctx, params); err != nil {
		switch {
		case isPgError(err, pgUniqueViolation):
			return nil, domain.Errorf(domain.ECONFLICT, op, "cart already contains that variant")
		case isPgError(err, pgForeignKeyViolation):
			return nil, ErrVariantNotFound
		default:
			return nil, domain.Internal(err, op, "failed to update cart item")
		}
	}

	return s.summary(ctx, active.CartID)
}

func (s *cartService) RemoveItem(ctx context.Context, owner domain.Identity, cartItemID string) (*domain.Cart, error) {
	const op = "cart.remove_item"

	active, err := s.EnsureActiveCart(ctx, owner)
	if err != nil {
		return nil, err
	}
	itemID, err := scanUUID(op, "cart item id", cartItemID)
	if err != nil {
		return nil, err
	}
	cartID, err := scanUUID(op, "cart id", active.CartID)
	if err != nil {
		return nil, err
	}

	err = s.repo.DeleteCartItem(ctx, repository.DeleteCartItemParams{ID: itemID, CartID: cartID})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to remove cart item")
	}

	return s.summary(ctx, active.CartID)
}

func (s *cartService) ClearCart(ctx context.Context, owner domain.Identity) (*domain.Cart, error) {
	const op = "cart.clear_cart"

	active, err := s.EnsureActiveCart(ctx, owner)
	if err != nil {
		return nil, err
	}
	cartID, err := scanUUID(op, "cart id", active.CartID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ClearCart(ctx, cartID); err != nil {
		return nil, domain.Internal(err, op, "failed to clear cart")
	}

	return s.summary(ctx, active.CartID)
}

// MergeGuestCartIntoUserCart folds the guest's cart into the user's cart.
// Quantities for a variant present in both carts are summed. The guest cart
// and the guest row itself are removed afterwards; a guest without a cart
// is still deleted so the stale session cannot be reused.
func (s *cartService) MergeGuestCartIntoUserCart(ctx context.Context, userID, guestID string) error {
	const op = "cart.merge_guest_cart"

	if _, err := scanUUID(op, "user id", userID); err != nil {
		return err
	}
	guestUUID, err := scanUUID(op, "guest id", guestID)
	if err != nil {
		return err
	}

	guestCart, err := s.repo.GetCartByGuestID(ctx, guestUUID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return domain.Internal(err, op, "failed to load guest cart")
	}

	if err == nil {
		userCart, err := s.EnsureActiveCart(ctx, domain.UserIdentity(userID))
		if err != nil {
			return err
		}
		userCartID, err := scanUUID(op, "user cart id", userCart.CartID)
		if err != nil {
			return err
		}

		err = s.repo.MergeCartItems(ctx, repository.MergeCartItemsParams{
			FromCartID: guestCart.ID,
			ToCartID:   userCartID,
		})
		if err != nil {
			return domain.Internal(err, op, "failed to merge cart items")
		}
		if err := s.repo.DeleteCart(ctx, guestCart.ID); err != nil {
			return domain.Internal(err, op, "failed to delete guest cart")
		}
	}

	if err := s.repo.DeleteGuest(ctx, guestUUID); err != nil {
		return domain.Internal(err, op, "failed to delete guest session")
	}
	return nil
}

// summary loads the cart's lines and computes its totals. Shipping is a
// flat estimate applied only to non-empty carts.
func (s *cartService) summary(ctx context.Context, cartID string) (*domain.Cart, error) {
	const op = "cart.summary"

	id, err := scanUUID(op, "cart id", cartID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.GetCartItems(ctx, id)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load cart items")
	}

	cart := &domain.Cart{
		CartID: cartID,
		Items:  make([]domain.CartItem, 0, len(rows)),
	}

	subtotal := decimal.Zero
	for _, row := range rows {
		item := domain.CartItem{
			ID:        uuidString(row.ID),
			VariantID: uuidString(row.VariantID),
			ProductID: uuidString(row.ProductID),
			Name:      row.ProductName,
			Price:     numericFloat(row.Price),
			CompareAt: numericFloatPtr(row.CompareAt),
			Quantity:  row.Quantity,
			ImageURL:  row.ImageUrl.String,
		}
		if row.ColorName.Valid {
			item.Color = &domain.CartItemColor{
				Name:    row.ColorName.String,
				Slug:    row.ColorSlug.String,
				HexCode: row.ColorHex.String,
			}
		}
		if row.SizeName.Valid {
			item.Size = &domain.CartItemSize{
				Name: row.SizeName.String,
				Slug: row.SizeSlug.String,
			}
		}

		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt32(item.Quantity))
		subtotal = subtotal.Add(line)
		cart.ItemCount += int(item.Quantity)
		cart.Items = append(cart.Items, item)
	}

	shipping := decimal.Zero
	if len(cart.Items) > 0 {
		shipping = s.shippingFee
	}

	cart.Subtotal = subtotal.Round(2).InexactFloat64()
	cart.EstimatedShipping = shipping.Round(2).InexactFloat64()
	cart.Total = subtotal.Add(shipping).Round(2).InexactFloat64()
	return cart, nil
}

// isPgError reports whether err is a Postgres error with the given code.
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
