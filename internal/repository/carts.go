package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// Cart is a cart row. Exactly one of UserID/GuestID is set; the schema
// enforces this with a check constraint.
type Cart struct {
	ID        pgtype.UUID
	UserID    pgtype.UUID
	GuestID   pgtype.UUID
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// CartItem is a bare cart line without joined product data.
type CartItem struct {
	ID               pgtype.UUID
	CartID           pgtype.UUID
	ProductVariantID pgtype.UUID
	Quantity         int32
}

const getCartByUserID = `
select id, user_id, guest_id, created_at, updated_at
from carts
where user_id = $1
`

// GetCartByUserID returns the cart owned by the given user.
func (q *Queries) GetCartByUserID(ctx context.Context, userID pgtype.UUID) (Cart, error) {
	row := q.db.QueryRow(ctx, getCartByUserID, userID)
	var c Cart
	err := row.Scan(&c.ID, &c.UserID, &c.GuestID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const getCartByGuestID = `
select id, user_id, guest_id, created_at, updated_at
from carts
where guest_id = $1
`

// GetCartByGuestID returns the cart owned by the given guest.
func (q *Queries) GetCartByGuestID(ctx context.Context, guestID pgtype.UUID) (Cart, error) {
	row := q.db.QueryRow(ctx, getCartByGuestID, guestID)
	var c Cart
	err := row.Scan(&c.ID, &c.UserID, &c.GuestID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const createUserCart = `
insert into carts (user_id)
values ($1)
returning id, user_id, guest_id, created_at, updated_at
`

// CreateUserCart creates a cart owned by a user.
func (q *Queries) CreateUserCart(ctx context.Context, userID pgtype.UUID) (Cart, error) {
	row := q.db.QueryRow(ctx, createUserCart, userID)
	var c Cart
	err := row.Scan(&c.ID, &c.UserID, &c.GuestID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const createGuestCart = `
insert into carts (guest_id)
values ($1)
returning id, user_id, guest_id, created_at, updated_at
`

// CreateGuestCart creates a cart owned by a guest.
func (q *Queries) CreateGuestCart(ctx context.Context, guestID pgtype.UUID) (Cart, error) {
	row := q.db.QueryRow(ctx, createGuestCart, guestID)
	var c Cart
	err := row.Scan(&c.ID, &c.UserID, &c.GuestID, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

const deleteCart = `
delete from carts where id = $1
`

// DeleteCart removes a cart row. Its items are removed by the cascade.
func (q *Queries) DeleteCart(ctx context.Context, id pgtype.UUID) error {
	_, err := q.db.Exec(ctx, deleteCart, id)
	return err
}

const upsertCartItem = `
insert into cart_items (cart_id, product_variant_id, quantity)
values ($1, $2, $3)
on conflict (cart_id, product_variant_id)
do update set quantity = cart_items.quantity + excluded.quantity
`

// UpsertCartItemParams identifies the line to add or increment.
type UpsertCartItemParams struct {
	CartID           pgtype.UUID
	ProductVariantID pgtype.UUID
	Quantity         int32
}

// UpsertCartItem inserts a cart line or, when the (cart, variant) pair
// already exists, increments its quantity. The conflict target makes
// concurrent adds race-free.
func (q *Queries) UpsertCartItem(ctx context.Context, arg UpsertCartItemParams) error {
	_, err := q.db.Exec(ctx, upsertCartItem, arg.CartID, arg.ProductVariantID, arg.Quantity)
	return err
}

const getCartItem = `
select id, cart_id, product_variant_id, quantity
from cart_items
where id = $1
`

// GetCartItem returns a single cart line by id.
func (q *Queries) GetCartItem(ctx context.Context, id pgtype.UUID) (CartItem, error) {
	row := q.db.QueryRow(ctx, getCartItem, id)
	var i CartItem
	err := row.Scan(&i.ID, &i.CartID, &i.ProductVariantID, &i.Quantity)
	return i, err
}

const updateCartItem = `
update cart_items
set quantity           = coalesce($2, quantity),
    product_variant_id = coalesce($3, product_variant_id)
where id = $1
`

// UpdateCartItemParams carries a partial line update; invalid (null)
// fields leave the column untouched.
type UpdateCartItemParams struct {
	ID               pgtype.UUID
	Quantity         pgtype.Int4
	ProductVariantID pgtype.UUID
}

// UpdateCartItem updates quantity and/or variant of a cart line.
func (q *Queries) UpdateCartItem(ctx context.Context, arg UpdateCartItemParams) error {
	_, err := q.db.Exec(ctx, updateCartItem, arg.ID, arg.Quantity, arg.ProductVariantID)
	return err
}

const deleteCartItem = `
delete from cart_items
where id = $1 and cart_id = $2
`

// DeleteCartItemParams scopes the delete to the owning cart so a caller
// cannot remove lines from someone else's cart.
type DeleteCartItemParams struct {
	ID     pgtype.UUID
	CartID pgtype.UUID
}

// DeleteCartItem removes one line from a cart.
func (q *Queries) DeleteCartItem(ctx context.Context, arg DeleteCartItemParams) error {
	_, err := q.db.Exec(ctx, deleteCartItem, arg.ID, arg.CartID)
	return err
}

const clearCart = `
delete from cart_items where cart_id = $1
`

// ClearCart removes every line from a cart.
func (q *Queries) ClearCart(ctx context.Context, cartID pgtype.UUID) error {
	_, err := q.db.Exec(ctx, clearCart, cartID)
	return err
}

const mergeCartItems = `
insert into cart_items (cart_id, product_variant_id, quantity)
select $2, ci.product_variant_id, ci.quantity
from cart_items ci
where ci.cart_id = $1
on conflict (cart_id, product_variant_id)
do update set quantity = cart_items.quantity + excluded.quantity
`

// MergeCartItemsParams names the source (guest) and destination (user) carts.
type MergeCartItemsParams struct {
	FromCartID pgtype.UUID
	ToCartID   pgtype.UUID
}

// MergeCartItems folds every line of the source cart into the destination
// cart in one statement: quantities for a shared variant are summed by the
// conflict action, so the merge neither duplicates variants nor loses
// quantity.
func (q *Queries) MergeCartItems(ctx context.Context, arg MergeCartItemsParams) error {
	_, err := q.db.Exec(ctx, mergeCartItems, arg.FromCartID, arg.ToCartID)
	return err
}

const getCartItems = `
select ci.id,
       ci.quantity,
       v.id  as variant_id,
       p.id  as product_id,
       p.name,
       coalesce(v.sale_price, v.price)                          as price,
       nullif(v.price, coalesce(v.sale_price, v.price))         as compare_at,
       c.name, c.slug, c.hex_code,
       s.name, s.slug,
       coalesce(
           (select pi.url
            from product_images pi
            where pi.product_id = p.id and pi.variant_id = v.id
            order by pi.is_primary desc, pi.sort_order asc
            limit 1),
           (select pi2.url
            from product_images pi2
            where pi2.product_id = p.id and pi2.variant_id is null
            order by pi2.is_primary desc, pi2.sort_order asc
            limit 1)
       ) as image_url
from cart_items ci
join product_variants v on v.id = ci.product_variant_id
join products p on p.id = v.product_id
left join colors c on c.id = v.color_id
left join sizes s on s.id = v.size_id
where ci.cart_id = $1
order by ci.id
`

// GetCartItemsRow is a cart line joined with variant, product, color, size
// and the resolved image URL (variant-scoped first, product-level fallback).
type GetCartItemsRow struct {
	ID          pgtype.UUID
	Quantity    int32
	VariantID   pgtype.UUID
	ProductID   pgtype.UUID
	ProductName string
	Price       pgtype.Numeric
	CompareAt   pgtype.Numeric
	ColorName   pgtype.Text
	ColorSlug   pgtype.Text
	ColorHex    pgtype.Text
	SizeName    pgtype.Text
	SizeSlug    pgtype.Text
	ImageUrl    pgtype.Text
}

// GetCartItems loads every line of a cart with display data.
func (q *Queries) GetCartItems(ctx context.Context, cartID pgtype.UUID) ([]GetCartItemsRow, error) {
	rows, err := q.db.Query(ctx, getCartItems, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GetCartItemsRow
	for rows.Next() {
		var r GetCartItemsRow
		if err := rows.Scan(
			&r.ID, &r.Quantity, &r.VariantID, &r.ProductID, &r.ProductName,
			&r.Price, &r.CompareAt,
			&r.ColorName, &r.ColorSlug, &r.ColorHex,
			&r.SizeName, &r.SizeSlug,
			&r.ImageUrl,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
