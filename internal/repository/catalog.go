package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// ListProductsParams carries the catalog listing filters. Slug slices are
// ORed within a dimension (slug = any(...)) and ANDed across dimensions.
type ListProductsParams struct {
	Search        string
	GenderSlugs   []string
	SizeSlugs     []string
	ColorSlugs    []string
	CategorySlugs []string
	BrandSlugs    []string
	PriceMin      *float64
	PriceMax      *float64
	SortBy        string
	Limit         int32
	Offset        int32
}

// ListProductsRow is one aggregated listing row.
type ListProductsRow struct {
	ID               pgtype.UUID
	Name             string
	CategoryName     pgtype.Text
	BrandName        pgtype.Text
	CreatedAt        pgtype.Timestamptz
	MinCurrentPrice  pgtype.Numeric
	MinOriginalPrice pgtype.Numeric
	MinSalePrice     pgtype.Numeric
	MaxCurrentPrice  pgtype.Numeric
	ColorCount       int64
	ImageUrl         pgtype.Text
}

// argList accumulates positional SQL arguments while predicates are built.
type argList struct {
	args []any
}

func (a *argList) add(v any) string {
	a.args = append(a.args, v)
	return fmt.Sprintf("$%d", len(a.args))
}

// buildProductPredicates folds the optional filters into WHERE parts over a
// shared argument list. Only published products are ever eligible.
func buildProductPredicates(p ListProductsParams, args *argList) []string {
	where := []string{"p.is_published = true"}

	if s := strings.TrimSpace(p.Search); s != "" {
		ph := args.add("%" + s + "%")
		where = append(where, fmt.Sprintf("(p.name ilike %s or p.description ilike %s)", ph, ph))
	}
	if len(p.CategorySlugs) > 0 {
		where = append(where, fmt.Sprintf("cat.slug = any(%s)", args.add(p.CategorySlugs)))
	}
	if len(p.BrandSlugs) > 0 {
		where = append(where, fmt.Sprintf("b.slug = any(%s)", args.add(p.BrandSlugs)))
	}
	if len(p.GenderSlugs) > 0 {
		where = append(where, fmt.Sprintf("g.slug = any(%s)", args.add(p.GenderSlugs)))
	}
	if len(p.SizeSlugs) > 0 {
		where = append(where, fmt.Sprintf("s.slug = any(%s)", args.add(p.SizeSlugs)))
	}
	if len(p.ColorSlugs) > 0 {
		where = append(where, fmt.Sprintf("c.slug = any(%s)", args.add(p.ColorSlugs)))
	}
	if p.PriceMin != nil {
		where = append(where, fmt.Sprintf(`exists (
			select 1 from product_variants pv
			where pv.product_id = p.id
			  and coalesce(pv.sale_price, pv.price) >= %s
		)`, args.add(*p.PriceMin)))
	}
	if p.PriceMax != nil {
		where = append(where, fmt.Sprintf(`exists (
			select 1 from product_variants pv
			where pv.product_id = p.id
			  and coalesce(pv.sale_price, pv.price) <= %s
		)`, args.add(*p.PriceMax)))
	}

	return where
}

// listImageSelect builds the representative-image subquery. With an active
// color filter the image of a matching-colored variant is preferred; the
// product-level (variant-null) image is always the fallback.
func listImageSelect(colorSlugs []string, args *argList) string {
	if len(colorSlugs) > 0 {
		ph := args.add(colorSlugs)
		return fmt.Sprintf(`coalesce(
			(select pi.url
			 from product_images pi
			 where pi.product_id = p.id
			   and pi.variant_id in (
			       select pv2.id
			       from product_variants pv2
			       join colors c2 on c2.id = pv2.color_id
			       where pv2.product_id = p.id and c2.slug = any(%s))
			 order by pi.is_primary desc, pi.sort_order asc
			 limit 1),
			(select pi2.url
			 from product_images pi2
			 where pi2.product_id = p.id and pi2.variant_id is null
			 order by pi2.is_primary desc, pi2.sort_order asc
			 limit 1)
		)`, ph)
	}
	return `coalesce(
		(select pi.url
		 from product_images pi
		 where pi.product_id = p.id and pi.variant_id is null
		 order by pi.is_primary desc, pi.sort_order asc
		 limit 1),
		(select pi2.url
		 from product_images pi2
		 where pi2.product_id = p.id
		 order by pi2.is_primary desc, pi2.sort_order asc
		 limit 1)
	)`
}

const listProductsJoins = `
from products p
join product_variants v on v.product_id = p.id
left join categories cat on cat.id = p.category_id
left join brands b on b.id = p.brand_id
left join genders g on g.id = p.gender_id
left join colors c on c.id = v.color_id
left join sizes s on s.id = v.size_id
`

func listProductsOrder(sortBy string) string {
	switch sortBy {
	case "price_asc":
		return "min(coalesce(v.sale_price, v.price)) asc"
	case "price_desc":
		return "min(coalesce(v.sale_price, v.price)) desc"
	default:
		return "p.created_at desc"
	}
}

// ListProducts returns one page of aggregated listing rows.
func (q *Queries) ListProducts(ctx context.Context, arg ListProductsParams) ([]ListProductsRow, error) {
	var args argList
	where := buildProductPredicates(arg, &args)
	imageSelect := listImageSelect(arg.ColorSlugs, &args)

	sql := fmt.Sprintf(`
select p.id, p.name, cat.name, b.name, p.created_at,
       min(coalesce(v.sale_price, v.price)) as min_current_price,
       min(v.price)                         as min_original_price,
       min(v.sale_price)                    as min_sale_price,
       max(coalesce(v.sale_price, v.price)) as max_current_price,
       count(distinct v.color_id)           as color_count,
       %s as image_url
%s
where %s
group by p.id, p.name, cat.name, b.name, p.created_at
order by %s
limit %s offset %s`,
		imageSelect,
		listProductsJoins,
		strings.Join(where, " and "),
		listProductsOrder(arg.SortBy),
		args.add(arg.Limit),
		args.add(arg.Offset),
	)

	rows, err := q.db.Query(ctx, sql, args.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListProductsRow
	for rows.Next() {
		var r ListProductsRow
		if err := rows.Scan(
			&r.ID, &r.Name, &r.CategoryName, &r.BrandName, &r.CreatedAt,
			&r.MinCurrentPrice, &r.MinOriginalPrice, &r.MinSalePrice, &r.MaxCurrentPrice,
			&r.ColorCount, &r.ImageUrl,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// CountProducts returns the number of distinct products matching the
// filters, independent of paging.
func (q *Queries) CountProducts(ctx context.Context, arg ListProductsParams) (int64, error) {
	var args argList
	where := buildProductPredicates(arg, &args)

	sql := fmt.Sprintf(`
select count(distinct p.id)
%s
where %s`,
		listProductsJoins,
		strings.Join(where, " and "),
	)

	var count int64
	err := q.db.QueryRow(ctx, sql, args.args...).Scan(&count)
	return count, err
}

const getProduct = `
select p.id, p.name, p.description, p.created_at, p.updated_at,
       cat.id, cat.name, cat.slug,
       b.id, b.name, b.slug,
       g.id, g.label, g.slug
from products p
left join categories cat on cat.id = p.category_id
left join brands b on b.id = p.brand_id
left join genders g on g.id = p.gender_id
where p.id = $1 and p.is_published = true
`

// GetProductRow is a published product with its lookup labels.
type GetProductRow struct {
	ID           pgtype.UUID
	Name         string
	Description  pgtype.Text
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
	CategoryID   pgtype.UUID
	CategoryName pgtype.Text
	CategorySlug pgtype.Text
	BrandID      pgtype.UUID
	BrandName    pgtype.Text
	BrandSlug    pgtype.Text
	GenderID     pgtype.UUID
	GenderLabel  pgtype.Text
	GenderSlug   pgtype.Text
}

// GetProduct loads a single published product.
func (q *Queries) GetProduct(ctx context.Context, id pgtype.UUID) (GetProductRow, error) {
	row := q.db.QueryRow(ctx, getProduct, id)
	var r GetProductRow
	err := row.Scan(
		&r.ID, &r.Name, &r.Description, &r.CreatedAt, &r.UpdatedAt,
		&r.CategoryID, &r.CategoryName, &r.CategorySlug,
		&r.BrandID, &r.BrandName, &r.BrandSlug,
		&r.GenderID, &r.GenderLabel, &r.GenderSlug,
	)
	return r, err
}

const listProductVariants = `
select v.id, v.sku, v.price, v.sale_price, v.in_stock,
       c.id, c.name, c.slug, c.hex_code,
       s.id, s.name, s.slug, s.sort_order
from product_variants v
left join colors c on c.id = v.color_id
left join sizes s on s.id = v.size_id
where v.product_id = $1
order by s.sort_order asc, v.sku asc
`

// ListProductVariantsRow is a variant joined with its color and size.
type ListProductVariantsRow struct {
	ID            pgtype.UUID
	Sku           string
	Price         pgtype.Numeric
	SalePrice     pgtype.Numeric
	InStock       int32
	ColorID       pgtype.UUID
	ColorName     pgtype.Text
	ColorSlug     pgtype.Text
	ColorHex      pgtype.Text
	SizeID        pgtype.UUID
	SizeName      pgtype.Text
	SizeSlug      pgtype.Text
	SizeSortOrder pgtype.Int4
}

// ListProductVariants loads every variant of a product.
func (q *Queries) ListProductVariants(ctx context.Context, productID pgtype.UUID) ([]ListProductVariantsRow, error) {
	rows, err := q.db.Query(ctx, listProductVariants, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListProductVariantsRow
	for rows.Next() {
		var r ListProductVariantsRow
		if err := rows.Scan(
			&r.ID, &r.Sku, &r.Price, &r.SalePrice, &r.InStock,
			&r.ColorID, &r.ColorName, &r.ColorSlug, &r.ColorHex,
			&r.SizeID, &r.SizeName, &r.SizeSlug, &r.SizeSortOrder,
		); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listProductImages = `
select id, url, is_primary, sort_order, variant_id
from product_images
where product_id = $1
order by is_primary desc, sort_order asc, id asc
`

// ListProductImagesRow is one product image, sorted primary-first.
type ListProductImagesRow struct {
	ID        pgtype.UUID
	Url       string
	IsPrimary bool
	SortOrder int32
	VariantID pgtype.UUID
}

// ListProductImages loads every image of a product.
func (q *Queries) ListProductImages(ctx context.Context, productID pgtype.UUID) ([]ListProductImagesRow, error) {
	rows, err := q.db.Query(ctx, listProductImages, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListProductImagesRow
	for rows.Next() {
		var r ListProductImagesRow
		if err := rows.Scan(&r.ID, &r.Url, &r.IsPrimary, &r.SortOrder, &r.VariantID); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listProductReviews = `
select r.id, r.rating, r.comment, r.created_at, u.name, u.email
from reviews r
left join users u on u.id = r.user_id
where r.product_id = $1
order by r.created_at desc
`

// ListProductReviewsRow is a review joined with its author.
type ListProductReviewsRow struct {
	ID          pgtype.UUID
	Rating      int32
	Comment     pgtype.Text
	CreatedAt   pgtype.Timestamptz
	AuthorName  pgtype.Text
	AuthorEmail pgtype.Text
}

// ListProductReviews loads a product's reviews, newest first.
func (q *Queries) ListProductReviews(ctx context.Context, productID pgtype.UUID) ([]ListProductReviewsRow, error) {
	rows, err := q.db.Query(ctx, listProductReviews, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListProductReviewsRow
	for rows.Next() {
		var r ListProductReviewsRow
		if err := rows.Scan(&r.ID, &r.Rating, &r.Comment, &r.CreatedAt, &r.AuthorName, &r.AuthorEmail); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getProductDimensions = `
select id, category_id, brand_id, gender_id
from products
where id = $1
`

// GetProductDimensionsRow carries the anchor product's lookup references
// used to find related products.
type GetProductDimensionsRow struct {
	ID         pgtype.UUID
	CategoryID pgtype.UUID
	BrandID    pgtype.UUID
	GenderID   pgtype.UUID
}

// GetProductDimensions loads the category/brand/gender of a product.
func (q *Queries) GetProductDimensions(ctx context.Context, id pgtype.UUID) (GetProductDimensionsRow, error) {
	row := q.db.QueryRow(ctx, getProductDimensions, id)
	var r GetProductDimensionsRow
	err := row.Scan(&r.ID, &r.CategoryID, &r.BrandID, &r.GenderID)
	return r, err
}

const listRecommendedProducts = `
select p.id, p.name,
       min(coalesce(v.sale_price, v.price)) as price,
       nullif(min(v.price), min(coalesce(v.sale_price, v.price))) as compare_at,
       coalesce(
           (select pi.url
            from product_images pi
            where pi.product_id = p.id and pi.variant_id is null
            order by pi.is_primary desc, pi.sort_order asc
            limit 1),
           (select pi2.url
            from product_images pi2
            where pi2.product_id = p.id
            order by pi2.is_primary desc, pi2.sort_order asc
            limit 1)
       ) as image_url
from products p
join product_variants v on v.product_id = p.id
where p.is_published = true
  and p.id <> $1
  and (p.category_id = $2 or p.brand_id = $3 or p.gender_id = $4)
group by p.id, p.name, p.created_at
order by p.created_at desc
limit $5
`

// ListRecommendedProductsParams selects published products sharing any of
// the anchor's category, brand or gender.
type ListRecommendedProductsParams struct {
	ProductID  pgtype.UUID
	CategoryID pgtype.UUID
	BrandID    pgtype.UUID
	GenderID   pgtype.UUID
	Limit      int32
}

// ListRecommendedProductsRow is one related-products candidate.
type ListRecommendedProductsRow struct {
	ID        pgtype.UUID
	Name      string
	Price     pgtype.Numeric
	CompareAt pgtype.Numeric
	ImageUrl  pgtype.Text
}

// ListRecommendedProducts returns related products, newest first.
func (q *Queries) ListRecommendedProducts(ctx context.Context, arg ListRecommendedProductsParams) ([]ListRecommendedProductsRow, error) {
	rows, err := q.db.Query(ctx, listRecommendedProducts,
		arg.ProductID, arg.CategoryID, arg.BrandID, arg.GenderID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ListRecommendedProductsRow
	for rows.Next() {
		var r ListRecommendedProductsRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Price, &r.CompareAt, &r.ImageUrl); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
