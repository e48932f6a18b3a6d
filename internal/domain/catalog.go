package domain

import "time"

// Sort keys accepted by the product listing.
const (
	SortLatest    = "latest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// ProductFilter carries the parsed listing filters. Slug slices are
// multi-select: values within one dimension are ORed, dimensions are ANDed.
// Price bounds match against each variant's effective price.
type ProductFilter struct {
	Search        string
	GenderSlugs   []string
	SizeSlugs     []string
	ColorSlugs    []string
	CategorySlugs []string
	BrandSlugs    []string
	PriceMin      *float64
	PriceMax      *float64
	SortBy        string
	Page          int
	Limit         int
}

// ProductListItem is one row of the product listing with price aggregates
// computed across the product's variants.
type ProductListItem struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Category         *string   `json:"category"`
	Brand            *string   `json:"brand"`
	CreatedAt        time.Time `json:"createdAt"`
	MinCurrentPrice  float64   `json:"minCurrentPrice"`
	MinOriginalPrice float64   `json:"minOriginalPrice"`
	MinSalePrice     *float64  `json:"minSalePrice"`
	MaxCurrentPrice  float64   `json:"maxCurrentPrice"`
	ColorCount       int       `json:"colorCount"`
	ImageURL         string    `json:"imageUrl"`
}

// ProductList is a page of listing rows plus the total match count,
// computed independent of paging.
type ProductList struct {
	Products   []ProductListItem `json:"products"`
	TotalCount int64             `json:"totalCount"`
}

// CategoryRef labels the category a product belongs to.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// BrandRef labels the brand a product belongs to.
type BrandRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GenderRef labels the gender dimension of a product.
type GenderRef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Slug  string `json:"slug"`
}

// ColorRef describes a variant's color.
type ColorRef struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	HexCode string `json:"hexCode"`
}

// SizeRef describes a variant's size.
type SizeRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	SortOrder int32  `json:"sortOrder"`
}

// ProductVariant is a purchasable variation of a product.
type ProductVariant struct {
	ID        string    `json:"id"`
	SKU       string    `json:"sku"`
	Price     float64   `json:"price"`
	SalePrice *float64  `json:"salePrice"`
	InStock   int32     `json:"inStock"`
	Color     *ColorRef `json:"color"`
	Size      *SizeRef  `json:"size"`
}

// ProductImage is one image of a product, optionally scoped to a variant.
type ProductImage struct {
	ID        string  `json:"id"`
	URL       string  `json:"url"`
	IsPrimary bool    `json:"isPrimary"`
	SortOrder int32   `json:"sortOrder"`
	VariantID *string `json:"variantId"`
}

// ProductDetail aggregates a published product with its variants, images
// and lookup labels.
type ProductDetail struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Category    *CategoryRef     `json:"category"`
	Brand       *BrandRef        `json:"brand"`
	Gender      *GenderRef       `json:"gender"`
	Images      []ProductImage   `json:"images"`
	Variants    []ProductVariant `json:"variants"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Review is a customer review of a product. Author falls back from the
// user's name to their email, then to "Anonymous".
type Review struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Rating    int32     `json:"rating"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// RecommendedProduct is a related-products row for a product detail page.
type RecommendedProduct struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Price     float64  `json:"price"`
	CompareAt *float64 `json:"compareAt,omitempty"`
	ImageURL  string   `json:"imageUrl"`
}
