package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/velastore/vela/internal/domain"
	"github.com/velastore/vela/internal/repository"
)

// Recommendation limits.
const (
	defaultRecommendedLimit = 6
	maxRecommendedLimit     = 12
)

// CatalogService provides read-side business logic for the product catalog.
type CatalogService interface {
	GetAllProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductList, error)
	GetProduct(ctx context.Context, productID string) (*domain.ProductDetail, error)
	GetProductReviews(ctx context.Context, productID string) ([]domain.Review, error)
	GetRecommendedProducts(ctx context.Context, productID string, limit int) ([]domain.RecommendedProduct, error)
}

type catalogService struct {
	repo            repository.Querier
	defaultPageSize int
	maxPageSize     int
}

// NewCatalogService creates a CatalogService with the given paging bounds.
func NewCatalogService(repo repository.Querier, defaultPageSize, maxPageSize int) CatalogService {
	if defaultPageSize <= 0 {
		defaultPageSize = 24
	}
	if maxPageSize <= 0 {
		maxPageSize = 60
	}
	return &catalogService{
		repo:            repo,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

func (s *catalogService) GetAllProducts(ctx context.Context, filter domain.ProductFilter) (*domain.ProductList, error) {
	const op = "catalog.get_all_products"

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	params := repository.ListProductsParams{
		Search:        filter.Search,
		GenderSlugs:   filter.GenderSlugs,
		SizeSlugs:     filter.SizeSlugs,
		ColorSlugs:    filter.ColorSlugs,
		CategorySlugs: filter.CategorySlugs,
		BrandSlugs:    filter.BrandSlugs,
		PriceMin:      filter.PriceMin,
		PriceMax:      filter.PriceMax,
		SortBy:        filter.SortBy,
		Limit:         int32(limit),
		Offset:        int32((page - 1) * limit),
	}

	rows, err := s.repo.ListProducts(ctx, params)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list products")
	}
	total, err := s.repo.CountProducts(ctx, params)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to count products")
	}

	list := &domain.ProductList{
		Products:   make([]domain.ProductListItem, 0, len(rows)),
		TotalCount: total,
	}
	for _, row := range rows {
		list.Products = append(list.Products, domain.ProductListItem{
			ID:               uuidString(row.ID),
			Name:             row.Name,
			Category:         textPtr(row.CategoryName),
			Brand:            textPtr(row.BrandName),
			CreatedAt:        row.CreatedAt.Time,
			MinCurrentPrice:  numericFloat(row.MinCurrentPrice),
			MinOriginalPrice: numericFloat(row.MinOriginalPrice),
			MinSalePrice:     numericFloatPtr(row.MinSalePrice),
			MaxCurrentPrice:  numericFloat(row.MaxCurrentPrice),
			ColorCount:       int(row.ColorCount),
			ImageURL:         row.ImageUrl.String,
		})
	}
	return list, nil
}

func (s *catalogService) GetProduct(ctx context.Context, productID string) (*domain.ProductDetail, error) {
	const op = "catalog.get_product"

	id, err := scanUUID(op, "product id", productID)
	if err != nil {
		return nil, err
	}

	row, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, domain.Internal(err, op, "failed to load product")
	}

	detail := &domain.ProductDetail{
		ID:          uuidString(row.ID),
		Name:        row.Name,
		Description: row.Description.String,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
	if row.CategoryID.Valid {
		detail.Category = &domain.CategoryRef{
			ID:   uuidString(row.CategoryID),
			Name: row.CategoryName.String,
			Slug: row.CategorySlug.String,
		}
	}
	if row.BrandID.Valid {
		detail.Brand = &domain.BrandRef{
			ID:   uuidString(row.BrandID),
			Name: row.BrandName.String,
			Slug: row.BrandSlug.String,
		}
	}
	if row.GenderID.Valid {
		detail.Gender = &domain.GenderRef{
			ID:    uuidString(row.GenderID),
			Label: row.GenderLabel.String,
			Slug:  row.GenderSlug.String,
		}
	}

	variants, err := s.repo.ListProductVariants(ctx, id)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load product variants")
	}
	detail.Variants = make([]domain.ProductVariant, 0, len(variants))
	for _, v := range variants {
		variant := domain.ProductVariant{
			ID:        uuidString(v.ID),
			SKU:       v.Sku,
			Price:     numericFloat(v.Price),
			SalePrice: numericFloatPtr(v.SalePrice),
			InStock:   v.InStock,
		}
		if v.ColorID.Valid {
			variant.Color = &domain.ColorRef{
				ID:      uuidString(v.ColorID),
				Name:    v.ColorName.String,
				Slug:    v.ColorSlug.String,
				HexCode: v.ColorHex.String,
			}
		}
		if v.SizeID.Valid {
			variant.Size = &domain.SizeRef{
				ID:        uuidString(v.SizeID),
				Name:      v.SizeName.String,
				Slug:      v.SizeSlug.String,
				SortOrder: v.SizeSortOrder.Int32,
			}
		}
		detail.Variants = append(detail.Variants, variant)
	}

	images, err := s.repo.ListProductImages(ctx, id)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load product images")
	}
	detail.Images = make([]domain.ProductImage, 0, len(images))
	for _, img := range images {
		image := domain.ProductImage{
			ID:        uuidString(img.ID),
			URL:       img.Url,
			IsPrimary: img.IsPrimary,
			SortOrder: img.SortOrder,
		}
		if img.VariantID.Valid {
			vid := uuidString(img.VariantID)
			image.VariantID = &vid
		}
		detail.Images = append(detail.Images, image)
	}

	return detail, nil
}

func (s *catalogService) GetProductReviews(ctx context.Context, productID string) ([]domain.Review, error) {
	const op = "catalog.get_product_reviews"

	id, err := scanUUID(op, "product id", productID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListProductReviews(ctx, id)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load reviews")
	}

	reviews := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		author := "Anonymous"
		switch {
		case row.AuthorName.Valid && row.AuthorName.String != "":
			author = row.AuthorName.String
		case row.AuthorEmail.Valid && row.AuthorEmail.String != "":
			author = row.AuthorEmail.String
		}
		reviews = append(reviews, domain.Review{
			ID:        uuidString(row.ID),
			Author:    author,
			Rating:    row.Rating,
			Content:   row.Comment.String,
			CreatedAt: row.CreatedAt.Time,
		})
	}
	return reviews, nil
}

func (s *catalogService) GetRecommendedProducts(ctx context.Context, productID string, limit int) ([]domain.RecommendedProduct, error) {
	const op = "catalog.get_recommended_products"

	id, err := scanUUID(op, "product id", productID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultRecommendedLimit
	}
	if limit > maxRecommendedLimit {
		limit = maxRecommendedLimit
	}

	dims, err := s.repo.GetProductDimensions(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.RecommendedProduct{}, nil
		}
		return nil, domain.Internal(err, op, "failed to load product")
	}

	rows, err := s.repo.ListRecommendedProducts(ctx, repository.ListRecommendedProductsParams{
		ProductID:  dims.ID,
		CategoryID: dims.CategoryID,
		BrandID:    dims.BrandID,
		GenderID:   dims.GenderID,
		Limit:      int32(limit),
	})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to load recommendations")
	}

	recs := make([]domain.RecommendedProduct, 0, len(rows))
	for _, row := range rows {
		// Products without any image are not presentable as cards.
		if !row.ImageUrl.Valid || row.ImageUrl.String == "" {
			continue
		}
		recs = append(recs, domain.RecommendedProduct{
			ID:        uuidString(row.ID),
			Title:     row.Name,
			Price:     numericFloat(row.Price),
			CompareAt: numericFloatPtr(row.CompareAt),
			ImageURL:  row.ImageUrl.String,
		})
	}
	return recs, nil
}
