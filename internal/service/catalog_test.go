package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velastore/vela/internal/domain"
	"github.com/velastore/vela/internal/repository"
)

const (
	testProductID  = "66666666-6666-6666-6666-666666666666"
	testCategoryID = "77777777-7777-7777-7777-777777777777"
	testBrandID    = "88888888-8888-8888-8888-888888888888"
	testGenderID   = "99999999-9999-9999-9999-999999999999"
)

func float64Ptr(v float64) *float64 { return &v }

func TestGetAllProducts(t *testing.T) {
	t.Run("filters and paging are passed through", func(t *testing.T) {
		var got repository.ListProductsParams
		repo := &fakeQuerier{
			ListProductsFunc: func(ctx context.Context, arg repository.ListProductsParams) ([]repository.ListProductsRow, error) {
				got = arg
				return nil, nil
			},
		}

		svc := NewCatalogService(repo, 24, 60)
		_, err := svc.GetAllProducts(context.Background(), domain.ProductFilter{
			Search:      "runner",
			GenderSlugs: []string{"men"},
			ColorSlugs:  []string{"red", "blue"},
			PriceMin:    float64Ptr(50),
			PriceMax:    float64Ptr(100),
			SortBy:      "price_asc",
			Page:        3,
			Limit:       12,
		})

		require.NoError(t, err)
		assert.Equal(t, "runner", got.Search)
		assert.Equal(t, []string{"men"}, got.GenderSlugs)
		assert.Equal(t, []string{"red", "blue"}, got.ColorSlugs)
		assert.Equal(t, float64(50), *got.PriceMin)
		assert.Equal(t, float64(100), *got.PriceMax)
		assert.Equal(t, "price_asc", got.SortBy)
		assert.Equal(t, int32(12), got.Limit)
		assert.Equal(t, int32(24), got.Offset)
	})

	t.Run("paging is clamped", func(t *testing.T) {
		tests := []struct {
			name       string
			page       int
			limit      int
			wantLimit  int32
			wantOffset int32
		}{
			{"zero page becomes first", 0, 10, 10, 0},
			{"negative page becomes first", -3, 10, 10, 0},
			{"zero limit uses default", 1, 0, 24, 0},
			{"oversized limit is capped", 2, 500, 60, 60},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var got repository.ListProductsParams
				repo := &fakeQuerier{
					ListProductsFunc: func(ctx context.Context, arg repository.ListProductsParams) ([]repository.ListProductsRow, error) {
						got = arg
						return nil, nil
					},
				}

				svc := NewCatalogService(repo, 24, 60)
				_, err := svc.GetAllProducts(context.Background(), domain.ProductFilter{Page: tt.page, Limit: tt.limit})

				require.NoError(t, err)
				assert.Equal(t, tt.wantLimit, got.Limit)
				assert.Equal(t, tt.wantOffset, got.Offset)
			})
		}
	})

	t.Run("rows map to list items with total count", func(t *testing.T) {
		repo := &fakeQuerier{
			ListProductsFunc: func(ctx context.Context, arg repository.ListProductsParams) ([]repository.ListProductsRow, error) {
				return []repository.ListProductsRow{
					{
						ID:               mustUUID(testProductID),
						Name:             "Trail Runner",
						CategoryName:     text("Shoes"),
						BrandName:        text("Vela"),
						MinCurrentPrice:  numeric("79.99"),
						MinOriginalPrice: numeric("99.99"),
						MinSalePrice:     numeric("79.99"),
						MaxCurrentPrice:  numeric("119.99"),
						ColorCount:       3,
						ImageUrl:         text("https://cdn.example.com/trail.jpg"),
					},
				}, nil
			},
			CountProductsFunc: func(ctx context.Context, arg repository.ListProductsParams) (int64, error) {
				return 42, nil
			},
		}

		svc := NewCatalogService(repo, 24, 60)
		list, err := svc.GetAllProducts(context.Background(), domain.ProductFilter{})

		require.NoError(t, err)
		assert.Equal(t, int64(42), list.TotalCount)
		require.Len(t, list.Products, 1)

		p := list.Products[0]
		assert.Equal(t, testProductID, p.ID)
		assert.Equal(t, "Trail Runner", p.Name)
		require.NotNil(t, p.Category)
		assert.Equal(t, "Shoes", *p.Category)
		assert.Equal(t, 79.99, p.MinCurrentPrice)
		assert.Equal(t, 99.99, p.MinOriginalPrice)
		require.NotNil(t, p.MinSalePrice)
		assert.Equal(t, 79.99, *p.MinSalePrice)
		assert.Equal(t, 119.99, p.MaxCurrentPrice)
		assert.Equal(t, 3, p.ColorCount)
		assert.Equal(t, "https://cdn.example.com/trail.jpg", p.ImageURL)
	})

	t.Run("empty result keeps products non-nil", func(t *testing.T) {
		svc := NewCatalogService(&fakeQuerier{}, 24, 60)
		list, err := svc.GetAllProducts(context.Background(), domain.ProductFilter{})

		require.NoError(t, err)
		assert.NotNil(t, list.Products)
		assert.Empty(t, list.Products)
		assert.Zero(t, list.TotalCount)
	})
}

func TestGetProduct(t *testing.T) {
	t.Run("missing product", func(t *testing.T) {
		svc := NewCatalogService(&fakeQuerier{}, 24, 60)
		_, err := svc.GetProduct(context.Background(), testProductID)

		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("malformed id is invalid", func(t *testing.T) {
		svc := NewCatalogService(&fakeQuerier{}, 24, 60)
		_, err := svc.GetProduct(context.Background(), "not-a-uuid")

		assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	})

	t.Run("assembles detail with variants and images", func(t *testing.T) {
		repo := &fakeQuerier{
			GetProductFunc: func(ctx context.Context, id pgtype.UUID) (repository.GetProductRow, error) {
				return repository.GetProductRow{
					ID:           mustUUID(testProductID),
					Name:         "Trail Runner",
					Description:  text("Lightweight trail shoe."),
					CategoryID:   mustUUID(testCategoryID),
					CategoryName: text("Shoes"),
					CategorySlug: text("shoes"),
					BrandID:      mustUUID(testBrandID),
					BrandName:    text("Vela"),
					BrandSlug:    text("vela"),
				}, nil
			},
			ListProductVariantsFunc: func(ctx context.Context, productID pgtype.UUID) ([]repository.ListProductVariantsRow, error) {
				return []repository.ListProductVariantsRow{
					{
						ID:        mustUUID(testVariantID),
						Sku:       "TR-RED-42",
						Price:     numeric("99.99"),
						SalePrice: numeric("79.99"),
						InStock:   5,
						ColorID:   mustUUID(testCategoryID),
						ColorName: text("Red"),
						ColorSlug: text("red"),
						ColorHex:  text("#ff0000"),
					},
					{
						ID:      mustUUID(testItemID),
						Sku:     "TR-NOCOLOR",
						Price:   numeric("89.99"),
						InStock: 0,
					},
				}, nil
			},
			ListProductImagesFunc: func(ctx context.Context, productID pgtype.UUID) ([]repository.ListProductImagesRow, error) {
				return []repository.ListProductImagesRow{
					{ID: mustUUID(testGenderID), Url: "https://cdn.example.com/a.jpg", IsPrimary: true},
					{ID: mustUUID(testBrandID), Url: "https://cdn.example.com/b.jpg", SortOrder: 1, VariantID: mustUUID(testVariantID)},
				}, nil
			},
		}

		svc := NewCatalogService(repo, 24, 60)
		detail, err := svc.GetProduct(context.Background(), testProductID)

		require.NoError(t, err)
		assert.Equal(t, "Trail Runner", detail.Name)
		assert.Equal(t, "Lightweight trail shoe.", detail.Description)
		require.NotNil(t, detail.Category)
		assert.Equal(t, "shoes", detail.Category.Slug)
		require.NotNil(t, detail.Brand)
		assert.Equal(t, "Vela", detail.Brand.Name)
		assert.Nil(t, detail.Gender)

		require.Len(t, detail.Variants, 2)
		first := detail.Variants[0]
		assert.Equal(t, "TR-RED-42", first.SKU)
		assert.Equal(t, 99.99, first.Price)
		require.NotNil(t, first.SalePrice)
		assert.Equal(t, 79.99, *first.SalePrice)
		require.NotNil(t, first.Color)
		assert.Equal(t, "#ff0000", first.Color.HexCode)
		assert.Nil(t, first.Size)

		second := detail.Variants[1]
		assert.Nil(t, second.SalePrice)
		assert.Nil(t, second.Color)

		require.Len(t, detail.Images, 2)
		assert.True(t, detail.Images[0].IsPrimary)
		assert.Nil(t, detail.Images[0].VariantID)
		require.NotNil(t, detail.Images[1].VariantID)
		assert.Equal(t, testVariantID, *detail.Images[1].VariantID)
	})
}

func TestGetProductReviews(t *testing.T) {
	t.Run("author falls back from name to email to anonymous", func(t *testing.T) {
		repo := &fakeQuerier{
			ListProductReviewsFunc: func(ctx context.Context, productID pgtype.UUID) ([]repository.ListProductReviewsRow, error) {
				return []repository.ListProductReviewsRow{
					{ID: mustUUID(testItemID), Rating: 5, Comment: text("Great."), AuthorName: text("Ada"), AuthorEmail: text("ada@example.com")},
					{ID: mustUUID(testBrandID), Rating: 4, AuthorEmail: text("grace@example.com")},
					{ID: mustUUID(testGenderID), Rating: 3},
				}, nil
			},
		}

		svc := NewCatalogService(repo, 24, 60)
		reviews, err := svc.GetProductReviews(context.Background(), testProductID)

		require.NoError(t, err)
		require.Len(t, reviews, 3)
		assert.Equal(t, "Ada", reviews[0].Author)
		assert.Equal(t, "grace@example.com", reviews[1].Author)
		assert.Equal(t, "Anonymous", reviews[2].Author)
		assert.Equal(t, int32(5), reviews[0].Rating)
		assert.Equal(t, "Great.", reviews[0].Content)
	})

	t.Run("malformed id is invalid", func(t *testing.T) {
		svc := NewCatalogService(&fakeQuerier{}, 24, 60)
		_, err := svc.GetProductReviews(context.Background(), "nope")

		assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	})
}

func TestGetRecommendedProducts(t *testing.T) {
	t.Run("limit defaults and caps", func(t *testing.T) {
		tests := []struct {
			name  string
			limit int
			want  int32
		}{
			{"zero uses default", 0, 6},
			{"negative uses default", -1, 6},
			{"in range is kept", 8, 8},
			{"oversized is capped", 50, 12},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var got repository.ListRecommendedProductsParams
				repo := &fakeQuerier{
					GetProductDimensionsFunc: func(ctx context.Context, id pgtype.UUID) (repository.GetProductDimensionsRow, error) {
						return repository.GetProductDimensionsRow{ID: id}, nil
					},
					ListRecommendedProductsFunc: func(ctx context.Context, arg repository.ListRecommendedProductsParams) ([]repository.ListRecommendedProductsRow, error) {
						got = arg
						return nil, nil
					},
				}

				svc := NewCatalogService(repo, 24, 60)
				_, err := svc.GetRecommendedProducts(context.Background(), testProductID, tt.limit)

				require.NoError(t, err)
				assert.Equal(t, tt.want, got.Limit)
			})
		}
	})

	t.Run("missing anchor yields empty list", func(t *testing.T) {
		svc := NewCatalogService(&fakeQuerier{}, 24, 60)
		recs, err := svc.GetRecommendedProducts(context.Background(), testProductID, 6)

		require.NoError(t, err)
		assert.NotNil(t, recs)
		assert.Empty(t, recs)
	})

	t.Run("dimensions are forwarded and imageless rows dropped", func(t *testing.T) {
		repo := &fakeQuerier{
			GetProductDimensionsFunc: func(ctx context.Context, id pgtype.UUID) (repository.GetProductDimensionsRow, error) {
				return repository.GetProductDimensionsRow{
					ID:         id,
					CategoryID: mustUUID(testCategoryID),
					BrandID:    mustUUID(testBrandID),
				}, nil
			},
			ListRecommendedProductsFunc: func(ctx context.Context, arg repository.ListRecommendedProductsParams) ([]repository.ListRecommendedProductsRow, error) {
				assert.Equal(t, mustUUID(testProductID), arg.ProductID)
				assert.Equal(t, mustUUID(testCategoryID), arg.CategoryID)
				assert.Equal(t, mustUUID(testBrandID), arg.BrandID)
				return []repository.ListRecommendedProductsRow{
					{
						ID:        mustUUID(testItemID),
						Name:      "City Runner",
						Price:     numeric("59.99"),
						CompareAt: numeric("69.99"),
						ImageUrl:  text("https://cdn.example.com/city.jpg"),
					},
					{ID: mustUUID(testGenderID), Name: "No Photo", Price: numeric("19.99")},
				}, nil
			},
		}

		svc := NewCatalogService(repo, 24, 60)
		recs, err := svc.GetRecommendedProducts(context.Background(), testProductID, 6)

		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "City Runner", recs[0].Title)
		assert.Equal(t, 59.99, recs[0].Price)
		require.NotNil(t, recs[0].CompareAt)
		assert.Equal(t, 69.99, *recs[0].CompareAt)
		assert.Equal(t, "https://cdn.example.com/city.jpg", recs[0].ImageURL)
	})
}
