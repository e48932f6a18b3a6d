package storefront

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velastore/vela/internal/domain"
)

func TestParseProductFilter(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f := ParseProductFilter(url.Values{})

		assert.Empty(t, f.Search)
		assert.Nil(t, f.GenderSlugs)
		assert.Nil(t, f.PriceMin)
		assert.Nil(t, f.PriceMax)
		assert.Equal(t, domain.SortLatest, f.SortBy)
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, 0, f.Limit)
	})

	t.Run("comma separated slugs", func(t *testing.T) {
		f := ParseProductFilter(url.Values{
			"gender":   {"men,women"},
			"color":    {" black , navy ,"},
			"category": {"shoes"},
		})

		assert.Equal(t, []string{"men", "women"}, f.GenderSlugs)
		assert.Equal(t, []string{"black", "navy"}, f.ColorSlugs)
		assert.Equal(t, []string{"shoes"}, f.CategorySlugs)
	})

	t.Run("sort whitelist", func(t *testing.T) {
		tests := []struct {
			in   string
			want string
		}{
			{"price_asc", domain.SortPriceAsc},
			{"PRICE_DESC", domain.SortPriceDesc},
			{"latest", domain.SortLatest},
			{"bogus", domain.SortLatest},
			{"", domain.SortLatest},
		}
		for _, tt := range tests {
			f := ParseProductFilter(url.Values{"sort": {tt.in}})
			assert.Equal(t, tt.want, f.SortBy, "sort=%q", tt.in)
		}
	})

	t.Run("invalid page falls back to 1", func(t *testing.T) {
		f := ParseProductFilter(url.Values{"page": {"-3"}, "limit": {"abc"}})

		assert.Equal(t, 1, f.Page)
		assert.Equal(t, 0, f.Limit)
	})
}

func TestParsePriceEnvelope(t *testing.T) {
	t.Run("single range", func(t *testing.T) {
		min, max := parsePriceEnvelope("0-50")

		require.NotNil(t, min)
		require.NotNil(t, max)
		assert.Equal(t, 0.0, *min)
		assert.Equal(t, 50.0, *max)
	})

	t.Run("multiple ranges collapse into an envelope", func(t *testing.T) {
		min, max := parsePriceEnvelope("50-100,0-50,150-200")

		require.NotNil(t, min)
		require.NotNil(t, max)
		assert.Equal(t, 0.0, *min)
		assert.Equal(t, 200.0, *max)
	})

	t.Run("bare number is a lower bound only", func(t *testing.T) {
		min, max := parsePriceEnvelope("150")

		require.NotNil(t, min)
		assert.Equal(t, 150.0, *min)
		assert.Nil(t, max)
	})

	t.Run("mixed ranges and bare minimum", func(t *testing.T) {
		min, max := parsePriceEnvelope("50-100,25")

		require.NotNil(t, min)
		require.NotNil(t, max)
		assert.Equal(t, 25.0, *min)
		assert.Equal(t, 100.0, *max)
	})

	t.Run("garbage tokens are skipped", func(t *testing.T) {
		min, max := parsePriceEnvelope("abc,x-y, ,10-20")

		require.NotNil(t, min)
		require.NotNil(t, max)
		assert.Equal(t, 10.0, *min)
		assert.Equal(t, 20.0, *max)
	})

	t.Run("empty", func(t *testing.T) {
		min, max := parsePriceEnvelope("")

		assert.Nil(t, min)
		assert.Nil(t, max)
	})
}
