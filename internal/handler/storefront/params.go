// Package storefront exposes the public JSON API: catalog browsing, the
// cart, and the auth endpoints.
package storefront

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/velastore/vela/internal/domain"
)

// ParseProductFilter decodes the catalog listing query string. Multi-value
// dimensions are comma-separated slugs. The price parameter carries tokens
// like "0-50,50-100,150" which collapse into one min/max envelope; a bare
// number is a lower bound only.
func ParseProductFilter(values url.Values) domain.ProductFilter {
	filter := domain.ProductFilter{
		Search:        values.Get("search"),
		GenderSlugs:   splitSlugs(values.Get("gender")),
		SizeSlugs:     splitSlugs(values.Get("size")),
		ColorSlugs:    splitSlugs(values.Get("color")),
		CategorySlugs: splitSlugs(values.Get("category")),
		BrandSlugs:    splitSlugs(values.Get("brand")),
		SortBy:        parseSort(values.Get("sort")),
		Page:          parsePositiveInt(values.Get("page"), 1),
		Limit:         parsePositiveInt(values.Get("limit"), 0),
	}
	filter.PriceMin, filter.PriceMax = parsePriceEnvelope(values.Get("price"))
	return filter
}

func splitSlugs(value string) []string {
	if value == "" {
		return nil
	}
	var slugs []string
	for _, part := range strings.Split(value, ",") {
		if s := strings.TrimSpace(part); s != "" {
			slugs = append(slugs, s)
		}
	}
	return slugs
}

func parseSort(value string) string {
	switch strings.ToLower(value) {
	case domain.SortPriceAsc:
		return domain.SortPriceAsc
	case domain.SortPriceDesc:
		return domain.SortPriceDesc
	default:
		return domain.SortLatest
	}
}

func parsePositiveInt(value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// parsePriceEnvelope folds the selected price ranges into a single
// envelope: the lowest min and the highest max across all tokens.
func parsePriceEnvelope(value string) (*float64, *float64) {
	if value == "" {
		return nil, nil
	}

	var min, max *float64
	for _, token := range strings.Split(value, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if lo, hi, ok := strings.Cut(token, "-"); ok {
			if v, err := strconv.ParseFloat(lo, 64); err == nil {
				min = lowerOf(min, v)
			}
			if v, err := strconv.ParseFloat(hi, 64); err == nil {
				max = higherOf(max, v)
			}
			continue
		}

		if v, err := strconv.ParseFloat(token, 64); err == nil {
			min = lowerOf(min, v)
		}
	}
	return min, max
}

func lowerOf(cur *float64, v float64) *float64 {
	if cur == nil || v < *cur {
		return &v
	}
	return cur
}

func higherOf(cur *float64, v float64) *float64 {
	if cur == nil || v > *cur {
		return &v
	}
	return cur
}
