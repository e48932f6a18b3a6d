package storefront

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/velastore/vela/internal/handler"
	"github.com/velastore/vela/internal/service"
)

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a product handler.
func NewProductHandler(catalog service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, logger: logger}
}

// List handles GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := ParseProductFilter(r.URL.Query())

	list, err := h.catalog.GetAllProducts(r.Context(), filter)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	handler.JSON(w, http.StatusOK, list)
}

// Detail handles GET /api/products/{id}
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			handler.Error(w, h.logger, service.ErrProductNotFound)
			return
		}
		handler.Error(w, h.logger, err)
		return
	}

	handler.JSON(w, http.StatusOK, detail)
}

// Reviews handles GET /api/products/{id}/reviews
func (h *ProductHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.catalog.GetProductReviews(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	handler.JSON(w, http.StatusOK, reviews)
}

// Recommendations handles GET /api/products/{id}/recommendations
func (h *ProductHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	recs, err := h.catalog.GetRecommendedProducts(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		handler.Error(w, h.logger, err)
		return
	}

	handler.JSON(w, http.StatusOK, recs)
}
