package httpserver

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"modernshop/internal/domain"
	"modernshop/internal/i18n"
)

type handlers struct {
	deps   Deps
	logger *zap.Logger
}

// categoryResponse adds the client-side translation key to a category.
type categoryResponse struct {
	domain.Category
	TranslationKey string `json:"translationKey"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{Category: c, TranslationKey: i18n.CategoryKey(c.Slug)}
}

func (h *handlers) locale(c *gin.Context) {
	lang := localeOf(c)
	c.JSON(http.StatusOK, gin.H{
		"language":  lang,
		"direction": i18n.Direction(lang),
		"supported": []string{i18n.English, i18n.Hebrew},
	})
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "", "Failed to fetch categories")
		return
	}
	out := make([]categoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, toCategoryResponse(cat))
	}
	c.JSON(http.StatusOK, out)
}

func (h *handlers) getCategory(c *gin.Context) {
	cat, err := h.deps.Catalog.GetCategory(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err, "Category not found", "Failed to fetch category")
		return
	}
	c.JSON(http.StatusOK, toCategoryResponse(*cat))
}

func (h *handlers) listProducts(c *gin.Context) {
	h.writeProducts(c, h.deps.Catalog.ListProducts, "Failed to fetch products")
}

func (h *handlers) listFeatured(c *gin.Context) {
	h.writeProducts(c, h.deps.Catalog.ListFeatured, "Failed to fetch featured products")
}

func (h *handlers) listNewArrivals(c *gin.Context) {
	h.writeProducts(c, h.deps.Catalog.ListNewArrivals, "Failed to fetch new arrivals")
}

func (h *handlers) listOnSale(c *gin.Context) {
	h.writeProducts(c, h.deps.Catalog.ListOnSale, "Failed to fetch sale products")
}

func (h *handlers) listProductsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("categoryId"), 10, 64)
	if err != nil {
		abortMessage(c, http.StatusBadRequest, "Invalid category ID")
		return
	}
	products, err := h.deps.Catalog.ListProductsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		h.respondError(c, err, "", "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) getProduct(c *gin.Context) {
	p, err := h.deps.Catalog.GetProduct(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.respondError(c, err, "Product not found", "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handlers) writeProducts(c *gin.Context, list func(ctx context.Context) ([]domain.Product, error), failed string) {
	products, err := list(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "", failed)
		return
	}
	c.JSON(http.StatusOK, products)
}
