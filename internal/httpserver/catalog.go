package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mamahiam-storefront/internal/domain"
	"mamahiam-storefront/internal/shopapi"
)

func (h *handlers) listProducts(c *gin.Context) {
	q := shopapi.ProductQuery{
		Page:          intQuery(c, "page"),
		PerPage:       intQuery(c, "per_page"),
		Search:        c.Query("search"),
		Category:      c.Query("category"),
		Featured:      c.Query("featured") == "true",
		NewCollection: c.Query("new_collection") == "true",
	}
	products, err := h.catalog.Products(c.Request.Context(), q)
	if err != nil {
		h.upstreamError(c, "products", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *handlers) getProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	product, err := h.catalog.Product(c.Request.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		h.upstreamError(c, "product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (h *handlers) featuredProducts(c *gin.Context) {
	products, err := h.catalog.FeaturedProducts(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "featured products", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *handlers) offersProducts(c *gin.Context) {
	products, err := h.catalog.OffersProducts(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "offers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *handlers) categories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "categories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func (h *handlers) branches(c *gin.Context) {
	branches, err := h.catalog.Branches(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "branches", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": branches})
}

func (h *handlers) sliders(c *gin.Context) {
	sliders, err := h.catalog.Sliders(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "sliders", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sliders})
}

func (h *handlers) settings(c *gin.Context) {
	settings, err := h.catalog.Settings(c.Request.Context())
	if err != nil {
		h.upstreamError(c, "settings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": settings})
}

func intQuery(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
