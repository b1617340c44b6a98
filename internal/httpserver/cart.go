package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mamahiam-storefront/internal/cart"
	"mamahiam-storefront/internal/domain"
)

type cartResponse struct {
	Items  []domain.CartItem `json:"items"`
	Count  int               `json:"count"`
	Total  float64           `json:"total"`
	IsOpen bool              `json:"isOpen"`
}

func toCartResponse(e *cart.Engine) cartResponse {
	items := e.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		Items:  items,
		Count:  e.Count(),
		Total:  e.Total(),
		IsOpen: e.IsOpen(),
	}
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, toCartResponse(h.engine(c)))
}

type addItemRequest struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Product.ID == 0 || req.Product.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id and name are required"})
		return
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be positive"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	engine := h.engine(c)
	engine.AddItemQuantity(req.Product, req.Quantity)
	c.JSON(http.StatusOK, toCartResponse(engine))
}

type updateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func (h *handlers) updateCartItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}
	engine := h.engine(c)
	engine.UpdateQuantity(id, *req.Quantity)
	c.JSON(http.StatusOK, toCartResponse(engine))
}

func (h *handlers) removeCartItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	engine := h.engine(c)
	engine.RemoveItem(id)
	c.JSON(http.StatusOK, toCartResponse(engine))
}

func (h *handlers) clearCart(c *gin.Context) {
	engine := h.engine(c)
	engine.Clear()
	c.JSON(http.StatusOK, toCartResponse(engine))
}

type visibilityRequest struct {
	Open *bool `json:"open" binding:"required"`
}

func (h *handlers) setCartVisibility(c *gin.Context) {
	var req visibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "open is required"})
		return
	}
	engine := h.engine(c)
	engine.SetOpen(*req.Open)
	c.JSON(http.StatusOK, toCartResponse(engine))
}
