package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"modernshop/internal/domain"
	cartsvc "modernshop/internal/service/cart"
)

// addToCartRequest defaults a missing quantity to 1.
type addToCartRequest struct {
	ProductID int64  `json:"productId"`
	Quantity  *int   `json:"quantity"`
	SessionID string `json:"sessionId"`
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

func (h *handlers) getCart(c *gin.Context) {
	lines, err := h.deps.Cart.Get(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		h.respondError(c, err, "", "Failed to fetch cart")
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *handlers) cartSummary(c *gin.Context) {
	summary, err := h.deps.Cart.Summary(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		h.respondError(c, err, "", "Failed to summarize cart")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *handlers) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortMessage(c, http.StatusBadRequest, "Invalid cart item data")
		return
	}
	in := cartsvc.AddInput{ProductID: req.ProductID, Quantity: 1, SessionID: req.SessionID}
	if req.Quantity != nil {
		in.Quantity = *req.Quantity
	}
	item, err := h.deps.Cart.Add(c.Request.Context(), in)
	if err != nil {
		if !abortInvalid(c, err, "Invalid cart item data") {
			h.respondError(c, err, "Product not found", "Failed to add item to cart")
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *handlers) updateCartItem(c *gin.Context) {
	id, ok := cartItemID(c)
	if !ok {
		return
	}
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil || *req.Quantity < 0 {
		abortMessage(c, http.StatusBadRequest, "Invalid quantity")
		return
	}
	if *req.Quantity > domain.MaxCartQuantity {
		abortInvalid(c, domain.QuantityLimitError(), "Invalid quantity")
		return
	}
	item, err := h.deps.Cart.SetQuantity(c.Request.Context(), id, *req.Quantity)
	if err != nil {
		if abortInvalid(c, err, "Invalid quantity") {
			return
		}
		h.respondError(c, err, "Cart item not found", "Failed to update cart item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}

func (h *handlers) removeCartItem(c *gin.Context) {
	id, ok := cartItemID(c)
	if !ok {
		return
	}
	existed, err := h.deps.Cart.Remove(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Cart item not found", "Failed to delete cart item")
		return
	}
	if !existed {
		abortMessage(c, http.StatusNotFound, "Cart item not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *handlers) clearCart(c *gin.Context) {
	if err := h.deps.Cart.Clear(c.Request.Context(), c.Param("sessionId")); err != nil {
		h.respondError(c, err, "", "Failed to clear cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func cartItemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortMessage(c, http.StatusBadRequest, "Invalid cart item ID")
		return 0, false
	}
	return id, true
}
