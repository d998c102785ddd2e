package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	ordersvc "modernshop/internal/service/order"
)

func (h *handlers) createOrder(c *gin.Context) {
	var in ordersvc.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		abortMessage(c, http.StatusBadRequest, "Invalid order data")
		return
	}
	order, err := h.deps.Orders.Create(c.Request.Context(), in)
	if err != nil {
		if !abortInvalid(c, err, "Invalid order data") {
			h.respondError(c, err, "", "Failed to create order")
		}
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *handlers) getOrder(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortMessage(c, http.StatusBadRequest, "Invalid order ID")
		return
	}
	order, err := h.deps.Orders.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Order not found", "Failed to fetch order")
		return
	}
	c.JSON(http.StatusOK, order)
}
