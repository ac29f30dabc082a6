package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soleshop/soleshop/internal/server/http/dto"
)

// OrderHandler serves checkout and the user's order history.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body"})
		return
	}

	order, newBalance, err := h.facade.PlaceOrder(c.Request.Context(), CurrentIdentity(c), req.Lines(), req.ShippingAddress.Address())
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PlaceOrderResponse{
		Order:      dto.NewOrderResponse(order),
		NewBalance: newBalance,
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.MyOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.facade.Order(c.Request.Context(), CurrentIdentity(c), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}
