package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/server/http/dto"
)

// AdminHandler serves the administrative surface.
type AdminHandler struct {
	admin  AdminFacade
	wallet WalletFacade
}

// NewAdminHandler creates AdminHandler instance.
func NewAdminHandler(admin AdminFacade, wallet WalletFacade) *AdminHandler {
	return &AdminHandler{admin: admin, wallet: wallet}
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.admin.Users(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, out)
}

// User handles GET /api/admin/users/:id.
func (h *AdminHandler) User(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user, err := h.admin.User(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// SetBalance handles PUT /api/admin/users/:id/balance.
func (h *AdminHandler) SetBalance(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body"})
		return
	}

	user, err := h.admin.SetUserBalance(c.Request.Context(), id, req.Balance)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Ledger handles GET /api/admin/users/:id/ledger.
func (h *AdminHandler) Ledger(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := h.wallet.ReconcileLedger(c.Request.Context(), id)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewLedgerReportResponse(report))
}

// Orders handles GET /api/admin/orders.
func (h *AdminHandler) Orders(c *gin.Context) {
	orders, err := h.admin.AllOrders(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

// SetStatus handles PUT /api/admin/orders/:id.
func (h *AdminHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body"})
		return
	}

	order, err := h.admin.SetOrderStatus(c.Request.Context(), id, model.OrderStatus(req.OrderStatus))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.StoreStats(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewStoreStatsResponse(stats))
}
