package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soleshop/soleshop/internal/server/http/dto"
)

// UserHandler serves the authenticated user's profile and stats.
type UserHandler struct {
	auth   AuthFacade
	orders OrderFacade
}

// NewUserHandler creates UserHandler instance.
func NewUserHandler(auth AuthFacade, orders OrderFacade) *UserHandler {
	return &UserHandler{auth: auth, orders: orders}
}

// Profile handles GET /api/user/profile.
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.auth.Profile(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdateProfile handles PUT /api/user/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body"})
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), CurrentUserID(c), req.Name)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Stats handles GET /api/user/stats.
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.orders.UserStats(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserStatsResponse(stats))
}
