package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/soleshop/soleshop/internal/domain/errors"
	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/server/http/dto"
	"github.com/soleshop/soleshop/internal/server/http/middleware"
)

// CurrentUserID extracts the authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentIdentity extracts the authenticated identity from context.
func CurrentIdentity(c *gin.Context) model.Identity {
	identity := model.Identity{UserID: CurrentUserID(c), Role: model.RoleUser}
	if val, ok := c.Get(middleware.UserRoleContextKey); ok {
		if role, ok := val.(string); ok && model.Role(role) == model.RoleAdmin {
			identity.Role = model.RoleAdmin
		}
	}
	return identity
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid identifier"})
		return 0, false
	}
	return id, true
}

// writeDomainError maps domain errors onto HTTP statuses shared across
// handlers. Handler-specific mappings run before falling back here.
func writeDomainError(c *gin.Context, err error) {
	var insufficient *domainErrors.InsufficientBalanceError
	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{
			Message:   insufficient.Error(),
			Required:  &insufficient.Required,
			Available: &insufficient.Available,
		})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "not found"})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Message: "forbidden"})
	case errors.Is(err, domainErrors.ErrAlreadyExists),
		errors.Is(err, domainErrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrEmptyOrder),
		errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrInvalidAddress),
		errors.Is(err, domainErrors.ErrInvalidProduct),
		errors.Is(err, domainErrors.ErrInvalidStatus):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal error"})
	}
}
