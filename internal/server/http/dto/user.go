package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soleshop/soleshop/internal/domain/model"
)

// UserResponse is the public projection of a user account.
type UserResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

// UpdateProfileRequest describes the profile update payload.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// UserStatsResponse summarizes a user's purchase history.
type UserStatsResponse struct {
	TotalOrders  int             `json:"total_orders"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	RecentOrders []OrderResponse `json:"recent_orders"`
}

// NewUserResponse maps a domain user onto the wire shape.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Balance:   u.Balance,
		CreatedAt: u.CreatedAt,
	}
}

// NewUserStatsResponse maps domain stats onto the wire shape.
func NewUserStatsResponse(s *model.UserStats) UserStatsResponse {
	return UserStatsResponse{
		TotalOrders:  s.TotalOrders,
		TotalSpent:   s.TotalSpent,
		RecentOrders: NewOrderResponses(s.RecentOrders),
	}
}
