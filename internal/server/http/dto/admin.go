package dto

import (
	"github.com/shopspring/decimal"

	"github.com/soleshop/soleshop/internal/domain/model"
)

// SetBalanceRequest describes the admin balance override payload.
type SetBalanceRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

// SetStatusRequest describes the admin order status change payload.
type SetStatusRequest struct {
	OrderStatus string `json:"order_status"`
}

// StoreStatsResponse is the admin dashboard summary.
type StoreStatsResponse struct {
	TotalUsers   int64           `json:"total_users"`
	TotalOrders  int64           `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	RecentOrders []OrderResponse `json:"recent_orders"`
}

// LedgerReportResponse is the per-user wallet reconciliation result.
type LedgerReportResponse struct {
	UserID     int64           `json:"user_id"`
	Balance    decimal.Decimal `json:"balance"`
	LedgerSum  decimal.Decimal `json:"ledger_sum"`
	Drift      decimal.Decimal `json:"drift"`
	Consistent bool            `json:"consistent"`
}

// NewStoreStatsResponse maps domain store stats onto the wire shape.
func NewStoreStatsResponse(s *model.StoreStats) StoreStatsResponse {
	return StoreStatsResponse{
		TotalUsers:   s.TotalUsers,
		TotalOrders:  s.TotalOrders,
		TotalRevenue: s.TotalRevenue,
		RecentOrders: NewOrderResponses(s.RecentOrders),
	}
}

// NewLedgerReportResponse maps a domain ledger report onto the wire shape.
func NewLedgerReportResponse(r *model.LedgerReport) LedgerReportResponse {
	return LedgerReportResponse{
		UserID:     r.UserID,
		Balance:    r.Balance,
		LedgerSum:  r.LedgerSum,
		Drift:      r.Drift,
		Consistent: r.Consistent(),
	}
}
