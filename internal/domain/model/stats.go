package model

import "github.com/shopspring/decimal"

// UserStats summarizes a customer's order history.
// TotalSpent counts non-cancelled orders only; cancelled orders were refunded.
type UserStats struct {
	TotalOrders  int
	TotalSpent   decimal.Decimal
	RecentOrders []Order
}

// StoreStats is the admin dashboard summary.
type StoreStats struct {
	TotalUsers   int64
	TotalOrders  int64
	TotalRevenue decimal.Decimal
	RecentOrders []Order
}
