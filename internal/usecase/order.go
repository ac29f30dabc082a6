package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/soleshop/soleshop/internal/domain/errors"
	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
)

const recentOrdersLimit = 5

// OrderUseCase encapsulates order placement and reads.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Place validates the request and debits the caller's wallet for a new order.
// Admins cannot place orders.
func (u *OrderUseCase) Place(ctx context.Context, caller model.Identity, items []repository.OrderLineInput, address model.Address) (*model.Order, decimal.Decimal, error) {
	if caller.IsAdmin() {
		return nil, decimal.Zero, domainErrors.ErrForbidden
	}
	if err := ValidateItems(items); err != nil {
		return nil, decimal.Zero, err
	}
	if err := ValidateAddress(address); err != nil {
		return nil, decimal.Zero, err
	}
	return u.orders.Place(ctx, caller.UserID, items, address)
}

// ListByUser returns the caller's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Get returns one order, visible to its owner and to admins only.
func (u *OrderUseCase) Get(ctx context.Context, caller model.Identity, orderID int64) (*model.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != caller.UserID && !caller.IsAdmin() {
		return nil, domainErrors.ErrForbidden
	}
	return order, nil
}

// StatsByUser summarizes the caller's order history.
func (u *OrderUseCase) StatsByUser(ctx context.Context, userID int64) (*model.UserStats, error) {
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &model.UserStats{TotalOrders: len(orders), TotalSpent: decimal.Zero}
	for _, o := range orders {
		if o.Status != model.OrderStatusCancelled {
			stats.TotalSpent = stats.TotalSpent.Add(o.TotalAmount)
		}
	}
	if len(orders) > recentOrdersLimit {
		orders = orders[:recentOrdersLimit]
	}
	stats.RecentOrders = orders
	return stats, nil
}
