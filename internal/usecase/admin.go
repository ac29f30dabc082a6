package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	domainErrors "github.com/soleshop/soleshop/internal/domain/errors"
	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
)

const dashboardRecentOrders = 10

// AdminUseCase covers out-of-band balance edits, order status transitions,
// and dashboard reads.
type AdminUseCase struct {
	users   repository.UserRepository
	orders  repository.OrderRepository
	wallets repository.WalletRepository
}

// NewAdminUseCase constructs AdminUseCase.
func NewAdminUseCase(users repository.UserRepository, orders repository.OrderRepository, wallets repository.WalletRepository) *AdminUseCase {
	return &AdminUseCase{users: users, orders: orders, wallets: wallets}
}

// Users lists all registered users, newest first.
func (u *AdminUseCase) Users(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// User fetches one user.
func (u *AdminUseCase) User(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}

// SetUserBalance overrides a wallet balance with an absolute value.
// The storage layer logs the pre-mutation delta as the ledger entry.
func (u *AdminUseCase) SetUserBalance(ctx context.Context, userID int64, balance decimal.Decimal) (*model.User, error) {
	if balance.IsNegative() {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.wallets.SetBalance(ctx, userID, balance)
}

// Orders lists all orders, newest first.
func (u *AdminUseCase) Orders(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// SetOrderStatus transitions an order, refunding the owner when a
// processing or confirmed order is cancelled.
func (u *AdminUseCase) SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainErrors.ErrInvalidStatus
	}
	return u.orders.SetStatus(ctx, orderID, status)
}

// Stats builds the admin dashboard summary.
func (u *AdminUseCase) Stats(ctx context.Context) (*model.StoreStats, error) {
	totalUsers, err := u.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalOrders, revenue, err := u.orders.Stats(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := u.orders.ListRecent(ctx, dashboardRecentOrders)
	if err != nil {
		return nil, err
	}
	return &model.StoreStats{
		TotalUsers:   totalUsers,
		TotalOrders:  totalOrders,
		TotalRevenue: revenue,
		RecentOrders: recent,
	}, nil
}
