package test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn      func(context.Context, string, string, string) (*model.User, string, error)
	AuthenticateFn  func(context.Context, string, string) (*model.User, string, error)
	ParseFn         func(string) (model.Identity, error)
	ProfileFn       func(context.Context, int64) (*model.User, error)
	UpdateProfileFn func(context.Context, int64, string) (*model.User, error)
}

// Register returns a user and token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, name, email, password)
	}
	return &model.User{ID: 1, Name: name, Email: email, Role: model.RoleUser}, "token", nil
}

// Authenticate returns a user and token for successful login scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleUser}, "token", nil
}

// ParseToken returns the stored identity for the authenticated user.
func (s AuthFacadeStub) ParseToken(token string) (model.Identity, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return model.Identity{UserID: 1, Role: model.RoleUser}, nil
}

// Profile returns the configured profile.
func (s AuthFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Role: model.RoleUser}, nil
}

// UpdateProfile applies the override when provided.
func (s AuthFacadeStub) UpdateProfile(ctx context.Context, userID int64, name string) (*model.User, error) {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, userID, name)
	}
	return &model.User{ID: userID, Name: name, Role: model.RoleUser}, nil
}

// CatalogFacadeStub simulates catalog operations.
type CatalogFacadeStub struct {
	AddProductFn func(context.Context, *model.Product) (*model.Product, error)
	ProductFn    func(context.Context, int64) (*model.Product, error)
	ProductsFn   func(context.Context) ([]model.Product, error)
}

// AddProduct returns the stored product with an identifier assigned.
func (s CatalogFacadeStub) AddProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.AddProductFn != nil {
		return s.AddProductFn(ctx, product)
	}
	stored := *product
	stored.ID = 1
	return &stored, nil
}

// Product returns the configured catalog entry.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "runner", Price: decimal.NewFromInt(100)}, nil
}

// Products returns the configured catalog.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: 1, Name: "runner", Price: decimal.NewFromInt(100)}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn     func(context.Context, model.Identity, []repository.OrderLineInput, model.Address) (*model.Order, decimal.Decimal, error)
	MyOrdersFn  func(context.Context, int64) ([]model.Order, error)
	OrderFn     func(context.Context, model.Identity, int64) (*model.Order, error)
	UserStatsFn func(context.Context, int64) (*model.UserStats, error)
}

// PlaceOrder delegates to the override or returns a default confirmed order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, caller model.Identity, items []repository.OrderLineInput, address model.Address) (*model.Order, decimal.Decimal, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, caller, items, address)
	}
	return &model.Order{
		ID:            1,
		UserID:        caller.UserID,
		TotalAmount:   decimal.NewFromInt(100),
		PaymentStatus: model.PaymentStatusCompleted,
		Status:        model.OrderStatusConfirmed,
		Shipping:      address,
	}, decimal.NewFromInt(900), nil
}

// MyOrders returns the configured order history.
func (s OrderFacadeStub) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.MyOrdersFn != nil {
		return s.MyOrdersFn(ctx, userID)
	}
	return []model.Order{{ID: 1, UserID: userID}}, nil
}

// Order returns the configured order.
func (s OrderFacadeStub) Order(ctx context.Context, caller model.Identity, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, caller, orderID)
	}
	return &model.Order{ID: orderID, UserID: caller.UserID}, nil
}

// UserStats returns the configured stats summary.
func (s OrderFacadeStub) UserStats(ctx context.Context, userID int64) (*model.UserStats, error) {
	if s.UserStatsFn != nil {
		return s.UserStatsFn(ctx, userID)
	}
	return &model.UserStats{TotalOrders: 1, TotalSpent: decimal.NewFromInt(100)}, nil
}

// WalletFacadeStub simulates wallet operations.
type WalletFacadeStub struct {
	DepositFn      func(context.Context, int64, decimal.Decimal) (decimal.Decimal, *model.Transaction, error)
	TransactionsFn func(context.Context, int64) ([]model.Transaction, error)
	ReconcileFn    func(context.Context, int64) (*model.LedgerReport, error)
}

// Deposit delegates to the override or echoes the amount as new balance.
func (s WalletFacadeStub) Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, *model.Transaction, error) {
	if s.DepositFn != nil {
		return s.DepositFn(ctx, userID, amount)
	}
	tx := &model.Transaction{
		ID:        1,
		UserID:    userID,
		Type:      model.TransactionTypeDeposit,
		Amount:    amount,
		Status:    model.TransactionStatusCompleted,
		CreatedAt: time.Unix(0, 0),
	}
	return amount, tx, nil
}

// Transactions returns the configured ledger history.
func (s WalletFacadeStub) Transactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	if s.TransactionsFn != nil {
		return s.TransactionsFn(ctx, userID)
	}
	return []model.Transaction{{ID: 1, UserID: userID, Type: model.TransactionTypeDeposit}}, nil
}

// ReconcileLedger returns the configured report.
func (s WalletFacadeStub) ReconcileLedger(ctx context.Context, userID int64) (*model.LedgerReport, error) {
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx, userID)
	}
	return &model.LedgerReport{UserID: userID}, nil
}

// AdminFacadeStub simulates administrative operations.
type AdminFacadeStub struct {
	UsersFn          func(context.Context) ([]model.User, error)
	UserFn           func(context.Context, int64) (*model.User, error)
	SetUserBalanceFn func(context.Context, int64, decimal.Decimal) (*model.User, error)
	AllOrdersFn      func(context.Context) ([]model.Order, error)
	SetOrderStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	StoreStatsFn     func(context.Context) (*model.StoreStats, error)
}

// Users returns the configured user list.
func (s AdminFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Role: model.RoleUser}}, nil
}

// User returns the configured user.
func (s AdminFacadeStub) User(ctx context.Context, id int64) (*model.User, error) {
	if s.UserFn != nil {
		return s.UserFn(ctx, id)
	}
	return &model.User{ID: id, Role: model.RoleUser}, nil
}

// SetUserBalance applies the override when provided.
func (s AdminFacadeStub) SetUserBalance(ctx context.Context, userID int64, balance decimal.Decimal) (*model.User, error) {
	if s.SetUserBalanceFn != nil {
		return s.SetUserBalanceFn(ctx, userID, balance)
	}
	return &model.User{ID: userID, Balance: balance}, nil
}

// AllOrders returns the configured order list.
func (s AdminFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{{ID: 1}}, nil
}

// SetOrderStatus applies the override when provided.
func (s AdminFacadeStub) SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.SetOrderStatusFn != nil {
		return s.SetOrderStatusFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// StoreStats returns the configured dashboard summary.
func (s AdminFacadeStub) StoreStats(ctx context.Context) (*model.StoreStats, error) {
	if s.StoreStatsFn != nil {
		return s.StoreStatsFn(ctx)
	}
	return &model.StoreStats{TotalUsers: 1, TotalOrders: 1, TotalRevenue: decimal.NewFromInt(100)}, nil
}

// ShopFacadeStub aggregates facade dependencies for HTTP layer tests.
type ShopFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	OrderFacadeStub
	WalletFacadeStub
	AdminFacadeStub
}

// AuditCall records a reconcile invocation made by the ledger auditor.
type AuditCall struct {
	UserID int64
}

// LedgerFacadeStub mimics auditor interactions with the store facade.
type LedgerFacadeStub struct {
	Batches     [][]int64
	BatchFn     func(context.Context, int64, int) ([]int64, error)
	ReconcileFn func(context.Context, int64) (*model.LedgerReport, error)
	Calls       []AuditCall

	mu         sync.Mutex
	batchIndex int
}

// Lock exposes the internal mutex for external synchronization.
func (s *LedgerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases a previously acquired lock.
func (s *LedgerFacadeStub) Unlock() { s.mu.Unlock() }

// LedgerAuditBatch returns batches from the configured queue.
func (s *LedgerFacadeStub) LedgerAuditBatch(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	if s.BatchFn != nil {
		return s.BatchFn(ctx, afterID, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.batchIndex < len(s.Batches) {
		batch := s.Batches[s.batchIndex]
		s.batchIndex++
		return batch, nil
	}
	return nil, nil
}

// ReconcileLedger records the audited user and returns a clean report.
func (s *LedgerFacadeStub) ReconcileLedger(ctx context.Context, userID int64) (*model.LedgerReport, error) {
	if s.ReconcileFn != nil {
		return s.ReconcileFn(ctx, userID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, AuditCall{UserID: userID})
	return &model.LedgerReport{UserID: userID}, nil
}
