package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
	"github.com/soleshop/soleshop/internal/usecase"
)

// StoreFacade aggregates the use cases behind a single surface consumed by
// the HTTP handlers and the background auditor.
type StoreFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	orders  *usecase.OrderUseCase
	wallet  *usecase.WalletUseCase
	admin   *usecase.AdminUseCase
}

func NewStoreFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, orders *usecase.OrderUseCase, wallet *usecase.WalletUseCase, admin *usecase.AdminUseCase) *StoreFacade {
	return &StoreFacade{auth: auth, catalog: catalog, orders: orders, wallet: wallet, admin: admin}
}

func (f *StoreFacade) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, name, email, password)
}

func (f *StoreFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *StoreFacade) ParseToken(token string) (model.Identity, error) {
	return f.auth.ParseToken(token)
}

func (f *StoreFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.Profile(ctx, userID)
}

func (f *StoreFacade) UpdateProfile(ctx context.Context, userID int64, name string) (*model.User, error) {
	return f.auth.UpdateProfile(ctx, userID, name)
}

func (f *StoreFacade) AddProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.AddProduct(ctx, product)
}

func (f *StoreFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.Product(ctx, id)
}

func (f *StoreFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.Products(ctx)
}

func (f *StoreFacade) PlaceOrder(ctx context.Context, caller model.Identity, items []repository.OrderLineInput, address model.Address) (*model.Order, decimal.Decimal, error) {
	return f.orders.Place(ctx, caller, items, address)
}

func (f *StoreFacade) MyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StoreFacade) Order(ctx context.Context, caller model.Identity, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, caller, orderID)
}

func (f *StoreFacade) UserStats(ctx context.Context, userID int64) (*model.UserStats, error) {
	return f.orders.StatsByUser(ctx, userID)
}

func (f *StoreFacade) Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, *model.Transaction, error) {
	return f.wallet.Deposit(ctx, userID, amount)
}

func (f *StoreFacade) Transactions(ctx context.Context, userID int64) ([]model.Transaction, error) {
	return f.wallet.History(ctx, userID)
}

func (f *StoreFacade) ReconcileLedger(ctx context.Context, userID int64) (*model.LedgerReport, error) {
	return f.wallet.Reconcile(ctx, userID)
}

func (f *StoreFacade) LedgerAuditBatch(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	return f.wallet.AuditBatch(ctx, afterID, limit)
}

func (f *StoreFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.admin.Users(ctx)
}

func (f *StoreFacade) User(ctx context.Context, id int64) (*model.User, error) {
	return f.admin.User(ctx, id)
}

func (f *StoreFacade) SetUserBalance(ctx context.Context, userID int64, balance decimal.Decimal) (*model.User, error) {
	return f.admin.SetUserBalance(ctx, userID, balance)
}

func (f *StoreFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.admin.Orders(ctx)
}

func (f *StoreFacade) SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.admin.SetOrderStatus(ctx, orderID, status)
}

func (f *StoreFacade) StoreStats(ctx context.Context) (*model.StoreStats, error) {
	return f.admin.Stats(ctx)
}
