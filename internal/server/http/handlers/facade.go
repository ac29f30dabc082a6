package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (model.Identity, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, name string) (*model.User, error)
}

// CatalogFacade provides product catalog operations.
type CatalogFacade interface {
	AddProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context) ([]model.Product, error)
}

// OrderFacade encapsulates checkout and order reads exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, caller model.Identity, items []repository.OrderLineInput, address model.Address) (*model.Order, decimal.Decimal, error)
	MyOrders(ctx context.Context, userID int64) ([]model.Order, error)
	Order(ctx context.Context, caller model.Identity, orderID int64) (*model.Order, error)
	UserStats(ctx context.Context, userID int64) (*model.UserStats, error)
}

// WalletFacade provides wallet related operations.
type WalletFacade interface {
	Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, *model.Transaction, error)
	Transactions(ctx context.Context, userID int64) ([]model.Transaction, error)
	ReconcileLedger(ctx context.Context, userID int64) (*model.LedgerReport, error)
}

// AdminFacade provides administrative operations.
type AdminFacade interface {
	Users(ctx context.Context) ([]model.User, error)
	User(ctx context.Context, id int64) (*model.User, error)
	SetUserBalance(ctx context.Context, userID int64, balance decimal.Decimal) (*model.User, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
	StoreStats(ctx context.Context) (*model.StoreStats, error)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	CatalogFacade
	OrderFacade
	WalletFacade
	AdminFacade
}
