package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/soleshop/soleshop/internal/domain/model"
)

// OrderLineInput is one requested line item. Prices are resolved from the
// catalog inside the placement transaction, never taken from the caller.
type OrderLineInput struct {
	ProductID int64
	Size      float64
	Color     string
	Quantity  int32
}

// OrderRepository describes persistence operations with orders.
//
// Place runs the whole placement sequence as one transaction: resolve and
// price each product, lock the buyer's row, verify the balance covers the
// total, insert the order with its items, debit the wallet, and append the
// payment transaction. SetStatus likewise applies refund-on-cancel and the
// status write atomically.
type OrderRepository interface {
	Place(ctx context.Context, userID int64, items []OrderLineInput, address model.Address) (*model.Order, decimal.Decimal, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)
	SetStatus(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
	Stats(ctx context.Context) (count int64, revenue decimal.Decimal, err error)
}
