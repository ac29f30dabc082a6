package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes the fulfillment lifecycle of a placed order.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus describes the wallet side of an order.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// orderTransitions is the allowed status transition table.
// delivered and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusProcessing: {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusProcessing, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// RefundOnCancel reports whether cancelling an order in the given status
// returns its total to the owner's wallet.
func RefundOnCancel(from OrderStatus) bool {
	return from == OrderStatusProcessing || from == OrderStatusConfirmed
}

// OrderItem is an immutable line item captured at placement time.
// UnitPrice is the catalog price snapshot, never a client-supplied value.
type OrderItem struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Size      float64
	Color     string
	Quantity  int32
}

// Address is the shipping destination captured with the order.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Order describes a placed purchase order.
type Order struct {
	ID            int64
	UserID        int64
	Items         []OrderItem
	TotalAmount   decimal.Decimal
	PaymentStatus PaymentStatus
	Status        OrderStatus
	Shipping      Address
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
