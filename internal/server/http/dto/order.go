package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
)

// OrderItemRequest is a single line of a checkout request. Prices are
// never accepted from the client, only product references.
type OrderItemRequest struct {
	ProductID int64   `json:"product_id"`
	Size      float64 `json:"size"`
	Color     string  `json:"color"`
	Quantity  int32   `json:"quantity"`
}

// AddressPayload is the shipping address as sent and returned on the wire.
type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zip_code"`
	Country string `json:"country"`
}

// PlaceOrderRequest describes the checkout payload.
type PlaceOrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress AddressPayload     `json:"shipping_address"`
}

// OrderItemResponse is a priced order line as stored at checkout time.
type OrderItemResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Size      float64         `json:"size"`
	Color     string          `json:"color"`
	Quantity  int32           `json:"quantity"`
}

// OrderResponse is the public projection of an order.
type OrderResponse struct {
	ID              int64               `json:"id"`
	UserID          int64               `json:"user_id"`
	Items           []OrderItemResponse `json:"items"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	PaymentStatus   string              `json:"payment_status"`
	OrderStatus     string              `json:"order_status"`
	ShippingAddress AddressPayload      `json:"shipping_address"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// PlaceOrderResponse carries the created order and the wallet balance
// left after the debit.
type PlaceOrderResponse struct {
	Order      OrderResponse   `json:"order"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// Lines converts the request items into repository inputs.
func (r *PlaceOrderRequest) Lines() []repository.OrderLineInput {
	lines := make([]repository.OrderLineInput, 0, len(r.Items))
	for _, it := range r.Items {
		lines = append(lines, repository.OrderLineInput{
			ProductID: it.ProductID,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
		})
	}
	return lines
}

// Address converts the payload into the domain shipping address.
func (p AddressPayload) Address() model.Address {
	return model.Address{
		Street:  p.Street,
		City:    p.City,
		State:   p.State,
		ZipCode: p.ZipCode,
		Country: p.Country,
	}
}

// NewOrderResponse maps a domain order onto the wire shape.
func NewOrderResponse(o *model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
		})
	}
	return OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		Items:         items,
		TotalAmount:   o.TotalAmount,
		PaymentStatus: string(o.PaymentStatus),
		OrderStatus:   string(o.Status),
		ShippingAddress: AddressPayload{
			Street:  o.Shipping.Street,
			City:    o.Shipping.City,
			State:   o.Shipping.State,
			ZipCode: o.Shipping.ZipCode,
			Country: o.Shipping.Country,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// NewOrderResponses maps a slice of domain orders.
func NewOrderResponses(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
