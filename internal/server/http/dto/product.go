package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soleshop/soleshop/internal/domain/model"
)

// CreateProductRequest describes the admin product creation payload.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	InStock     bool            `json:"in_stock"`
}

// ProductResponse is the public projection of a catalog entry.
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	InStock     bool            `json:"in_stock"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewProductResponse maps a domain product onto the wire shape.
func NewProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Price:       p.Price,
		Category:    p.Category,
		Description: p.Description,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
	}
}

// NewProductResponses maps a slice of domain products.
func NewProductResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, NewProductResponse(&products[i]))
	}
	return out
}
