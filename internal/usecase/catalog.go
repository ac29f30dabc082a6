package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/soleshop/soleshop/internal/domain/errors"
	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
)

// CatalogUseCase manages the product catalog.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// AddProduct registers a new catalog entry.
func (u *CatalogUseCase) AddProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if strings.TrimSpace(product.Name) == "" || strings.TrimSpace(product.Brand) == "" {
		return nil, domainErrors.ErrInvalidProduct
	}
	if !product.Price.IsPositive() {
		return nil, domainErrors.ErrInvalidProduct
	}
	return u.products.Create(ctx, product)
}

// Product fetches one catalog entry.
func (u *CatalogUseCase) Product(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Products lists the catalog, newest first.
func (u *CatalogUseCase) Products(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}
