package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	domainErrors "github.com/soleshop/soleshop/internal/domain/errors"
	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
)

// ValidateItems checks requested order lines before any database work.
func ValidateItems(items []repository.OrderLineInput) error {
	if len(items) == 0 {
		return domainErrors.ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return domainErrors.ErrInvalidQuantity
		}
	}
	return nil
}

// ValidateAddress requires the fields an order cannot ship without.
func ValidateAddress(a model.Address) error {
	if strings.TrimSpace(a.Street) == "" || strings.TrimSpace(a.City) == "" {
		return domainErrors.ErrInvalidAddress
	}
	return nil
}

// ValidateAmount rejects non-positive money amounts.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainErrors.ErrInvalidAmount
	}
	return nil
}
