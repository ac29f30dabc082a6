package errors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrForbidden          = errors.New("forbidden")
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidQuantity    = errors.New("item quantity must be positive")
	ErrInvalidAddress     = errors.New("incomplete shipping address")
	ErrInvalidProduct     = errors.New("invalid product")
	ErrInvalidStatus      = errors.New("unknown order status")
	ErrInvalidTransition  = errors.New("illegal order status transition")

	// ErrInsufficientBalance is the errors.Is target for
	// InsufficientBalanceError.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// InsufficientBalanceError reports a purchase exceeding the wallet balance,
// carrying the amounts the caller needs to render the failure.
type InsufficientBalanceError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %s, available %s", e.Required, e.Available)
}

// Is matches the ErrInsufficientBalance sentinel.
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
