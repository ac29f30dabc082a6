package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry. Deposits (including refunds and
// admin adjustments) credit the wallet, payments debit it.
type TransactionType string

const (
	TransactionTypeDeposit TransactionType = "deposit"
	TransactionTypePayment TransactionType = "payment"
)

// TransactionStatus mirrors the original ledger schema; every entry written
// by this service is completed at insert time.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
)

// Transaction is an append-only ledger entry describing one balance mutation.
type Transaction struct {
	ID          int64
	UserID      int64
	Type        TransactionType
	Amount      decimal.Decimal
	OrderID     *int64
	Status      TransactionStatus
	Description string
	CreatedAt   time.Time
}

// Signed returns the entry's contribution to the wallet balance:
// positive for deposits, negative for payments.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypePayment {
		return t.Amount.Neg()
	}
	return t.Amount
}
