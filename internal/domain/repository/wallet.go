package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/soleshop/soleshop/internal/domain/model"
)

// WalletRepository manages user wallet balances. Every mutation writes the
// balance change and its ledger entry in a single transaction.
type WalletRepository interface {
	// Deposit credits the balance and returns the new balance with the
	// recorded transaction.
	Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, *model.Transaction, error)
	// SetBalance sets the balance to an absolute value, logging the delta
	// against the pre-mutation balance.
	SetBalance(ctx context.Context, userID int64, balance decimal.Decimal) (*model.User, error)
	// Reconcile recomputes the balance from the transaction history and
	// compares it to the stored value.
	Reconcile(ctx context.Context, userID int64) (*model.LedgerReport, error)
}
