package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/soleshop/soleshop/internal/domain/model"
	"github.com/soleshop/soleshop/internal/domain/repository"
)

// WalletUseCase manages wallet deposits and the transaction ledger.
type WalletUseCase struct {
	wallets      repository.WalletRepository
	transactions repository.TransactionRepository
	users        repository.UserRepository
}

// NewWalletUseCase constructs WalletUseCase.
func NewWalletUseCase(w repository.WalletRepository, t repository.TransactionRepository, u repository.UserRepository) *WalletUseCase {
	return &WalletUseCase{wallets: w, transactions: t, users: u}
}

// Deposit credits the wallet with a positive amount.
func (u *WalletUseCase) Deposit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, *model.Transaction, error) {
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, nil, err
	}
	return u.wallets.Deposit(ctx, userID, amount)
}

// History returns the user's ledger entries, newest first.
func (u *WalletUseCase) History(ctx context.Context, userID int64) ([]model.Transaction, error) {
	return u.transactions.ListByUser(ctx, userID)
}

// Reconcile recomputes the user's balance from the ledger and reports any
// drift against the stored value.
func (u *WalletUseCase) Reconcile(ctx context.Context, userID int64) (*model.LedgerReport, error) {
	return u.wallets.Reconcile(ctx, userID)
}

// AuditBatch returns the next batch of user ids for the background ledger
// auditor, ordered after the given cursor.
func (u *WalletUseCase) AuditBatch(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	return u.users.IDsAfter(ctx, afterID, limit)
}
