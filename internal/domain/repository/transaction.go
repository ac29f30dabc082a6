package repository

import (
	"context"

	"github.com/soleshop/soleshop/internal/domain/model"
)

// TransactionRepository provides read access to the append-only ledger.
type TransactionRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Transaction, error)
}
