package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/soleshop/soleshop/internal/domain/model"
)

// UserRepository describes persistence operations for users.
//
// Create opens the account atomically: the welcome credit and its matching
// deposit transaction are written together so the ledger reconciles from the
// first moment of the account's life.
type UserRepository interface {
	Create(ctx context.Context, name, email, passwordHash string, role model.Role, welcomeCredit decimal.Decimal) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateName(ctx context.Context, id int64, name string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Count(ctx context.Context) (int64, error)
	IDsAfter(ctx context.Context, afterID int64, limit int) ([]int64, error)
}
