package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/soleshop/soleshop/internal/domain/model"
)

// DepositRequest describes the wallet top-up payload.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// DepositResponse carries the resulting balance and the ledger entry.
type DepositResponse struct {
	NewBalance  decimal.Decimal     `json:"new_balance"`
	Transaction TransactionResponse `json:"transaction"`
}

// TransactionResponse is the public projection of a ledger entry.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	OrderID     *int64          `json:"order_id,omitempty"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewTransactionResponse maps a domain transaction onto the wire shape.
func NewTransactionResponse(t *model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		OrderID:     t.OrderID,
		Status:      string(t.Status),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// NewTransactionResponses maps a slice of domain transactions.
func NewTransactionResponses(txs []model.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for i := range txs {
		out = append(out, NewTransactionResponse(&txs[i]))
	}
	return out
}
