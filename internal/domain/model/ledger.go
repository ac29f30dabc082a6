package model

import "github.com/shopspring/decimal"

// LedgerReport is the result of recomputing a user's balance from the full
// transaction history and comparing it to the stored balance.
type LedgerReport struct {
	UserID    int64
	Balance   decimal.Decimal
	LedgerSum decimal.Decimal
	Drift     decimal.Decimal
}

// Consistent reports whether the stored balance matches the ledger.
func (r LedgerReport) Consistent() bool {
	return r.Drift.IsZero()
}
