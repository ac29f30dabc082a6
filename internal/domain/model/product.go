package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Order items snapshot its name and price at
// placement time, so later catalog edits never rewrite order history.
type Product struct {
	ID          int64
	Name        string
	Brand       string
	Price       decimal.Decimal
	Category    string
	Description string
	InStock     bool
	CreatedAt   time.Time
}
