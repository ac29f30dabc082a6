package dto

import "github.com/shopspring/decimal"

// ErrorResponse is the uniform error body. Required and Available are
// only present on insufficient balance responses.
type ErrorResponse struct {
	Message   string           `json:"message"`
	Required  *decimal.Decimal `json:"required,omitempty"`
	Available *decimal.Decimal `json:"available,omitempty"`
}
