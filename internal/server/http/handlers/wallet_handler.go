package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soleshop/soleshop/internal/server/http/dto"
)

// WalletHandler serves wallet top-ups and transaction history.
type WalletHandler struct {
	facade WalletFacade
}

// NewWalletHandler creates WalletHandler instance.
func NewWalletHandler(facade WalletFacade) *WalletHandler {
	return &WalletHandler{facade: facade}
}

// Deposit handles POST /api/wallet/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid request body"})
		return
	}

	newBalance, tx, err := h.facade.Deposit(c.Request.Context(), CurrentUserID(c), req.Amount)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DepositResponse{
		NewBalance:  newBalance,
		Transaction: dto.NewTransactionResponse(tx),
	})
}

// Transactions handles GET /api/wallet/transactions.
func (h *WalletHandler) Transactions(c *gin.Context) {
	txs, err := h.facade.Transactions(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponses(txs))
}
