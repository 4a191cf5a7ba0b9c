package handler

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"goldengate/internal/adapter/http/middleware"
	"goldengate/internal/adapter/memstore"
	"goldengate/pkg/apperror"
	"goldengate/pkg/response"
)

// AccountHandler serves the deposit address and the balance ledger calls.
type AccountHandler struct {
	ledger         *memstore.Ledger
	depositAddress string
	log            zerolog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(ledger *memstore.Ledger, depositAddress string, log zerolog.Logger) *AccountHandler {
	return &AccountHandler{ledger: ledger, depositAddress: depositAddress, log: log}
}

// DepositAddress handles GET /public/address.
func (h *AccountHandler) DepositAddress(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"address": h.depositAddress})
}

type confirmDepositRequest struct {
	TxHash string `json:"txHash" binding:"required"`
	Amount int64  `json:"amount" binding:"required"`
}

// ConfirmDeposit handles POST /private/deposit. Resubmitting the same
// transaction hash returns the original deposit id without double credit.
func (h *AccountHandler) ConfirmDeposit(c *gin.Context) {
	var req confirmDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.Amount <= 0 {
		response.Error(c, apperror.Validation("amount must be positive"))
		return
	}

	address := c.GetString(middleware.CtxAddress)
	id, balance := h.ledger.Credit(address, req.TxHash, req.Amount)
	h.log.Info().
		Str("address", address).
		Str("tx_hash", req.TxHash).
		Int64("amount", req.Amount).
		Msg("deposit confirmed")
	c.JSON(http.StatusOK, gin.H{"id": id, "balance": balance})
}

type withdrawRequest struct {
	Amount  int64  `json:"amount" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// Withdraw handles POST /private/withdraw.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	var req withdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if req.Amount <= 0 {
		response.Error(c, apperror.Validation("amount must be positive"))
		return
	}
	if !common.IsHexAddress(req.Address) {
		response.Error(c, apperror.ErrInvalidAddress(req.Address))
		return
	}

	wallet := c.GetString(middleware.CtxAddress)
	if err := h.ledger.Debit(wallet, req.Amount); err != nil {
		response.Error(c, err)
		return
	}
	h.log.Info().
		Str("wallet", wallet).
		Str("to", req.Address).
		Int64("amount", req.Amount).
		Msg("withdrawal requested")
	c.Status(http.StatusOK)
}
