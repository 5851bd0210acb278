package handlers

import (
	"context"
	"net/http"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/interfaces/http/middleware"
	"github.com/InusahIbraheem/solid-life-web/internal/interfaces/http/response"
	"github.com/InusahIbraheem/solid-life-web/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WalletService interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*entities.WalletSummary, error)
	ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.WalletTransaction, int64, error)
	RequestWithdrawal(ctx context.Context, userID uuid.UUID, input *entities.WithdrawalInput) (*entities.WalletTransaction, error)
	ApproveWithdrawal(ctx context.Context, txID uuid.UUID) error
	DeclineWithdrawal(ctx context.Context, txID uuid.UUID) error
}

// WalletHandler handles wallet and withdrawal endpoints
type WalletHandler struct {
	walletUsecase WalletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase WalletService) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase}
}

// Summary returns the caller's balance breakdown
// GET /api/v1/wallet
func (h *WalletHandler) Summary(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	summary, err := h.walletUsecase.GetSummary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"wallet": summary})
}

// Transactions returns the caller's ledger history
// GET /api/v1/wallet/transactions
func (h *WalletHandler) Transactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	p := pagination(c)
	txs, total, err := h.walletUsecase.ListTransactions(c.Request.Context(), userID, p.Limit, p.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"transactions": txs,
		"pagination":   utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// RequestWithdrawal queues a withdrawal for admin approval
// POST /api/v1/wallet/withdrawals
func (h *WalletHandler) RequestWithdrawal(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.WithdrawalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	tx, err := h.walletUsecase.RequestWithdrawal(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"transaction": tx})
}

// ApproveWithdrawal settles a pending withdrawal
// POST /api/v1/admin/withdrawals/:id/approve
func (h *WalletHandler) ApproveWithdrawal(c *gin.Context) {
	txID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid transaction ID"))
		return
	}

	if err := h.walletUsecase.ApproveWithdrawal(c.Request.Context(), txID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "withdrawal approved"})
}

// DeclineWithdrawal fails a pending withdrawal, releasing the funds
// POST /api/v1/admin/withdrawals/:id/decline
func (h *WalletHandler) DeclineWithdrawal(c *gin.Context) {
	txID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid transaction ID"))
		return
	}

	if err := h.walletUsecase.DeclineWithdrawal(c.Request.Context(), txID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "withdrawal declined"})
}
