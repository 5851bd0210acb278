package usecases

import (
	"context"
	"fmt"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/InusahIbraheem/solid-life-web/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WalletUsecase exposes the member wallet. Balances are always derived from
// the ledger; nothing here writes a balance field.
type WalletUsecase struct {
	wallet repositories.WalletRepository
	users  repositories.UserRepository
	uow    repositories.UnitOfWork
}

// NewWalletUsecase creates a new wallet usecase
func NewWalletUsecase(
	wallet repositories.WalletRepository,
	users repositories.UserRepository,
	uow repositories.UnitOfWork,
) *WalletUsecase {
	return &WalletUsecase{wallet: wallet, users: users, uow: uow}
}

// GetSummary aggregates the ledger into the wallet screen's numbers.
func (u *WalletUsecase) GetSummary(ctx context.Context, userID uuid.UUID) (*entities.WalletSummary, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	balance, err := u.wallet.SumCompleted(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum completed transactions: %w", err)
	}
	pending, err := u.wallet.SumPendingCredits(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum pending credits: %w", err)
	}
	withdrawn, err := u.wallet.SumWithdrawn(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("sum withdrawals: %w", err)
	}

	return &entities.WalletSummary{
		Balance:        balance,
		PendingCredits: pending,
		TotalEarnings:  user.TotalEarnings,
		TotalWithdrawn: withdrawn,
	}, nil
}

// ListTransactions returns a member's ledger entries, newest first.
func (u *WalletUsecase) ListTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.WalletTransaction, int64, error) {
	return u.wallet.GetByUserID(ctx, userID, limit, offset)
}

// RequestWithdrawal appends a pending negative ledger row. The balance check
// and the append run in one transaction so two simultaneous requests cannot
// both pass the check against the same funds. The row stays pending until an
// admin approves the transfer.
func (u *WalletUsecase) RequestWithdrawal(ctx context.Context, userID uuid.UUID, input *entities.WithdrawalInput) (*entities.WalletTransaction, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status == entities.UserStatusSuspended {
		return nil, domainerrors.ErrAccountSuspended
	}
	if !user.BankName.Valid || !user.AccountNumber.Valid {
		return nil, domainerrors.BadRequest("bank details are required before withdrawing")
	}

	tx := &entities.WalletTransaction{
		UserID:      userID,
		Type:        entities.TransactionTypeWithdrawal,
		Amount:      -input.Amount,
		Description: "Withdrawal request",
		Status:      entities.TransactionStatusPending,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		balance, err := u.wallet.SumCompleted(txCtx, userID)
		if err != nil {
			return err
		}
		// Pending withdrawals also reduce what is available.
		reserved, err := u.wallet.SumPendingWithdrawals(txCtx, userID)
		if err != nil {
			return err
		}
		if balance-reserved < input.Amount {
			return domainerrors.ErrInsufficientFunds
		}
		return u.wallet.Append(txCtx, tx)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "withdrawal requested",
		zap.String("user_id", userID.String()),
		zap.Int64("amount", input.Amount),
	)
	return tx, nil
}

// ApproveWithdrawal settles a pending withdrawal row. Admin only.
func (u *WalletUsecase) ApproveWithdrawal(ctx context.Context, txID uuid.UUID) error {
	tx, err := u.wallet.GetByID(ctx, txID)
	if err != nil {
		return err
	}
	if tx.Type != entities.TransactionTypeWithdrawal || tx.Status != entities.TransactionStatusPending {
		return domainerrors.BadRequest("transaction is not a pending withdrawal")
	}
	return u.wallet.UpdateStatus(ctx, txID, entities.TransactionStatusCompleted)
}

// DeclineWithdrawal fails a pending withdrawal row, releasing its funds.
func (u *WalletUsecase) DeclineWithdrawal(ctx context.Context, txID uuid.UUID) error {
	tx, err := u.wallet.GetByID(ctx, txID)
	if err != nil {
		return err
	}
	if tx.Type != entities.TransactionTypeWithdrawal || tx.Status != entities.TransactionStatusPending {
		return domainerrors.BadRequest("transaction is not a pending withdrawal")
	}
	return u.wallet.UpdateStatus(ctx, txID, entities.TransactionStatusFailed)
}
