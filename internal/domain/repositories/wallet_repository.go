package repositories

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/google/uuid"
)

// WalletRepository defines operations on the append-only transaction ledger.
// There is no update of amounts: rows are inserted once and only their status
// may move pending -> completed/failed.
type WalletRepository interface {
	Append(ctx context.Context, tx *entities.WalletTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.WalletTransaction, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.WalletTransaction, int64, error)
	GetBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]*entities.WalletTransaction, error)
	// SumCompleted returns the user's derived balance: the sum of completed
	// transaction amounts.
	SumCompleted(ctx context.Context, userID uuid.UUID) (int64, error)
	SumPendingCredits(ctx context.Context, userID uuid.UUID) (int64, error)
	// SumPendingWithdrawals returns the absolute value of queued withdrawal
	// requests, so they reserve funds until approved or declined.
	SumPendingWithdrawals(ctx context.Context, userID uuid.UUID) (int64, error)
	SumWithdrawn(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) error
	// MarkCompletedBySourceOrder settles every pending ledger row written for
	// an order.
	MarkCompletedBySourceOrder(ctx context.Context, orderID uuid.UUID) error
}
