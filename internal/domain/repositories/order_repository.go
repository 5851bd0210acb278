package repositories

import (
	"context"
	"time"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/google/uuid"
)

// OrderRepository defines order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error)
	List(ctx context.Context, paymentStatus string, limit, offset int) ([]*entities.Order, int64, error)
	AttachPaymentProof(ctx context.Context, id uuid.UUID, proofURL string) error
	// MarkVerified flips payment status to verified only from
	// awaiting-verification; returns ErrNotFound when no row transitions.
	MarkVerified(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error
	MarkRejected(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error
	UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status entities.OrderDeliveryStatus) error
	// ClaimForProcessing sets bonuses_processed_at on a verified order whose
	// marker is still null. Returns ErrDuplicateOrder when the order was
	// already claimed: the compensation engine's idempotency gate.
	ClaimForProcessing(ctx context.Context, id uuid.UUID, at time.Time) error
	// ExpirePending marks stale unpaid orders as expired, returning how many
	// rows transitioned.
	ExpirePending(ctx context.Context, olderThan time.Time, limit int) (int64, error)
	CountByPaymentStatus(ctx context.Context, status entities.OrderPaymentStatus) (int64, error)
	SumVerifiedAmount(ctx context.Context) (int64, error)
}
