package repositories

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/google/uuid"
)

// ReferralRepository defines referral network data operations
type ReferralRepository interface {
	Create(ctx context.Context, referral *entities.Referral) error
	GetByReferrer(ctx context.Context, referrerID uuid.UUID, level int, limit, offset int) ([]*entities.Referral, int64, error)
	GetDirectReferrals(ctx context.Context, referrerID uuid.UUID) ([]*entities.Referral, error)
	// AddCommission accumulates commission-to-date on the (referrer, referred)
	// edge.
	AddCommission(ctx context.Context, referrerID, referredID uuid.UUID, amount int64) error
	CountByReferrer(ctx context.Context, referrerID uuid.UUID) (int64, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Referral, int64, error)
}
