package repositories

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/google/uuid"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByReferralCode(ctx context.Context, code string) (*entities.User, error)
	// GetSponsorID resolves the sponsor edge without loading the whole record.
	// Returns nil when the user is a root (no sponsor).
	GetSponsorID(ctx context.Context, id uuid.UUID) (*uuid.UUID, error)
	List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetKYCVerified(ctx context.Context, id uuid.UUID, verified bool) error
	SetStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error
	// AddPointVolume atomically increments a user's cumulative PV.
	AddPointVolume(ctx context.Context, id uuid.UUID, points int64) error
	// AddEarnings atomically increments a user's lifetime earnings total.
	AddEarnings(ctx context.Context, id uuid.UUID, amount int64) error
	// CompareAndSetRank updates rank only if the stored rank still equals
	// expected; returns ErrPersistenceConflict otherwise. Serializes rank-up
	// against concurrent orders for the same user.
	CompareAndSetRank(ctx context.Context, id uuid.UUID, expected, next string) error
	CountAll(ctx context.Context) (int64, error)
}
