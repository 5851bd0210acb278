package repositories

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/google/uuid"
)

// RegistrationRepository defines registration payment data operations
type RegistrationRepository interface {
	Create(ctx context.Context, reg *entities.Registration) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Registration, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Registration, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entities.Registration, int64, error)
	AttachPaymentProof(ctx context.Context, id uuid.UUID, proofURL string) error
	MarkVerified(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error
	MarkRejected(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error
}
