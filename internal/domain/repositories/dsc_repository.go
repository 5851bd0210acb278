package repositories

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/google/uuid"
)

// DSCRepository defines distributor service center data operations
type DSCRepository interface {
	Create(ctx context.Context, center *entities.DSCCenter) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DSCCenter, error)
	List(ctx context.Context, limit, offset int) ([]*entities.DSCCenter, int64, error)
	Update(ctx context.Context, center *entities.DSCCenter) error
	SetStatus(ctx context.Context, id uuid.UUID, status entities.DSCStatus) error
}
