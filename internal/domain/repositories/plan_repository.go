package repositories

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
)

// PlanRepository loads and stores the injected compensation configuration:
// the commission percentage table and the rank threshold table. Both are
// editable from the admin settings screen without code changes.
type PlanRepository interface {
	GetPlan(ctx context.Context) (*entities.CompensationPlan, error)
	SavePlan(ctx context.Context, plan *entities.CompensationPlan) error
	GetRanks(ctx context.Context) ([]entities.Rank, error)
	SaveRanks(ctx context.Context, ranks []entities.Rank) error
}
