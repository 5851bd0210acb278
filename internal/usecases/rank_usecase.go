package usecases

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/google/uuid"
)

// RankUsecase serves the member's level-progress screen
type RankUsecase struct {
	users repositories.UserRepository
	plans repositories.PlanRepository
}

// NewRankUsecase creates a new rank usecase
func NewRankUsecase(users repositories.UserRepository, plans repositories.PlanRepository) *RankUsecase {
	return &RankUsecase{users: users, plans: plans}
}

// GetProgress returns where the member stands on the ladder and how far the
// next rank is. Progress is measured from the current rank's threshold to the
// next one's.
func (u *RankUsecase) GetProgress(ctx context.Context, userID uuid.UUID) (*entities.RankProgress, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ranks, err := u.plans.GetRanks(ctx)
	if err != nil {
		return nil, err
	}

	progress := &entities.RankProgress{
		CurrentRank: user.Rank,
		PointVolume: user.PointVolume,
		Ranks:       ranks,
	}
	if len(ranks) == 0 {
		return progress, nil
	}

	pos := 0
	for i, r := range ranks {
		if r.Name == user.Rank {
			pos = i
			break
		}
	}
	if progress.CurrentRank == "" {
		progress.CurrentRank = ranks[pos].Name
	}

	if pos+1 < len(ranks) {
		next := ranks[pos+1]
		progress.NextRank = next.Name
		progress.NextRankPV = next.ThresholdPV

		base := ranks[pos].ThresholdPV
		span := next.ThresholdPV - base
		if span > 0 {
			pct := (user.PointVolume - base) * 100 / span
			if pct < 0 {
				pct = 0
			}
			if pct > 100 {
				pct = 100
			}
			progress.ProgressPct = int(pct)
		}
	} else {
		progress.ProgressPct = 100
	}

	return progress, nil
}
