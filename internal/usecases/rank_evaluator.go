package usecases

import (
	"fmt"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/InusahIbraheem/solid-life-web/pkg/utils"
	"github.com/google/uuid"
)

// RankEvaluator decides rank transitions on the configured ladder. Ranks are
// monotonic: there is no demotion path, and a transition moves exactly one
// step per call. The orchestrator re-invokes evaluation until stable so that
// an order crossing two thresholds at once still awards every intermediate
// rank's one-time bonus.
type RankEvaluator struct{}

// NewRankEvaluator creates a new rank evaluator
func NewRankEvaluator() *RankEvaluator {
	return &RankEvaluator{}
}

// Evaluate returns the next rank when the member's cumulative PV has crossed
// the threshold directly above currentRank, or nil when no promotion is due.
// An unknown currentRank is treated as the bottom of the ladder.
func (e *RankEvaluator) Evaluate(currentRank string, pointVolume int64, plan *entities.CompensationPlan) *entities.Rank {
	if len(plan.Ranks) == 0 {
		return nil
	}

	pos := 0 // index into the ladder; unknown ranks start at the bottom
	for i, r := range plan.Ranks {
		if r.Name == currentRank {
			pos = i
			break
		}
	}

	if pos+1 >= len(plan.Ranks) {
		return nil
	}
	next := plan.Ranks[pos+1]
	if pointVolume >= next.ThresholdPV {
		return &next
	}
	return nil
}

// AchievementLine builds the one-time bonus emitted on promotion: the rank's
// achievement rate applied to the member's qualifying sales volume, valued at
// the plan's naira-per-point.
func (e *RankEvaluator) AchievementLine(
	userID uuid.UUID,
	orderID uuid.UUID,
	rank entities.Rank,
	pointVolume int64,
	plan *entities.CompensationPlan,
) entities.CommissionLine {
	volume := pointVolume * plan.NairaPerPoint
	return entities.CommissionLine{
		Beneficiary: userID,
		Amount:      utils.ApplyRateBps(volume, rank.AchievementBps),
		Reason:      entities.ReasonAchievement,
		Rank:        rank.Name,
		OrderID:     orderID,
		Description: fmt.Sprintf("%s achievement bonus", rank.Name),
	}
}
