package usecases

import (
	"fmt"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/pkg/utils"
)

// CommissionCalculator turns a verified order and an upline snapshot into
// commission line items. It is a pure function of its inputs: the same order
// and upline always produce the identical list, which is what makes replay
// and idempotence testing possible. Achievement bonuses are not computed
// here; they are emitted lazily by rank evaluation.
type CommissionCalculator struct{}

// NewCommissionCalculator creates a new commission calculator
func NewCommissionCalculator() *CommissionCalculator {
	return &CommissionCalculator{}
}

// ValidatePlan rejects configurations that could pay corrupted amounts.
// Every rate must be non-negative and the sum of all per-order rates must
// stay within the payout cap, so no percentage table can ever pay out more
// than the configured share of an order.
func ValidatePlan(plan *entities.CompensationPlan) error {
	if plan == nil {
		return fmt.Errorf("plan is nil: %w", domainerrors.ErrInvalidPlan)
	}
	if plan.RetailProfitBps < 0 || plan.PersonalPurchaseBps < 0 || plan.SponsorBonusBps < 0 {
		return fmt.Errorf("negative commission rate: %w", domainerrors.ErrInvalidPlan)
	}
	for i, r := range plan.LevelRatesBps {
		if r < 0 {
			return fmt.Errorf("negative level %d override rate: %w", i+1, domainerrors.ErrInvalidPlan)
		}
	}
	if plan.NairaPerPoint <= 0 {
		return fmt.Errorf("naira-per-point must be positive: %w", domainerrors.ErrInvalidPlan)
	}
	if plan.PayoutCapBps <= 0 || plan.PayoutCapBps > 10000 {
		return fmt.Errorf("payout cap %d out of range: %w", plan.PayoutCapBps, domainerrors.ErrInvalidPlan)
	}
	if total := plan.TotalRateBps(); total > plan.PayoutCapBps {
		return fmt.Errorf("total rate %dbps exceeds payout cap %dbps: %w",
			total, plan.PayoutCapBps, domainerrors.ErrInvalidPlan)
	}
	for _, r := range plan.Ranks {
		if r.AchievementBps < 0 {
			return fmt.Errorf("negative achievement rate for rank %s: %w", r.Name, domainerrors.ErrInvalidPlan)
		}
	}
	for i := 1; i < len(plan.Ranks); i++ {
		if plan.Ranks[i].ThresholdPV <= plan.Ranks[i-1].ThresholdPV {
			return fmt.Errorf("rank thresholds must be strictly increasing at %s: %w",
				plan.Ranks[i].Name, domainerrors.ErrInvalidPlan)
		}
	}
	return nil
}

// Calculate produces the per-order commission lines:
//
//   - retail profit to the buyer when the buyer is the seller-of-record
//   - personal-purchase bonus to the buyer, regardless of upline
//   - sponsor bonus to the direct sponsor, distinct from the level-1 override
//   - one override per configured level where an ancestor exists
//
// Amounts are whole naira, rounded half up per line. Zero-amount lines are
// dropped rather than written to the ledger.
func (c *CommissionCalculator) Calculate(
	event entities.VerifiedOrderEvent,
	upline []entities.UplineEntry,
	plan *entities.CompensationPlan,
) ([]entities.CommissionLine, error) {
	if err := ValidatePlan(plan); err != nil {
		return nil, err
	}
	if event.Amount <= 0 {
		return nil, fmt.Errorf("order %s has non-positive amount %d: %w",
			event.OrderID, event.Amount, domainerrors.ErrInvalidPlan)
	}
	if event.PointValue < 0 {
		return nil, fmt.Errorf("order %s has negative point value %d: %w",
			event.OrderID, event.PointValue, domainerrors.ErrInvalidPlan)
	}

	var lines []entities.CommissionLine

	appendLine := func(l entities.CommissionLine) {
		if l.Amount > 0 {
			lines = append(lines, l)
		}
	}

	if event.SelfRetail {
		appendLine(entities.CommissionLine{
			Beneficiary: event.BuyerID,
			Amount:      utils.ApplyRateBps(event.Amount, plan.RetailProfitBps),
			Reason:      entities.ReasonRetailProfit,
			OrderID:     event.OrderID,
			Description: "Retail profit on own sale",
		})
	}

	appendLine(entities.CommissionLine{
		Beneficiary: event.BuyerID,
		Amount:      utils.ApplyRateBps(event.Amount, plan.PersonalPurchaseBps),
		Reason:      entities.ReasonPersonalPurchase,
		OrderID:     event.OrderID,
		Description: "Personal purchase bonus",
	})

	for _, ancestor := range upline {
		if ancestor.Level == 1 {
			appendLine(entities.CommissionLine{
				Beneficiary: ancestor.UserID,
				Amount:      utils.ApplyRateBps(event.Amount, plan.SponsorBonusBps),
				Reason:      entities.ReasonSponsorBonus,
				OrderID:     event.OrderID,
				Description: "Sponsor bonus",
			})
		}
		if ancestor.Level <= len(plan.LevelRatesBps) {
			appendLine(entities.CommissionLine{
				Beneficiary: ancestor.UserID,
				Amount:      utils.ApplyRateBps(event.Amount, plan.LevelRatesBps[ancestor.Level-1]),
				Reason:      entities.ReasonLevelOverride,
				Level:       ancestor.Level,
				OrderID:     event.OrderID,
				Description: fmt.Sprintf("Level %d override", ancestor.Level),
			})
		}
	}

	return lines, nil
}
