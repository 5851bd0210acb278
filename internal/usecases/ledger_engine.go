package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/InusahIbraheem/solid-life-web/pkg/logger"
	"go.uber.org/zap"
)

// LedgerEngine applies computed commission lines to the wallet ledger. It
// only ever appends transactions; balances are derived downstream from the
// sum of completed rows. Must run inside the orchestrator's unit of work so
// a failure rolls back every row of the order together.
type LedgerEngine struct {
	users     repositories.UserRepository
	wallet    repositories.WalletRepository
	referrals repositories.ReferralRepository
}

// NewLedgerEngine creates a new ledger engine
func NewLedgerEngine(
	users repositories.UserRepository,
	wallet repositories.WalletRepository,
	referrals repositories.ReferralRepository,
) *LedgerEngine {
	return &LedgerEngine{users: users, wallet: wallet, referrals: referrals}
}

// transactionType maps a commission reason to its ledger transaction type.
func transactionType(reason entities.CommissionReason) entities.TransactionType {
	switch reason {
	case entities.ReasonLevelOverride:
		return entities.TransactionTypeCommission
	case entities.ReasonSponsorBonus:
		return entities.TransactionTypeReferral
	default:
		return entities.TransactionTypeBonus
	}
}

// Append writes one pending WalletTransaction per line and accrues the
// order's PV to the buyer (and, when team-volume roll-up is enabled, to the
// commission-bearing upline). A line whose beneficiary has no user record is
// skipped with a log entry: one corrupt edge must not block paying the other,
// valid beneficiaries. Everything else is fatal and rolls back the caller's
// transaction.
func (e *LedgerEngine) Append(
	ctx context.Context,
	event entities.VerifiedOrderEvent,
	upline []entities.UplineEntry,
	lines []entities.CommissionLine,
	plan *entities.CompensationPlan,
) ([]*entities.WalletTransaction, error) {
	var txs []*entities.WalletTransaction

	for _, line := range lines {
		if line.Amount < 0 {
			return nil, fmt.Errorf("line %s for %s has negative amount %d: %w",
				line.Reason, line.Beneficiary, line.Amount, domainerrors.ErrInvalidPlan)
		}

		if _, err := e.users.GetByID(ctx, line.Beneficiary); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				logger.Warn(ctx, "skipping commission line: beneficiary not found",
					zap.String("beneficiary", line.Beneficiary.String()),
					zap.String("order_id", line.OrderID.String()),
					zap.String("reason", line.LedgerReason()),
				)
				continue
			}
			return nil, fmt.Errorf("load beneficiary %s: %w", line.Beneficiary, err)
		}

		orderID := line.OrderID
		tx := &entities.WalletTransaction{
			UserID:        line.Beneficiary,
			Type:          transactionType(line.Reason),
			Amount:        line.Amount,
			Description:   line.Description,
			Reason:        line.LedgerReason(),
			SourceOrderID: &orderID,
			Status:        entities.TransactionStatusPending,
		}
		if err := e.wallet.Append(ctx, tx); err != nil {
			return nil, fmt.Errorf("append %s for %s: %w", tx.Reason, line.Beneficiary, err)
		}
		txs = append(txs, tx)

		if err := e.users.AddEarnings(ctx, line.Beneficiary, line.Amount); err != nil {
			return nil, fmt.Errorf("accrue earnings for %s: %w", line.Beneficiary, err)
		}

		// Upline payouts also roll into the referral edge's commission-to-date.
		if line.Beneficiary != event.BuyerID {
			if err := e.referrals.AddCommission(ctx, line.Beneficiary, event.BuyerID, line.Amount); err != nil {
				return nil, fmt.Errorf("accrue referral commission for %s: %w", line.Beneficiary, err)
			}
		}
	}

	if event.PointValue > 0 {
		if err := e.users.AddPointVolume(ctx, event.BuyerID, event.PointValue); err != nil {
			return nil, fmt.Errorf("accrue point volume for buyer %s: %w", event.BuyerID, err)
		}
		if plan.TeamVolumeRollup {
			for _, ancestor := range upline {
				if ancestor.Level > plan.MaxDepth() {
					break
				}
				if err := e.users.AddPointVolume(ctx, ancestor.UserID, event.PointValue); err != nil {
					return nil, fmt.Errorf("roll up point volume to %s: %w", ancestor.UserID, err)
				}
			}
		}
	}

	return txs, nil
}
