package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/InusahIbraheem/solid-life-web/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// keyedMutex serializes work per user id. Two concurrent orders for the same
// buyer must not interleave rank evaluation, or a threshold crossed by their
// combined PV could award the achievement bonus twice.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (k *keyedMutex) lock(id uuid.UUID) func() {
	k.mu.Lock()
	m, ok := k.locks[id]
	if !ok {
		m = &sync.Mutex{}
		k.locks[id] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// CompensationUsecase is the single entry point of the compensation engine:
// given a verified order it walks the upline, computes commission lines,
// evaluates rank transitions and writes the resulting ledger mutations in one
// all-or-nothing transaction. Safe to call more than once per order; only the
// first call pays.
type CompensationUsecase struct {
	orders    repositories.OrderRepository
	users     repositories.UserRepository
	plans     repositories.PlanRepository
	wallet    repositories.WalletRepository
	uow       repositories.UnitOfWork
	walker    *UplineWalker
	calc      *CommissionCalculator
	evaluator *RankEvaluator
	ledger    *LedgerEngine

	maxUplineDepth int
	rankRetries    int
	buyerLocks     *keyedMutex
}

// NewCompensationUsecase creates a new compensation orchestrator
func NewCompensationUsecase(
	orders repositories.OrderRepository,
	users repositories.UserRepository,
	plans repositories.PlanRepository,
	wallet repositories.WalletRepository,
	referrals repositories.ReferralRepository,
	uow repositories.UnitOfWork,
	maxUplineDepth int,
	rankRetries int,
) *CompensationUsecase {
	if maxUplineDepth <= 0 {
		maxUplineDepth = 10
	}
	if rankRetries <= 0 {
		rankRetries = 3
	}
	return &CompensationUsecase{
		orders:         orders,
		users:          users,
		plans:          plans,
		wallet:         wallet,
		uow:            uow,
		walker:         NewUplineWalker(users),
		calc:           NewCommissionCalculator(),
		evaluator:      NewRankEvaluator(),
		ledger:         NewLedgerEngine(users, wallet, referrals),
		maxUplineDepth: maxUplineDepth,
		rankRetries:    rankRetries,
		buyerLocks:     newKeyedMutex(),
	}
}

// Apply processes the compensation for a verified order and returns the
// ledger transactions it produced. Re-applying an already-processed order is
// a no-op that returns the previously recorded transactions. A persistence
// conflict (concurrent rank update from another order in the same upline) is
// retried a bounded number of times before surfacing.
func (u *CompensationUsecase) Apply(ctx context.Context, orderID uuid.UUID) ([]*entities.WalletTransaction, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order %s: %w", orderID, err)
	}
	if order.PaymentStatus != entities.OrderPaymentVerified {
		return nil, domainerrors.BadRequest("order payment is not verified")
	}

	unlock := u.buyerLocks.lock(order.UserID)
	defer unlock()

	if order.BonusesProcessedAt != nil {
		return u.wallet.GetBySourceOrder(ctx, orderID)
	}

	event := entities.VerifiedOrderEvent{
		OrderID:    order.ID,
		BuyerID:    order.UserID,
		Amount:     order.Amount,
		PointValue: order.PointsEarned,
		SelfRetail: order.SelfRetail,
		Timestamp:  time.Now(),
	}

	var txs []*entities.WalletTransaction
	for attempt := 0; ; attempt++ {
		txs, err = u.applyOnce(ctx, event)
		if err == nil {
			break
		}
		if errors.Is(err, domainerrors.ErrDuplicateOrder) {
			// Lost the race to another worker; hand back what it wrote.
			return u.wallet.GetBySourceOrder(ctx, orderID)
		}
		if errors.Is(err, domainerrors.ErrPersistenceConflict) && attempt < u.rankRetries {
			logger.Warn(ctx, "compensation apply conflict, retrying",
				zap.String("order_id", orderID.String()),
				zap.Int("attempt", attempt+1),
			)
			time.Sleep(time.Duration(attempt+1) * 25 * time.Millisecond)
			continue
		}
		return nil, err
	}

	logger.Info(ctx, "order compensation applied",
		zap.String("order_id", orderID.String()),
		zap.String("buyer_id", order.UserID.String()),
		zap.Int("transactions", len(txs)),
	)
	return txs, nil
}

// applyOnce runs the full computation inside one unit of work. Every write
// (ledger rows, PV, earnings, rank, claim marker) commits together or not at
// all; pending rows act as the staging list and are settled as the final step
// once all computation has succeeded.
func (u *CompensationUsecase) applyOnce(ctx context.Context, event entities.VerifiedOrderEvent) ([]*entities.WalletTransaction, error) {
	plan, err := u.plans.GetPlan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load compensation plan: %w", err)
	}
	if err := ValidatePlan(plan); err != nil {
		return nil, err
	}

	depth := plan.MaxDepth()
	if depth < 1 {
		depth = 1 // the sponsor bonus always needs the level-1 ancestor
	}
	if depth > u.maxUplineDepth {
		depth = u.maxUplineDepth
	}
	upline, err := u.walker.Walk(ctx, event.BuyerID, depth)
	if err != nil {
		return nil, err
	}

	lines, err := u.calc.Calculate(event, upline, plan)
	if err != nil {
		return nil, err
	}

	var txs []*entities.WalletTransaction
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.orders.ClaimForProcessing(txCtx, event.OrderID, time.Now()); err != nil {
			return err
		}

		txs, err = u.ledger.Append(txCtx, event, upline, lines, plan)
		if err != nil {
			return err
		}

		rankTxs, err := u.evaluateRanks(txCtx, event, upline, plan)
		if err != nil {
			return err
		}
		txs = append(txs, rankTxs...)

		return u.wallet.MarkCompletedBySourceOrder(txCtx, event.OrderID)
	})
	if err != nil {
		return nil, err
	}

	for _, tx := range txs {
		tx.Status = entities.TransactionStatusCompleted
	}
	return txs, nil
}

// evaluateRanks promotes the buyer (and, under team-volume roll-up, the
// commission-bearing upline) one rung at a time until stable, emitting each
// rank's one-time achievement bonus exactly once. The rank write is a
// compare-and-set against the rank read in this transaction; a concurrent
// promotion surfaces as ErrPersistenceConflict and aborts the whole apply.
func (u *CompensationUsecase) evaluateRanks(
	ctx context.Context,
	event entities.VerifiedOrderEvent,
	upline []entities.UplineEntry,
	plan *entities.CompensationPlan,
) ([]*entities.WalletTransaction, error) {
	candidates := []uuid.UUID{event.BuyerID}
	if plan.TeamVolumeRollup {
		for _, ancestor := range upline {
			candidates = append(candidates, ancestor.UserID)
		}
	}

	var txs []*entities.WalletTransaction
	for _, userID := range candidates {
		for {
			user, err := u.users.GetByID(ctx, userID)
			if err != nil {
				return nil, fmt.Errorf("load member %s for rank evaluation: %w", userID, err)
			}

			next := u.evaluator.Evaluate(user.Rank, user.PointVolume, plan)
			if next == nil {
				break
			}

			if err := u.users.CompareAndSetRank(ctx, userID, user.Rank, next.Name); err != nil {
				return nil, fmt.Errorf("promote %s to %s: %w", userID, next.Name, err)
			}

			line := u.evaluator.AchievementLine(userID, event.OrderID, *next, user.PointVolume, plan)
			if line.Amount <= 0 {
				continue
			}
			orderID := line.OrderID
			tx := &entities.WalletTransaction{
				UserID:        line.Beneficiary,
				Type:          entities.TransactionTypeBonus,
				Amount:        line.Amount,
				Description:   line.Description,
				Reason:        line.LedgerReason(),
				SourceOrderID: &orderID,
				Status:        entities.TransactionStatusPending,
			}
			if err := u.wallet.Append(ctx, tx); err != nil {
				return nil, fmt.Errorf("append achievement bonus for %s: %w", userID, err)
			}
			if err := u.users.AddEarnings(ctx, userID, line.Amount); err != nil {
				return nil, fmt.Errorf("accrue achievement earnings for %s: %w", userID, err)
			}
			txs = append(txs, tx)
		}
	}
	return txs, nil
}
