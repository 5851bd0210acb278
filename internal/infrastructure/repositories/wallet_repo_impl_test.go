package repositories

import (
	"context"
	"testing"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletRepository_AppendDeduplicatesByOrderAndReason(t *testing.T) {
	db := newTestDB(t)
	createWalletTransactionsTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	orderID := uuid.New()

	tx := &entities.WalletTransaction{
		UserID:        userID,
		Type:          entities.TransactionTypeCommission,
		Amount:        3300,
		Reason:        "SPONSOR_BONUS",
		SourceOrderID: &orderID,
		Status:        entities.TransactionStatusPending,
	}
	require.NoError(t, repo.Append(ctx, tx))

	replay := &entities.WalletTransaction{
		UserID:        userID,
		Type:          entities.TransactionTypeCommission,
		Amount:        3300,
		Reason:        "SPONSOR_BONUS",
		SourceOrderID: &orderID,
		Status:        entities.TransactionStatusPending,
	}
	assert.ErrorIs(t, repo.Append(ctx, replay), domainerrors.ErrAlreadyExists)

	// A different rule for the same order is a separate row.
	other := &entities.WalletTransaction{
		UserID:        userID,
		Type:          entities.TransactionTypeCommission,
		Amount:        700,
		Reason:        "LEVEL_OVERRIDE_L1",
		SourceOrderID: &orderID,
		Status:        entities.TransactionStatusPending,
	}
	require.NoError(t, repo.Append(ctx, other))

	rows, err := repo.GetBySourceOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestWalletRepository_Sums(t *testing.T) {
	db := newTestDB(t)
	createWalletTransactionsTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	seed := func(txType entities.TransactionType, amount int64, status entities.TransactionStatus) {
		orderID := uuid.New()
		require.NoError(t, repo.Append(ctx, &entities.WalletTransaction{
			UserID:        userID,
			Type:          txType,
			Amount:        amount,
			Reason:        "SPONSOR_BONUS",
			SourceOrderID: &orderID,
			Status:        status,
		}))
	}

	seed(entities.TransactionTypeCommission, 5000, entities.TransactionStatusCompleted)
	seed(entities.TransactionTypeBonus, 2000, entities.TransactionStatusCompleted)
	seed(entities.TransactionTypeCommission, 1500, entities.TransactionStatusPending)
	seed(entities.TransactionTypeWithdrawal, -3000, entities.TransactionStatusCompleted)
	seed(entities.TransactionTypeWithdrawal, -1000, entities.TransactionStatusPending)

	balance, err := repo.SumCompleted(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), balance) // 5000 + 2000 - 3000

	pending, err := repo.SumPendingCredits(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), pending)

	reserved, err := repo.SumPendingWithdrawals(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), reserved)

	withdrawn, err := repo.SumWithdrawn(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3000), withdrawn)
}

func TestWalletRepository_MarkCompletedBySourceOrder(t *testing.T) {
	db := newTestDB(t)
	createWalletTransactionsTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	orderID := uuid.New()
	otherOrderID := uuid.New()

	for i, orderRef := range []*uuid.UUID{&orderID, &orderID, &otherOrderID} {
		reason := []string{"SPONSOR_BONUS", "LEVEL_OVERRIDE_L1", "SPONSOR_BONUS"}[i]
		require.NoError(t, repo.Append(ctx, &entities.WalletTransaction{
			UserID:        uuid.New(),
			Type:          entities.TransactionTypeCommission,
			Amount:        1000,
			Reason:        reason,
			SourceOrderID: orderRef,
			Status:        entities.TransactionStatusPending,
		}))
	}

	require.NoError(t, repo.MarkCompletedBySourceOrder(ctx, orderID))

	settled, err := repo.GetBySourceOrder(ctx, orderID)
	require.NoError(t, err)
	for _, tx := range settled {
		assert.Equal(t, entities.TransactionStatusCompleted, tx.Status)
	}

	untouched, err := repo.GetBySourceOrder(ctx, otherOrderID)
	require.NoError(t, err)
	require.Len(t, untouched, 1)
	assert.Equal(t, entities.TransactionStatusPending, untouched[0].Status)
}

func TestWalletRepository_UpdateStatus(t *testing.T) {
	db := newTestDB(t)
	createWalletTransactionsTable(t, db)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	tx := &entities.WalletTransaction{
		UserID: uuid.New(),
		Type:   entities.TransactionTypeWithdrawal,
		Amount: -2000,
		Status: entities.TransactionStatusPending,
	}
	require.NoError(t, repo.Append(ctx, tx))

	require.NoError(t, repo.UpdateStatus(ctx, tx.ID, entities.TransactionStatusFailed))

	got, err := repo.GetByID(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.TransactionStatusFailed, got.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entities.TransactionStatusCompleted), domainerrors.ErrNotFound)
}
