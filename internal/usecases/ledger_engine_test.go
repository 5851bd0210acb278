package usecases_test

import (
	"context"
	"testing"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedgerEngine_WritesPendingRowsAndAccruals(t *testing.T) {
	users := new(MockUserRepository)
	wallet := new(MockWalletRepository)
	referrals := new(MockReferralRepository)
	engine := usecases.NewLedgerEngine(users, wallet, referrals)

	buyer, sponsor := uuid.New(), uuid.New()
	orderID := uuid.New()
	event := entities.VerifiedOrderEvent{OrderID: orderID, BuyerID: buyer, Amount: 10000, PointValue: 25}
	lines := []entities.CommissionLine{
		{Beneficiary: buyer, Amount: 1000, Reason: entities.ReasonPersonalPurchase, OrderID: orderID},
		{Beneficiary: sponsor, Amount: 3300, Reason: entities.ReasonSponsorBonus, OrderID: orderID},
	}

	users.On("GetByID", mock.Anything, buyer).Return(&entities.User{ID: buyer}, nil).Once()
	users.On("GetByID", mock.Anything, sponsor).Return(&entities.User{ID: sponsor}, nil).Once()
	wallet.On("Append", mock.Anything, mock.AnythingOfType("*entities.WalletTransaction")).Return(nil).Twice()
	users.On("AddEarnings", mock.Anything, buyer, int64(1000)).Return(nil).Once()
	users.On("AddEarnings", mock.Anything, sponsor, int64(3300)).Return(nil).Once()
	referrals.On("AddCommission", mock.Anything, sponsor, buyer, int64(3300)).Return(nil).Once()
	users.On("AddPointVolume", mock.Anything, buyer, int64(25)).Return(nil).Once()

	txs, err := engine.Append(context.Background(), event, nil, lines, testPlan())
	require.NoError(t, err)
	require.Len(t, txs, 2)

	for _, tx := range txs {
		assert.Equal(t, entities.TransactionStatusPending, tx.Status)
		require.NotNil(t, tx.SourceOrderID)
		assert.Equal(t, orderID, *tx.SourceOrderID)
	}
	users.AssertExpectations(t)
	wallet.AssertExpectations(t)
	referrals.AssertExpectations(t)
}

func TestLedgerEngine_SkipsUnknownBeneficiary(t *testing.T) {
	users := new(MockUserRepository)
	wallet := new(MockWalletRepository)
	referrals := new(MockReferralRepository)
	engine := usecases.NewLedgerEngine(users, wallet, referrals)

	buyer, ghost := uuid.New(), uuid.New()
	orderID := uuid.New()
	event := entities.VerifiedOrderEvent{OrderID: orderID, BuyerID: buyer, Amount: 10000}
	lines := []entities.CommissionLine{
		{Beneficiary: ghost, Amount: 700, Reason: entities.ReasonLevelOverride, Level: 1, OrderID: orderID},
		{Beneficiary: buyer, Amount: 1000, Reason: entities.ReasonPersonalPurchase, OrderID: orderID},
	}

	users.On("GetByID", mock.Anything, ghost).Return(nil, domainerrors.ErrNotFound).Once()
	users.On("GetByID", mock.Anything, buyer).Return(&entities.User{ID: buyer}, nil).Once()
	wallet.On("Append", mock.Anything, mock.AnythingOfType("*entities.WalletTransaction")).Return(nil).Once()
	users.On("AddEarnings", mock.Anything, buyer, int64(1000)).Return(nil).Once()

	txs, err := engine.Append(context.Background(), event, nil, lines, testPlan())
	require.NoError(t, err)

	// The corrupt edge is dropped; the valid beneficiary is still paid.
	require.Len(t, txs, 1)
	assert.Equal(t, buyer, txs[0].UserID)
	wallet.AssertNumberOfCalls(t, "Append", 1)
}

func TestLedgerEngine_NegativeAmountIsFatal(t *testing.T) {
	engine := usecases.NewLedgerEngine(new(MockUserRepository), new(MockWalletRepository), new(MockReferralRepository))

	orderID := uuid.New()
	event := entities.VerifiedOrderEvent{OrderID: orderID, BuyerID: uuid.New(), Amount: 10000}
	lines := []entities.CommissionLine{
		{Beneficiary: uuid.New(), Amount: -1, Reason: entities.ReasonSponsorBonus, OrderID: orderID},
	}

	_, err := engine.Append(context.Background(), event, nil, lines, testPlan())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlan)
}

func TestLedgerEngine_RollsUpPointVolumeWhenEnabled(t *testing.T) {
	users := new(MockUserRepository)
	wallet := new(MockWalletRepository)
	referrals := new(MockReferralRepository)
	engine := usecases.NewLedgerEngine(users, wallet, referrals)

	buyer, a1, a2 := uuid.New(), uuid.New(), uuid.New()
	plan := testPlan()
	plan.TeamVolumeRollup = true
	event := entities.VerifiedOrderEvent{OrderID: uuid.New(), BuyerID: buyer, Amount: 5000, PointValue: 40}
	upline := []entities.UplineEntry{
		{UserID: a1, Level: 1},
		{UserID: a2, Level: 2},
	}

	users.On("AddPointVolume", mock.Anything, buyer, int64(40)).Return(nil).Once()
	users.On("AddPointVolume", mock.Anything, a1, int64(40)).Return(nil).Once()
	users.On("AddPointVolume", mock.Anything, a2, int64(40)).Return(nil).Once()

	_, err := engine.Append(context.Background(), event, upline, nil, plan)
	require.NoError(t, err)
	users.AssertExpectations(t)
}

func TestLedgerEngine_NoRollupByDefault(t *testing.T) {
	users := new(MockUserRepository)
	engine := usecases.NewLedgerEngine(users, new(MockWalletRepository), new(MockReferralRepository))

	buyer := uuid.New()
	event := entities.VerifiedOrderEvent{OrderID: uuid.New(), BuyerID: buyer, Amount: 5000, PointValue: 40}
	upline := []entities.UplineEntry{{UserID: uuid.New(), Level: 1}}

	users.On("AddPointVolume", mock.Anything, buyer, int64(40)).Return(nil).Once()

	_, err := engine.Append(context.Background(), event, upline, nil, testPlan())
	require.NoError(t, err)
	users.AssertNumberOfCalls(t, "AddPointVolume", 1)
}
