package usecases_test

import (
	"testing"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPlan mirrors the production default: 20% retail, 10% personal, 33%
// sponsor, 7/5/3% overrides, PV valued at 420 naira.
func testPlan() *entities.CompensationPlan {
	return &entities.CompensationPlan{
		RetailProfitBps:     2000,
		PersonalPurchaseBps: 1000,
		SponsorBonusBps:     3300,
		LevelRatesBps:       []int{700, 500, 300},
		NairaPerPoint:       420,
		PayoutCapBps:        10000,
		Ranks: []entities.Rank{
			{Name: entities.RankJunior, Position: 1, ThresholdPV: 0, AchievementBps: 0},
			{Name: entities.RankEmerald, Position: 2, ThresholdPV: 5000, AchievementBps: 500},
			{Name: entities.RankGold, Position: 3, ThresholdPV: 15000, AchievementBps: 400},
			{Name: entities.RankDiamond1, Position: 4, ThresholdPV: 50000, AchievementBps: 300},
		},
	}
}

func linesByReason(lines []entities.CommissionLine) map[string]entities.CommissionLine {
	m := make(map[string]entities.CommissionLine, len(lines))
	for _, l := range lines {
		m[l.LedgerReason()] = l
	}
	return m
}

func TestCalculate_RootBuyerGetsOnlyPersonalBonus(t *testing.T) {
	calc := usecases.NewCommissionCalculator()
	buyer := uuid.New()
	event := entities.VerifiedOrderEvent{
		OrderID:    uuid.New(),
		BuyerID:    buyer,
		Amount:     12500,
		PointValue: 15,
	}

	lines, err := calc.Calculate(event, nil, testPlan())
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, buyer, lines[0].Beneficiary)
	assert.Equal(t, entities.ReasonPersonalPurchase, lines[0].Reason)
	assert.Equal(t, int64(1250), lines[0].Amount)
}

func TestCalculate_ThreeDeepUpline(t *testing.T) {
	calc := usecases.NewCommissionCalculator()
	buyer := uuid.New()
	a1, a2, a3 := uuid.New(), uuid.New(), uuid.New()
	event := entities.VerifiedOrderEvent{
		OrderID: uuid.New(),
		BuyerID: buyer,
		Amount:  10000,
	}
	upline := []entities.UplineEntry{
		{UserID: a1, Level: 1},
		{UserID: a2, Level: 2},
		{UserID: a3, Level: 3},
	}

	lines, err := calc.Calculate(event, upline, testPlan())
	require.NoError(t, err)

	byReason := linesByReason(lines)
	require.Len(t, lines, 5)

	assert.Equal(t, int64(1000), byReason["PERSONAL_PURCHASE"].Amount)
	assert.Equal(t, buyer, byReason["PERSONAL_PURCHASE"].Beneficiary)

	assert.Equal(t, int64(3300), byReason["SPONSOR_BONUS"].Amount)
	assert.Equal(t, a1, byReason["SPONSOR_BONUS"].Beneficiary)

	assert.Equal(t, int64(700), byReason["LEVEL_OVERRIDE_L1"].Amount)
	assert.Equal(t, a1, byReason["LEVEL_OVERRIDE_L1"].Beneficiary)
	assert.Equal(t, int64(500), byReason["LEVEL_OVERRIDE_L2"].Amount)
	assert.Equal(t, a2, byReason["LEVEL_OVERRIDE_L2"].Beneficiary)
	assert.Equal(t, int64(300), byReason["LEVEL_OVERRIDE_L3"].Amount)
	assert.Equal(t, a3, byReason["LEVEL_OVERRIDE_L3"].Beneficiary)
}

func TestCalculate_SelfRetailAddsRetailProfit(t *testing.T) {
	calc := usecases.NewCommissionCalculator()
	buyer := uuid.New()
	event := entities.VerifiedOrderEvent{
		OrderID:    uuid.New(),
		BuyerID:    buyer,
		Amount:     10000,
		SelfRetail: true,
	}

	lines, err := calc.Calculate(event, nil, testPlan())
	require.NoError(t, err)

	byReason := linesByReason(lines)
	require.Len(t, lines, 2)
	assert.Equal(t, int64(2000), byReason["RETAIL_PROFIT"].Amount)
	assert.Equal(t, int64(1000), byReason["PERSONAL_PURCHASE"].Amount)
}

func TestCalculate_UplineBeyondConfiguredDepthGetsNothing(t *testing.T) {
	calc := usecases.NewCommissionCalculator()
	event := entities.VerifiedOrderEvent{
		OrderID: uuid.New(),
		BuyerID: uuid.New(),
		Amount:  10000,
	}
	upline := []entities.UplineEntry{
		{UserID: uuid.New(), Level: 1},
		{UserID: uuid.New(), Level: 2},
		{UserID: uuid.New(), Level: 3},
		{UserID: uuid.New(), Level: 4},
		{UserID: uuid.New(), Level: 5},
	}

	lines, err := calc.Calculate(event, upline, testPlan())
	require.NoError(t, err)

	for _, l := range lines {
		assert.LessOrEqual(t, l.Level, 3)
	}
}

func TestCalculate_RoundsHalfUpPerLine(t *testing.T) {
	calc := usecases.NewCommissionCalculator()
	plan := testPlan()
	// 333 naira at 7% = 23.31 -> 23; at 5% = 16.65 -> 17
	event := entities.VerifiedOrderEvent{
		OrderID: uuid.New(),
		BuyerID: uuid.New(),
		Amount:  333,
	}
	upline := []entities.UplineEntry{
		{UserID: uuid.New(), Level: 1},
		{UserID: uuid.New(), Level: 2},
	}

	lines, err := calc.Calculate(event, upline, plan)
	require.NoError(t, err)

	byReason := linesByReason(lines)
	assert.Equal(t, int64(23), byReason["LEVEL_OVERRIDE_L1"].Amount)
	assert.Equal(t, int64(17), byReason["LEVEL_OVERRIDE_L2"].Amount)
}

func TestCalculate_DropsZeroAmountLines(t *testing.T) {
	calc := usecases.NewCommissionCalculator()
	plan := testPlan()
	plan.PersonalPurchaseBps = 0

	event := entities.VerifiedOrderEvent{
		OrderID: uuid.New(),
		BuyerID: uuid.New(),
		Amount:  10000,
	}

	lines, err := calc.Calculate(event, nil, plan)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCalculate_IsDeterministic(t *testing.T) {
	calc := usecases.NewCommissionCalculator()
	event := entities.VerifiedOrderEvent{
		OrderID: uuid.New(),
		BuyerID: uuid.New(),
		Amount:  9999,
	}
	upline := []entities.UplineEntry{
		{UserID: uuid.New(), Level: 1},
		{UserID: uuid.New(), Level: 2},
	}

	first, err := calc.Calculate(event, upline, testPlan())
	require.NoError(t, err)
	second, err := calc.Calculate(event, upline, testPlan())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculate_RejectsNonPositiveAmount(t *testing.T) {
	calc := usecases.NewCommissionCalculator()
	event := entities.VerifiedOrderEvent{OrderID: uuid.New(), BuyerID: uuid.New(), Amount: 0}

	_, err := calc.Calculate(event, nil, testPlan())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlan)
}

func TestValidatePlan_RejectsBadTables(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entities.CompensationPlan)
	}{
		{"negative sponsor rate", func(p *entities.CompensationPlan) { p.SponsorBonusBps = -1 }},
		{"negative override rate", func(p *entities.CompensationPlan) { p.LevelRatesBps[1] = -5 }},
		{"zero naira per point", func(p *entities.CompensationPlan) { p.NairaPerPoint = 0 }},
		{"cap above 100 percent", func(p *entities.CompensationPlan) { p.PayoutCapBps = 10001 }},
		{"total exceeds cap", func(p *entities.CompensationPlan) { p.PayoutCapBps = 5000 }},
		{"non increasing thresholds", func(p *entities.CompensationPlan) { p.Ranks[2].ThresholdPV = 5000 }},
		{"negative achievement rate", func(p *entities.CompensationPlan) { p.Ranks[1].AchievementBps = -100 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan := testPlan()
			tc.mutate(plan)
			assert.ErrorIs(t, usecases.ValidatePlan(plan), domainerrors.ErrInvalidPlan)
		})
	}
}

func TestValidatePlan_AcceptsDefaultTable(t *testing.T) {
	assert.NoError(t, usecases.ValidatePlan(testPlan()))
}
