package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/InusahIbraheem/solid-life-web/internal/infrastructure/models"
	"gorm.io/gorm"
)

const planSettingID = 1

// PlanRepositoryImpl stores the commission configuration as a single settings
// row plus a rank table. A missing row falls back to the launch defaults, so
// a fresh database pays out correctly before the admin ever touches settings.
type PlanRepositoryImpl struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) repositories.PlanRepository {
	return &PlanRepositoryImpl{db: db}
}

func (r *PlanRepositoryImpl) GetPlan(ctx context.Context) (*entities.CompensationPlan, error) {
	ranks, err := r.GetRanks(ctx)
	if err != nil {
		return nil, err
	}

	var model models.CompensationSetting
	err = GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", planSettingID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			plan := defaultPlan()
			plan.Ranks = ranks
			return plan, nil
		}
		return nil, err
	}

	var levelRates []int
	if err := json.Unmarshal([]byte(model.LevelRatesBps), &levelRates); err != nil {
		return nil, err
	}

	return &entities.CompensationPlan{
		RetailProfitBps:     model.RetailProfitBps,
		PersonalPurchaseBps: model.PersonalPurchaseBps,
		SponsorBonusBps:     model.SponsorBonusBps,
		LevelRatesBps:       levelRates,
		Ranks:               ranks,
		NairaPerPoint:       model.NairaPerPoint,
		PayoutCapBps:        model.PayoutCapBps,
		TeamVolumeRollup:    model.TeamVolumeRollup,
	}, nil
}

func (r *PlanRepositoryImpl) SavePlan(ctx context.Context, plan *entities.CompensationPlan) error {
	levelRates, err := json.Marshal(plan.LevelRatesBps)
	if err != nil {
		return err
	}

	model := models.CompensationSetting{
		ID:                  planSettingID,
		RetailProfitBps:     plan.RetailProfitBps,
		PersonalPurchaseBps: plan.PersonalPurchaseBps,
		SponsorBonusBps:     plan.SponsorBonusBps,
		LevelRatesBps:       string(levelRates),
		NairaPerPoint:       plan.NairaPerPoint,
		PayoutCapBps:        plan.PayoutCapBps,
		TeamVolumeRollup:    plan.TeamVolumeRollup,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Save(&model).Error
}

func (r *PlanRepositoryImpl) GetRanks(ctx context.Context) ([]entities.Rank, error) {
	var rows []models.Rank
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("position ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return defaultRanks(), nil
	}

	ranks := make([]entities.Rank, len(rows))
	for i, row := range rows {
		ranks[i] = entities.Rank{
			Name:           row.Name,
			Position:       row.Position,
			ThresholdPV:    row.ThresholdPV,
			AchievementBps: row.AchievementBps,
		}
	}
	return ranks, nil
}

func (r *PlanRepositoryImpl) SaveRanks(ctx context.Context, ranks []entities.Rank) error {
	rows := make([]models.Rank, len(ranks))
	for i, rank := range ranks {
		rows[i] = models.Rank{
			Name:           rank.Name,
			Position:       rank.Position,
			ThresholdPV:    rank.ThresholdPV,
			AchievementBps: rank.AchievementBps,
		}
	}

	db := GetDB(ctx, r.db).WithContext(ctx)
	if err := db.Where("1 = 1").Delete(&models.Rank{}).Error; err != nil {
		return err
	}
	return db.Create(&rows).Error
}

// Launch configuration: 20% retail margin, 10% personal purchase bonus, 33%
// sponsor bonus, 7/5/3% level overrides, one PV worth 420 naira.
func defaultPlan() *entities.CompensationPlan {
	return &entities.CompensationPlan{
		RetailProfitBps:     2000,
		PersonalPurchaseBps: 1000,
		SponsorBonusBps:     3300,
		LevelRatesBps:       []int{700, 500, 300},
		NairaPerPoint:       420,
		PayoutCapBps:        10000,
		TeamVolumeRollup:    false,
	}
}

func defaultRanks() []entities.Rank {
	return []entities.Rank{
		{Name: entities.RankJunior, Position: 1, ThresholdPV: 0, AchievementBps: 0},
		{Name: entities.RankEmerald, Position: 2, ThresholdPV: 5000, AchievementBps: 500},
		{Name: entities.RankGold, Position: 3, ThresholdPV: 15000, AchievementBps: 400},
		{Name: entities.RankDiamond1, Position: 4, ThresholdPV: 50000, AchievementBps: 300},
	}
}
