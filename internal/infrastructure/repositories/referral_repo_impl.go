package repositories

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/InusahIbraheem/solid-life-web/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferralRepositoryImpl implements ReferralRepository using GORM
type ReferralRepositoryImpl struct {
	db *gorm.DB
}

// NewReferralRepository creates a new referral repository
func NewReferralRepository(db *gorm.DB) repositories.ReferralRepository {
	return &ReferralRepositoryImpl{db: db}
}

func (r *ReferralRepositoryImpl) Create(ctx context.Context, referral *entities.Referral) error {
	model := toReferralModel(referral)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	*referral = *toReferralEntity(model)
	return nil
}

func (r *ReferralRepositoryImpl) GetByReferrer(ctx context.Context, referrerID uuid.UUID, level int, limit, offset int) ([]*entities.Referral, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Referral{}).Where("referrer_id = ?", referrerID)
	if level > 0 {
		db = db.Where("level = ?", level)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Referral
	if err := db.Preload("Referred").Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return toReferralEntities(rows), total, nil
}

func (r *ReferralRepositoryImpl) GetDirectReferrals(ctx context.Context, referrerID uuid.UUID) ([]*entities.Referral, error) {
	var rows []models.Referral
	err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Referred").
		Where("referrer_id = ? AND level = 1", referrerID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toReferralEntities(rows), nil
}

// AddCommission is a no-op when the edge does not exist: commission rollup on
// the referral screen is best-effort display data, the ledger is the source
// of truth.
func (r *ReferralRepositoryImpl) AddCommission(ctx context.Context, referrerID, referredID uuid.UUID, amount int64) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Referral{}).
		Where("referrer_id = ? AND referred_id = ?", referrerID, referredID).
		Update("commission", gorm.Expr("commission + ?", amount)).Error
}

func (r *ReferralRepositoryImpl) CountByReferrer(ctx context.Context, referrerID uuid.UUID) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Referral{}).
		Where("referrer_id = ?", referrerID).
		Count(&total).Error
	return total, err
}

func (r *ReferralRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*entities.Referral, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Referral{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Referral
	if err := db.Preload("Referred").Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return toReferralEntities(rows), total, nil
}

func toReferralModel(e *entities.Referral) *models.Referral {
	return &models.Referral{
		ID:         e.ID,
		ReferrerID: e.ReferrerID,
		ReferredID: e.ReferredID,
		Level:      e.Level,
		Commission: e.Commission,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
	}
}

func toReferralEntity(m *models.Referral) *entities.Referral {
	e := &entities.Referral{
		ID:         m.ID,
		ReferrerID: m.ReferrerID,
		ReferredID: m.ReferredID,
		Level:      m.Level,
		Commission: m.Commission,
		Status:     entities.ReferralStatus(m.Status),
		CreatedAt:  m.CreatedAt,
	}
	if m.Referred != nil {
		e.Referred = toUserEntity(m.Referred)
	}
	return e
}

func toReferralEntities(rows []models.Referral) []*entities.Referral {
	out := make([]*entities.Referral, len(rows))
	for i := range rows {
		out[i] = toReferralEntity(&rows[i])
	}
	return out
}
