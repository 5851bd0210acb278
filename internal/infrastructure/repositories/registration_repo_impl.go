package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/InusahIbraheem/solid-life-web/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// RegistrationRepositoryImpl implements RegistrationRepository using GORM
type RegistrationRepositoryImpl struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository
func NewRegistrationRepository(db *gorm.DB) repositories.RegistrationRepository {
	return &RegistrationRepositoryImpl{db: db}
}

func (r *RegistrationRepositoryImpl) Create(ctx context.Context, reg *entities.Registration) error {
	model := toRegistrationModel(reg)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	*reg = *toRegistrationEntity(model)
	return nil
}

func (r *RegistrationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Registration, error) {
	var model models.Registration
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toRegistrationEntity(&model), nil
}

func (r *RegistrationRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Registration, error) {
	var model models.Registration
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toRegistrationEntity(&model), nil
}

func (r *RegistrationRepositoryImpl) List(ctx context.Context, status string, limit, offset int) ([]*entities.Registration, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Registration{})
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Registration
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	regs := make([]*entities.Registration, len(rows))
	for i := range rows {
		regs[i] = toRegistrationEntity(&rows[i])
	}
	return regs, total, nil
}

func (r *RegistrationRepositoryImpl) AttachPaymentProof(ctx context.Context, id uuid.UUID, proofURL string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Registration{}).
		Where("id = ?", id).
		Update("payment_proof_url", proofURL)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *RegistrationRepositoryImpl) MarkVerified(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error {
	return r.transition(ctx, id, adminID, entities.RegistrationVerified)
}

func (r *RegistrationRepositoryImpl) MarkRejected(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error {
	return r.transition(ctx, id, adminID, entities.RegistrationRejected)
}

func (r *RegistrationRepositoryImpl) transition(ctx context.Context, id, adminID uuid.UUID, status entities.RegistrationStatus) error {
	now := time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Registration{}).
		Where("id = ? AND status = ?", id, string(entities.RegistrationPending)).
		Updates(map[string]interface{}{
			"status":      string(status),
			"verified_by": adminID,
			"verified_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toRegistrationModel(e *entities.Registration) *models.Registration {
	return &models.Registration{
		ID:              e.ID,
		UserID:          e.UserID,
		Amount:          e.Amount,
		PaymentProofURL: e.PaymentProofURL.Ptr(),
		Status:          string(e.Status),
		VerifiedBy:      e.VerifiedBy,
		VerifiedAt:      e.VerifiedAt,
		CreatedAt:       e.CreatedAt,
	}
}

func toRegistrationEntity(m *models.Registration) *entities.Registration {
	return &entities.Registration{
		ID:              m.ID,
		UserID:          m.UserID,
		Amount:          m.Amount,
		PaymentProofURL: null.StringFromPtr(m.PaymentProofURL),
		Status:          entities.RegistrationStatus(m.Status),
		VerifiedBy:      m.VerifiedBy,
		VerifiedAt:      m.VerifiedAt,
		CreatedAt:       m.CreatedAt,
	}
}
