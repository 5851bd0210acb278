package repositories

import (
	"context"
	"errors"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/InusahIbraheem/solid-life-web/internal/infrastructure/models"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

// UserRepositoryImpl implements UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entities.User) error {
	model := toUserModel(user)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	*user = *toUserEntity(model)
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var model models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&model), nil
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&model), nil
}

func (r *UserRepositoryImpl) GetByReferralCode(ctx context.Context, code string) (*entities.User, error) {
	var model models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("referral_code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toUserEntity(&model), nil
}

func (r *UserRepositoryImpl) GetSponsorID(ctx context.Context, id uuid.UUID) (*uuid.UUID, error) {
	var row struct {
		SponsorID *uuid.UUID
	}
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Select("sponsor_id").
		Where("id = ?", id).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return row.SponsorID, nil
}

func (r *UserRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.User
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, len(rows))
	for i := range rows {
		users[i] = toUserEntity(&rows[i])
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return r.updateField(ctx, id, "password_hash", passwordHash)
}

func (r *UserRepositoryImpl) SetKYCVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	return r.updateField(ctx, id, "kyc_verified", verified)
}

func (r *UserRepositoryImpl) SetStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	return r.updateField(ctx, id, "status", string(status))
}

func (r *UserRepositoryImpl) AddPointVolume(ctx context.Context, id uuid.UUID, points int64) error {
	return r.updateField(ctx, id, "point_volume", gorm.Expr("point_volume + ?", points))
}

func (r *UserRepositoryImpl) AddEarnings(ctx context.Context, id uuid.UUID, amount int64) error {
	return r.updateField(ctx, id, "total_earnings", gorm.Expr("total_earnings + ?", amount))
}

// CompareAndSetRank moves the rank only when the stored value still matches
// what the caller read. A lost race surfaces as ErrPersistenceConflict so the
// rank evaluator can reload and retry.
func (r *UserRepositoryImpl) CompareAndSetRank(ctx context.Context, id uuid.UUID, expected, next string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND rank = ?", id, expected).
		Update("rank", next)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPersistenceConflict
	}
	return nil
}

func (r *UserRepositoryImpl) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).Count(&total).Error
	return total, err
}

func (r *UserRepositoryImpl) updateField(ctx context.Context, id uuid.UUID, column string, value interface{}) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toUserModel(e *entities.User) *models.User {
	return &models.User{
		ID:            e.ID,
		Email:         e.Email,
		FirstName:     e.FirstName,
		LastName:      e.LastName,
		Phone:         e.Phone,
		PasswordHash:  e.PasswordHash,
		Role:          string(e.Role),
		Status:        string(e.Status),
		ReferralCode:  e.ReferralCode,
		SponsorID:     e.SponsorID,
		UplineID:      e.UplineID,
		Rank:          e.Rank,
		PointVolume:   e.PointVolume,
		TotalEarnings: e.TotalEarnings,
		KYCVerified:   e.KYCVerified,
		BankName:      e.BankName.Ptr(),
		AccountNumber: e.AccountNumber.Ptr(),
		AccountName:   e.AccountName.Ptr(),
		City:          e.City.Ptr(),
		State:         e.State.Ptr(),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toUserEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:            m.ID,
		Email:         m.Email,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Phone:         m.Phone,
		PasswordHash:  m.PasswordHash,
		Role:          entities.UserRole(m.Role),
		Status:        entities.UserStatus(m.Status),
		ReferralCode:  m.ReferralCode,
		SponsorID:     m.SponsorID,
		UplineID:      m.UplineID,
		Rank:          m.Rank,
		PointVolume:   m.PointVolume,
		TotalEarnings: m.TotalEarnings,
		KYCVerified:   m.KYCVerified,
		BankName:      null.StringFromPtr(m.BankName),
		AccountNumber: null.StringFromPtr(m.AccountNumber),
		AccountName:   null.StringFromPtr(m.AccountName),
		City:          null.StringFromPtr(m.City),
		State:         null.StringFromPtr(m.State),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
