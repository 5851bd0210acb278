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

// DSCRepositoryImpl implements DSCRepository using GORM
type DSCRepositoryImpl struct {
	db *gorm.DB
}

// NewDSCRepository creates a new service center repository
func NewDSCRepository(db *gorm.DB) repositories.DSCRepository {
	return &DSCRepositoryImpl{db: db}
}

func (r *DSCRepositoryImpl) Create(ctx context.Context, center *entities.DSCCenter) error {
	model := toDSCModel(center)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	*center = *toDSCEntity(model)
	return nil
}

func (r *DSCRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.DSCCenter, error) {
	var model models.DSCCenter
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toDSCEntity(&model), nil
}

func (r *DSCRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*entities.DSCCenter, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.DSCCenter{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.DSCCenter
	if err := db.Order("center_number ASC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	centers := make([]*entities.DSCCenter, len(rows))
	for i := range rows {
		centers[i] = toDSCEntity(&rows[i])
	}
	return centers, total, nil
}

func (r *DSCRepositoryImpl) Update(ctx context.Context, center *entities.DSCCenter) error {
	model := toDSCModel(center)
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.DSCCenter{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"operator_name": model.OperatorName,
			"email":         model.Email,
			"phone":         model.Phone,
			"address":       model.Address,
			"city":          model.City,
			"state":         model.State,
			"credit_line":   model.CreditLine,
			"product_sales": model.ProductSales,
			"registrations": model.Registrations,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *DSCRepositoryImpl) SetStatus(ctx context.Context, id uuid.UUID, status entities.DSCStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.DSCCenter{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toDSCModel(e *entities.DSCCenter) *models.DSCCenter {
	return &models.DSCCenter{
		ID:            e.ID,
		CenterNumber:  e.CenterNumber,
		OperatorName:  e.OperatorName,
		Email:         e.Email.Ptr(),
		Phone:         e.Phone.Ptr(),
		Address:       e.Address.Ptr(),
		City:          e.City.Ptr(),
		State:         e.State.Ptr(),
		CreditLine:    e.CreditLine,
		ProductSales:  e.ProductSales,
		Registrations: e.Registrations,
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func toDSCEntity(m *models.DSCCenter) *entities.DSCCenter {
	return &entities.DSCCenter{
		ID:            m.ID,
		CenterNumber:  m.CenterNumber,
		OperatorName:  m.OperatorName,
		Email:         null.StringFromPtr(m.Email),
		Phone:         null.StringFromPtr(m.Phone),
		Address:       null.StringFromPtr(m.Address),
		City:          null.StringFromPtr(m.City),
		State:         null.StringFromPtr(m.State),
		CreditLine:    m.CreditLine,
		ProductSales:  m.ProductSales,
		Registrations: m.Registrations,
		Status:        entities.DSCStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
