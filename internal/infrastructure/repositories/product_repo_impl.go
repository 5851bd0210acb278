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

// ProductRepositoryImpl implements ProductRepository using GORM
type ProductRepositoryImpl struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) repositories.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entities.Product) error {
	model := toProductModel(product)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	*product = *toProductEntity(model)
	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var model models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toProductEntity(&model), nil
}

func (r *ProductRepositoryImpl) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*entities.Product, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{})
	if activeOnly {
		db = db.Where("status = ?", string(entities.ProductStatusActive))
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Product
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*entities.Product, len(rows))
	for i := range rows {
		products[i] = toProductEntity(&rows[i])
	}
	return products, total, nil
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *entities.Product) error {
	model := toProductModel(product)
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":        model.Name,
			"description": model.Description,
			"price":       model.Price,
			"point_value": model.PointValue,
			"stock":       model.Stock,
			"image_url":   model.ImageURL,
			"status":      model.Status,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// RecordSale only matches when enough stock remains, so concurrent verified
// orders cannot oversell.
func (r *ProductRepositoryImpl) RecordSale(ctx context.Context, id uuid.UUID, quantity int) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	result := db.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		Updates(map[string]interface{}{
			"stock": gorm.Expr("stock - ?", quantity),
			"sold":  gorm.Expr("sold + ?", quantity),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrOutOfStock
	}
	return nil
}

func toProductModel(e *entities.Product) *models.Product {
	return &models.Product{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description.Ptr(),
		Price:       e.Price,
		PointValue:  e.PointValue,
		Stock:       e.Stock,
		Sold:        e.Sold,
		ImageURL:    e.ImageURL.Ptr(),
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toProductEntity(m *models.Product) *entities.Product {
	return &entities.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: null.StringFromPtr(m.Description),
		Price:       m.Price,
		PointValue:  m.PointValue,
		Stock:       m.Stock,
		Sold:        m.Sold,
		ImageURL:    null.StringFromPtr(m.ImageURL),
		Status:      entities.ProductStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
