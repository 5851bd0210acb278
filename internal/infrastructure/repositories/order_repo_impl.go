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

// OrderRepositoryImpl implements OrderRepository using GORM
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) repositories.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entities.Order) error {
	model := toOrderModel(order)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	*order = *toOrderEntity(model)
	return nil
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var model models.Order
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toOrderEntity(&model), nil
}

func (r *OrderRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Order
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return toOrderEntities(rows), total, nil
}

func (r *OrderRepositoryImpl) List(ctx context.Context, paymentStatus string, limit, offset int) ([]*entities.Order, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{})
	if paymentStatus != "" {
		db = db.Where("payment_status = ?", paymentStatus)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Order
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return toOrderEntities(rows), total, nil
}

func (r *OrderRepositoryImpl) AttachPaymentProof(ctx context.Context, id uuid.UUID, proofURL string) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_proof_url": proofURL,
			"payment_status":    string(entities.OrderPaymentAwaitingVerification),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) MarkVerified(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error {
	now := time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND payment_status = ?", id, string(entities.OrderPaymentAwaitingVerification)).
		Updates(map[string]interface{}{
			"payment_status": string(entities.OrderPaymentVerified),
			"verified_by":    adminID,
			"verified_at":    now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) MarkRejected(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error {
	now := time.Now()
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ? AND payment_status IN ?", id,
			[]string{string(entities.OrderPaymentPending), string(entities.OrderPaymentAwaitingVerification)}).
		Updates(map[string]interface{}{
			"payment_status": string(entities.OrderPaymentRejected),
			"verified_by":    adminID,
			"verified_at":    now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status entities.OrderDeliveryStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("delivery_status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ClaimForProcessing is the compensation engine's write-once gate: the update
// only matches a verified order whose marker is still null, so exactly one
// caller per order ever succeeds.
func (r *OrderRepositoryImpl) ClaimForProcessing(ctx context.Context, id uuid.UUID, at time.Time) error {
	db := GetDB(ctx, r.db).WithContext(ctx)
	result := db.Model(&models.Order{}).
		Where("id = ? AND payment_status = ? AND bonuses_processed_at IS NULL",
			id, string(entities.OrderPaymentVerified)).
		Update("bonuses_processed_at", at)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrNotFound
		}
		return domainerrors.ErrDuplicateOrder
	}
	return nil
}

func (r *OrderRepositoryImpl) ExpirePending(ctx context.Context, olderThan time.Time, limit int) (int64, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).Exec(
		`UPDATE orders SET payment_status = ?, updated_at = ?
		 WHERE id IN (
			SELECT id FROM orders
			WHERE payment_status = ? AND created_at < ? AND deleted_at IS NULL
			LIMIT ?
		 )`,
		string(entities.OrderPaymentExpired), time.Now(),
		string(entities.OrderPaymentPending), olderThan, limit,
	)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (r *OrderRepositoryImpl) CountByPaymentStatus(ctx context.Context, status entities.OrderPaymentStatus) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Order{}).
		Where("payment_status = ?", string(status)).
		Count(&total).Error
	return total, err
}

func (r *OrderRepositoryImpl) SumVerifiedAmount(ctx context.Context) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Order{}).
		Where("payment_status = ?", string(entities.OrderPaymentVerified)).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func toOrderModel(e *entities.Order) *models.Order {
	return &models.Order{
		ID:                 e.ID,
		UserID:             e.UserID,
		ProductID:          e.ProductID,
		Quantity:           e.Quantity,
		Amount:             e.Amount,
		PointsEarned:       e.PointsEarned,
		SelfRetail:         e.SelfRetail,
		PaymentStatus:      string(e.PaymentStatus),
		DeliveryStatus:     string(e.DeliveryStatus),
		PaymentProofURL:    e.PaymentProofURL.Ptr(),
		VerifiedBy:         e.VerifiedBy,
		VerifiedAt:         e.VerifiedAt,
		BonusesProcessedAt: e.BonusesProcessedAt,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func toOrderEntity(m *models.Order) *entities.Order {
	return &entities.Order{
		ID:                 m.ID,
		UserID:             m.UserID,
		ProductID:          m.ProductID,
		Quantity:           m.Quantity,
		Amount:             m.Amount,
		PointsEarned:       m.PointsEarned,
		SelfRetail:         m.SelfRetail,
		PaymentStatus:      entities.OrderPaymentStatus(m.PaymentStatus),
		DeliveryStatus:     entities.OrderDeliveryStatus(m.DeliveryStatus),
		PaymentProofURL:    null.StringFromPtr(m.PaymentProofURL),
		VerifiedBy:         m.VerifiedBy,
		VerifiedAt:         m.VerifiedAt,
		BonusesProcessedAt: m.BonusesProcessedAt,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toOrderEntities(rows []models.Order) []*entities.Order {
	out := make([]*entities.Order, len(rows))
	for i := range rows {
		out[i] = toOrderEntity(&rows[i])
	}
	return out
}
