package repositories

import (
	"context"
	"errors"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/InusahIbraheem/solid-life-web/internal/infrastructure/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WalletRepositoryImpl implements WalletRepository using GORM
type WalletRepositoryImpl struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository
func NewWalletRepository(db *gorm.DB) repositories.WalletRepository {
	return &WalletRepositoryImpl{db: db}
}

// Append inserts one ledger row. A violation of the (user, order, reason)
// unique index comes back as ErrAlreadyExists, which the ledger engine treats
// as a replay.
func (r *WalletRepositoryImpl) Append(ctx context.Context, tx *entities.WalletTransaction) error {
	model := toWalletTxModel(tx)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	*tx = *toWalletTxEntity(model)
	return nil
}

func (r *WalletRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.WalletTransaction, error) {
	var model models.WalletTransaction
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toWalletTxEntity(&model), nil
}

func (r *WalletRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.WalletTransaction, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.WalletTransaction{}).Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.WalletTransaction
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	txs := make([]*entities.WalletTransaction, len(rows))
	for i := range rows {
		txs[i] = toWalletTxEntity(&rows[i])
	}
	return txs, total, nil
}

func (r *WalletRepositoryImpl) GetBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]*entities.WalletTransaction, error) {
	var rows []models.WalletTransaction
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("source_order_id = ?", orderID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	txs := make([]*entities.WalletTransaction, len(rows))
	for i := range rows {
		txs[i] = toWalletTxEntity(&rows[i])
	}
	return txs, nil
}

func (r *WalletRepositoryImpl) SumCompleted(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.sum(ctx, "user_id = ? AND status = ?",
		userID, string(entities.TransactionStatusCompleted))
}

func (r *WalletRepositoryImpl) SumPendingCredits(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.sum(ctx, "user_id = ? AND status = ? AND amount > 0",
		userID, string(entities.TransactionStatusPending))
}

func (r *WalletRepositoryImpl) SumPendingWithdrawals(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Where("user_id = ? AND type = ? AND status = ?",
			userID, string(entities.TransactionTypeWithdrawal), string(entities.TransactionStatusPending)).
		Select("COALESCE(SUM(-amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *WalletRepositoryImpl) SumWithdrawn(ctx context.Context, userID uuid.UUID) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Where("user_id = ? AND type = ? AND status = ?",
			userID, string(entities.TransactionTypeWithdrawal), string(entities.TransactionStatusCompleted)).
		Select("COALESCE(SUM(-amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *WalletRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) error {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.WalletTransaction{}).
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

func (r *WalletRepositoryImpl) MarkCompletedBySourceOrder(ctx context.Context, orderID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Where("source_order_id = ? AND status = ?", orderID, string(entities.TransactionStatusPending)).
		Update("status", string(entities.TransactionStatusCompleted)).Error
}

func (r *WalletRepositoryImpl) sum(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var total int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.WalletTransaction{}).
		Where(query, args...).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func toWalletTxModel(e *entities.WalletTransaction) *models.WalletTransaction {
	return &models.WalletTransaction{
		ID:            e.ID,
		UserID:        e.UserID,
		Type:          string(e.Type),
		Amount:        e.Amount,
		Description:   e.Description,
		Reason:        e.Reason,
		SourceOrderID: e.SourceOrderID,
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt,
	}
}

func toWalletTxEntity(m *models.WalletTransaction) *entities.WalletTransaction {
	return &entities.WalletTransaction{
		ID:            m.ID,
		UserID:        m.UserID,
		Type:          entities.TransactionType(m.Type),
		Amount:        m.Amount,
		Description:   m.Description,
		Reason:        m.Reason,
		SourceOrderID: m.SourceOrderID,
		Status:        entities.TransactionStatus(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}
