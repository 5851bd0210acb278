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

// TicketRepositoryImpl implements TicketRepository using GORM
type TicketRepositoryImpl struct {
	db *gorm.DB
}

// NewTicketRepository creates a new support ticket repository
func NewTicketRepository(db *gorm.DB) repositories.TicketRepository {
	return &TicketRepositoryImpl{db: db}
}

func (r *TicketRepositoryImpl) Create(ctx context.Context, ticket *entities.SupportTicket) error {
	model := toTicketModel(ticket)
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	*ticket = *toTicketEntity(model)
	return nil
}

func (r *TicketRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.SupportTicket, error) {
	var model models.SupportTicket
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toTicketEntity(&model), nil
}

func (r *TicketRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.SupportTicket, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.SupportTicket{}).Where("user_id = ?", userID)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.SupportTicket
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return toTicketEntities(rows), total, nil
}

func (r *TicketRepositoryImpl) List(ctx context.Context, status string, limit, offset int) ([]*entities.SupportTicket, int64, error) {
	db := GetDB(ctx, r.db).WithContext(ctx).Model(&models.SupportTicket{})
	if status != "" {
		db = db.Where("status = ?", status)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.SupportTicket
	if err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return toTicketEntities(rows), total, nil
}

func (r *TicketRepositoryImpl) Reply(ctx context.Context, id uuid.UUID, adminID uuid.UUID, reply string, close bool) error {
	status := entities.TicketStatusAnswered
	if close {
		status = entities.TicketStatusClosed
	}
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.SupportTicket{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"reply":      reply,
			"replied_by": adminID,
			"status":     string(status),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func toTicketModel(e *entities.SupportTicket) *models.SupportTicket {
	return &models.SupportTicket{
		ID:        e.ID,
		UserID:    e.UserID,
		Subject:   e.Subject,
		Message:   e.Message,
		Reply:     e.Reply.Ptr(),
		RepliedBy: e.RepliedBy,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func toTicketEntity(m *models.SupportTicket) *entities.SupportTicket {
	return &entities.SupportTicket{
		ID:        m.ID,
		UserID:    m.UserID,
		Subject:   m.Subject,
		Message:   m.Message,
		Reply:     null.StringFromPtr(m.Reply),
		RepliedBy: m.RepliedBy,
		Status:    entities.TicketStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toTicketEntities(rows []models.SupportTicket) []*entities.SupportTicket {
	out := make([]*entities.SupportTicket, len(rows))
	for i := range rows {
		out[i] = toTicketEntity(&rows[i])
	}
	return out
}
