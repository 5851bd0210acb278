package repositories

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/google/uuid"
)

// TicketRepository defines support ticket data operations
type TicketRepository interface {
	Create(ctx context.Context, ticket *entities.SupportTicket) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.SupportTicket, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.SupportTicket, int64, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entities.SupportTicket, int64, error)
	Reply(ctx context.Context, id uuid.UUID, adminID uuid.UUID, reply string, close bool) error
}
