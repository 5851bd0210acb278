package usecases

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/google/uuid"
)

// SupportUsecase handles member support tickets
type SupportUsecase struct {
	tickets repositories.TicketRepository
}

// NewSupportUsecase creates a new support usecase
func NewSupportUsecase(tickets repositories.TicketRepository) *SupportUsecase {
	return &SupportUsecase{tickets: tickets}
}

// Create opens a ticket for the member
func (u *SupportUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateTicketInput) (*entities.SupportTicket, error) {
	ticket := &entities.SupportTicket{
		UserID:  userID,
		Subject: input.Subject,
		Message: input.Message,
		Status:  entities.TicketStatusOpen,
	}
	if err := u.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// ListByUser returns a member's own tickets
func (u *SupportUsecase) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.SupportTicket, int64, error) {
	return u.tickets.GetByUserID(ctx, userID, limit, offset)
}

// GetByID returns a ticket, restricted to its owner unless asAdmin
func (u *SupportUsecase) GetByID(ctx context.Context, requesterID, ticketID uuid.UUID, asAdmin bool) (*entities.SupportTicket, error) {
	ticket, err := u.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !asAdmin && ticket.UserID != requesterID {
		return nil, domainerrors.ErrForbidden
	}
	return ticket, nil
}

// List returns tickets across all members, optionally filtered by status.
// Admin only.
func (u *SupportUsecase) List(ctx context.Context, status string, limit, offset int) ([]*entities.SupportTicket, int64, error) {
	return u.tickets.List(ctx, status, limit, offset)
}

// Reply records the admin answer on a ticket, optionally closing it
func (u *SupportUsecase) Reply(ctx context.Context, adminID, ticketID uuid.UUID, input *entities.ReplyTicketInput) (*entities.SupportTicket, error) {
	ticket, err := u.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == entities.TicketStatusClosed {
		return nil, domainerrors.BadRequest("ticket is closed")
	}
	if err := u.tickets.Reply(ctx, ticketID, adminID, input.Reply, input.Close); err != nil {
		return nil, err
	}
	return u.tickets.GetByID(ctx, ticketID)
}
