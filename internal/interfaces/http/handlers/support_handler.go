package handlers

import (
	"context"
	"net/http"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/interfaces/http/middleware"
	"github.com/InusahIbraheem/solid-life-web/internal/interfaces/http/response"
	"github.com/InusahIbraheem/solid-life-web/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SupportService interface {
	Create(ctx context.Context, userID uuid.UUID, input *entities.CreateTicketInput) (*entities.SupportTicket, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.SupportTicket, int64, error)
	GetByID(ctx context.Context, requesterID, ticketID uuid.UUID, asAdmin bool) (*entities.SupportTicket, error)
	List(ctx context.Context, status string, limit, offset int) ([]*entities.SupportTicket, int64, error)
	Reply(ctx context.Context, adminID, ticketID uuid.UUID, input *entities.ReplyTicketInput) (*entities.SupportTicket, error)
}

// SupportHandler handles support ticket endpoints
type SupportHandler struct {
	supportUsecase SupportService
}

// NewSupportHandler creates a new support handler
func NewSupportHandler(supportUsecase SupportService) *SupportHandler {
	return &SupportHandler{supportUsecase: supportUsecase}
}

// Create opens a support ticket
// POST /api/v1/support/tickets
func (h *SupportHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	ticket, err := h.supportUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"ticket": ticket})
}

// List returns the caller's tickets
// GET /api/v1/support/tickets
func (h *SupportHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	p := pagination(c)
	tickets, total, err := h.supportUsecase.ListByUser(c.Request.Context(), userID, p.Limit, p.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"tickets":    tickets,
		"pagination": utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// Get returns one ticket, owner or admin only
// GET /api/v1/support/tickets/:id
func (h *SupportHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid ticket ID"))
		return
	}

	role, _ := middleware.GetUserRole(c)
	ticket, err := h.supportUsecase.GetByID(c.Request.Context(), userID, ticketID, role == string(entities.UserRoleAdmin))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ticket": ticket})
}

// AdminList returns all tickets, optionally filtered by status
// GET /api/v1/admin/support/tickets
func (h *SupportHandler) AdminList(c *gin.Context) {
	p := pagination(c)
	status := c.Query("status")

	tickets, total, err := h.supportUsecase.List(c.Request.Context(), status, p.Limit, p.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"tickets":    tickets,
		"pagination": utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// Reply answers a ticket
// POST /api/v1/admin/support/tickets/:id/reply
func (h *SupportHandler) Reply(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	ticketID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid ticket ID"))
		return
	}

	var input entities.ReplyTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	ticket, err := h.supportUsecase.Reply(c.Request.Context(), adminID, ticketID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ticket": ticket})
}
