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

type AdminService interface {
	ListUsers(ctx context.Context, limit, offset int) ([]*entities.User, int64, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error)
	SetUserStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error
	SetKYCVerified(ctx context.Context, id uuid.UUID, verified bool) error
	ListRegistrations(ctx context.Context, status string, limit, offset int) ([]*entities.Registration, int64, error)
	VerifyRegistration(ctx context.Context, adminID, regID uuid.UUID) error
	RejectRegistration(ctx context.Context, adminID, regID uuid.UUID) error
	GetPlan(ctx context.Context) (*entities.CompensationPlan, error)
	UpdatePlan(ctx context.Context, input *entities.UpdatePlanInput) (*entities.CompensationPlan, error)
	UpdateRanks(ctx context.Context, input *entities.UpdateRanksInput) ([]entities.Rank, error)
	GetDashboard(ctx context.Context) (*entities.DashboardStats, error)
	CreateDSC(ctx context.Context, input *entities.CreateDSCInput) (*entities.DSCCenter, error)
	ListDSC(ctx context.Context, limit, offset int) ([]*entities.DSCCenter, int64, error)
	SetDSCStatus(ctx context.Context, id uuid.UUID, status entities.DSCStatus) error
}

// AdminHandler handles back-office endpoints
type AdminHandler struct {
	adminUsecase AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase AdminService) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// Dashboard returns headline platform metrics
// GET /api/v1/admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminUsecase.GetDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"dashboard": stats})
}

// ListUsers returns the member roster
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	p := pagination(c)
	users, total, err := h.adminUsecase.ListUsers(c.Request.Context(), p.Limit, p.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users":      users,
		"pagination": utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// GetUser returns one member
// GET /api/v1/admin/users/:id
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	user, err := h.adminUsecase.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// SetUserStatus activates or suspends an account
// PATCH /api/v1/admin/users/:id/status
func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.SetUserStatus(c.Request.Context(), id, entities.UserStatus(input.Status)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "status updated"})
}

// SetUserKYC marks a member's KYC documents verified or not
// PATCH /api/v1/admin/users/:id/kyc
func (h *AdminHandler) SetUserKYC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	var input struct {
		Verified *bool `json:"verified" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.adminUsecase.SetKYCVerified(c.Request.Context(), id, *input.Verified); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "kyc updated"})
}

// ListRegistrations returns joining-fee records
// GET /api/v1/admin/registrations?status=PENDING
func (h *AdminHandler) ListRegistrations(c *gin.Context) {
	p := pagination(c)
	status := c.Query("status")

	regs, total, err := h.adminUsecase.ListRegistrations(c.Request.Context(), status, p.Limit, p.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"registrations": regs,
		"pagination":    utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// VerifyRegistration confirms a joining fee and unlocks KYC
// POST /api/v1/admin/registrations/:id/verify
func (h *AdminHandler) VerifyRegistration(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	regID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid registration ID"))
		return
	}

	if err := h.adminUsecase.VerifyRegistration(c.Request.Context(), adminID, regID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "registration verified"})
}

// RejectRegistration declines a joining-fee proof
// POST /api/v1/admin/registrations/:id/reject
func (h *AdminHandler) RejectRegistration(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	regID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid registration ID"))
		return
	}

	if err := h.adminUsecase.RejectRegistration(c.Request.Context(), adminID, regID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "registration rejected"})
}

// GetPlan returns the commission configuration
// GET /api/v1/admin/settings/plan
func (h *AdminHandler) GetPlan(c *gin.Context) {
	plan, err := h.adminUsecase.GetPlan(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"plan": plan})
}

// UpdatePlan edits the commission percentage table
// PATCH /api/v1/admin/settings/plan
func (h *AdminHandler) UpdatePlan(c *gin.Context) {
	var input entities.UpdatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	plan, err := h.adminUsecase.UpdatePlan(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"plan": plan})
}

// UpdateRanks replaces the rank ladder
// PUT /api/v1/admin/settings/ranks
func (h *AdminHandler) UpdateRanks(c *gin.Context) {
	var input entities.UpdateRanksInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	ranks, err := h.adminUsecase.UpdateRanks(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"ranks": ranks})
}

// CreateDSC registers a distributor service center
// POST /api/v1/admin/dsc
func (h *AdminHandler) CreateDSC(c *gin.Context) {
	var input entities.CreateDSCInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	center, err := h.adminUsecase.CreateDSC(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"center": center})
}

// ListDSC returns all service centers
// GET /api/v1/admin/dsc
func (h *AdminHandler) ListDSC(c *gin.Context) {
	p := pagination(c)
	centers, total, err := h.adminUsecase.ListDSC(c.Request.Context(), p.Limit, p.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"centers":    centers,
		"pagination": utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// SetDSCStatus activates or suspends a service center
// PATCH /api/v1/admin/dsc/:id/status
func (h *AdminHandler) SetDSCStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid center ID"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	status := entities.DSCStatus(input.Status)
	if status != entities.DSCStatusActive && status != entities.DSCStatusSuspended {
		response.Error(c, domainerrors.BadRequest("Invalid status"))
		return
	}

	if err := h.adminUsecase.SetDSCStatus(c.Request.Context(), id, status); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "status updated"})
}
