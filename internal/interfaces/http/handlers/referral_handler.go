package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/interfaces/http/middleware"
	"github.com/InusahIbraheem/solid-life-web/internal/interfaces/http/response"
	"github.com/InusahIbraheem/solid-life-web/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReferralService interface {
	ListByLevel(ctx context.Context, referrerID uuid.UUID, level, limit, offset int) ([]*entities.Referral, int64, error)
	CountDownline(ctx context.Context, referrerID uuid.UUID) (int64, error)
	GetTree(ctx context.Context, rootID uuid.UUID) (*entities.ReferralTreeNode, error)
}

type RankService interface {
	GetProgress(ctx context.Context, userID uuid.UUID) (*entities.RankProgress, error)
}

// ReferralHandler handles referral network and rank progress endpoints
type ReferralHandler struct {
	referralUsecase ReferralService
	rankUsecase     RankService
}

// NewReferralHandler creates a new referral handler
func NewReferralHandler(referralUsecase ReferralService, rankUsecase RankService) *ReferralHandler {
	return &ReferralHandler{referralUsecase: referralUsecase, rankUsecase: rankUsecase}
}

// List returns the caller's downline, optionally filtered by level
// GET /api/v1/referrals?level=1
func (h *ReferralHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	level, _ := strconv.Atoi(c.DefaultQuery("level", "0"))
	p := pagination(c)

	referrals, total, err := h.referralUsecase.ListByLevel(c.Request.Context(), userID, level, p.Limit, p.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	count, err := h.referralUsecase.CountDownline(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"referrals":  referrals,
		"totalCount": count,
		"pagination": utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// Tree returns the caller's bounded-depth genealogy
// GET /api/v1/referrals/tree
func (h *ReferralHandler) Tree(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	tree, err := h.referralUsecase.GetTree(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tree": tree})
}

// TreeOf returns any member's genealogy, for the back office
// GET /api/v1/admin/users/:id/referrals
func (h *ReferralHandler) TreeOf(c *gin.Context) {
	rootID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid user ID"))
		return
	}

	tree, err := h.referralUsecase.GetTree(c.Request.Context(), rootID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tree": tree})
}

// RankProgress returns the caller's position on the rank ladder
// GET /api/v1/rank
func (h *ReferralHandler) RankProgress(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	progress, err := h.rankUsecase.GetProgress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rank": progress})
}
