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

type OrderService interface {
	Create(ctx context.Context, userID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error)
	AttachPaymentProof(ctx context.Context, userID, orderID uuid.UUID, input *entities.PaymentProofInput) (*entities.Order, error)
	VerifyPayment(ctx context.Context, adminID, orderID uuid.UUID) (*entities.Order, error)
	RejectPayment(ctx context.Context, adminID, orderID uuid.UUID) (*entities.Order, error)
	UpdateDelivery(ctx context.Context, orderID uuid.UUID, status entities.OrderDeliveryStatus) (*entities.Order, error)
	GetByID(ctx context.Context, requesterID uuid.UUID, orderID uuid.UUID, asAdmin bool) (*entities.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error)
	List(ctx context.Context, paymentStatus string, limit, offset int) ([]*entities.Order, int64, error)
}

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderUsecase OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase OrderService) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// Create places an order
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	order, err := h.orderUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": order})
}

// List returns the caller's orders
// GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	p := pagination(c)
	orders, total, err := h.orderUsecase.ListByUser(c.Request.Context(), userID, p.Limit, p.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// Get returns one of the caller's orders
// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	role, _ := middleware.GetUserRole(c)
	order, err := h.orderUsecase.GetByID(c.Request.Context(), userID, orderID, role == string(entities.UserRoleAdmin))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}

// AttachPaymentProof uploads the proof of payment for an order
// POST /api/v1/orders/:id/payment-proof
func (h *OrderHandler) AttachPaymentProof(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	var input entities.PaymentProofInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	order, err := h.orderUsecase.AttachPaymentProof(c.Request.Context(), userID, orderID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}

// AdminList returns all orders, optionally filtered by payment status
// GET /api/v1/admin/orders
func (h *OrderHandler) AdminList(c *gin.Context) {
	p := pagination(c)
	status := c.Query("paymentStatus")

	orders, total, err := h.orderUsecase.List(c.Request.Context(), status, p.Limit, p.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"orders":     orders,
		"pagination": utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// VerifyPayment confirms an order's payment and triggers compensation
// POST /api/v1/admin/orders/:id/verify
func (h *OrderHandler) VerifyPayment(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	order, err := h.orderUsecase.VerifyPayment(c.Request.Context(), adminID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}

// RejectPayment declines an order's payment proof
// POST /api/v1/admin/orders/:id/reject
func (h *OrderHandler) RejectPayment(c *gin.Context) {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	order, err := h.orderUsecase.RejectPayment(c.Request.Context(), adminID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}

// UpdateDelivery moves a verified order through the delivery pipeline
// PATCH /api/v1/admin/orders/:id/delivery
func (h *OrderHandler) UpdateDelivery(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid order ID"))
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	status := entities.OrderDeliveryStatus(input.Status)
	switch status {
	case entities.OrderDeliveryProcessing, entities.OrderDeliveryShipped, entities.OrderDeliveryDelivered:
	default:
		response.Error(c, domainerrors.BadRequest("Invalid delivery status"))
		return
	}

	order, err := h.orderUsecase.UpdateDelivery(c.Request.Context(), orderID, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}
