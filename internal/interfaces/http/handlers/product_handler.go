package handlers

import (
	"context"
	"net/http"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/interfaces/http/response"
	"github.com/InusahIbraheem/solid-life-web/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductService interface {
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]*entities.Product, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	Create(ctx context.Context, input *entities.CreateProductInput) (*entities.Product, error)
	Update(ctx context.Context, id uuid.UUID, input *entities.UpdateProductInput) (*entities.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	productUsecase ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUsecase ProductService) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase}
}

// List returns the catalog; members only see active products
// GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	p := pagination(c)
	products, total, err := h.productUsecase.List(c.Request.Context(), true, p.Limit, p.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"products":   products,
		"pagination": utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// Get returns a single product
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product ID"))
		return
	}

	product, err := h.productUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// AdminList returns the full catalog including inactive products
// GET /api/v1/admin/products
func (h *ProductHandler) AdminList(c *gin.Context) {
	p := pagination(c)
	products, total, err := h.productUsecase.List(c.Request.Context(), false, p.Limit, p.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"products":   products,
		"pagination": utils.CalculateMeta(total, p.Page, p.Limit),
	})
}

// Create adds a product to the catalog
// POST /api/v1/admin/products
func (h *ProductHandler) Create(c *gin.Context) {
	var input entities.CreateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"product": product})
}

// Update edits a product
// PATCH /api/v1/admin/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product ID"))
		return
	}

	var input entities.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	product, err := h.productUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"product": product})
}

// Delete removes a product from the catalog
// DELETE /api/v1/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid product ID"))
		return
	}

	if err := h.productUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "product deleted"})
}
