package usecases

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProductUsecase handles catalog management
type ProductUsecase struct {
	products repositories.ProductRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(products repositories.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

// List returns catalog items. Members see active products only; admins see
// everything.
func (u *ProductUsecase) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*entities.Product, int64, error) {
	return u.products.List(ctx, activeOnly, limit, offset)
}

// GetByID returns a single product
func (u *ProductUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Create adds a product to the catalog. Admin only.
func (u *ProductUsecase) Create(ctx context.Context, input *entities.CreateProductInput) (*entities.Product, error) {
	product := &entities.Product{
		Name:        input.Name,
		Description: null.NewString(input.Description, input.Description != ""),
		Price:       input.Price,
		PointValue:  input.PointValue,
		Stock:       input.Stock,
		ImageURL:    null.NewString(input.ImageURL, input.ImageURL != ""),
		Status:      entities.ProductStatusActive,
	}
	if err := u.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update applies a partial edit to a product. Price and PV edits only affect
// future orders; placed orders carry their own snapshot.
func (u *ProductUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateProductInput) (*entities.Product, error) {
	product, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = null.NewString(*input.Description, *input.Description != "")
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, domainerrors.BadRequest("price must be positive")
		}
		product.Price = *input.Price
	}
	if input.PointValue != nil {
		if *input.PointValue < 0 {
			return nil, domainerrors.BadRequest("point value cannot be negative")
		}
		product.PointValue = *input.PointValue
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, domainerrors.BadRequest("stock cannot be negative")
		}
		product.Stock = *input.Stock
	}
	if input.ImageURL != nil {
		product.ImageURL = null.NewString(*input.ImageURL, *input.ImageURL != "")
	}
	if input.Status != nil {
		switch entities.ProductStatus(*input.Status) {
		case entities.ProductStatusActive, entities.ProductStatusInactive:
			product.Status = entities.ProductStatus(*input.Status)
		default:
			return nil, domainerrors.BadRequest("invalid product status")
		}
	}

	if err := u.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete soft-deletes a product. Admin only.
func (u *ProductUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.products.Delete(ctx, id)
}
