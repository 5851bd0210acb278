package repositories

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/google/uuid"
)

// ProductRepository defines product catalog data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]*entities.Product, int64, error)
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	// RecordSale decrements stock and increments sold for a verified order.
	// Fails with ErrOutOfStock when stock would go negative.
	RecordSale(ctx context.Context, id uuid.UUID, quantity int) error
}
