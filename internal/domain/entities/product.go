package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ProductStatus represents product availability
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "ACTIVE"
	ProductStatusInactive ProductStatus = "INACTIVE"
)

// Product represents a catalog item. Price is whole naira; PointValue is the PV
// credited per unit on a verified order.
type Product struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string        `json:"name"`
	Description null.String   `json:"description,omitempty"`
	Price       int64         `json:"price"`
	PointValue  int64         `json:"pointValue"`
	Stock       int           `json:"stock"`
	Sold        int           `json:"sold"`
	ImageURL    null.String   `json:"imageUrl,omitempty"`
	Status      ProductStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	DeletedAt   *time.Time    `json:"-"`
}

// CreateProductInput represents input for creating a product
type CreateProductInput struct {
	Name        string `json:"name" binding:"required,min=2,max=200"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,gt=0"`
	PointValue  int64  `json:"pointValue" binding:"gte=0"`
	Stock       int    `json:"stock" binding:"gte=0"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateProductInput represents input for updating a product
type UpdateProductInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	PointValue  *int64  `json:"pointValue"`
	Stock       *int    `json:"stock"`
	ImageURL    *string `json:"imageUrl"`
	Status      *string `json:"status"`
}
