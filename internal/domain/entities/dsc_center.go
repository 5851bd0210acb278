package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// DSCStatus represents distributor service center status
type DSCStatus string

const (
	DSCStatusActive    DSCStatus = "ACTIVE"
	DSCStatusSuspended DSCStatus = "SUSPENDED"
)

// DSCCenter is a distributor service center: a physical stockist through
// which members register and collect products.
type DSCCenter struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CenterNumber  string      `json:"centerNumber"`
	OperatorName  string      `json:"operatorName"`
	Email         null.String `json:"email,omitempty"`
	Phone         null.String `json:"phone,omitempty"`
	Address       null.String `json:"address,omitempty"`
	City          null.String `json:"city,omitempty"`
	State         null.String `json:"state,omitempty"`
	CreditLine    int64       `json:"creditLine"`
	ProductSales  int64       `json:"productSales"`
	Registrations int         `json:"registrations"`
	Status        DSCStatus   `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// CreateDSCInput represents input for registering a service center
type CreateDSCInput struct {
	CenterNumber string `json:"centerNumber" binding:"required"`
	OperatorName string `json:"operatorName" binding:"required,min=2,max=200"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	CreditLine   int64  `json:"creditLine"`
}
