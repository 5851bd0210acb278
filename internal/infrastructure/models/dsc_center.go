package models

import (
	"time"

	"github.com/google/uuid"
)

type DSCCenter struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CenterNumber  string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	OperatorName  string    `gorm:"type:varchar(200);not null"`
	Email         *string   `gorm:"type:varchar(255)"`
	Phone         *string   `gorm:"type:varchar(32)"`
	Address       *string   `gorm:"type:varchar(500)"`
	City          *string   `gorm:"type:varchar(100)"`
	State         *string   `gorm:"type:varchar(100)"`
	CreditLine    int64     `gorm:"not null;default:0"`
	ProductSales  int64     `gorm:"not null;default:0"`
	Registrations int       `gorm:"not null;default:0"`
	Status        string    `gorm:"type:varchar(50);not null;default:'ACTIVE'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
