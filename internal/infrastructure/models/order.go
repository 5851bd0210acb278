package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order carries the compensation engine's claim marker: BonusesProcessedAt is
// written once by a conditional update and never cleared.
type Order struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID             uuid.UUID `gorm:"type:uuid;index;not null"`
	ProductID          uuid.UUID `gorm:"type:uuid;not null"`
	Quantity           int       `gorm:"not null"`
	Amount             int64     `gorm:"not null"`
	PointsEarned       int64     `gorm:"not null;default:0"`
	SelfRetail         bool      `gorm:"not null;default:false"`
	PaymentStatus      string    `gorm:"type:varchar(50);index;not null;default:'PENDING'"`
	DeliveryStatus     string    `gorm:"type:varchar(50);not null;default:'PROCESSING'"`
	PaymentProofURL    *string   `gorm:"type:varchar(500)"`
	VerifiedBy         *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt         *time.Time
	BonusesProcessedAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}
