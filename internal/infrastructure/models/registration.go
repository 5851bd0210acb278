package models

import (
	"time"

	"github.com/google/uuid"
)

type Registration struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Amount          int64     `gorm:"not null"`
	PaymentProofURL *string   `gorm:"type:varchar(500)"`
	Status          string    `gorm:"type:varchar(50);index;not null;default:'PENDING'"`
	VerifiedBy      *uuid.UUID `gorm:"type:uuid"`
	VerifiedAt      *time.Time
	CreatedAt       time.Time
}
