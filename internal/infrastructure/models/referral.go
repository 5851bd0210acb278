package models

import (
	"time"

	"github.com/google/uuid"
)

type Referral struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ReferrerID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_referral_edge"`
	ReferredID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_referral_edge"`
	Level      int       `gorm:"not null"`
	Commission int64     `gorm:"not null;default:0"`
	Status     string    `gorm:"type:varchar(50);not null;default:'ACTIVE'"`
	CreatedAt  time.Time

	Referred *User `gorm:"foreignKey:ReferredID"`
}
