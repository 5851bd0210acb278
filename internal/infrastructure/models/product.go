package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Description *string   `gorm:"type:text"`
	Price       int64     `gorm:"not null"`
	PointValue  int64     `gorm:"not null;default:0"`
	Stock       int       `gorm:"not null;default:0"`
	Sold        int       `gorm:"not null;default:0"`
	ImageURL    *string   `gorm:"type:varchar(500)"`
	Status      string    `gorm:"type:varchar(50);not null;default:'ACTIVE'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
