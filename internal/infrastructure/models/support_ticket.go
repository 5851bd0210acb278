package models

import (
	"time"

	"github.com/google/uuid"
)

type SupportTicket struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	Subject   string     `gorm:"type:varchar(200);not null"`
	Message   string     `gorm:"type:text;not null"`
	Reply     *string    `gorm:"type:text"`
	RepliedBy *uuid.UUID `gorm:"type:uuid"`
	Status    string     `gorm:"type:varchar(50);index;not null;default:'OPEN'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
