package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	FirstName     string     `gorm:"type:varchar(100);not null"`
	LastName      string     `gorm:"type:varchar(100);not null"`
	Phone         string     `gorm:"type:varchar(32)"`
	PasswordHash  string     `gorm:"type:varchar(255);not null"`
	Role          string     `gorm:"type:varchar(50);not null;default:'MEMBER'"`
	Status        string     `gorm:"type:varchar(50);not null;default:'ACTIVE'"`
	ReferralCode  string     `gorm:"type:varchar(16);uniqueIndex;not null"`
	SponsorID     *uuid.UUID `gorm:"type:uuid;index"`
	UplineID      *uuid.UUID `gorm:"type:uuid"`
	Rank          string     `gorm:"type:varchar(50)"`
	PointVolume   int64      `gorm:"not null;default:0"`
	TotalEarnings int64      `gorm:"not null;default:0"`
	KYCVerified   bool       `gorm:"not null;default:false"`
	BankName      *string    `gorm:"type:varchar(100)"`
	AccountNumber *string    `gorm:"type:varchar(32)"`
	AccountName   *string    `gorm:"type:varchar(200)"`
	City          *string    `gorm:"type:varchar(100)"`
	State         *string    `gorm:"type:varchar(100)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
