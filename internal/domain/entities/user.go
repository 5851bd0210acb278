package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleMember UserRole = "MEMBER"
)

// UserStatus represents account status. Users are never hard-deleted.
type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

// User represents a distributor account. Sponsor and upline are set once at
// registration and never change; PV, rank and earnings are mutated only by the
// compensation engine. Wallet balance is derived from the transaction ledger,
// not stored here.
type User struct {
	ID            uuid.UUID   `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string      `json:"email"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Phone         string      `json:"phone,omitempty"`
	PasswordHash  string      `json:"-"`
	Role          UserRole    `json:"role"`
	Status        UserStatus  `json:"status"`
	ReferralCode  string      `json:"referralCode"`
	SponsorID     *uuid.UUID  `json:"sponsorId,omitempty"`
	UplineID      *uuid.UUID  `json:"uplineId,omitempty"`
	Rank          string      `json:"rank"`
	PointVolume   int64       `json:"pointVolume"`
	TotalEarnings int64       `json:"totalEarnings"`
	KYCVerified   bool        `json:"kycVerified"`
	BankName      null.String `json:"bankName,omitempty"`
	AccountNumber null.String `json:"accountNumber,omitempty"`
	AccountName   null.String `json:"accountName,omitempty"`
	City          null.String `json:"city,omitempty"`
	State         null.String `json:"state,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
	DeletedAt     *time.Time  `json:"-"`

	// Joins
	Sponsor *User `json:"sponsor,omitempty" gorm:"foreignKey:SponsorID"`
	Upline  *User `json:"upline,omitempty" gorm:"foreignKey:UplineID"`
}

// RegisterInput represents input for member registration
type RegisterInput struct {
	Email         string `json:"email" binding:"required,email"`
	FirstName     string `json:"firstName" binding:"required,min=2,max=100"`
	LastName      string `json:"lastName" binding:"required,min=2,max=100"`
	Phone         string `json:"phone"`
	Password      string `json:"password" binding:"required,min=8"`
	SponsorCode   string `json:"sponsorCode"`
	UplineCode    string `json:"uplineCode"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountName   string `json:"accountName"`
	City          string `json:"city"`
	State         string `json:"state"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// ChangePasswordInput represents input for changing user password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
