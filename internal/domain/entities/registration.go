package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RegistrationStatus represents the payment state of a registration
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "PENDING"
	RegistrationVerified RegistrationStatus = "VERIFIED"
	RegistrationRejected RegistrationStatus = "REJECTED"
)

// Registration is the joining-fee record created alongside a new member
// account. The account stays KYC-unverified until an admin verifies the
// payment proof.
type Registration struct {
	ID              uuid.UUID          `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID          `json:"userId"`
	Amount          int64              `json:"amount"`
	PaymentProofURL null.String        `json:"paymentProofUrl,omitempty"`
	Status          RegistrationStatus `json:"status"`
	VerifiedBy      *uuid.UUID         `json:"verifiedBy,omitempty"`
	VerifiedAt      *time.Time         `json:"verifiedAt,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`

	// Joins
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
