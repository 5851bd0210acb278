package entities

import (
	"time"

	"github.com/google/uuid"
)

// ReferralStatus represents the state of a referral edge
type ReferralStatus string

const (
	ReferralStatusActive   ReferralStatus = "ACTIVE"
	ReferralStatusInactive ReferralStatus = "INACTIVE"
)

// Referral is one edge of the referral network: referrer is `level` steps
// above referred on the sponsor chain (level 1 = direct sponsor). Edges are
// written once at registration; Commission accumulates what the referrer has
// earned from the referred member's orders.
type Referral struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReferrerID uuid.UUID      `json:"referrerId"`
	ReferredID uuid.UUID      `json:"referredId"`
	Level      int            `json:"level"`
	Commission int64          `json:"commission"`
	Status     ReferralStatus `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`

	// Joins
	Referred *User `json:"referred,omitempty" gorm:"foreignKey:ReferredID"`
}

// UplineEntry is one ancestor on a member's sponsor chain, as returned by the
// upline walk. Level 1 is the direct sponsor.
type UplineEntry struct {
	UserID uuid.UUID `json:"userId"`
	Level  int       `json:"level"`
}

// ReferralTreeNode is a node in the bounded-depth genealogy view
type ReferralTreeNode struct {
	UserID       uuid.UUID           `json:"userId"`
	Name         string              `json:"name"`
	ReferralCode string              `json:"referralCode"`
	Rank         string              `json:"rank"`
	PointVolume  int64               `json:"pointVolume"`
	Children     []*ReferralTreeNode `json:"children,omitempty"`
}
