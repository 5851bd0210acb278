package entities

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType categorizes ledger entries
type TransactionType string

const (
	TransactionTypeCommission TransactionType = "COMMISSION"
	TransactionTypeBonus      TransactionType = "BONUS"
	TransactionTypeReferral   TransactionType = "REFERRAL"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
	TransactionTypePurchase   TransactionType = "PURCHASE"
)

// TransactionStatus represents the settlement state of a ledger entry
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
)

// WalletTransaction is an append-only ledger entry. Amount is signed: credits
// are positive, withdrawals negative. A user's wallet balance is the sum of
// their completed transactions; no balance field is ever written directly.
// Reason and SourceOrderID identify the commission rule and triggering order
// for engine-written rows; together with UserID they are unique, which is what
// makes a replayed order a no-op at the storage layer.
type WalletTransaction struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID         `json:"userId"`
	Type          TransactionType   `json:"type"`
	Amount        int64             `json:"amount"`
	Description   string            `json:"description"`
	Reason        string            `json:"reason,omitempty"`
	SourceOrderID *uuid.UUID        `json:"sourceOrderId,omitempty"`
	Status        TransactionStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// WalletSummary aggregates a user's ledger for the wallet screen
type WalletSummary struct {
	Balance        int64 `json:"balance"`
	PendingCredits int64 `json:"pendingCredits"`
	TotalEarnings  int64 `json:"totalEarnings"`
	TotalWithdrawn int64 `json:"totalWithdrawn"`
}

// WithdrawalInput represents input for requesting a withdrawal
type WithdrawalInput struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}
