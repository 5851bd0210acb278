package models

import (
	"time"

	"github.com/google/uuid"
)

// WalletTransaction rows are append-only. The composite unique index over
// (user, source order, reason) is the storage-level idempotency guarantee: a
// replayed order cannot insert a second row for the same commission rule.
type WalletTransaction struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        uuid.UUID  `gorm:"type:uuid;index;not null;uniqueIndex:idx_wallet_tx_dedup"`
	Type          string     `gorm:"type:varchar(50);not null"`
	Amount        int64      `gorm:"not null"`
	Description   string     `gorm:"type:varchar(255)"`
	Reason        string     `gorm:"type:varchar(100);uniqueIndex:idx_wallet_tx_dedup"`
	SourceOrderID *uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_wallet_tx_dedup"`
	Status        string     `gorm:"type:varchar(50);not null;default:'PENDING'"`
	CreatedAt     time.Time
}
