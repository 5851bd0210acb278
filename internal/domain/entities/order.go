package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// OrderPaymentStatus represents payment status of an order
type OrderPaymentStatus string

const (
	OrderPaymentPending              OrderPaymentStatus = "PENDING"
	OrderPaymentAwaitingVerification OrderPaymentStatus = "AWAITING_VERIFICATION"
	OrderPaymentVerified             OrderPaymentStatus = "VERIFIED"
	OrderPaymentRejected             OrderPaymentStatus = "REJECTED"
	OrderPaymentExpired              OrderPaymentStatus = "EXPIRED"
)

// OrderDeliveryStatus represents delivery status of an order
type OrderDeliveryStatus string

const (
	OrderDeliveryProcessing OrderDeliveryStatus = "PROCESSING"
	OrderDeliveryShipped    OrderDeliveryStatus = "SHIPPED"
	OrderDeliveryDelivered  OrderDeliveryStatus = "DELIVERED"
)

// Order represents a product purchase. Amount and PointsEarned snapshot the
// product price and PV at creation. Once payment is verified the order is
// immutable except for delivery status. BonusesProcessedAt is the compensation
// engine's claim marker: set exactly once, guarding against double payout.
type Order struct {
	ID                 uuid.UUID           `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID             uuid.UUID           `json:"userId"`
	ProductID          uuid.UUID           `json:"productId"`
	Quantity           int                 `json:"quantity"`
	Amount             int64               `json:"amount"`
	PointsEarned       int64               `json:"pointsEarned"`
	SelfRetail         bool                `json:"selfRetail"`
	PaymentStatus      OrderPaymentStatus  `json:"paymentStatus"`
	DeliveryStatus     OrderDeliveryStatus `json:"deliveryStatus"`
	PaymentProofURL    null.String         `json:"paymentProofUrl,omitempty"`
	VerifiedBy         *uuid.UUID          `json:"verifiedBy,omitempty"`
	VerifiedAt         *time.Time          `json:"verifiedAt,omitempty"`
	BonusesProcessedAt *time.Time          `json:"bonusesProcessedAt,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	UpdatedAt          time.Time           `json:"updatedAt"`
	DeletedAt          *time.Time          `json:"-"`

	// Joins
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// CreateOrderInput represents input for placing an order
type CreateOrderInput struct {
	ProductID  string `json:"productId" binding:"required,uuid"`
	Quantity   int    `json:"quantity" binding:"required,gt=0"`
	SelfRetail bool   `json:"selfRetail"`
}

// PaymentProofInput represents input for attaching a payment proof
type PaymentProofInput struct {
	ProofURL string `json:"proofUrl" binding:"required,url"`
}

// VerifiedOrderEvent is the event handed to the compensation engine when an
// order's payment transitions to verified. Delivery of this event is not
// assumed to be exactly-once; the orchestrator's idempotency check is the
// defense.
type VerifiedOrderEvent struct {
	OrderID    uuid.UUID `json:"orderId"`
	BuyerID    uuid.UUID `json:"buyerId"`
	Amount     int64     `json:"amount"`
	PointValue int64     `json:"pointValue"`
	SelfRetail bool      `json:"selfRetail"`
	Timestamp  time.Time `json:"timestamp"`
}
