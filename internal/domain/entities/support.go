package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TicketStatus represents support ticket state
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "OPEN"
	TicketStatusAnswered TicketStatus = "ANSWERED"
	TicketStatusClosed   TicketStatus = "CLOSED"
)

// SupportTicket is a member support request with an optional admin reply.
type SupportTicket struct {
	ID        uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID    `json:"userId"`
	Subject   string       `json:"subject"`
	Message   string       `json:"message"`
	Reply     null.String  `json:"reply,omitempty"`
	RepliedBy *uuid.UUID   `json:"repliedBy,omitempty"`
	Status    TicketStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`

	// Joins
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// CreateTicketInput represents input for opening a support ticket
type CreateTicketInput struct {
	Subject string `json:"subject" binding:"required,min=3,max=200"`
	Message string `json:"message" binding:"required,min=10"`
}

// ReplyTicketInput represents admin input for answering a ticket
type ReplyTicketInput struct {
	Reply string `json:"reply" binding:"required,min=2"`
	Close bool   `json:"close"`
}
