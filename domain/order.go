package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/readydoer/marketplace-core/apperror"
)

// Order is an incoming engagement on the freelancer side: a client ordering
// one of the freelancer's services. Accepting an order affects only that
// order; there is no sibling cascade here.
type Order struct {
	ID           uuid.UUID    `json:"id"`
	Client       Party        `json:"client"`
	ServiceTitle string       `json:"service_title"`
	CategoryID   string       `json:"category_id"`
	Message      string       `json:"message"`
	Amount       float64      `json:"amount"`
	DeadlineDays int          `json:"deadline_days"`
	Status       OrderStatus  `json:"status"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// NewOrder validates and builds a pending order.
func NewOrder(client Party, serviceTitle, message string, amount float64, deadlineDays int) (*Order, error) {
	if serviceTitle == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "service title is required")
	}
	if amount <= 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "order amount must be positive")
	}

	now := time.Now()
	return &Order{
		ID:           uuid.New(),
		Client:       client,
		ServiceTitle: serviceTitle,
		Message:      message,
		Amount:       amount,
		DeadlineDays: deadlineDays,
		Status:       OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (o *Order) IsPending() bool {
	return o.Status == OrderStatusPending
}
