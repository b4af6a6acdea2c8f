package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequestRequest struct {
	BookingID  uuid.UUID       `json:"booking_id" binding:"required"`
	CustomerID uuid.UUID       `json:"customer_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Currency   string          `json:"currency" binding:"required"`
	DueDate    time.Time       `json:"due_date" binding:"required"`
}

type CancelPaymentRequestRequest struct {
	Reason *string `json:"reason,omitempty"`
}

func (r CancelPaymentRequestRequest) GetReason() *string {
	if r.Reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type SimulateEventRequest struct {
	// Outcome is "success" or "failure".
	Outcome string `json:"outcome" binding:"required,oneof=success failure"`
}
