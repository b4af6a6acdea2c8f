package request

import (
	"time"

	"bookingpay/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// WebhookEventRequest mirrors the processor's envelope. Field validation
// beyond presence happens in the usecase so the reconciler and simulator
// share it.
type WebhookEventRequest struct {
	EventID       string          `json:"event_id" binding:"required"`
	EventType     string          `json:"event_type" binding:"required"`
	CheckoutID    string          `json:"checkout_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	Method        string          `json:"method,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

func (r WebhookEventRequest) ToEnvelope() commands.EventEnvelope {
	return commands.EventEnvelope{
		EventID:       r.EventID,
		EventType:     r.EventType,
		CheckoutID:    r.CheckoutID,
		Amount:        r.Amount,
		Currency:      r.Currency,
		Status:        r.Status,
		Method:        r.Method,
		TransactionID: r.TransactionID,
		OccurredAt:    r.OccurredAt,
	}
}
