package response

import (
	"time"

	"bookingpay/internal/usecase/commands"
	"bookingpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type WebhookAckResponse struct {
	Outcome          string     `json:"outcome"`
	Replayed         bool       `json:"replayed"`
	PaymentRequestID *uuid.UUID `json:"paymentRequestId,omitempty"`
}

func FromProcessResult(r *commands.ProcessResult) *WebhookAckResponse {
	return &WebhookAckResponse{
		Outcome:          r.Outcome,
		Replayed:         r.Replayed,
		PaymentRequestID: r.PaymentRequestID,
	}
}

type ReconcileResponse struct {
	Examined int `json:"examined"`
	Repaired int `json:"repaired"`
	Expired  int `json:"expired"`
	Errors   int `json:"errors"`
}

func FromReconcileSummary(s *commands.ReconcileSummary) *ReconcileResponse {
	return &ReconcileResponse{
		Examined: s.Examined,
		Repaired: s.Repaired,
		Expired:  s.Expired,
		Errors:   s.Errors,
	}
}

type WebhookEventResponse struct {
	EventID          string     `json:"eventId"`
	Source           string     `json:"source"`
	EventType        string     `json:"eventType"`
	CheckoutID       string     `json:"checkoutId"`
	Outcome          *string    `json:"outcome,omitempty"`
	PaymentRequestID *uuid.UUID `json:"paymentRequestId,omitempty"`
	ReceivedAt       time.Time  `json:"receivedAt"`
	ProcessedAt      *time.Time `json:"processedAt,omitempty"`
}

func FromWebhookEventView(rm *queries.WebhookEventView) *WebhookEventResponse {
	return &WebhookEventResponse{
		EventID:          rm.EventID,
		Source:           rm.Source,
		EventType:        rm.EventType,
		CheckoutID:       rm.CheckoutID,
		Outcome:          rm.Outcome,
		PaymentRequestID: rm.PaymentRequestID,
		ReceivedAt:       rm.ReceivedAt,
		ProcessedAt:      rm.ProcessedAt,
	}
}

// CheckoutTraceResponse ties a processor checkout back to its payment request
// and every ledger entry recorded against it, whatever the source.
type CheckoutTraceResponse struct {
	PaymentRequest *PaymentRequestResponse `json:"paymentRequest"`
	Events         []*WebhookEventResponse `json:"events"`
}
