package queries

import (
	"time"

	"github.com/google/uuid"
)

// BookingView represents read-optimized booking data
type BookingView struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	ServiceName string    `json:"service_name"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CustomerView carries the encrypted PII as stored; decryption is the pii
// collaborator's job.
type CustomerView struct {
	ID                 uuid.UUID `json:"id"`
	FirstNameEncrypted []byte    `json:"-"`
	LastNameEncrypted  []byte    `json:"-"`
	PhoneEncrypted     []byte    `json:"-"`
	Active             bool      `json:"active"`
	CreatedAt          time.Time `json:"created_at"`
}

// WebhookEventView is the ledger read model for operational lookups.
type WebhookEventView struct {
	EventID          string     `json:"event_id"`
	Source           string     `json:"source"`
	EventType        string     `json:"event_type"`
	CheckoutID       string     `json:"checkout_id"`
	Outcome          *string    `json:"outcome,omitempty"`
	PaymentRequestID *uuid.UUID `json:"payment_request_id,omitempty"`
	ReceivedAt       time.Time  `json:"received_at"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
}
