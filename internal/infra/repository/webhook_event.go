package repository

import (
	"context"
	"time"

	"bookingpay/internal/infra"
	"bookingpay/internal/infra/db"
	"bookingpay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// WebhookEventRepository is the dedup ledger. event_id is unique; TryInsert
// either claims an event for processing or reports it as already seen, and
// the recorded outcome is what replays answer with.
type WebhookEventRepository struct{}

func NewWebhookEventRepository() *WebhookEventRepository {
	return &WebhookEventRepository{}
}

type WebhookEventRecord struct {
	EventID          string
	Source           string
	EventType        string
	CheckoutID       string
	Outcome          *string
	PaymentRequestID *uuid.UUID
	ReceivedAt       time.Time
	ProcessedAt      *time.Time
}

func (r *WebhookEventRepository) TryInsert(ctx context.Context, tx db.DBTX, eventID, source, eventType, checkoutID string, payload []byte) (bool, error) {
	const q = `
		INSERT INTO webhook_events (event_id, source, event_type, checkout_id, payload, received_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (event_id) DO NOTHING`

	tag, err := tx.Exec(ctx, q, eventID, source, eventType, checkoutID, payload)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert webhook event", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *WebhookEventRepository) Get(ctx context.Context, tx db.DBTX, eventID string) (*WebhookEventRecord, error) {
	const q = `
		SELECT event_id, source, event_type, checkout_id, outcome, payment_request_id, received_at, processed_at
		FROM webhook_events
		WHERE event_id = $1`

	var rec WebhookEventRecord
	err := tx.QueryRow(ctx, q, eventID).Scan(
		&rec.EventID,
		&rec.Source,
		&rec.EventType,
		&rec.CheckoutID,
		&rec.Outcome,
		&rec.PaymentRequestID,
		&rec.ReceivedAt,
		&rec.ProcessedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("webhook event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get webhook event", err)
	}

	return &rec, nil
}

func (r *WebhookEventRepository) SetOutcome(ctx context.Context, tx db.DBTX, eventID, outcome string, paymentRequestID *uuid.UUID) error {
	const q = `
		UPDATE webhook_events
		SET outcome = $2, payment_request_id = $3, processed_at = now()
		WHERE event_id = $1`

	if _, err := tx.Exec(ctx, q, eventID, outcome, pgconv.UUIDPtrToPgtype(paymentRequestID)); err != nil {
		return infra.WrapRepoErr("failed to set webhook event outcome", err)
	}
	return nil
}
