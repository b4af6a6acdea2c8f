package readstore

import (
	"context"

	"bookingpay/internal/infra"
	"bookingpay/internal/infra/db"
	"bookingpay/internal/pkg/pgconv"
	"bookingpay/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type WebhookEventReadStore struct {
	db db.DBTX
}

func NewWebhookEventReadStore(dbtx db.DBTX) *WebhookEventReadStore {
	return &WebhookEventReadStore{db: dbtx}
}

const webhookEventColumns = `
	event_id, source, event_type, checkout_id, outcome, payment_request_id,
	received_at, processed_at`

func (r *WebhookEventReadStore) FindByEventID(ctx context.Context, eventID string) (*queries.WebhookEventView, error) {
	q := `SELECT` + webhookEventColumns + ` FROM webhook_events WHERE event_id = $1`

	view, err := scanWebhookEventRow(r.db.QueryRow(ctx, q, eventID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("webhook event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find webhook event", err)
	}
	return view, nil
}

func (r *WebhookEventReadStore) FindByCheckout(ctx context.Context, checkoutID string) ([]*queries.WebhookEventView, error) {
	q := `SELECT` + webhookEventColumns + ` FROM webhook_events WHERE checkout_id = $1 ORDER BY received_at`

	rows, err := r.db.Query(ctx, q, checkoutID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list webhook events by checkout", err)
	}
	defer rows.Close()

	var result []*queries.WebhookEventView
	for rows.Next() {
		view, err := scanWebhookEventRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan webhook event", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read webhook events", err)
	}

	return result, nil
}

func scanWebhookEventRow(row rowScanner) (*queries.WebhookEventView, error) {
	var (
		view             queries.WebhookEventView
		outcome          pgtype.Text
		paymentRequestID pgtype.UUID
		processedAt      pgtype.Timestamptz
	)
	if err := row.Scan(
		&view.EventID, &view.Source, &view.EventType, &view.CheckoutID,
		&outcome, &paymentRequestID, &view.ReceivedAt, &processedAt,
	); err != nil {
		return nil, err
	}
	view.Outcome = pgconv.StringPtrFromPgtype(outcome)
	view.PaymentRequestID = pgconv.UUIDPtrFromPgtype(paymentRequestID)
	view.ProcessedAt = pgconv.TimePtrFromPgtype(processedAt)
	return &view, nil
}
