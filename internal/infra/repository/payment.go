package repository

import (
	"context"

	"bookingpay/internal/domain/linkage"
	"bookingpay/internal/domain/payment"
	"bookingpay/internal/infra"
	"bookingpay/internal/infra/db"
	"bookingpay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

// CreateIfAbsent inserts a captured payment keyed by checkout id. The unique
// constraint makes payment creation idempotent per checkout: a webhook and a
// poller racing on the same checkout produce exactly one row.
func (r *PaymentRepository) CreateIfAbsent(ctx context.Context, tx db.DBTX, p *payment.Payment, confidence linkage.Confidence) (bool, error) {
	const q = `
		INSERT INTO payments (id, booking_id, customer_id, checkout_id, amount, currency, method,
			transaction_id, note, link_confidence, processed_at, webhook_processed_at,
			sumup_event_type, sumup_event_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())
		ON CONFLICT (checkout_id) DO NOTHING`

	tag, err := tx.Exec(ctx, q,
		p.ID(),
		pgconv.UUIDPtrToPgtype(p.BookingID()),
		p.CustomerID(),
		p.CheckoutID(),
		p.Amount(),
		p.Currency(),
		p.Method(),
		p.TransactionID(),
		p.Note(),
		string(confidence),
		p.ProcessedAt(),
		p.WebhookProcessedAt(),
		p.SumUpEventType(),
		p.SumUpEventID(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to create payment", err)
	}

	return tag.RowsAffected() == 1, nil
}

// AssignBooking links a legacy payment to a booking. The predicate on
// booking_id IS NULL means an explicit link can never be overwritten.
func (r *PaymentRepository) AssignBooking(ctx context.Context, tx db.DBTX, paymentID, bookingID uuid.UUID, confidence linkage.Confidence) (bool, error) {
	const q = `
		UPDATE payments
		SET booking_id = $2, link_confidence = $3
		WHERE id = $1 AND booking_id IS NULL`

	tag, err := tx.Exec(ctx, q, paymentID, bookingID, string(confidence))
	if err != nil {
		return false, infra.WrapRepoErr("failed to assign booking to payment", err)
	}

	return tag.RowsAffected() == 1, nil
}
