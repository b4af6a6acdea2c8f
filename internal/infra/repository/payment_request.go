package repository

import (
	"context"

	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/infra"
	"bookingpay/internal/infra/db"
	"bookingpay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentRequestRepository struct{}

func NewPaymentRequestRepository() *PaymentRequestRepository {
	return &PaymentRequestRepository{}
}

// Create relies on the partial unique index over active requests per booking:
// a second pending/sent request for the same booking comes back as a conflict,
// never as a silent second row.
func (r *PaymentRequestRepository) Create(ctx context.Context, tx db.DBTX, pr *paymentrequest.PaymentRequest) (uuid.UUID, error) {
	const q = `
		INSERT INTO payment_requests (id, booking_id, customer_id, amount, currency, status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		pr.ID(),
		pgconv.UUIDPtrToPgtype(pr.BookingID()),
		pr.CustomerID(),
		pr.Amount(),
		pr.Currency(),
		pr.Status().String(),
		pr.DueDate(),
	).Scan(&id)
	if err != nil {
		if kind := kindFromPgErr(err); kind == infra.KindDuplicateKey {
			return uuid.Nil, infra.WrapRepoErr("active payment request already exists for booking", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create payment request", err)
	}

	return id, nil
}

// TransitionStatus is the single compare-and-swap every status change goes
// through: the target is written only when the current status is still one of
// the legal source states, in one statement. Concurrent writers see
// applied=false, never a partial write.
func (r *PaymentRequestRepository) TransitionStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, target paymentrequest.Status, cancelReason *string) (bool, error) {
	sources := paymentrequest.SourcesFor(target)
	if len(sources) == 0 {
		return false, nil
	}
	from := make([]string, len(sources))
	for i, s := range sources {
		from[i] = s.String()
	}

	const q = `
		UPDATE payment_requests
		SET status = $2,
		    cancel_reason = COALESCE($3, cancel_reason),
		    updated_at = now()
		WHERE id = $1 AND status = ANY($4)`

	tag, err := tx.Exec(ctx, q, id, target.String(), pgconv.StringPtrToPgtype(cancelReason), from)
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition payment request status", err)
	}

	return tag.RowsAffected() == 1, nil
}

// MarkSent stores the processor checkout id together with the pending→sent
// transition so a request can never be sent twice or sent without a checkout.
func (r *PaymentRequestRepository) MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID, checkoutID string) (bool, error) {
	const q = `
		UPDATE payment_requests
		SET status = 'sent', checkout_id = $2, updated_at = now()
		WHERE id = $1 AND status = 'pending'`

	tag, err := tx.Exec(ctx, q, id, checkoutID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark payment request sent", err)
	}

	return tag.RowsAffected() == 1, nil
}

// TouchUpdatedAt pushes a request out of the reconciler's stale window after
// a tick that produced no new information.
func (r *PaymentRequestRepository) TouchUpdatedAt(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	const q = `UPDATE payment_requests SET updated_at = now() WHERE id = $1`

	if _, err := tx.Exec(ctx, q, id); err != nil {
		return infra.WrapRepoErr("failed to touch payment request", err)
	}
	return nil
}
