package readstore

import (
	"context"

	"bookingpay/internal/infra"
	"bookingpay/internal/infra/db"
	"bookingpay/internal/pkg/pgconv"
	"bookingpay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

const paymentColumns = `
	id, booking_id, customer_id, checkout_id, amount, currency, method,
	transaction_id, note, link_confidence, processed_at, webhook_processed_at,
	sumup_event_type, sumup_event_id, created_at`

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	q := `SELECT` + paymentColumns + ` FROM payments WHERE id = $1`

	view, err := scanPaymentRow(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by ID", err)
	}
	return view, nil
}

func (r *PaymentReadStore) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.PaymentView, error) {
	q := `SELECT` + paymentColumns + ` FROM payments WHERE booking_id = $1 ORDER BY processed_at DESC`

	rows, err := r.db.Query(ctx, q, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by booking", err)
	}
	defer rows.Close()

	var result []*queries.PaymentView
	for rows.Next() {
		view, err := scanPaymentRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payments", err)
	}

	return result, nil
}

func scanPaymentRow(row rowScanner) (*queries.PaymentView, error) {
	var (
		view      queries.PaymentView
		bookingID pgtype.UUID
	)
	err := row.Scan(
		&view.ID,
		&bookingID,
		&view.CustomerID,
		&view.CheckoutID,
		&view.Amount,
		&view.Currency,
		&view.Method,
		&view.TransactionID,
		&view.Note,
		&view.LinkConfidence,
		&view.ProcessedAt,
		&view.WebhookProcessedAt,
		&view.SumUpEventType,
		&view.SumUpEventID,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.BookingID = pgconv.UUIDPtrFromPgtype(bookingID)
	return &view, nil
}
