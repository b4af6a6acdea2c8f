package readstore

import (
	"context"
	"time"

	"bookingpay/internal/infra"
	"bookingpay/internal/infra/db"
	"bookingpay/internal/pkg/pgconv"
	"bookingpay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentRequestReadStore struct {
	db db.DBTX
}

func NewPaymentRequestReadStore(dbtx db.DBTX) *PaymentRequestReadStore {
	return &PaymentRequestReadStore{db: dbtx}
}

const paymentRequestColumns = `
	id, booking_id, customer_id, amount, currency, status, due_date,
	checkout_id, cancel_reason, created_at, updated_at`

func (r *PaymentRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentRequestView, error) {
	q := `SELECT` + paymentRequestColumns + ` FROM payment_requests WHERE id = $1`

	view, err := r.scanOne(ctx, q, id)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *PaymentRequestReadStore) FindByCheckoutID(ctx context.Context, checkoutID string) (*queries.PaymentRequestView, error) {
	q := `SELECT` + paymentRequestColumns + ` FROM payment_requests WHERE checkout_id = $1`

	view, err := r.scanOne(ctx, q, checkoutID)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *PaymentRequestReadStore) FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*queries.PaymentRequestView, error) {
	q := `SELECT` + paymentRequestColumns + ` FROM payment_requests WHERE booking_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payment requests by booking", err)
	}
	defer rows.Close()

	var result []*queries.PaymentRequestView
	for rows.Next() {
		view, err := scanPaymentRequestRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payment requests", err)
	}

	return result, nil
}

func (r *PaymentRequestReadStore) FindStaleSent(ctx context.Context, olderThan time.Time, limit int) ([]*queries.StaleRequestItem, error) {
	const q = `
		SELECT id, checkout_id, booking_id, customer_id, due_date, updated_at
		FROM payment_requests
		WHERE status = 'sent' AND updated_at < $1 AND checkout_id IS NOT NULL
		ORDER BY updated_at
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, olderThan, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale sent payment requests", err)
	}
	defer rows.Close()

	var result []*queries.StaleRequestItem
	for rows.Next() {
		var (
			item      queries.StaleRequestItem
			bookingID pgtype.UUID
		)
		if err := rows.Scan(&item.ID, &item.CheckoutID, &bookingID, &item.CustomerID, &item.DueDate, &item.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stale payment request", err)
		}
		item.BookingID = pgconv.UUIDPtrFromPgtype(bookingID)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read stale payment requests", err)
	}

	return result, nil
}

// FindOverdueActive feeds the reconciler's expiry pass: requests still
// payable long past their due date.
func (r *PaymentRequestReadStore) FindOverdueActive(ctx context.Context, dueBefore time.Time, limit int) ([]*queries.PaymentRequestView, error) {
	q := `SELECT` + paymentRequestColumns + `
		FROM payment_requests
		WHERE status IN ('pending', 'sent') AND due_date < $1
		ORDER BY due_date
		LIMIT $2`

	rows, err := r.db.Query(ctx, q, dueBefore, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue payment requests", err)
	}
	defer rows.Close()

	var result []*queries.PaymentRequestView
	for rows.Next() {
		view, err := scanPaymentRequestRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read overdue payment requests", err)
	}

	return result, nil
}

func (r *PaymentRequestReadStore) scanOne(ctx context.Context, q string, arg any) (*queries.PaymentRequestView, error) {
	row := r.db.QueryRow(ctx, q, arg)
	view, err := scanPaymentRequestRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment request", err)
	}
	return view, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPaymentRequestRow(row rowScanner) (*queries.PaymentRequestView, error) {
	var (
		view         queries.PaymentRequestView
		bookingID    pgtype.UUID
		checkoutID   pgtype.Text
		cancelReason pgtype.Text
	)
	err := row.Scan(
		&view.ID,
		&bookingID,
		&view.CustomerID,
		&view.Amount,
		&view.Currency,
		&view.Status,
		&view.DueDate,
		&checkoutID,
		&cancelReason,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.BookingID = pgconv.UUIDPtrFromPgtype(bookingID)
	view.CheckoutID = pgconv.StringPtrFromPgtype(checkoutID)
	view.CancelReason = pgconv.StringPtrFromPgtype(cancelReason)
	return &view, nil
}
