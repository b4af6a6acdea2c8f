//go:build unit

package fake

import (
	"context"
	"errors"
	"time"

	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/infra"
	"bookingpay/internal/usecase/queries"

	"github.com/google/uuid"
)

// PaymentRequestQueries serves the read side from the same store the unit of
// work writes to.
type PaymentRequestQueries struct {
	Store *Store
}

func NewPaymentRequestQueries(store *Store) *PaymentRequestQueries {
	return &PaymentRequestQueries{Store: store}
}

func (q *PaymentRequestQueries) GetByID(_ context.Context, id uuid.UUID) (*queries.PaymentRequestView, error) {
	row, ok := q.Store.PaymentRequests[id]
	if !ok {
		return nil, infra.WrapRepoErr("payment request not found", errors.New("no rows"), infra.KindNotFound)
	}
	return toView(row), nil
}

func (q *PaymentRequestQueries) GetByCheckoutID(_ context.Context, checkoutID string) (*queries.PaymentRequestView, error) {
	for _, row := range q.Store.PaymentRequests {
		if row.CheckoutID != nil && *row.CheckoutID == checkoutID {
			return toView(row), nil
		}
	}
	return nil, infra.WrapRepoErr("payment request not found", errors.New("no rows"), infra.KindNotFound)
}

func (q *PaymentRequestQueries) ListByBooking(_ context.Context, bookingID uuid.UUID) ([]*queries.PaymentRequestView, error) {
	var out []*queries.PaymentRequestView
	for _, row := range q.Store.PaymentRequests {
		if row.BookingID != nil && *row.BookingID == bookingID {
			out = append(out, toView(row))
		}
	}
	return out, nil
}

func (q *PaymentRequestQueries) ListStaleSent(_ context.Context, olderThan time.Time, limit int) ([]*queries.StaleRequestItem, error) {
	var out []*queries.StaleRequestItem
	for _, row := range q.Store.PaymentRequests {
		if len(out) >= limit {
			break
		}
		if row.Status != paymentrequest.StatusSent || row.CheckoutID == nil || !row.UpdatedAt.Before(olderThan) {
			continue
		}
		out = append(out, &queries.StaleRequestItem{
			ID:         row.ID,
			CheckoutID: *row.CheckoutID,
			BookingID:  row.BookingID,
			CustomerID: row.CustomerID,
			DueDate:    row.DueDate,
			UpdatedAt:  row.UpdatedAt,
		})
	}
	return out, nil
}

func (q *PaymentRequestQueries) ListOverdueActive(_ context.Context, dueBefore time.Time, limit int) ([]*queries.PaymentRequestView, error) {
	var out []*queries.PaymentRequestView
	for _, row := range q.Store.PaymentRequests {
		if len(out) >= limit {
			break
		}
		if row.Status.IsActive() && row.DueDate.Before(dueBefore) {
			out = append(out, toView(row))
		}
	}
	return out, nil
}

func toView(row *PaymentRequestRow) *queries.PaymentRequestView {
	return &queries.PaymentRequestView{
		ID:           row.ID,
		BookingID:    row.BookingID,
		CustomerID:   row.CustomerID,
		Amount:       row.Amount,
		Currency:     row.Currency,
		Status:       row.Status.String(),
		DueDate:      row.DueDate,
		CheckoutID:   row.CheckoutID,
		CancelReason: row.CancelReason,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
