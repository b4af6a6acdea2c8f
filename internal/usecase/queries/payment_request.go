package queries

import (
	"context"
	"time"

	"bookingpay/internal/infra"
	"bookingpay/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type PaymentRequestView struct {
	ID           uuid.UUID       `json:"id"`
	BookingID    *uuid.UUID      `json:"booking_id,omitempty"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Status       string          `json:"status"`
	DueDate      time.Time       `json:"due_date"`
	CheckoutID   *string         `json:"checkout_id,omitempty"`
	CancelReason *string         `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StaleRequestItem is what the reconciler scans: sent requests whose last
// update is older than the staleness threshold.
type StaleRequestItem struct {
	ID         uuid.UUID
	CheckoutID string
	BookingID  *uuid.UUID
	CustomerID uuid.UUID
	DueDate    time.Time
	UpdatedAt  time.Time
}

type PaymentRequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PaymentRequestView, error)
	GetByCheckoutID(ctx context.Context, checkoutID string) (*PaymentRequestView, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*PaymentRequestView, error)
	ListStaleSent(ctx context.Context, olderThan time.Time, limit int) ([]*StaleRequestItem, error)
	ListOverdueActive(ctx context.Context, dueBefore time.Time, limit int) ([]*PaymentRequestView, error)
}

type PaymentRequestViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentRequestView, error)
	FindByCheckoutID(ctx context.Context, checkoutID string) (*PaymentRequestView, error)
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*PaymentRequestView, error)
	FindStaleSent(ctx context.Context, olderThan time.Time, limit int) ([]*StaleRequestItem, error)
	FindOverdueActive(ctx context.Context, dueBefore time.Time, limit int) ([]*PaymentRequestView, error)
}

type paymentRequestQueriesImpl struct {
	repo PaymentRequestViewRepo
}

func NewPaymentRequestQueries(repo PaymentRequestViewRepo) PaymentRequestQueries {
	return &paymentRequestQueriesImpl{repo: repo}
}

func (q *paymentRequestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PaymentRequestView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPaymentRequestNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *paymentRequestQueriesImpl) GetByCheckoutID(ctx context.Context, checkoutID string) (*PaymentRequestView, error) {
	view, err := q.repo.FindByCheckoutID(ctx, checkoutID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPaymentRequestNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *paymentRequestQueriesImpl) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*PaymentRequestView, error) {
	return q.repo.FindByBooking(ctx, bookingID)
}

func (q *paymentRequestQueriesImpl) ListStaleSent(ctx context.Context, olderThan time.Time, limit int) ([]*StaleRequestItem, error) {
	return q.repo.FindStaleSent(ctx, olderThan, limit)
}

func (q *paymentRequestQueriesImpl) ListOverdueActive(ctx context.Context, dueBefore time.Time, limit int) ([]*PaymentRequestView, error) {
	return q.repo.FindOverdueActive(ctx, dueBefore, limit)
}
