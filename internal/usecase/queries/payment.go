package queries

import (
	"context"
	"time"

	"bookingpay/internal/infra"
	"bookingpay/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentView struct {
	ID                 uuid.UUID       `json:"id"`
	BookingID          *uuid.UUID      `json:"booking_id,omitempty"`
	CustomerID         uuid.UUID       `json:"customer_id"`
	CheckoutID         string          `json:"checkout_id"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	Method             string          `json:"method"`
	TransactionID      string          `json:"transaction_id"`
	Note               string          `json:"note"`
	LinkConfidence     string          `json:"link_confidence"`
	ProcessedAt        time.Time       `json:"processed_at"`
	WebhookProcessedAt time.Time       `json:"webhook_processed_at"`
	SumUpEventType     string          `json:"sumup_event_type"`
	SumUpEventID       string          `json:"sumup_event_id"`
	CreatedAt          time.Time       `json:"created_at"`
}

type PaymentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
}

type PaymentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	FindByBooking(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	repo PaymentViewRepo
}

func NewPaymentQueries(repo PaymentViewRepo) PaymentQueries {
	return &paymentQueriesImpl{repo: repo}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPaymentNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *paymentQueriesImpl) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error) {
	return q.repo.FindByBooking(ctx, bookingID)
}
