//go:build unit || e2e

package builder

import (
	"time"

	dompr "bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/handler/dto/request"
	"bookingpay/internal/usecase/commands"
	"bookingpay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentRequestBuilder struct {
	BookingID  uuid.UUID
	CustomerID uuid.UUID
	Amount     decimal.Decimal
	Currency   string
	DueDate    time.Time
	Now        time.Time
}

func NewPaymentRequestBuilder() *PaymentRequestBuilder {
	now := time.Now()
	return &PaymentRequestBuilder{
		BookingID:  uuid.New(),
		CustomerID: uuid.New(),
		Amount:     decimal.NewFromInt(150),
		Currency:   "EUR",
		DueDate:    now.Add(14 * 24 * time.Hour),
		Now:        now,
	}
}

func (b *PaymentRequestBuilder) With(mutate func(*PaymentRequestBuilder)) *PaymentRequestBuilder {
	mutate(b)
	return b
}

func (b *PaymentRequestBuilder) WithAmount(amount decimal.Decimal) *PaymentRequestBuilder {
	b.Amount = amount
	return b
}

func (b *PaymentRequestBuilder) WithCurrency(currency string) *PaymentRequestBuilder {
	b.Currency = currency
	return b
}

func (b *PaymentRequestBuilder) WithDueDate(due time.Time) *PaymentRequestBuilder {
	b.DueDate = due
	return b
}

func (b *PaymentRequestBuilder) BuildDomain() (*dompr.PaymentRequest, error) {
	return dompr.NewPaymentRequest(b.BookingID, b.CustomerID, b.Amount, b.Currency, b.DueDate, b.Now)
}

func (b *PaymentRequestBuilder) BuildView() *queries.PaymentRequestView {
	bookingID := b.BookingID
	return &queries.PaymentRequestView{
		ID:         uuid.New(),
		BookingID:  &bookingID,
		CustomerID: b.CustomerID,
		Amount:     b.Amount,
		Currency:   b.Currency,
		Status:     "pending",
		DueDate:    b.DueDate,
		CreatedAt:  b.Now,
		UpdatedAt:  b.Now,
	}
}

func (b *PaymentRequestBuilder) BuildCreateRequestDTO() *request.CreatePaymentRequestRequest {
	return &request.CreatePaymentRequestRequest{
		BookingID:  b.BookingID,
		CustomerID: b.CustomerID,
		Amount:     b.Amount,
		Currency:   b.Currency,
		DueDate:    b.DueDate,
	}
}

type EnvelopeBuilder struct {
	EventID    string
	EventType  string
	CheckoutID string
	Amount     decimal.Decimal
	Currency   string
	Status     string
	OccurredAt time.Time
}

func NewEnvelopeBuilder() *EnvelopeBuilder {
	return &EnvelopeBuilder{
		EventID:    "evt_" + uuid.NewString(),
		EventType:  commands.EventCheckoutCompleted,
		CheckoutID: "ck_" + uuid.NewString(),
		Amount:     decimal.NewFromInt(150),
		Currency:   "EUR",
		Status:     "PAID",
		OccurredAt: time.Now(),
	}
}

func (b *EnvelopeBuilder) WithEventID(id string) *EnvelopeBuilder {
	b.EventID = id
	return b
}

func (b *EnvelopeBuilder) WithEventType(eventType string) *EnvelopeBuilder {
	b.EventType = eventType
	return b
}

func (b *EnvelopeBuilder) WithCheckoutID(checkoutID string) *EnvelopeBuilder {
	b.CheckoutID = checkoutID
	return b
}

func (b *EnvelopeBuilder) Build() commands.EventEnvelope {
	return commands.EventEnvelope{
		EventID:       b.EventID,
		EventType:     b.EventType,
		CheckoutID:    b.CheckoutID,
		Amount:        b.Amount,
		Currency:      b.Currency,
		Status:        b.Status,
		Method:        "card",
		TransactionID: "tx_" + uuid.NewString(),
		OccurredAt:    b.OccurredAt,
	}
}
