package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrMissingCheckoutID = errors.New("payment requires a checkout id")
	ErrMissingEventID    = errors.New("payment requires the originating event id")
)

// Payment records money actually captured against a payment request. The
// request is correlated via the processor's checkout id rather than a hard
// foreign key so that an out-of-order webhook can still land. bookingID is
// nil on legacy rows until the linkage resolver assigns one.
type Payment struct {
	id                 uuid.UUID
	bookingID          *uuid.UUID
	customerID         uuid.UUID
	checkoutID         string
	amount             decimal.Decimal
	currency           string
	method             string
	transactionID      string
	note               string
	processedAt        time.Time
	webhookProcessedAt time.Time
	sumupEventType     string
	sumupEventID       string
	createdAt          time.Time
}

func NewPayment(
	bookingID *uuid.UUID,
	customerID uuid.UUID,
	checkoutID string,
	amount decimal.Decimal,
	currency string,
	method string,
	transactionID string,
	note string,
	eventType string,
	eventID string,
	now time.Time,
) (*Payment, error) {
	if checkoutID == "" {
		return nil, ErrMissingCheckoutID
	}
	if eventID == "" {
		return nil, ErrMissingEventID
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}

	return &Payment{
		id:                 uuid.New(),
		bookingID:          bookingID,
		customerID:         customerID,
		checkoutID:         checkoutID,
		amount:             amount,
		currency:           currency,
		method:             method,
		transactionID:      transactionID,
		note:               note,
		processedAt:        now,
		webhookProcessedAt: now,
		sumupEventType:     eventType,
		sumupEventID:       eventID,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	bookingID *uuid.UUID,
	customerID uuid.UUID,
	checkoutID string,
	amount decimal.Decimal,
	currency string,
	method string,
	transactionID string,
	note string,
	processedAt time.Time,
	webhookProcessedAt time.Time,
	sumupEventType string,
	sumupEventID string,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:                 id,
		bookingID:          bookingID,
		customerID:         customerID,
		checkoutID:         checkoutID,
		amount:             amount,
		currency:           currency,
		method:             method,
		transactionID:      transactionID,
		note:               note,
		processedAt:        processedAt,
		webhookProcessedAt: webhookProcessedAt,
		sumupEventType:     sumupEventType,
		sumupEventID:       sumupEventID,
		createdAt:          createdAt,
	}
}

func (p *Payment) HasExplicitBooking() bool {
	return p.bookingID != nil
}

func (p *Payment) ID() uuid.UUID                 { return p.id }
func (p *Payment) BookingID() *uuid.UUID         { return p.bookingID }
func (p *Payment) CustomerID() uuid.UUID         { return p.customerID }
func (p *Payment) CheckoutID() string            { return p.checkoutID }
func (p *Payment) Amount() decimal.Decimal       { return p.amount }
func (p *Payment) Currency() string              { return p.currency }
func (p *Payment) Method() string                { return p.method }
func (p *Payment) TransactionID() string         { return p.transactionID }
func (p *Payment) Note() string                  { return p.note }
func (p *Payment) ProcessedAt() time.Time        { return p.processedAt }
func (p *Payment) WebhookProcessedAt() time.Time { return p.webhookProcessedAt }
func (p *Payment) SumUpEventType() string        { return p.sumupEventType }
func (p *Payment) SumUpEventID() string          { return p.sumupEventID }
func (p *Payment) CreatedAt() time.Time          { return p.createdAt }
