package paymentrequest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrInvalidCurrency   = errors.New("currency must be a three-letter code")
	ErrDueDateInPast     = errors.New("due date cannot be in the past")
	ErrMissingBooking    = errors.New("payment request requires a booking")
	ErrMissingCustomer   = errors.New("payment request requires a customer")
)

// PaymentRequest is an obligation for a customer to pay a specific amount for
// a specific booking. bookingID is nil only on legacy rows created before the
// booking linkage existed; new requests always carry it.
type PaymentRequest struct {
	id           uuid.UUID
	bookingID    *uuid.UUID
	customerID   uuid.UUID
	amount       decimal.Decimal
	currency     string
	status       Status
	dueDate      time.Time
	checkoutID   *string
	cancelReason *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPaymentRequest(
	bookingID uuid.UUID,
	customerID uuid.UUID,
	amount decimal.Decimal,
	currency string,
	dueDate time.Time,
	now time.Time,
) (*PaymentRequest, error) {
	if bookingID == uuid.Nil {
		return nil, ErrMissingBooking
	}
	if customerID == uuid.Nil {
		return nil, ErrMissingCustomer
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, ErrInvalidCurrency
	}
	if dueDate.Before(now) {
		return nil, ErrDueDateInPast
	}

	bid := bookingID
	return &PaymentRequest{
		id:         uuid.New(),
		bookingID:  &bid,
		customerID: customerID,
		amount:     amount,
		currency:   currency,
		status:     StatusPending,
		dueDate:    dueDate,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	bookingID *uuid.UUID,
	customerID uuid.UUID,
	amount decimal.Decimal,
	currency string,
	status Status,
	dueDate time.Time,
	checkoutID *string,
	cancelReason *string,
	createdAt, updatedAt time.Time,
) *PaymentRequest {
	return &PaymentRequest{
		id:           id,
		bookingID:    bookingID,
		customerID:   customerID,
		amount:       amount,
		currency:     currency,
		status:       status,
		dueDate:      dueDate,
		checkoutID:   checkoutID,
		cancelReason: cancelReason,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *PaymentRequest) IsTerminal() bool { return p.status.IsTerminal() }
func (p *PaymentRequest) IsActive() bool   { return p.status.IsActive() }

// OverdueSince reports whether the request has been payable past its due date
// for longer than grace. Used by the reconciler to expire abandoned requests.
func (p *PaymentRequest) OverdueSince(now time.Time, grace time.Duration) bool {
	return p.status.IsActive() && now.Sub(p.dueDate) > grace
}

func (p *PaymentRequest) ID() uuid.UUID          { return p.id }
func (p *PaymentRequest) BookingID() *uuid.UUID  { return p.bookingID }
func (p *PaymentRequest) CustomerID() uuid.UUID  { return p.customerID }
func (p *PaymentRequest) Amount() decimal.Decimal { return p.amount }
func (p *PaymentRequest) Currency() string       { return p.currency }
func (p *PaymentRequest) Status() Status         { return p.status }
func (p *PaymentRequest) DueDate() time.Time     { return p.dueDate }
func (p *PaymentRequest) CheckoutID() *string    { return p.checkoutID }
func (p *PaymentRequest) CancelReason() *string  { return p.cancelReason }
func (p *PaymentRequest) CreatedAt() time.Time   { return p.createdAt }
func (p *PaymentRequest) UpdatedAt() time.Time   { return p.updatedAt }
