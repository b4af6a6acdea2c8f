//go:build unit

// Package fake provides an in-memory unit of work with the same conditional
// update semantics as the Postgres implementation, so command tests can
// exercise real state machine behavior without a database.
package fake

import (
	"sync"
	"time"

	"bookingpay/internal/domain/linkage"
	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/infra/repository"
	"bookingpay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentRequestRow struct {
	ID           uuid.UUID
	BookingID    *uuid.UUID
	CustomerID   uuid.UUID
	Amount       decimal.Decimal
	Currency     string
	Status       paymentrequest.Status
	DueDate      time.Time
	CheckoutID   *string
	CancelReason *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type PaymentRow struct {
	ID         uuid.UUID
	BookingID  *uuid.UUID
	CustomerID uuid.UUID
	CheckoutID string
	Note       string
	Confidence linkage.Confidence
	CreatedAt  time.Time
}

type NotificationRow struct {
	repository.NotificationJob
	Status    string
	LastError *string
}

type AuditEntry struct {
	Actor      string
	Action     string
	EntityType string
	EntityID   uuid.UUID
}

// Store holds all table state. Fields are exported so tests can seed rows
// and assert on end state directly.
type Store struct {
	mu sync.Mutex

	PaymentRequests map[uuid.UUID]*PaymentRequestRow
	Payments        map[string]*PaymentRow // keyed by checkout id
	Events          map[string]*repository.WebhookEventRecord
	Notifications   []*NotificationRow
	AuditEntries    []AuditEntry
	Bookings        map[uuid.UUID]BookingRow
	Customers       map[uuid.UUID]CustomerRow

	NowFn func() time.Time
}

func NewStore() *Store {
	return &Store{
		PaymentRequests: make(map[uuid.UUID]*PaymentRequestRow),
		Payments:        make(map[string]*PaymentRow),
		Events:          make(map[string]*repository.WebhookEventRecord),
		Bookings:        make(map[uuid.UUID]BookingRow),
		Customers:       make(map[uuid.UUID]CustomerRow),
		NowFn:           time.Now,
	}
}

func (s *Store) now() time.Time {
	return s.NowFn()
}

func (s *Store) SeedPaymentRequest(row *PaymentRequestRow) *PaymentRequestRow {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = s.now()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	s.PaymentRequests[row.ID] = row
	return row
}

// BookingRow mirrors the bookings table columns the reads reconstruct from.
type BookingRow struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	ServiceName string
	Status      string
	StartsAt    time.Time
	EndsAt      time.Time
	CreatedAt   time.Time
}

// CustomerRow carries ciphertext the way the customers table does.
type CustomerRow struct {
	ID                 uuid.UUID
	FirstNameEncrypted []byte
	LastNameEncrypted  []byte
	PhoneEncrypted     []byte
	Active             bool
	CreatedAt          time.Time
}

func (s *Store) SeedBooking(b BookingRow) BookingRow {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	s.Bookings[b.ID] = b
	return b
}

func (s *Store) SeedCustomer(c CustomerRow) CustomerRow {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.Customers[c.ID] = c
	return c
}

func (s *Store) SeedPayment(p *PaymentRow) *PaymentRow {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	s.Payments[p.CheckoutID] = p
	return p
}

func (s *Store) PaymentByID(id uuid.UUID) *PaymentRow {
	for _, p := range s.Payments {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Store) snapshot(row *PaymentRequestRow) *shared.PaymentRequestSnapshot {
	return &shared.PaymentRequestSnapshot{
		ID:         row.ID,
		BookingID:  row.BookingID,
		CustomerID: row.CustomerID,
		Amount:     row.Amount,
		Currency:   row.Currency,
		Status:     row.Status,
		DueDate:    row.DueDate,
		CheckoutID: row.CheckoutID,
	}
}
