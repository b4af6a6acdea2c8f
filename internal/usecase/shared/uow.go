package shared

import (
	"context"
	"time"

	"bookingpay/internal/domain/booking"
	"bookingpay/internal/domain/customer"
	"bookingpay/internal/domain/linkage"
	"bookingpay/internal/domain/payment"
	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/infra/db"
	"bookingpay/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	PaymentRequests() PaymentRequestRepository
	Payments() PaymentRepository
	WebhookEvents() WebhookEventRepository
	Notifications() NotificationRepository
	Audit() AuditRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PaymentRequestByID(ctx context.Context, id uuid.UUID) (*PaymentRequestSnapshot, error)
	PaymentRequestByCheckoutID(ctx context.Context, checkoutID string) (*PaymentRequestSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error)
	PaymentByID(ctx context.Context, id uuid.UUID) (*PaymentSnapshot, error)
	// BookingCandidates returns the customer's bookings created within the
	// legacy linkage window around a payment's creation time.
	BookingCandidates(ctx context.Context, customerID uuid.UUID, around time.Time, window time.Duration) ([]*booking.Booking, error)
}

// Minimal snapshots for command read operations
type PaymentRequestSnapshot struct {
	ID         uuid.UUID
	BookingID  *uuid.UUID
	CustomerID uuid.UUID
	Amount     decimal.Decimal
	Currency   string
	Status     paymentrequest.Status
	DueDate    time.Time
	CheckoutID *string
}

type PaymentSnapshot struct {
	ID         uuid.UUID
	BookingID  *uuid.UUID
	CustomerID uuid.UUID
	CheckoutID string
	Note       string
	CreatedAt  time.Time
}

type PaymentRequestRepository interface {
	Create(ctx context.Context, tx db.DBTX, pr *paymentrequest.PaymentRequest) (uuid.UUID, error)
	TransitionStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, target paymentrequest.Status, cancelReason *string) (bool, error)
	MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID, checkoutID string) (bool, error)
	TouchUpdatedAt(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type PaymentRepository interface {
	CreateIfAbsent(ctx context.Context, tx db.DBTX, p *payment.Payment, confidence linkage.Confidence) (bool, error)
	AssignBooking(ctx context.Context, tx db.DBTX, paymentID, bookingID uuid.UUID, confidence linkage.Confidence) (bool, error)
}

type WebhookEventRepository interface {
	TryInsert(ctx context.Context, tx db.DBTX, eventID, source, eventType, checkoutID string, payload []byte) (bool, error)
	Get(ctx context.Context, tx db.DBTX, eventID string) (*repository.WebhookEventRecord, error)
	SetOutcome(ctx context.Context, tx db.DBTX, eventID, outcome string, paymentRequestID *uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx db.DBTX, limit int) ([]repository.NotificationJob, error)
	MarkSent(ctx context.Context, tx db.DBTX, jobID uuid.UUID) error
	MarkFailed(ctx context.Context, tx db.DBTX, jobID uuid.UUID, lastError *string, retryAt time.Time) error
}

type AuditRepository interface {
	Record(ctx context.Context, tx db.DBTX, actor, action, entityType string, entityID uuid.UUID, customerID *uuid.UUID, details []byte)
}
