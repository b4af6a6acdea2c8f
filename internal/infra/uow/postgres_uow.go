package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"bookingpay/internal/domain/booking"
	"bookingpay/internal/domain/customer"
	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/infra/db"
	"bookingpay/internal/infra/readstore"
	"bookingpay/internal/infra/repository"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/usecase/queries"
	"bookingpay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	paymentRequestRepo shared.PaymentRequestRepository
	paymentRepo        shared.PaymentRepository
	webhookEventRepo   shared.WebhookEventRepository
	notificationRepo   shared.NotificationRepository
	auditRepo          shared.AuditRepository
	commandReads       shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) PaymentRequests() shared.PaymentRequestRepository {
	if t.paymentRequestRepo == nil {
		t.paymentRequestRepo = repository.NewPaymentRequestRepository()
	}
	return t.paymentRequestRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository()
	}
	return t.paymentRepo
}

func (t *pgTx) WebhookEvents() shared.WebhookEventRepository {
	if t.webhookEventRepo == nil {
		t.webhookEventRepo = repository.NewWebhookEventRepository()
	}
	return t.webhookEventRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository()
	}
	return t.notificationRepo
}

func (t *pgTx) Audit() shared.AuditRepository {
	if t.auditRepo == nil {
		t.auditRepo = repository.NewAuditRepository()
	}
	return t.auditRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	paymentRequestStore *readstore.PaymentRequestReadStore
	paymentStore        *readstore.PaymentReadStore
	bookingStore        *readstore.BookingReadStore
	customerStore       *readstore.CustomerReadStore
}

func (r *commandReads) requests() *readstore.PaymentRequestReadStore {
	if r.paymentRequestStore == nil {
		r.paymentRequestStore = readstore.NewPaymentRequestReadStore(r.dbtx)
	}
	return r.paymentRequestStore
}

func (r *commandReads) PaymentRequestByID(ctx context.Context, id uuid.UUID) (*shared.PaymentRequestSnapshot, error) {
	view, err := r.requests().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return paymentRequestSnapshot(view), nil
}

func (r *commandReads) PaymentRequestByCheckoutID(ctx context.Context, checkoutID string) (*shared.PaymentRequestSnapshot, error) {
	view, err := r.requests().FindByCheckoutID(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	return paymentRequestSnapshot(view), nil
}

func (r *commandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}

	view, err := r.bookingStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return bookingFromView(view), nil
}

func (r *commandReads) CustomerByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	if r.customerStore == nil {
		r.customerStore = readstore.NewCustomerReadStore(r.dbtx)
	}

	view, err := r.customerStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return customer.Reconstruct(
		view.ID,
		view.FirstNameEncrypted,
		view.LastNameEncrypted,
		view.PhoneEncrypted,
		view.Active,
		view.CreatedAt,
	), nil
}

func (r *commandReads) PaymentByID(ctx context.Context, id uuid.UUID) (*shared.PaymentSnapshot, error) {
	if r.paymentStore == nil {
		r.paymentStore = readstore.NewPaymentReadStore(r.dbtx)
	}

	view, err := r.paymentStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.PaymentSnapshot{
		ID:         view.ID,
		BookingID:  view.BookingID,
		CustomerID: view.CustomerID,
		CheckoutID: view.CheckoutID,
		Note:       view.Note,
		CreatedAt:  view.CreatedAt,
	}, nil
}

func (r *commandReads) BookingCandidates(ctx context.Context, customerID uuid.UUID, around time.Time, window time.Duration) ([]*booking.Booking, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.dbtx)
	}

	views, err := r.bookingStore.FindByCustomerAround(ctx, customerID, around, window)
	if err != nil {
		return nil, err
	}

	bookings := make([]*booking.Booking, len(views))
	for i, v := range views {
		bookings[i] = bookingFromView(v)
	}
	return bookings, nil
}

func bookingFromView(view *queries.BookingView) *booking.Booking {
	return booking.Reconstruct(
		view.ID,
		view.CustomerID,
		view.ServiceName,
		view.StartsAt,
		view.EndsAt,
		booking.Status(view.Status),
		view.CreatedAt,
	)
}

func paymentRequestSnapshot(view *queries.PaymentRequestView) *shared.PaymentRequestSnapshot {
	return &shared.PaymentRequestSnapshot{
		ID:         view.ID,
		BookingID:  view.BookingID,
		CustomerID: view.CustomerID,
		Amount:     view.Amount,
		Currency:   view.Currency,
		Status:     paymentrequest.Status(view.Status),
		DueDate:    view.DueDate,
		CheckoutID: view.CheckoutID,
	}
}
