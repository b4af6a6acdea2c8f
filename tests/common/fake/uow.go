//go:build unit

package fake

import (
	"context"
	"errors"
	"time"

	"bookingpay/internal/domain/booking"
	"bookingpay/internal/domain/customer"
	"bookingpay/internal/domain/linkage"
	"bookingpay/internal/domain/payment"
	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/infra"
	"bookingpay/internal/infra/db"
	"bookingpay/internal/infra/repository"
	"bookingpay/internal/usecase/shared"

	"github.com/google/uuid"
)

// UnitOfWork runs the callback against the shared store without real
// transactions. Tests that need rollback behavior are integration territory.
type UnitOfWork struct {
	Store *Store
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{Store: store}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.Store.mu.Lock()
	defer u.Store.mu.Unlock()
	return fn(ctx, &fakeTx{store: u.Store})
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.Store}
}

type fakeTx struct {
	store *Store
}

func (t *fakeTx) PaymentRequests() shared.PaymentRequestRepository { return &fakePRRepo{t.store} }
func (t *fakeTx) Payments() shared.PaymentRepository               { return &fakePaymentRepo{t.store} }
func (t *fakeTx) WebhookEvents() shared.WebhookEventRepository     { return &fakeEventRepo{t.store} }
func (t *fakeTx) Notifications() shared.NotificationRepository     { return &fakeNotificationRepo{t.store} }
func (t *fakeTx) Audit() shared.AuditRepository                    { return &fakeAuditRepo{t.store} }
func (t *fakeTx) Reads() shared.CommandReads                       { return &fakeReads{store: t.store} }
func (t *fakeTx) DB() db.DBTX                                      { return nil }

type fakePRRepo struct {
	store *Store
}

func (r *fakePRRepo) Create(_ context.Context, _ db.DBTX, pr *paymentrequest.PaymentRequest) (uuid.UUID, error) {
	for _, row := range r.store.PaymentRequests {
		if row.BookingID != nil && pr.BookingID() != nil &&
			*row.BookingID == *pr.BookingID() && row.Status.IsActive() {
			return uuid.Nil, infra.WrapRepoErr("active payment request exists for booking", errors.New("duplicate"), infra.KindConflict)
		}
	}

	now := r.store.now()
	r.store.PaymentRequests[pr.ID()] = &PaymentRequestRow{
		ID:         pr.ID(),
		BookingID:  pr.BookingID(),
		CustomerID: pr.CustomerID(),
		Amount:     pr.Amount(),
		Currency:   pr.Currency(),
		Status:     pr.Status(),
		DueDate:    pr.DueDate(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return pr.ID(), nil
}

func (r *fakePRRepo) TransitionStatus(_ context.Context, _ db.DBTX, id uuid.UUID, target paymentrequest.Status, cancelReason *string) (bool, error) {
	row, ok := r.store.PaymentRequests[id]
	if !ok {
		return false, nil
	}
	if !statusIn(row.Status, paymentrequest.SourcesFor(target)) {
		return false, nil
	}
	row.Status = target
	if target == paymentrequest.StatusCancelled {
		row.CancelReason = cancelReason
	}
	row.UpdatedAt = r.store.now()
	return true, nil
}

func (r *fakePRRepo) MarkSent(_ context.Context, _ db.DBTX, id uuid.UUID, checkoutID string) (bool, error) {
	row, ok := r.store.PaymentRequests[id]
	if !ok || row.Status != paymentrequest.StatusPending {
		return false, nil
	}
	row.Status = paymentrequest.StatusSent
	row.CheckoutID = &checkoutID
	row.UpdatedAt = r.store.now()
	return true, nil
}

func (r *fakePRRepo) TouchUpdatedAt(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if row, ok := r.store.PaymentRequests[id]; ok {
		row.UpdatedAt = r.store.now()
	}
	return nil
}

type fakePaymentRepo struct {
	store *Store
}

func (r *fakePaymentRepo) CreateIfAbsent(_ context.Context, _ db.DBTX, p *payment.Payment, confidence linkage.Confidence) (bool, error) {
	if _, exists := r.store.Payments[p.CheckoutID()]; exists {
		return false, nil
	}
	r.store.Payments[p.CheckoutID()] = &PaymentRow{
		ID:         p.ID(),
		BookingID:  p.BookingID(),
		CustomerID: p.CustomerID(),
		CheckoutID: p.CheckoutID(),
		Note:       p.Note(),
		Confidence: confidence,
		CreatedAt:  r.store.now(),
	}
	return true, nil
}

func (r *fakePaymentRepo) AssignBooking(_ context.Context, _ db.DBTX, paymentID, bookingID uuid.UUID, confidence linkage.Confidence) (bool, error) {
	p := r.store.PaymentByID(paymentID)
	if p == nil || p.BookingID != nil {
		return false, nil
	}
	p.BookingID = &bookingID
	p.Confidence = confidence
	return true, nil
}

type fakeEventRepo struct {
	store *Store
}

func (r *fakeEventRepo) TryInsert(_ context.Context, _ db.DBTX, eventID, source, eventType, checkoutID string, _ []byte) (bool, error) {
	if _, exists := r.store.Events[eventID]; exists {
		return false, nil
	}
	r.store.Events[eventID] = &repository.WebhookEventRecord{
		EventID:    eventID,
		Source:     source,
		EventType:  eventType,
		CheckoutID: checkoutID,
		ReceivedAt: r.store.now(),
	}
	return true, nil
}

func (r *fakeEventRepo) Get(_ context.Context, _ db.DBTX, eventID string) (*repository.WebhookEventRecord, error) {
	rec, ok := r.store.Events[eventID]
	if !ok {
		return nil, infra.WrapRepoErr("webhook event not found", errors.New("no rows"), infra.KindNotFound)
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeEventRepo) SetOutcome(_ context.Context, _ db.DBTX, eventID, outcome string, paymentRequestID *uuid.UUID) error {
	rec, ok := r.store.Events[eventID]
	if !ok {
		return infra.WrapRepoErr("webhook event not found", errors.New("no rows"), infra.KindNotFound)
	}
	rec.Outcome = &outcome
	rec.PaymentRequestID = paymentRequestID
	processedAt := r.store.now()
	rec.ProcessedAt = &processedAt
	return nil
}

type fakeNotificationRepo struct {
	store *Store
}

func (r *fakeNotificationRepo) CreateJob(_ context.Context, _ db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	r.store.Notifications = append(r.store.Notifications, &NotificationRow{
		NotificationJob: repository.NotificationJob{
			ID:      uuid.New(),
			Kind:    kind,
			Topic:   topic,
			Payload: payload,
			RunAt:   runAt,
		},
		Status: "queued",
	})
	return nil
}

func (r *fakeNotificationRepo) ClaimDue(_ context.Context, _ db.DBTX, limit int) ([]repository.NotificationJob, error) {
	var claimed []repository.NotificationJob
	now := r.store.now()
	for _, job := range r.store.Notifications {
		if len(claimed) >= limit {
			break
		}
		if job.Status == "queued" && !job.RunAt.After(now) {
			job.Status = "sending"
			claimed = append(claimed, job.NotificationJob)
		}
	}
	return claimed, nil
}

func (r *fakeNotificationRepo) MarkSent(_ context.Context, _ db.DBTX, jobID uuid.UUID) error {
	for _, job := range r.store.Notifications {
		if job.ID == jobID {
			job.Status = "sent"
		}
	}
	return nil
}

func (r *fakeNotificationRepo) MarkFailed(_ context.Context, _ db.DBTX, jobID uuid.UUID, lastError *string, retryAt time.Time) error {
	for _, job := range r.store.Notifications {
		if job.ID == jobID {
			job.Status = "queued"
			job.LastError = lastError
			job.RunAt = retryAt
		}
	}
	return nil
}

type fakeAuditRepo struct {
	store *Store
}

func (r *fakeAuditRepo) Record(_ context.Context, _ db.DBTX, actor, action, entityType string, entityID uuid.UUID, _ *uuid.UUID, _ []byte) {
	r.store.AuditEntries = append(r.store.AuditEntries, AuditEntry{
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	})
}

type fakeReads struct {
	store *Store
}

func (r *fakeReads) PaymentRequestByID(_ context.Context, id uuid.UUID) (*shared.PaymentRequestSnapshot, error) {
	row, ok := r.store.PaymentRequests[id]
	if !ok {
		return nil, infra.WrapRepoErr("payment request not found", errors.New("no rows"), infra.KindNotFound)
	}
	return r.store.snapshot(row), nil
}

func (r *fakeReads) PaymentRequestByCheckoutID(_ context.Context, checkoutID string) (*shared.PaymentRequestSnapshot, error) {
	for _, row := range r.store.PaymentRequests {
		if row.CheckoutID != nil && *row.CheckoutID == checkoutID {
			return r.store.snapshot(row), nil
		}
	}
	return nil, infra.WrapRepoErr("payment request not found", errors.New("no rows"), infra.KindNotFound)
}

func (r *fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.store.Bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errors.New("no rows"), infra.KindNotFound)
	}
	return bookingEntity(b), nil
}

func (r *fakeReads) CustomerByID(_ context.Context, id uuid.UUID) (*customer.Customer, error) {
	c, ok := r.store.Customers[id]
	if !ok {
		return nil, infra.WrapRepoErr("customer not found", errors.New("no rows"), infra.KindNotFound)
	}
	return customer.Reconstruct(
		c.ID,
		c.FirstNameEncrypted,
		c.LastNameEncrypted,
		c.PhoneEncrypted,
		c.Active,
		c.CreatedAt,
	), nil
}

func (r *fakeReads) PaymentByID(_ context.Context, id uuid.UUID) (*shared.PaymentSnapshot, error) {
	p := r.store.PaymentByID(id)
	if p == nil {
		return nil, infra.WrapRepoErr("payment not found", errors.New("no rows"), infra.KindNotFound)
	}
	return &shared.PaymentSnapshot{
		ID:         p.ID,
		BookingID:  p.BookingID,
		CustomerID: p.CustomerID,
		CheckoutID: p.CheckoutID,
		Note:       p.Note,
		CreatedAt:  p.CreatedAt,
	}, nil
}

func (r *fakeReads) BookingCandidates(_ context.Context, customerID uuid.UUID, around time.Time, window time.Duration) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.store.Bookings {
		if b.CustomerID != customerID {
			continue
		}
		dist := around.Sub(b.CreatedAt)
		if dist < 0 {
			dist = -dist
		}
		if dist <= window {
			out = append(out, bookingEntity(b))
		}
	}
	return out, nil
}

func bookingEntity(b BookingRow) *booking.Booking {
	return booking.Reconstruct(
		b.ID,
		b.CustomerID,
		b.ServiceName,
		b.StartsAt,
		b.EndsAt,
		booking.Status(b.Status),
		b.CreatedAt,
	)
}

func statusIn(s paymentrequest.Status, set []paymentrequest.Status) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}
