package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bookingpay/internal/domain/linkage"
	"bookingpay/internal/domain/payment"
	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/infra"
	"bookingpay/internal/infra/pii"
	"bookingpay/internal/pkg/clock"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/pkg/metrics"
	"bookingpay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event sources recorded in the ledger. The reconciler and the simulator
// submit through the same path as real webhooks; only the tag differs.
const (
	SourceWebhook    = "webhook"
	SourceReconciler = "reconciler"
	SourceSimulator  = "simulator"
)

// Ledger outcomes. A replayed event answers with whichever of these was
// recorded the first time.
const (
	OutcomeApplied         = "applied"
	OutcomeRejected        = "rejected"
	OutcomeOrphaned        = "orphaned"
	OutcomeFailureRecorded = "failure_recorded"
	OutcomePending         = "pending"
)

const (
	EventCheckoutCompleted     = "checkout.completed"
	EventCheckoutFailed        = "checkout.failed"
	EventTransactionSuccessful = "transaction.successful"
	EventTransactionFailed     = "transaction.failed"
)

// EventEnvelope is the processor's wire format, shared by real webhooks,
// reconciler-synthesized events and sandbox simulations.
type EventEnvelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	CheckoutID    string          `json:"checkout_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        string          `json:"status"`
	Method        string          `json:"method,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

type ProcessResult struct {
	Outcome          string
	Replayed         bool
	PaymentRequestID *uuid.UUID
}

type WebhookCommands interface {
	// ProcessEvent applies one processor event exactly once. Duplicate event
	// ids short-circuit at the ledger and return the recorded outcome.
	ProcessEvent(ctx context.Context, source string, env EventEnvelope) (*ProcessResult, error)
}

type webhookUseCaseImpl struct {
	uow       shared.UnitOfWork
	decryptor pii.NameDecryptor
	clock     clock.Clock
}

func NewWebhookUseCase(uow shared.UnitOfWork, decryptor pii.NameDecryptor, clk clock.Clock) WebhookCommands {
	return &webhookUseCaseImpl{uow: uow, decryptor: decryptor, clock: clk}
}

func (w *webhookUseCaseImpl) ProcessEvent(ctx context.Context, source string, env EventEnvelope) (*ProcessResult, error) {
	if err := validateEnvelope(env); err != nil {
		return nil, err
	}

	var result *ProcessResult
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		result, err = w.processInTx(ctx, tx, source, env)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.WebhookEventsTotal.WithLabelValues(result.Outcome).Inc()
	return result, nil
}

func validateEnvelope(env EventEnvelope) error {
	if env.EventID == "" || env.CheckoutID == "" {
		return errs.Mark(errs.New("event_id and checkout_id are required"), errs.ErrMalformedEnvelope)
	}
	switch env.EventType {
	case EventCheckoutCompleted, EventCheckoutFailed, EventTransactionSuccessful, EventTransactionFailed:
		return nil
	default:
		return errs.Mark(errs.New("unrecognized event type: "+env.EventType), errs.ErrMalformedEnvelope)
	}
}

func isPaidEvent(eventType string) bool {
	return eventType == EventCheckoutCompleted || eventType == EventTransactionSuccessful
}

func (w *webhookUseCaseImpl) processInTx(ctx context.Context, tx shared.Tx, source string, env EventEnvelope) (*ProcessResult, error) {
	payload, err := json.Marshal(env)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal event envelope")
	}

	inserted, err := tx.WebhookEvents().TryInsert(ctx, tx.DB(), env.EventID, source, env.EventType, env.CheckoutID, payload)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !inserted {
		return w.replay(ctx, tx, env.EventID)
	}

	pr, err := tx.Reads().PaymentRequestByCheckoutID(ctx, env.CheckoutID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			if outErr := tx.WebhookEvents().SetOutcome(ctx, tx.DB(), env.EventID, OutcomeOrphaned, nil); outErr != nil {
				return nil, errs.Mark(outErr, errs.ErrDatabaseOperationFailed)
			}
			slog.Warn("orphaned processor event",
				"event_id", env.EventID,
				"checkout_id", env.CheckoutID,
				"source", source)
			return &ProcessResult{Outcome: OutcomeOrphaned}, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	outcome, err := w.applyEvent(ctx, tx, source, env, pr)
	if err != nil {
		return nil, err
	}

	if err := tx.WebhookEvents().SetOutcome(ctx, tx.DB(), env.EventID, outcome, &pr.ID); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	tx.Audit().Record(ctx, tx.DB(), source, "event_"+outcome, "payment_request", pr.ID, &pr.CustomerID, payload)

	return &ProcessResult{Outcome: outcome, PaymentRequestID: &pr.ID}, nil
}

// replay answers a duplicate event with the first processing's recorded
// outcome and performs no side effects.
func (w *webhookUseCaseImpl) replay(ctx context.Context, tx shared.Tx, eventID string) (*ProcessResult, error) {
	rec, err := tx.WebhookEvents().Get(ctx, tx.DB(), eventID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	outcome := OutcomePending
	if rec.Outcome != nil {
		outcome = *rec.Outcome
	}
	return &ProcessResult{
		Outcome:          outcome,
		Replayed:         true,
		PaymentRequestID: rec.PaymentRequestID,
	}, nil
}

func (w *webhookUseCaseImpl) applyEvent(
	ctx context.Context,
	tx shared.Tx,
	source string,
	env EventEnvelope,
	pr *shared.PaymentRequestSnapshot,
) (string, error) {
	if !isPaidEvent(env.EventType) {
		// A failed attempt does not preclude retrying the same request, so
		// it is recorded without any state transition.
		slog.Info("recorded failed payment attempt",
			"event_id", env.EventID,
			"payment_request_id", pr.ID.String(),
			"event_type", env.EventType)
		return OutcomeFailureRecorded, nil
	}

	applied, err := tx.PaymentRequests().TransitionStatus(ctx, tx.DB(), pr.ID, paymentrequest.StatusPaid, nil)
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !applied {
		slog.Info("paid transition rejected",
			"event_id", env.EventID,
			"payment_request_id", pr.ID.String(),
			"current_status", pr.Status.String())
		return OutcomeRejected, nil
	}

	if err := w.createPayment(ctx, tx, env, pr); err != nil {
		return "", err
	}

	if err := w.enqueueCompletionNotification(ctx, tx, pr); err != nil {
		return "", err
	}

	return OutcomeApplied, nil
}

func (w *webhookUseCaseImpl) createPayment(
	ctx context.Context,
	tx shared.Tx,
	env EventEnvelope,
	pr *shared.PaymentRequestSnapshot,
) error {
	amount := env.Amount
	if !amount.IsPositive() {
		// Reconciler-synthesized envelopes carry the processor's amount;
		// fall back to the request's own when the event omits it.
		amount = pr.Amount
	}
	currency := env.Currency
	if currency == "" {
		currency = pr.Currency
	}
	method := env.Method
	if method == "" {
		method = "card"
	}

	p, err := payment.NewPayment(
		pr.BookingID,
		pr.CustomerID,
		env.CheckoutID,
		amount,
		currency,
		method,
		env.TransactionID,
		w.buildPaymentNote(ctx, tx, pr),
		env.EventType,
		env.EventID,
		w.clock.Now(),
	)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	confidence := linkage.ConfidenceExplicit
	if pr.BookingID == nil {
		confidence = linkage.ConfidenceInferred
	}

	// Idempotent per checkout: a webhook racing the reconciler on the same
	// checkout produces exactly one payment row.
	if _, err := tx.Payments().CreateIfAbsent(ctx, tx.DB(), p, confidence); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// buildPaymentNote assembles the human-readable note from the booking's
// service name and the customer's decrypted name. Any failure here degrades
// the note, never the payment.
func (w *webhookUseCaseImpl) buildPaymentNote(ctx context.Context, tx shared.Tx, pr *shared.PaymentRequestSnapshot) string {
	note := "Payment"

	if pr.BookingID != nil {
		booking, err := tx.Reads().BookingByID(ctx, *pr.BookingID)
		if err != nil {
			slog.Warn("failed to read booking for payment note", "booking_id", pr.BookingID.String(), "error", err.Error())
		} else {
			note += " for " + booking.ServiceName()
		}
	}

	customer, err := tx.Reads().CustomerByID(ctx, pr.CustomerID)
	if err != nil {
		slog.Warn("failed to read customer for payment note", "customer_id", pr.CustomerID.String(), "error", err.Error())
		return note
	}

	firstName, err := w.decryptor.Decrypt(customer.FirstNameEncrypted())
	if err != nil {
		slog.Warn("failed to decrypt customer name for payment note", "customer_id", pr.CustomerID.String())
		return note
	}
	lastName, err := w.decryptor.Decrypt(customer.LastNameEncrypted())
	if err != nil {
		return note + " - " + firstName
	}

	return note + " - " + firstName + " " + lastName
}

func (w *webhookUseCaseImpl) enqueueCompletionNotification(ctx context.Context, tx shared.Tx, pr *shared.PaymentRequestSnapshot) error {
	payload, err := json.Marshal(map[string]any{
		"type":               "payment_completed",
		"payment_request_id": pr.ID,
		"booking_id":         pr.BookingID,
		"customer_id":        pr.CustomerID,
		"amount":             pr.Amount,
		"currency":           pr.Currency,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification payload")
	}

	if err := tx.Notifications().CreateJob(ctx, tx.DB(), "email", "payment_completed", payload, w.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
