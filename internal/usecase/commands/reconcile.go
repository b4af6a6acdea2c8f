package commands

import (
	"context"
	"errors"
	"log/slog"

	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/infra/sumup"
	"bookingpay/internal/pkg/clock"
	"bookingpay/internal/pkg/config"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/pkg/metrics"
	"bookingpay/internal/usecase/queries"
	"bookingpay/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReconcileSummary struct {
	Examined int `json:"examined"`
	Repaired int `json:"repaired"`
	Expired  int `json:"expired"`
	Errors   int `json:"errors"`
}

type ReconcileCommands interface {
	// ReconcileOnce is one idempotent poller tick: repair stale sent requests
	// the processor already settled, then expire requests long past due.
	// Safe to run concurrently with itself and with live webhooks.
	ReconcileOnce(ctx context.Context) (*ReconcileSummary, error)
}

type reconcileUseCaseImpl struct {
	uow       shared.UnitOfWork
	processor sumup.Client
	webhooks  WebhookCommands
	prQueries queries.PaymentRequestQueries
	cfg       config.ReconcileConfig
	clock     clock.Clock
}

func NewReconcileUseCase(
	uow shared.UnitOfWork,
	processor sumup.Client,
	webhooks WebhookCommands,
	prQueries queries.PaymentRequestQueries,
	cfg config.ReconcileConfig,
	clk clock.Clock,
) ReconcileCommands {
	return &reconcileUseCaseImpl{
		uow:       uow,
		processor: processor,
		webhooks:  webhooks,
		prQueries: prQueries,
		cfg:       cfg,
		clock:     clk,
	}
}

func (u *reconcileUseCaseImpl) ReconcileOnce(ctx context.Context) (*ReconcileSummary, error) {
	now := u.clock.Now()
	summary := &ReconcileSummary{}

	stale, err := u.prQueries.ListStaleSent(ctx, now.Add(-u.cfg.StaleAfter), u.cfg.BatchLimit)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, item := range stale {
		summary.Examined++
		metrics.ReconcileExamined.Inc()

		repaired, err := u.reconcileRequest(ctx, item)
		if err != nil {
			// Per-item failures are swallowed into the summary; the next
			// tick picks the request up again.
			summary.Errors++
			slog.Warn("reconcile item failed",
				"payment_request_id", item.ID.String(),
				"checkout_id", item.CheckoutID,
				"error", err.Error())
			continue
		}
		if repaired {
			summary.Repaired++
		}
	}

	expired, expireErrs := u.expireOverdue(ctx)
	summary.Expired = expired
	summary.Errors += expireErrs

	slog.Info("reconcile tick complete",
		"examined", summary.Examined,
		"repaired", summary.Repaired,
		"expired", summary.Expired,
		"errors", summary.Errors)

	return summary, nil
}

func (u *reconcileUseCaseImpl) reconcileRequest(ctx context.Context, item *queries.StaleRequestItem) (bool, error) {
	queryCtx, cancel := context.WithTimeout(ctx, u.cfg.ProcessorTimeout)
	defer cancel()

	checkout, err := u.processor.GetCheckout(queryCtx, item.CheckoutID)
	if err != nil {
		if errors.Is(err, errs.ErrProcessorTimeout) {
			// No new information this tick; the request stays stale and is
			// retried next tick.
			slog.Info("processor query timed out, skipping",
				"payment_request_id", item.ID.String(),
				"checkout_id", item.CheckoutID)
			return false, nil
		}
		return false, err
	}

	switch checkout.Status {
	case sumup.CheckoutStatusPaid:
		return u.applySynthetic(ctx, item, EventCheckoutCompleted, checkout)

	case sumup.CheckoutStatusFailed:
		if _, err := u.applySynthetic(ctx, item, EventCheckoutFailed, checkout); err != nil {
			return false, err
		}
		// A failed checkout carries no transition, so push the request out
		// of the stale window instead of re-recording it every tick.
		err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.PaymentRequests().TouchUpdatedAt(ctx, tx.DB(), item.ID)
		})
		return false, err

	default:
		// Still pending at the processor; nothing to repair.
		return false, nil
	}
}

// applySynthetic routes a poller-observed outcome through the same event path
// webhooks use. The recon_ id namespace keeps a later real webhook for the
// same checkout deduplicating against its own event id, not this one.
func (u *reconcileUseCaseImpl) applySynthetic(ctx context.Context, item *queries.StaleRequestItem, eventType string, checkout *sumup.Checkout) (bool, error) {
	env := EventEnvelope{
		EventID:       "recon_" + uuid.NewString(),
		EventType:     eventType,
		CheckoutID:    item.CheckoutID,
		Amount:        checkout.Amount,
		Currency:      checkout.Currency,
		Status:        checkout.Status,
		TransactionID: checkout.TransactionID,
		OccurredAt:    u.clock.Now(),
	}

	result, err := u.webhooks.ProcessEvent(ctx, SourceReconciler, env)
	if err != nil {
		return false, err
	}

	// Rejected here means a concurrent webhook or cancellation won the race
	// since the stale scan; that is the ordering guarantee working, not a
	// failure.
	if result.Outcome != OutcomeApplied {
		return false, nil
	}

	metrics.ReconcileRepaired.Inc()
	slog.Info("repaired missed webhook",
		"payment_request_id", item.ID.String(),
		"checkout_id", item.CheckoutID,
		"event_type", eventType)
	return true, nil
}

func (u *reconcileUseCaseImpl) expireOverdue(ctx context.Context) (expired, errCount int) {
	cutoff := u.clock.Now().Add(-u.cfg.ExpireAfter)

	overdue, err := u.prQueries.ListOverdueActive(ctx, cutoff, u.cfg.BatchLimit)
	if err != nil {
		slog.Warn("failed to list overdue payment requests", "error", err.Error())
		return 0, 1
	}

	for _, view := range overdue {
		// The closure re-runs on serialization retry, so the applied flag is
		// carried out and counted exactly once per committed transaction.
		var applied bool
		err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			a, err := tx.PaymentRequests().TransitionStatus(ctx, tx.DB(), view.ID, paymentrequest.StatusExpired, nil)
			if err != nil {
				return err
			}
			if a {
				tx.Audit().Record(ctx, tx.DB(), SourceReconciler, "payment_request_expired", "payment_request", view.ID, &view.CustomerID, nil)
			}
			applied = a
			return nil
		})
		if err == nil && applied {
			expired++
		}
		if err != nil {
			errCount++
			slog.Warn("failed to expire payment request",
				"payment_request_id", view.ID.String(),
				"error", err.Error())
		}
	}

	return expired, errCount
}
