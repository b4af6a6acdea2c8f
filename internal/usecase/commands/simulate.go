package commands

import (
	"context"
	"log/slog"

	"bookingpay/internal/infra"
	"bookingpay/internal/pkg/clock"
	"bookingpay/internal/pkg/config"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/usecase/shared"

	"github.com/google/uuid"
)

type SimulatedOutcome string

const (
	SimulateSuccess SimulatedOutcome = "success"
	SimulateFailure SimulatedOutcome = "failure"
)

type SimulatorCommands interface {
	// SimulateEvent synthesizes a processor event for a sent request and
	// submits it through the regular event path, ledger and state machine
	// included. Refused outright in production.
	SimulateEvent(ctx context.Context, requestID uuid.UUID, outcome SimulatedOutcome) (*ProcessResult, error)
}

type simulatorUseCaseImpl struct {
	uow      shared.UnitOfWork
	webhooks WebhookCommands
	env      config.Environment
	clock    clock.Clock
}

func NewSimulatorUseCase(uow shared.UnitOfWork, webhooks WebhookCommands, env config.Environment, clk clock.Clock) SimulatorCommands {
	return &simulatorUseCaseImpl{uow: uow, webhooks: webhooks, env: env, clock: clk}
}

func (u *simulatorUseCaseImpl) SimulateEvent(ctx context.Context, requestID uuid.UUID, outcome SimulatedOutcome) (*ProcessResult, error) {
	// The environment is injected at startup, never derived from the request.
	if u.env.IsProduction() {
		return nil, errs.ErrSimulationForbidden
	}

	pr, err := u.uow.CommandReads().PaymentRequestByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPaymentRequestNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if pr.CheckoutID == nil {
		return nil, errs.Mark(errs.New("payment request has no checkout to simulate against"), errs.ErrInvalidTransition)
	}

	eventType := EventCheckoutCompleted
	status := "PAID"
	if outcome == SimulateFailure {
		eventType = EventCheckoutFailed
		status = "FAILED"
	}

	env := EventEnvelope{
		EventID:       "sim_" + uuid.NewString(),
		EventType:     eventType,
		CheckoutID:    *pr.CheckoutID,
		Amount:        pr.Amount,
		Currency:      pr.Currency,
		Status:        status,
		Method:        "card",
		TransactionID: "sim_tx_" + uuid.NewString(),
		OccurredAt:    u.clock.Now(),
	}

	slog.Info("submitting simulated processor event",
		"event_id", env.EventID,
		"payment_request_id", requestID.String(),
		"event_type", eventType)

	return u.webhooks.ProcessEvent(ctx, SourceSimulator, env)
}
