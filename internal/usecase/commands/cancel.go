package commands

import (
	"context"

	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/infra"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/pkg/metrics"
	"bookingpay/internal/usecase/shared"

	"github.com/google/uuid"
)

type CancelResult struct {
	// Status is the request's status after the call, whether or not the
	// cancellation landed.
	Status  paymentrequest.Status
	Applied bool
}

type CancellationCommands interface {
	// Cancel moves an active request to cancelled. A request that is already
	// terminal is a no-op reporting the current status, not an error, so a
	// caller's own cleanup never blocks on a lost race.
	Cancel(ctx context.Context, requestID uuid.UUID, reason *string, actor string) (*CancelResult, error)
}

type cancellationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewCancellationUseCase(uow shared.UnitOfWork) CancellationCommands {
	return &cancellationUseCaseImpl{uow: uow}
}

func (u *cancellationUseCaseImpl) Cancel(ctx context.Context, requestID uuid.UUID, reason *string, actor string) (*CancelResult, error) {
	var result *CancelResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		pr, err := tx.Reads().PaymentRequestByID(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrPaymentRequestNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		applied, err := tx.PaymentRequests().TransitionStatus(ctx, tx.DB(), requestID, paymentrequest.StatusCancelled, reason)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		status := paymentrequest.StatusCancelled
		if !applied {
			// Lost a race or already terminal: report what the request
			// actually is now.
			current, err := tx.Reads().PaymentRequestByID(ctx, requestID)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			status = current.Status
		}

		tx.Audit().Record(ctx, tx.DB(), actor, "payment_request_cancel", "payment_request", requestID, &pr.CustomerID, nil)

		result = &CancelResult{Status: status, Applied: applied}
		return nil
	})
	if err != nil {
		return nil, err
	}

	outcome := "applied"
	if !result.Applied {
		outcome = "noop"
	}
	metrics.CancellationsTotal.WithLabelValues(outcome).Inc()

	return result, nil
}
