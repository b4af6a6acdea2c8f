package commands

import (
	"context"
	"time"

	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/infra"
	"bookingpay/internal/infra/sumup"
	"bookingpay/internal/pkg/clock"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/usecase/queries"
	"bookingpay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequestInput struct {
	BookingID  uuid.UUID
	CustomerID uuid.UUID
	Amount     decimal.Decimal
	Currency   string
	DueDate    time.Time
}

type PaymentRequestCommands interface {
	Create(ctx context.Context, input CreatePaymentRequestInput, actor string) (*queries.PaymentRequestView, error)
	// Send opens a checkout at the processor and moves the request
	// pending→sent, storing the checkout id in the same statement.
	Send(ctx context.Context, requestID uuid.UUID, actor string) (*queries.PaymentRequestView, error)
}

type paymentRequestUseCaseImpl struct {
	uow       shared.UnitOfWork
	processor sumup.Client
	prQueries queries.PaymentRequestQueries
	clock     clock.Clock
}

func NewPaymentRequestUseCase(
	uow shared.UnitOfWork,
	processor sumup.Client,
	prQueries queries.PaymentRequestQueries,
	clk clock.Clock,
) PaymentRequestCommands {
	return &paymentRequestUseCaseImpl{
		uow:       uow,
		processor: processor,
		prQueries: prQueries,
		clock:     clk,
	}
}

func (u *paymentRequestUseCaseImpl) Create(ctx context.Context, input CreatePaymentRequestInput, actor string) (*queries.PaymentRequestView, error) {
	var createdID uuid.UUID

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		booking, err := tx.Reads().BookingByID(ctx, input.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrBookingNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		customer, err := tx.Reads().CustomerByID(ctx, input.CustomerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCustomerNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !customer.IsActive() {
			return errs.Mark(errs.New("customer is deactivated"), errs.ErrCustomerNotFound)
		}
		if booking.CustomerID() != customer.ID() {
			return errs.Mark(errs.New("booking does not belong to customer"), errs.ErrDomainValidation)
		}

		pr, err := paymentrequest.NewPaymentRequest(
			input.BookingID,
			input.CustomerID,
			input.Amount,
			input.Currency,
			input.DueDate,
			u.clock.Now(),
		)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		createdID, err = tx.PaymentRequests().Create(ctx, tx.DB(), pr)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrActiveRequestExists)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		tx.Audit().Record(ctx, tx.DB(), actor, "payment_request_created", "payment_request", createdID, &input.CustomerID, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.prQueries.GetByID(ctx, createdID)
}

func (u *paymentRequestUseCaseImpl) Send(ctx context.Context, requestID uuid.UUID, actor string) (*queries.PaymentRequestView, error) {
	pr, err := u.uow.CommandReads().PaymentRequestByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPaymentRequestNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if pr.Status != paymentrequest.StatusPending {
		return nil, errs.Mark(
			errs.New("payment request is not pending: "+pr.Status.String()),
			errs.ErrInvalidTransition,
		)
	}

	// The checkout is created before the local transition. If MarkSent then
	// loses a race the checkout is abandoned at the processor, which is safe:
	// nothing references it and it expires on their side.
	checkout, err := u.processor.CreateCheckout(ctx, sumup.CreateCheckoutParams{
		Reference: pr.ID.String(),
		Amount:    pr.Amount,
		Currency:  pr.Currency,
	})
	if err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		applied, err := tx.PaymentRequests().MarkSent(ctx, tx.DB(), requestID, checkout.ID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !applied {
			return errs.Mark(errs.New("payment request no longer pending"), errs.ErrInvalidTransition)
		}

		tx.Audit().Record(ctx, tx.DB(), actor, "payment_request_sent", "payment_request", requestID, &pr.CustomerID, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.prQueries.GetByID(ctx, requestID)
}
