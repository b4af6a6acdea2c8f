//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/infra/sumup"
	"bookingpay/internal/pkg/clock"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/usecase/commands"
	"bookingpay/tests/common/fake"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prFixture struct {
	store     *fake.Store
	clock     *clock.MockClock
	processor *fake.Processor
	uc        commands.PaymentRequestCommands
	booking   fake.BookingRow
	customer  fake.CustomerRow
}

func newPRFixture(t *testing.T) *prFixture {
	t.Helper()

	store := fake.NewStore()
	clk := clock.NewMockClock(time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC))
	store.NowFn = clk.Now

	customer := store.SeedCustomer(fake.CustomerRow{Active: true})
	booking := store.SeedBooking(fake.BookingRow{
		CustomerID:  customer.ID,
		ServiceName: "Massage",
		CreatedAt:   clk.Now(),
	})

	processor := &fake.Processor{
		CreateCheckoutFn: func(_ context.Context, params sumup.CreateCheckoutParams) (*sumup.Checkout, error) {
			return &sumup.Checkout{
				ID:        "ck_" + params.Reference,
				Reference: params.Reference,
				Status:    sumup.CheckoutStatusPending,
				Amount:    params.Amount,
				Currency:  params.Currency,
			}, nil
		},
	}

	uow := fake.NewUnitOfWork(store)
	return &prFixture{
		store:     store,
		clock:     clk,
		processor: processor,
		uc:        commands.NewPaymentRequestUseCase(uow, processor, fake.NewPaymentRequestQueries(store), clk),
		booking:   booking,
		customer:  customer,
	}
}

func (f *prFixture) input() commands.CreatePaymentRequestInput {
	return commands.CreatePaymentRequestInput{
		BookingID:  f.booking.ID,
		CustomerID: f.customer.ID,
		Amount:     decimal.NewFromInt(150),
		Currency:   "EUR",
		DueDate:    f.clock.Now().Add(14 * 24 * time.Hour),
	}
}

func TestCreatePaymentRequest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newPRFixture(t)

		view, err := f.uc.Create(context.Background(), f.input(), "admin@example.com")
		require.NoError(t, err)

		assert.Equal(t, "pending", view.Status)
		require.NotNil(t, view.BookingID)
		assert.Equal(t, f.booking.ID, *view.BookingID)
		assert.Nil(t, view.CheckoutID)

		require.Len(t, f.store.AuditEntries, 1)
		assert.Equal(t, "payment_request_created", f.store.AuditEntries[0].Action)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newPRFixture(t)
		input := f.input()
		input.BookingID = uuid.New()

		_, err := f.uc.Create(context.Background(), input, "admin@example.com")
		require.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("unknown customer", func(t *testing.T) {
		f := newPRFixture(t)
		input := f.input()
		input.CustomerID = uuid.New()

		_, err := f.uc.Create(context.Background(), input, "admin@example.com")
		require.ErrorIs(t, err, errs.ErrCustomerNotFound)
	})

	t.Run("deactivated customer", func(t *testing.T) {
		f := newPRFixture(t)
		inactive := f.store.SeedCustomer(fake.CustomerRow{Active: false})
		booking := f.store.SeedBooking(fake.BookingRow{
			CustomerID: inactive.ID,
			CreatedAt:  f.clock.Now(),
		})
		input := f.input()
		input.BookingID = booking.ID
		input.CustomerID = inactive.ID

		_, err := f.uc.Create(context.Background(), input, "admin@example.com")
		require.ErrorIs(t, err, errs.ErrCustomerNotFound)
	})

	t.Run("booking belongs to another customer", func(t *testing.T) {
		f := newPRFixture(t)
		other := f.store.SeedCustomer(fake.CustomerRow{Active: true})
		input := f.input()
		input.CustomerID = other.ID

		_, err := f.uc.Create(context.Background(), input, "admin@example.com")
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})

	t.Run("second active request for same booking conflicts", func(t *testing.T) {
		f := newPRFixture(t)

		_, err := f.uc.Create(context.Background(), f.input(), "admin@example.com")
		require.NoError(t, err)

		_, err = f.uc.Create(context.Background(), f.input(), "admin@example.com")
		require.ErrorIs(t, err, errs.ErrActiveRequestExists)
	})

	t.Run("new request allowed once previous one is terminal", func(t *testing.T) {
		f := newPRFixture(t)

		first, err := f.uc.Create(context.Background(), f.input(), "admin@example.com")
		require.NoError(t, err)
		f.store.PaymentRequests[first.ID].Status = paymentrequest.StatusCancelled

		_, err = f.uc.Create(context.Background(), f.input(), "admin@example.com")
		require.NoError(t, err)
	})

	t.Run("invalid amount", func(t *testing.T) {
		f := newPRFixture(t)
		input := f.input()
		input.Amount = decimal.Zero

		_, err := f.uc.Create(context.Background(), input, "admin@example.com")
		require.ErrorIs(t, err, errs.ErrDomainValidation)
	})
}

func TestSendPaymentRequest(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newPRFixture(t)
		created, err := f.uc.Create(context.Background(), f.input(), "admin@example.com")
		require.NoError(t, err)

		view, err := f.uc.Send(context.Background(), created.ID, "admin@example.com")
		require.NoError(t, err)

		assert.Equal(t, "sent", view.Status)
		require.NotNil(t, view.CheckoutID)
		assert.Equal(t, "ck_"+created.ID.String(), *view.CheckoutID)
	})

	t.Run("not found", func(t *testing.T) {
		f := newPRFixture(t)

		_, err := f.uc.Send(context.Background(), uuid.New(), "admin@example.com")
		require.ErrorIs(t, err, errs.ErrPaymentRequestNotFound)
	})

	t.Run("already sent", func(t *testing.T) {
		f := newPRFixture(t)
		created, err := f.uc.Create(context.Background(), f.input(), "admin@example.com")
		require.NoError(t, err)
		_, err = f.uc.Send(context.Background(), created.ID, "admin@example.com")
		require.NoError(t, err)

		_, err = f.uc.Send(context.Background(), created.ID, "admin@example.com")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("processor failure leaves request pending", func(t *testing.T) {
		f := newPRFixture(t)
		created, err := f.uc.Create(context.Background(), f.input(), "admin@example.com")
		require.NoError(t, err)

		f.processor.CreateCheckoutFn = func(context.Context, sumup.CreateCheckoutParams) (*sumup.Checkout, error) {
			return nil, errs.ErrProcessorUnavailable
		}

		_, err = f.uc.Send(context.Background(), created.ID, "admin@example.com")
		require.ErrorIs(t, err, errs.ErrProcessorUnavailable)
		assert.Equal(t, paymentrequest.StatusPending, f.store.PaymentRequests[created.ID].Status)
	})
}
