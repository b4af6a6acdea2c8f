//go:build unit

package paymentrequest_test

import (
	"testing"
	"time"

	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PaymentRequestBuilder)
	errIs  error
}

func TestPaymentRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPaymentRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		require.NotNil(t, actual.BookingID())
		assert.Equal(t, paymentrequest.StatusPending, actual.Status())
		assert.Nil(t, actual.CheckoutID())
		assert.Nil(t, actual.CancelReason())
		assert.True(t, actual.IsActive())
		assert.False(t, actual.IsTerminal())
	})

	t.Run("amount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "smallest positive amount",
				mutate: func(b *builder.PaymentRequestBuilder) { b.WithAmount(decimal.NewFromFloat(0.01)) },
			},
			{
				name:   "zero amount",
				mutate: func(b *builder.PaymentRequestBuilder) { b.WithAmount(decimal.Zero) },
				errIs:  paymentrequest.ErrNonPositiveAmount,
			},
			{
				name:   "negative amount",
				mutate: func(b *builder.PaymentRequestBuilder) { b.WithAmount(decimal.NewFromInt(-10)) },
				errIs:  paymentrequest.ErrNonPositiveAmount,
			},
		})
	})

	t.Run("currency validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "lowercase currency is accepted",
				mutate: func(b *builder.PaymentRequestBuilder) { b.WithCurrency("eur") },
			},
			{
				name:   "padded currency is accepted",
				mutate: func(b *builder.PaymentRequestBuilder) { b.WithCurrency(" GBP ") },
			},
			{
				name:   "empty currency",
				mutate: func(b *builder.PaymentRequestBuilder) { b.WithCurrency("") },
				errIs:  paymentrequest.ErrInvalidCurrency,
			},
			{
				name:   "too long currency",
				mutate: func(b *builder.PaymentRequestBuilder) { b.WithCurrency("EURO") },
				errIs:  paymentrequest.ErrInvalidCurrency,
			},
		})
	})

	t.Run("due date validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "due date in the past",
				mutate: func(b *builder.PaymentRequestBuilder) { b.WithDueDate(b.Now.Add(-time.Hour)) },
				errIs:  paymentrequest.ErrDueDateInPast,
			},
			{
				name:   "due date equal to now",
				mutate: func(b *builder.PaymentRequestBuilder) { b.WithDueDate(b.Now) },
			},
		})
	})

	t.Run("identity validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing booking",
				mutate: func(b *builder.PaymentRequestBuilder) { b.BookingID = uuid.Nil },
				errIs:  paymentrequest.ErrMissingBooking,
			},
			{
				name:   "missing customer",
				mutate: func(b *builder.PaymentRequestBuilder) { b.CustomerID = uuid.Nil },
				errIs:  paymentrequest.ErrMissingCustomer,
			},
		})
	})

	t.Run("currency normalization", func(t *testing.T) {
		pr, err := builder.NewPaymentRequestBuilder().WithCurrency(" eur ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "EUR", pr.Currency())
	})

	t.Run("overdue detection", func(t *testing.T) {
		due := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		grace := 72 * time.Hour

		pr := paymentrequest.Reconstruct(
			uuid.New(), nil, uuid.New(),
			decimal.NewFromInt(100), "EUR",
			paymentrequest.StatusSent, due, nil, nil,
			due.Add(-time.Hour), due.Add(-time.Hour),
		)

		assert.False(t, pr.OverdueSince(due.Add(grace), grace))
		assert.True(t, pr.OverdueSince(due.Add(grace+time.Minute), grace))

		paid := paymentrequest.Reconstruct(
			uuid.New(), nil, uuid.New(),
			decimal.NewFromInt(100), "EUR",
			paymentrequest.StatusPaid, due, nil, nil,
			due.Add(-time.Hour), due.Add(-time.Hour),
		)
		assert.False(t, paid.OverdueSince(due.Add(grace+time.Minute), grace))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewPaymentRequestBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}
