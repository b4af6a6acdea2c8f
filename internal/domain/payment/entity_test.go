//go:build unit

package payment_test

import (
	"testing"
	"time"

	"bookingpay/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	customerID := uuid.New()
	now := time.Now()

	build := func(mutate func(*args)) (*payment.Payment, error) {
		a := &args{
			checkoutID: "ck_123",
			amount:     decimal.NewFromInt(80),
			eventID:    "evt_123",
		}
		if mutate != nil {
			mutate(a)
		}
		return payment.NewPayment(
			nil, customerID, a.checkoutID, a.amount, "EUR",
			"card", "tx_1", "Haircut for Jane D.", "checkout.completed", a.eventID, now,
		)
	}

	t.Run("success", func(t *testing.T) {
		p, err := build(nil)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.False(t, p.HasExplicitBooking())
		assert.Equal(t, "ck_123", p.CheckoutID())
		assert.Equal(t, now, p.ProcessedAt())
	})

	t.Run("missing checkout id", func(t *testing.T) {
		_, err := build(func(a *args) { a.checkoutID = "" })
		require.ErrorIs(t, err, payment.ErrMissingCheckoutID)
	})

	t.Run("missing event id", func(t *testing.T) {
		_, err := build(func(a *args) { a.eventID = "" })
		require.ErrorIs(t, err, payment.ErrMissingEventID)
	})

	t.Run("non-positive amount", func(t *testing.T) {
		_, err := build(func(a *args) { a.amount = decimal.Zero })
		require.ErrorIs(t, err, payment.ErrNonPositiveAmount)
	})

	t.Run("explicit booking", func(t *testing.T) {
		bookingID := uuid.New()
		p, err := payment.NewPayment(
			&bookingID, customerID, "ck_9", decimal.NewFromInt(10), "EUR",
			"card", "tx_9", "", "checkout.completed", "evt_9", now,
		)
		require.NoError(t, err)
		assert.True(t, p.HasExplicitBooking())
		assert.Equal(t, bookingID, *p.BookingID())
	})
}

type args struct {
	checkoutID string
	amount     decimal.Decimal
	eventID    string
}
