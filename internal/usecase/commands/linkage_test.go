//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"bookingpay/internal/domain/linkage"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/usecase/commands"
	"bookingpay/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBooking(t *testing.T) {
	paidAt := time.Date(2026, 2, 10, 14, 0, 0, 0, time.UTC)

	setup := func() (*fake.Store, commands.LinkageCommands, uuid.UUID) {
		store := fake.NewStore()
		customer := store.SeedCustomer(fake.CustomerRow{Active: true})
		return store, commands.NewLinkageUseCase(fake.NewUnitOfWork(store)), customer.ID
	}

	t.Run("explicit booking reported as-is", func(t *testing.T) {
		store, uc, customerID := setup()
		bookingID := uuid.New()
		p := store.SeedPayment(&fake.PaymentRow{
			BookingID:  &bookingID,
			CustomerID: customerID,
			CheckoutID: "ck_explicit",
			CreatedAt:  paidAt,
		})

		result, err := uc.ResolveBooking(context.Background(), p.ID)
		require.NoError(t, err)

		assert.True(t, result.Linked)
		assert.Equal(t, bookingID, *result.BookingID)
		assert.Equal(t, linkage.ConfidenceExplicit, result.Confidence)
	})

	t.Run("single close candidate is assigned as inferred", func(t *testing.T) {
		store, uc, customerID := setup()
		booking := store.SeedBooking(fake.BookingRow{
			CustomerID:  customerID,
			ServiceName: "Massage",
			CreatedAt:   paidAt.Add(-10 * time.Minute),
		})
		p := store.SeedPayment(&fake.PaymentRow{
			CustomerID: customerID,
			CheckoutID: "ck_legacy",
			Note:       "Payment for Massage",
			CreatedAt:  paidAt,
		})

		result, err := uc.ResolveBooking(context.Background(), p.ID)
		require.NoError(t, err)

		assert.True(t, result.Linked)
		assert.Equal(t, booking.ID, *result.BookingID)
		assert.Equal(t, linkage.ConfidenceInferred, result.Confidence)

		// Persisted on the payment row.
		require.NotNil(t, p.BookingID)
		assert.Equal(t, booking.ID, *p.BookingID)
		assert.Equal(t, linkage.ConfidenceInferred, p.Confidence)
	})

	t.Run("ambiguous candidates surface an error and assign nothing", func(t *testing.T) {
		store, uc, customerID := setup()
		store.SeedBooking(fake.BookingRow{
			CustomerID:  customerID,
			ServiceName: "Massage",
			CreatedAt:   paidAt.Add(-20 * time.Minute),
		})
		store.SeedBooking(fake.BookingRow{
			CustomerID:  customerID,
			ServiceName: "Massage",
			CreatedAt:   paidAt.Add(20 * time.Minute),
		})
		p := store.SeedPayment(&fake.PaymentRow{
			CustomerID: customerID,
			CheckoutID: "ck_ambiguous",
			Note:       "Payment for Massage",
			CreatedAt:  paidAt,
		})

		_, err := uc.ResolveBooking(context.Background(), p.ID)
		require.ErrorIs(t, err, errs.ErrLinkageAmbiguous)
		assert.Nil(t, p.BookingID)
	})

	t.Run("no candidate leaves payment unlinked", func(t *testing.T) {
		store, uc, customerID := setup()
		p := store.SeedPayment(&fake.PaymentRow{
			CustomerID: customerID,
			CheckoutID: "ck_orphan_note",
			Note:       "Payment",
			CreatedAt:  paidAt,
		})

		result, err := uc.ResolveBooking(context.Background(), p.ID)
		require.NoError(t, err)

		assert.False(t, result.Linked)
		assert.Nil(t, p.BookingID)
	})

	t.Run("payment not found", func(t *testing.T) {
		_, uc, _ := setup()

		_, err := uc.ResolveBooking(context.Background(), uuid.New())
		require.ErrorIs(t, err, errs.ErrPaymentNotFound)
	})
}
