//go:build unit

package booking_test

import (
	"testing"
	"time"

	"bookingpay/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReconstruct(t *testing.T) {
	id := uuid.New()
	customerID := uuid.New()
	startsAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	b := booking.Reconstruct(
		id, customerID,
		"Deep Tissue Massage",
		startsAt, startsAt.Add(time.Hour),
		booking.StatusScheduled,
		startsAt.Add(-48*time.Hour),
	)

	assert.Equal(t, id, b.ID())
	assert.Equal(t, customerID, b.CustomerID())
	assert.Equal(t, "Deep Tissue Massage", b.ServiceName())
	assert.Equal(t, startsAt, b.StartsAt())
	assert.Equal(t, startsAt.Add(time.Hour), b.EndsAt())
	assert.Equal(t, booking.StatusScheduled, b.Status())
	assert.Equal(t, startsAt.Add(-48*time.Hour), b.CreatedAt())
}
