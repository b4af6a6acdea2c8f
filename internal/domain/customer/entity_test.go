//go:build unit

package customer_test

import (
	"testing"
	"time"

	"bookingpay/internal/domain/customer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReconstruct(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2025, 11, 20, 9, 30, 0, 0, time.UTC)

	c := customer.Reconstruct(
		id,
		[]byte("enc-first"), []byte("enc-last"), []byte("enc-phone"),
		true,
		createdAt,
	)

	assert.Equal(t, id, c.ID())
	assert.Equal(t, []byte("enc-first"), c.FirstNameEncrypted())
	assert.Equal(t, []byte("enc-last"), c.LastNameEncrypted())
	assert.Equal(t, []byte("enc-phone"), c.PhoneEncrypted())
	assert.True(t, c.IsActive())
	assert.Equal(t, createdAt, c.CreatedAt())
}

func TestReconstructDeactivated(t *testing.T) {
	c := customer.Reconstruct(uuid.New(), nil, nil, nil, false, time.Now())
	assert.False(t, c.IsActive())
}
