//go:build unit

package sign_test

import (
	"testing"

	"bookingpay/internal/pkg/sign"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	secret := "whsec_test"
	body := []byte(`{"event_id":"evt_1"}`)

	t.Run("round trip", func(t *testing.T) {
		assert.True(t, sign.Verify(secret, body, sign.Compute(secret, body)))
	})

	t.Run("wrong secret", func(t *testing.T) {
		assert.False(t, sign.Verify("other", body, sign.Compute(secret, body)))
	})

	t.Run("tampered body", func(t *testing.T) {
		sig := sign.Compute(secret, body)
		assert.False(t, sign.Verify(secret, []byte(`{"event_id":"evt_2"}`), sig))
	})

	t.Run("empty signature", func(t *testing.T) {
		assert.False(t, sign.Verify(secret, body, ""))
	})
}
