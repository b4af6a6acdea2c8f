// Package sign implements the shared-secret signature scheme the payment
// processor applies to webhook deliveries: hex-encoded HMAC-SHA256 over the
// raw request body.
package sign

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

func Compute(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify compares in constant time; an empty signature never matches.
func Verify(secret string, body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	expected := Compute(secret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}
