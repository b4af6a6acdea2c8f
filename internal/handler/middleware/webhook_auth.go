package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"bookingpay/internal/pkg/sign"

	"github.com/gin-gonic/gin"
)

// SignatureHeader carries the processor's HMAC over the raw request body.
const SignatureHeader = "X-Payload-Signature"

// WebhookAuth verifies the processor signature before any entity is touched.
// The body is re-buffered so the handler can still bind it.
func WebhookAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Failed to read request body",
			})
			c.Abort()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		signature := c.GetHeader(SignatureHeader)
		if !sign.Verify(secret, body, signature) {
			slog.Warn("webhook signature verification failed",
				"client_ip", c.ClientIP(),
				"signature_present", signature != "")
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid webhook signature",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
