package api

import (
	"errors"
	"net/http"

	reqdto "bookingpay/internal/handler/dto/request"
	resdto "bookingpay/internal/handler/dto/response"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	webhookUseCase commands.WebhookCommands
}

func NewWebhookHandler(webhookUseCase commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{
		webhookUseCase: webhookUseCase,
	}
}

// @Summary Receive processor event
// @Description Apply one payment processor webhook event, idempotently per event_id
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Payload-Signature header string true "HMAC-SHA256 over the raw body"
// @Param request body reqdto.WebhookEventRequest true "Processor event envelope"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *WebhookHandler) ReceiveEvent(c *gin.Context) {
	var req reqdto.WebhookEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.webhookUseCase.ProcessEvent(c.Request.Context(), commands.SourceWebhook, req.ToEnvelope())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMalformedEnvelope):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Malformed event envelope",
			})
		default:
			// 5xx makes the processor retry with the same event_id; the
			// ledger deduplicates the replay.
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Orphaned and rejected outcomes still acknowledge: the processor must
	// not retry events this system has decided about.
	c.JSON(http.StatusOK, resdto.FromProcessResult(result))
}
