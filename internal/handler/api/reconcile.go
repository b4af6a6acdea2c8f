package api

import (
	"errors"
	"net/http"

	reqdto "bookingpay/internal/handler/dto/request"
	resdto "bookingpay/internal/handler/dto/response"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/usecase/commands"
	"bookingpay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReconcileHandler struct {
	reconcileUseCase commands.ReconcileCommands
	simulatorUseCase commands.SimulatorCommands
	prQueries        queries.PaymentRequestQueries
	eventQueries     queries.WebhookEventQueries
}

func NewReconcileHandler(
	reconcileUseCase commands.ReconcileCommands,
	simulatorUseCase commands.SimulatorCommands,
	prQueries queries.PaymentRequestQueries,
	eventQueries queries.WebhookEventQueries,
) *ReconcileHandler {
	return &ReconcileHandler{
		reconcileUseCase: reconcileUseCase,
		simulatorUseCase: simulatorUseCase,
		prQueries:        prQueries,
		eventQueries:     eventQueries,
	}
}

// @Summary Trigger reconciliation
// @Description Run one reconciliation tick: repair stale sent requests and expire overdue ones
// @Tags internal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReconcileResponse
// @Router /internal/reconcile [post]
func (h *ReconcileHandler) Trigger(c *gin.Context) {
	summary, err := h.reconcileUseCase.ReconcileOnce(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReconcileSummary(summary))
}

// @Summary Simulate processor event
// @Description Synthesize a webhook event for a sent payment request; sandbox environments only
// @Tags internal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment request ID"
// @Param request body reqdto.SimulateEventRequest true "Desired outcome"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /internal/payment-requests/{id}/simulate [post]
func (h *ReconcileHandler) Simulate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return
	}

	var req reqdto.SimulateEventRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.simulatorUseCase.SimulateEvent(c.Request.Context(), id, commands.SimulatedOutcome(req.Outcome))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSimulationForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Event simulation is disabled in production",
			})
		case errors.Is(err, errs.ErrPaymentRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment request not found",
			})
		case errors.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment request has no checkout to simulate against",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProcessResult(result))
}

// @Summary Trace a checkout
// @Description Look up the payment request behind a processor checkout id and every ledger entry recorded against it
// @Tags internal
// @Produce json
// @Security BearerAuth
// @Param checkoutId path string true "Processor checkout ID"
// @Success 200 {object} resdto.CheckoutTraceResponse
// @Failure 404 {object} map[string]string
// @Router /internal/checkouts/{checkoutId} [get]
func (h *ReconcileHandler) TraceCheckout(c *gin.Context) {
	checkoutID := c.Param("checkoutId")

	view, err := h.prQueries.GetByCheckoutID(c.Request.Context(), checkoutID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPaymentRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No payment request for checkout",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	events, err := h.eventQueries.ListByCheckout(c.Request.Context(), checkoutID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := &resdto.CheckoutTraceResponse{
		PaymentRequest: resdto.FromPaymentRequestView(view),
		Events:         make([]*resdto.WebhookEventResponse, len(events)),
	}
	for i, ev := range events {
		response.Events[i] = resdto.FromWebhookEventView(ev)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get ledger entry
// @Description Look up one recorded webhook event by its event id
// @Tags internal
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {object} resdto.WebhookEventResponse
// @Failure 404 {object} map[string]string
// @Router /internal/webhook-events/{eventId} [get]
func (h *ReconcileHandler) GetWebhookEvent(c *gin.Context) {
	view, err := h.eventQueries.GetByEventID(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrWebhookEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Webhook event not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWebhookEventView(view))
}
