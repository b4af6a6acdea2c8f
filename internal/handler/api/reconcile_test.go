//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"bookingpay/internal/handler/api"
	resdto "bookingpay/internal/handler/dto/response"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/usecase/commands"
	"bookingpay/internal/usecase/queries"
	"bookingpay/tests/common/builder"
	"bookingpay/tests/common/httptest"
	commandsmock "bookingpay/tests/mock/commands"
	queriesmock "bookingpay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReconcileHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockReconcile    *commandsmock.MockReconcileCommands
	mockSimulator    *commandsmock.MockSimulatorCommands
	mockPRQueries    *queriesmock.MockPaymentRequestQueries
	mockEventQueries *queriesmock.MockWebhookEventQueries
	handler          *api.ReconcileHandler
}

func (s *ReconcileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockReconcile = commandsmock.NewMockReconcileCommands(s.mockCtrl)
	s.mockSimulator = commandsmock.NewMockSimulatorCommands(s.mockCtrl)
	s.mockPRQueries = queriesmock.NewMockPaymentRequestQueries(s.mockCtrl)
	s.mockEventQueries = queriesmock.NewMockWebhookEventQueries(s.mockCtrl)
	s.handler = api.NewReconcileHandler(s.mockReconcile, s.mockSimulator, s.mockPRQueries, s.mockEventQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("actor_id", uuid.New())
		c.Set("actor_role", "service")
		c.Next()
	}

	s.router.POST("/internal/reconcile", authMiddleware, s.handler.Trigger)
	s.router.POST("/internal/payment-requests/:id/simulate", authMiddleware, s.handler.Simulate)
	s.router.GET("/internal/checkouts/:checkoutId", authMiddleware, s.handler.TraceCheckout)
	s.router.GET("/internal/webhook-events/:eventId", authMiddleware, s.handler.GetWebhookEvent)
}

func (s *ReconcileHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReconcileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReconcileHandlerTestSuite))
}

func (s *ReconcileHandlerTestSuite) TestTrigger() {
	url := "/internal/reconcile"

	s.Run("success: returns the tick summary", func() {
		s.mockReconcile.EXPECT().ReconcileOnce(gomock.Any()).
			Return(&commands.ReconcileSummary{Examined: 4, Repaired: 2, Expired: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.ReconcileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(4, body.Examined)
		s.Equal(2, body.Repaired)
		s.Equal(1, body.Expired)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *ReconcileHandlerTestSuite) TestSimulate() {
	requestID := uuid.New()
	url := "/internal/payment-requests/" + requestID.String() + "/simulate"
	reqBody := map[string]any{"outcome": "success"}

	s.Run("success: returns the event ack", func() {
		s.mockSimulator.EXPECT().SimulateEvent(gomock.Any(), requestID, commands.SimulateSuccess).
			Return(&commands.ProcessResult{Outcome: commands.OutcomeApplied, PaymentRequestID: &requestID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(commands.OutcomeApplied, body.Outcome)
	})

	s.Run("error: 400 on unknown outcome value", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"outcome": "maybe"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"forbidden in production", errs.ErrSimulationForbidden, http.StatusForbidden},
			{"not found", errs.ErrPaymentRequestNotFound, http.StatusNotFound},
			{"no checkout yet", errs.ErrInvalidTransition, http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockSimulator.EXPECT().SimulateEvent(gomock.Any(), requestID, commands.SimulateSuccess).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *ReconcileHandlerTestSuite) TestTraceCheckout() {
	checkoutID := "ck_trace"
	url := "/internal/checkouts/" + checkoutID

	s.Run("success: returns the request and its ledger entries", func() {
		view := builder.NewPaymentRequestBuilder().BuildView()
		view.CheckoutID = &checkoutID
		outcome := "applied"
		events := []*queries.WebhookEventView{
			{EventID: "evt_1", Source: "webhook", EventType: "checkout.completed", CheckoutID: checkoutID, Outcome: &outcome},
			{EventID: "recon_1", Source: "reconciler", EventType: "checkout.completed", CheckoutID: checkoutID},
		}
		s.mockPRQueries.EXPECT().GetByCheckoutID(gomock.Any(), checkoutID).
			Return(view, nil).Times(1)
		s.mockEventQueries.EXPECT().ListByCheckout(gomock.Any(), checkoutID).
			Return(events, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.CheckoutTraceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.PaymentRequest)
		s.Equal(view.ID, body.PaymentRequest.ID)
		s.Len(body.Events, 2)
		s.Equal("evt_1", body.Events[0].EventID)
		s.Equal("reconciler", body.Events[1].Source)
	})

	s.Run("error: 404 for unknown checkout", func() {
		s.mockPRQueries.EXPECT().GetByCheckoutID(gomock.Any(), checkoutID).
			Return(nil, errs.ErrPaymentRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No payment request for checkout")
	})
}

func (s *ReconcileHandlerTestSuite) TestGetWebhookEvent() {
	url := "/internal/webhook-events/evt_abc"

	s.Run("success: returns the ledger entry", func() {
		outcome := "rejected"
		s.mockEventQueries.EXPECT().GetByEventID(gomock.Any(), "evt_abc").
			Return(&queries.WebhookEventView{
				EventID:    "evt_abc",
				Source:     "webhook",
				EventType:  "checkout.completed",
				CheckoutID: "ck_1",
				Outcome:    &outcome,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.WebhookEventResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("evt_abc", body.EventID)
		s.Require().NotNil(body.Outcome)
		s.Equal("rejected", *body.Outcome)
	})

	s.Run("error: 404 for unrecorded event", func() {
		s.mockEventQueries.EXPECT().GetByEventID(gomock.Any(), "evt_abc").
			Return(nil, errs.ErrWebhookEventNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Webhook event not found")
	})
}
