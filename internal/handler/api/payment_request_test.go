//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"bookingpay/internal/domain/linkage"
	"bookingpay/internal/domain/paymentrequest"
	"bookingpay/internal/handler/api"
	resdto "bookingpay/internal/handler/dto/response"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/usecase/commands"
	"bookingpay/internal/usecase/queries"
	"bookingpay/tests/common/builder"
	"bookingpay/tests/common/httptest"
	"bookingpay/tests/common/testutil"
	commandsmock "bookingpay/tests/mock/commands"
	queriesmock "bookingpay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentRequestHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockCtrl           *gomock.Controller
	mockPRCommands     *commandsmock.MockPaymentRequestCommands
	mockCancelCommands *commandsmock.MockCancellationCommands
	mockLinkage        *commandsmock.MockLinkageCommands
	mockPRQueries      *queriesmock.MockPaymentRequestQueries
	mockPaymentQueries *queriesmock.MockPaymentQueries
	handler            *api.PaymentRequestHandler
}

func (s *PaymentRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPRCommands = commandsmock.NewMockPaymentRequestCommands(s.mockCtrl)
	s.mockCancelCommands = commandsmock.NewMockCancellationCommands(s.mockCtrl)
	s.mockLinkage = commandsmock.NewMockLinkageCommands(s.mockCtrl)
	s.mockPRQueries = queriesmock.NewMockPaymentRequestQueries(s.mockCtrl)
	s.mockPaymentQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.handler = api.NewPaymentRequestHandler(
		s.mockPRCommands,
		s.mockCancelCommands,
		s.mockLinkage,
		s.mockPRQueries,
		s.mockPaymentQueries,
	)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("actor_id", uuid.New())
		c.Set("actor_role", "admin")
		c.Next()
	}

	s.router.POST("/payment-requests", authMiddleware, s.handler.Create)
	s.router.GET("/payment-requests/:id", authMiddleware, s.handler.Get)
	s.router.POST("/payment-requests/:id/send", authMiddleware, s.handler.Send)
	s.router.POST("/payment-requests/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.GET("/bookings/:id/payment-requests", authMiddleware, s.handler.ListByBooking)
	s.router.GET("/bookings/:id/payments", authMiddleware, s.handler.ListPaymentsByBooking)
	s.router.GET("/payments/:id", authMiddleware, s.handler.GetPayment)
	s.router.POST("/payments/:id/resolve-booking", authMiddleware, s.handler.ResolveBooking)
}

func (s *PaymentRequestHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentRequestHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *PaymentRequestHandlerTestSuite) TestCreate() {
	url := "/payment-requests"

	reqBody := builder.NewPaymentRequestBuilder().BuildCreateRequestDTO()
	returnView := builder.NewPaymentRequestBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockPRCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.PaymentRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("pending", body.Status)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		missing := []struct {
			name  string
			field string
		}{
			{"missing booking_id", "booking_id"},
			{"missing customer_id", "customer_id"},
			{"missing amount", "amount"},
			{"missing currency", "currency"},
			{"missing due_date", "due_date"},
		}
		for _, tc := range missing {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(tc.field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"booking not found", errs.ErrBookingNotFound, http.StatusNotFound},
			{"customer not found", errs.ErrCustomerNotFound, http.StatusNotFound},
			{"active request exists", errs.ErrActiveRequestExists, http.StatusConflict},
			{"domain validation", errs.ErrDomainValidation, http.StatusUnprocessableEntity},
			{"unexpected", errors.New("boom"), http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockPRCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestSend
// ================================================================================

func (s *PaymentRequestHandlerTestSuite) TestSend() {
	returnView := builder.NewPaymentRequestBuilder().BuildView()
	returnView.Status = "sent"
	checkoutID := "ck_test"
	returnView.CheckoutID = &checkoutID
	url := "/payment-requests/" + returnView.ID.String() + "/send"

	s.Run("success: returns 200 with checkout id", func() {
		s.mockPRCommands.EXPECT().Send(gomock.Any(), returnView.ID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.PaymentRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("sent", body.Status)
		s.Require().NotNil(body.CheckoutID)
		s.Equal(checkoutID, *body.CheckoutID)
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/payment-requests/not-a-uuid/send", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})

	s.Run("error: usecase errors map to status codes", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"not found", errs.ErrPaymentRequestNotFound, http.StatusNotFound},
			{"not pending", errs.ErrInvalidTransition, http.StatusConflict},
			{"processor unavailable", errs.ErrProcessorUnavailable, http.StatusBadGateway},
			{"processor timeout", errs.ErrProcessorTimeout, http.StatusBadGateway},
			{"checkout failed", errs.ErrCheckoutFailed, http.StatusBadGateway},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockPRCommands.EXPECT().Send(gomock.Any(), returnView.ID, gomock.Any()).
					Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *PaymentRequestHandlerTestSuite) TestGet() {
	returnView := builder.NewPaymentRequestBuilder().BuildView()
	url := "/payment-requests/" + returnView.ID.String()

	s.Run("success: returns 200 with view", func() {
		s.mockPRQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.PaymentRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
	})

	s.Run("error: 404 when unknown", func() {
		s.mockPRQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, errs.ErrPaymentRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment request not found")
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *PaymentRequestHandlerTestSuite) TestCancel() {
	requestID := uuid.New()
	url := "/payment-requests/" + requestID.String() + "/cancel"

	s.Run("success: applied cancellation", func() {
		s.mockCancelCommands.EXPECT().Cancel(gomock.Any(), requestID, gomock.Any(), gomock.Any()).
			Return(&commands.CancelResult{Status: paymentrequest.StatusCancelled, Applied: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reason": "customer asked"}, "bearer-token")

		var body resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Applied)
		s.Equal("cancelled", body.Status)
	})

	s.Run("success: body is optional", func() {
		s.mockCancelCommands.EXPECT().Cancel(gomock.Any(), requestID, gomock.Nil(), gomock.Any()).
			Return(&commands.CancelResult{Status: paymentrequest.StatusCancelled, Applied: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Applied)
	})

	s.Run("success: terminal request reports no-op", func() {
		s.mockCancelCommands.EXPECT().Cancel(gomock.Any(), requestID, gomock.Any(), gomock.Any()).
			Return(&commands.CancelResult{Status: paymentrequest.StatusPaid, Applied: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.CancelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Applied)
		s.Equal("paid", body.Status)
	})

	s.Run("error: 404 when unknown", func() {
		s.mockCancelCommands.EXPECT().Cancel(gomock.Any(), requestID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrPaymentRequestNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment request not found")
	})
}

// ================================================================================
// TestGetPayment
// ================================================================================

func (s *PaymentRequestHandlerTestSuite) TestGetPayment() {
	returnView := &queries.PaymentView{
		ID:             uuid.New(),
		CustomerID:     uuid.New(),
		CheckoutID:     "ck_test",
		LinkConfidence: "explicit",
	}
	url := "/payments/" + returnView.ID.String()

	s.Run("success: returns 200 with payment", func() {
		s.mockPaymentQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("explicit", body.LinkConfidence)
	})

	s.Run("error: 404 when unknown", func() {
		s.mockPaymentQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, errs.ErrPaymentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment not found")
	})
}

// ================================================================================
// TestListByBooking
// ================================================================================

func (s *PaymentRequestHandlerTestSuite) TestListByBooking() {
	bookingID := uuid.New()

	s.Run("success: lists payment requests for a booking", func() {
		views := []*queries.PaymentRequestView{
			builder.NewPaymentRequestBuilder().With(func(b *builder.PaymentRequestBuilder) {
				b.BookingID = bookingID
			}).BuildView(),
		}
		s.mockPRQueries.EXPECT().ListByBooking(gomock.Any(), bookingID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+bookingID.String()+"/payment-requests", nil, "bearer-token")

		var body []resdto.PaymentRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Require().NotNil(body[0].BookingID)
		s.Equal(bookingID, *body[0].BookingID)
	})

	s.Run("success: lists payments for a booking", func() {
		views := []*queries.PaymentView{
			{ID: uuid.New(), CustomerID: uuid.New(), BookingID: &bookingID, CheckoutID: "ck_list"},
		}
		s.mockPaymentQueries.EXPECT().ListByBooking(gomock.Any(), bookingID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+bookingID.String()+"/payments", nil, "bearer-token")

		var body []resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("ck_list", body[0].CheckoutID)
	})

	s.Run("success: empty list when booking has no requests", func() {
		s.mockPRQueries.EXPECT().ListByBooking(gomock.Any(), bookingID).
			Return([]*queries.PaymentRequestView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings/"+bookingID.String()+"/payment-requests", nil, "bearer-token")

		var body []resdto.PaymentRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})
}

// ================================================================================
// TestResolveBooking
// ================================================================================

func (s *PaymentRequestHandlerTestSuite) TestResolveBooking() {
	paymentID := uuid.New()
	url := "/payments/" + paymentID.String() + "/resolve-booking"

	s.Run("success: linked with inferred confidence", func() {
		bookingID := uuid.New()
		s.mockLinkage.EXPECT().ResolveBooking(gomock.Any(), paymentID).
			Return(&commands.ResolveBookingResult{
				Linked:     true,
				BookingID:  &bookingID,
				Confidence: linkage.ConfidenceInferred,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.ResolveBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Linked)
		s.Equal(bookingID, *body.BookingID)
		s.Equal("inferred", body.Confidence)
	})

	s.Run("success: unlinked", func() {
		s.mockLinkage.EXPECT().ResolveBooking(gomock.Any(), paymentID).
			Return(&commands.ResolveBookingResult{Linked: false}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.ResolveBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Linked)
		s.Nil(body.BookingID)
	})

	s.Run("error: 409 on ambiguity", func() {
		s.mockLinkage.EXPECT().ResolveBooking(gomock.Any(), paymentID).
			Return(nil, errs.ErrLinkageAmbiguous).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "manual review")
	})

	s.Run("error: 404 when payment unknown", func() {
		s.mockLinkage.EXPECT().ResolveBooking(gomock.Any(), paymentID).
			Return(nil, errs.ErrPaymentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Payment not found")
	})
}
