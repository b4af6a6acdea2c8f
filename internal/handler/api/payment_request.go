package api

import (
	"errors"
	"net/http"

	reqdto "bookingpay/internal/handler/dto/request"
	resdto "bookingpay/internal/handler/dto/response"
	"bookingpay/internal/handler/middleware"
	"bookingpay/internal/pkg/errs"
	"bookingpay/internal/usecase/commands"
	"bookingpay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentRequestHandler struct {
	prUseCase      commands.PaymentRequestCommands
	cancelUseCase  commands.CancellationCommands
	linkageUseCase commands.LinkageCommands
	prQueries      queries.PaymentRequestQueries
	paymentQueries queries.PaymentQueries
}

func NewPaymentRequestHandler(
	prUseCase commands.PaymentRequestCommands,
	cancelUseCase commands.CancellationCommands,
	linkageUseCase commands.LinkageCommands,
	prQueries queries.PaymentRequestQueries,
	paymentQueries queries.PaymentQueries,
) *PaymentRequestHandler {
	return &PaymentRequestHandler{
		prUseCase:      prUseCase,
		cancelUseCase:  cancelUseCase,
		linkageUseCase: linkageUseCase,
		prQueries:      prQueries,
		paymentQueries: paymentQueries,
	}
}

// @Summary Create payment request
// @Description Create a payment request against a booking
// @Tags payment-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentRequestRequest true "Payment request"
// @Success 201 {object} resdto.PaymentRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payment-requests [post]
func (h *PaymentRequestHandler) Create(c *gin.Context) {
	var req reqdto.CreatePaymentRequestRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.prUseCase.Create(c.Request.Context(), commands.CreatePaymentRequestInput{
		BookingID:  req.BookingID,
		CustomerID: req.CustomerID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		DueDate:    req.DueDate,
	}, h.actor(c))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, errs.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, errs.ErrActiveRequestExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Booking already has an active payment request",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPaymentRequestView(view))
}

// @Summary Send payment request
// @Description Open a checkout at the processor and move the request to sent
// @Tags payment-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment request ID"
// @Success 200 {object} resdto.PaymentRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /payment-requests/{id}/send [post]
func (h *PaymentRequestHandler) Send(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	view, err := h.prUseCase.Send(c.Request.Context(), id, h.actor(c))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPaymentRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment request not found",
			})
		case errors.Is(err, errs.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment request is not pending",
			})
		case errors.Is(err, errs.ErrCheckoutFailed),
			errors.Is(err, errs.ErrProcessorTimeout),
			errors.Is(err, errs.ErrProcessorUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment processor unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentRequestView(view))
}

// @Summary Get payment request
// @Tags payment-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment request ID"
// @Success 200 {object} resdto.PaymentRequestResponse
// @Failure 404 {object} map[string]string
// @Router /payment-requests/{id} [get]
func (h *PaymentRequestHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	view, err := h.prQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPaymentRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment request not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentRequestView(view))
}

// @Summary Cancel payment request
// @Description Cancel an active payment request; a terminal request is a no-op reporting its current status
// @Tags payment-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment request ID"
// @Param request body reqdto.CancelPaymentRequestRequest false "Optional reason"
// @Success 200 {object} resdto.CancelResponse
// @Failure 404 {object} map[string]string
// @Router /payment-requests/{id}/cancel [post]
func (h *PaymentRequestHandler) Cancel(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req reqdto.CancelPaymentRequestRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	result, err := h.cancelUseCase.Cancel(c.Request.Context(), id, req.GetReason(), h.actor(c))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPaymentRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment request not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CancelResponse{
		Status:  result.Status.String(),
		Applied: result.Applied,
	})
}

// @Summary Resolve payment booking linkage
// @Description Attribute a legacy payment to a booking via the time-window matcher
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.ResolveBookingResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payments/{id}/resolve-booking [post]
func (h *PaymentRequestHandler) ResolveBooking(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	result, err := h.linkageUseCase.ResolveBooking(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
		case errors.Is(err, errs.ErrLinkageAmbiguous):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Multiple equally close booking candidates, manual review required",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromResolveBookingResult(result))
}

// @Summary Get payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [get]
func (h *PaymentRequestHandler) GetPayment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	view, err := h.paymentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Payment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentView(view))
}

// @Summary List payment requests for a booking
// @Description Get all payment requests raised against a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.PaymentRequestResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/{id}/payment-requests [get]
func (h *PaymentRequestHandler) ListByBooking(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	views, err := h.prQueries.ListByBooking(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PaymentRequestResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromPaymentRequestView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary List payments for a booking
// @Description Get all captured payments attributed to a booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/{id}/payments [get]
func (h *PaymentRequestHandler) ListPaymentsByBooking(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	views, err := h.paymentQueries.ListByBooking(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PaymentResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromPaymentView(v)
	}

	c.JSON(http.StatusOK, response)
}

func (h *PaymentRequestHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *PaymentRequestHandler) actor(c *gin.Context) string {
	if actorID, ok := middleware.GetActorID(c); ok {
		return actorID.String()
	}
	return "unknown"
}
