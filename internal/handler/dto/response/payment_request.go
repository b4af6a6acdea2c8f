package response

import (
	"time"

	"bookingpay/internal/usecase/commands"
	"bookingpay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentRequestResponse struct {
	ID           uuid.UUID       `json:"id"`
	BookingID    *uuid.UUID      `json:"bookingId,omitempty"`
	CustomerID   uuid.UUID       `json:"customerId"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Status       string          `json:"status"`
	DueDate      time.Time       `json:"dueDate"`
	CheckoutID   *string         `json:"checkoutId,omitempty"`
	CancelReason *string         `json:"cancelReason,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func FromPaymentRequestView(rm *queries.PaymentRequestView) *PaymentRequestResponse {
	return &PaymentRequestResponse{
		ID:           rm.ID,
		BookingID:    rm.BookingID,
		CustomerID:   rm.CustomerID,
		Amount:       rm.Amount,
		Currency:     rm.Currency,
		Status:       rm.Status,
		DueDate:      rm.DueDate,
		CheckoutID:   rm.CheckoutID,
		CancelReason: rm.CancelReason,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

type CancelResponse struct {
	Status  string `json:"status"`
	Applied bool   `json:"applied"`
}

type PaymentResponse struct {
	ID             uuid.UUID       `json:"id"`
	BookingID      *uuid.UUID      `json:"bookingId,omitempty"`
	CustomerID     uuid.UUID       `json:"customerId"`
	CheckoutID     string          `json:"checkoutId"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	Method         string          `json:"method"`
	TransactionID  string          `json:"transactionId"`
	Note           string          `json:"note"`
	LinkConfidence string          `json:"linkConfidence"`
	ProcessedAt    time.Time       `json:"processedAt"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func FromPaymentView(rm *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		ID:             rm.ID,
		BookingID:      rm.BookingID,
		CustomerID:     rm.CustomerID,
		CheckoutID:     rm.CheckoutID,
		Amount:         rm.Amount,
		Currency:       rm.Currency,
		Method:         rm.Method,
		TransactionID:  rm.TransactionID,
		Note:           rm.Note,
		LinkConfidence: rm.LinkConfidence,
		ProcessedAt:    rm.ProcessedAt,
		CreatedAt:      rm.CreatedAt,
	}
}

type ResolveBookingResponse struct {
	Linked     bool       `json:"linked"`
	BookingID  *uuid.UUID `json:"bookingId,omitempty"`
	Confidence string     `json:"confidence,omitempty"`
}

func FromResolveBookingResult(r *commands.ResolveBookingResult) *ResolveBookingResponse {
	return &ResolveBookingResponse{
		Linked:     r.Linked,
		BookingID:  r.BookingID,
		Confidence: string(r.Confidence),
	}
}
