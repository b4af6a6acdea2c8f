package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Payment request errors
	ErrPaymentRequestNotFound = errors.New("payment request not found")
	ErrActiveRequestExists    = errors.New("booking already has an active payment request")
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrRequestAlreadyTerminal = errors.New("payment request is already terminal")

	// Booking / customer errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCustomerNotFound = errors.New("customer not found")

	// Webhook errors
	ErrWebhookAuthFailed    = errors.New("webhook authentication failed")
	ErrOrphanedEvent        = errors.New("no payment request for checkout")
	ErrMalformedEnvelope    = errors.New("malformed event envelope")
	ErrWebhookEventNotFound = errors.New("webhook event not found")

	// Linkage errors
	ErrLinkageAmbiguous = errors.New("linkage candidates ambiguous")
	ErrPaymentNotFound  = errors.New("payment not found")

	// Processor errors
	ErrProcessorTimeout     = errors.New("processor query timed out")
	ErrProcessorUnavailable = errors.New("processor unavailable")
	ErrCheckoutFailed       = errors.New("checkout creation failed")

	// Sandbox errors
	ErrSimulationForbidden = errors.New("event simulation is disabled in production")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
