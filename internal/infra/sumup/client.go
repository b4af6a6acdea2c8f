package sumup

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"bookingpay/internal/pkg/config"
	"bookingpay/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// Checkout statuses as reported by the processor API.
const (
	CheckoutStatusPaid    = "PAID"
	CheckoutStatusFailed  = "FAILED"
	CheckoutStatusPending = "PENDING"
)

// Client is the HTTP client for the SumUp checkout API. Every call carries a
// bounded timeout; a timeout is reported as errs.ErrProcessorTimeout so
// callers can skip rather than fail the whole batch.
type Client interface {
	CreateCheckout(ctx context.Context, params CreateCheckoutParams) (*Checkout, error)
	GetCheckout(ctx context.Context, checkoutID string) (*Checkout, error)
}

type CreateCheckoutParams struct {
	Reference   string
	Amount      decimal.Decimal
	Currency    string
	Description string
}

type Checkout struct {
	ID            string
	Reference     string
	Status        string
	Amount        decimal.Decimal
	Currency      string
	TransactionID string
	Date          time.Time
}

type checkoutPayload struct {
	CheckoutReference string          `json:"checkout_reference,omitempty"`
	Amount            decimal.Decimal `json:"amount,omitempty"`
	Currency          string          `json:"currency,omitempty"`
	MerchantCode      string          `json:"merchant_code,omitempty"`
	Description       string          `json:"description,omitempty"`
}

type checkoutResponse struct {
	ID                string          `json:"id"`
	CheckoutReference string          `json:"checkout_reference"`
	Status            string          `json:"status"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Date              time.Time       `json:"date"`
	Transactions      []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"transactions"`
}

type apiError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

type restClient struct {
	http *resty.Client
	cfg  config.SumUpConfig
}

func NewClient(cfg config.SumUpConfig, timeout time.Duration) Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &restClient{http: httpClient, cfg: cfg}
}

func (c *restClient) CreateCheckout(ctx context.Context, params CreateCheckoutParams) (*Checkout, error) {
	var (
		result checkoutResponse
		apiErr apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(checkoutPayload{
			CheckoutReference: params.Reference,
			Amount:            params.Amount,
			Currency:          params.Currency,
			MerchantCode:      c.cfg.MerchantCode,
			Description:       params.Description,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post("/v0.1/checkouts")
	if err != nil {
		return nil, classifyTransportErr(err, "create checkout")
	}

	if resp.IsError() {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("create checkout failed: status=%d code=%s message=%s",
				resp.StatusCode(), apiErr.ErrorCode, apiErr.Message)),
			errs.ErrCheckoutFailed,
		)
	}

	return toCheckout(&result), nil
}

func (c *restClient) GetCheckout(ctx context.Context, checkoutID string) (*Checkout, error) {
	var (
		result checkoutResponse
		apiErr apiError
	)

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&result).
		SetError(&apiErr).
		Get("/v0.1/checkouts/" + checkoutID)
	if err != nil {
		return nil, classifyTransportErr(err, "get checkout")
	}

	if resp.StatusCode() == http.StatusNotFound {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("checkout %s not found at processor", checkoutID)),
			errs.ErrCheckoutFailed,
		)
	}

	if resp.IsError() {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("get checkout failed: status=%d code=%s message=%s",
				resp.StatusCode(), apiErr.ErrorCode, apiErr.Message)),
			errs.ErrProcessorUnavailable,
		)
	}

	return toCheckout(&result), nil
}

func classifyTransportErr(err error, op string) error {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return errs.Mark(errs.Wrap(err, op+" timed out"), errs.ErrProcessorTimeout)
	}
	return errs.Mark(errs.Wrap(err, op+" request failed"), errs.ErrProcessorUnavailable)
}

func toCheckout(resp *checkoutResponse) *Checkout {
	out := &Checkout{
		ID:        resp.ID,
		Reference: resp.CheckoutReference,
		Status:    resp.Status,
		Amount:    resp.Amount,
		Currency:  resp.Currency,
		Date:      resp.Date,
	}
	for _, tx := range resp.Transactions {
		if tx.Status == "SUCCESSFUL" {
			out.TransactionID = tx.ID
			break
		}
	}
	return out
}
