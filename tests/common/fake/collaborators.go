//go:build unit

package fake

import (
	"context"

	"bookingpay/internal/infra/sumup"
)

// Decryptor echoes ciphertext back as plaintext, or fails uniformly when Err
// is set, which is enough to test note degradation.
type Decryptor struct {
	Err error
}

func (d *Decryptor) Decrypt(ciphertext []byte) (string, error) {
	if d.Err != nil {
		return "", d.Err
	}
	return string(ciphertext), nil
}

// Processor is a function-field stub for the payment processor client.
type Processor struct {
	CreateCheckoutFn func(ctx context.Context, params sumup.CreateCheckoutParams) (*sumup.Checkout, error)
	GetCheckoutFn    func(ctx context.Context, checkoutID string) (*sumup.Checkout, error)
}

func (p *Processor) CreateCheckout(ctx context.Context, params sumup.CreateCheckoutParams) (*sumup.Checkout, error) {
	return p.CreateCheckoutFn(ctx, params)
}

func (p *Processor) GetCheckout(ctx context.Context, checkoutID string) (*sumup.Checkout, error) {
	return p.GetCheckoutFn(ctx, checkoutID)
}
