package domain

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrNoCheckoutURL   = errors.New("provider returned no checkout url")
	ErrCaptchaRequired = errors.New("captcha verification required")
)

// Catalog reads products from the payments provider.
type Catalog interface {
	// List returns every active product with its default price attached.
	List(ctx context.Context) ([]Product, error)
	// Get returns one product with all active price variants, sorted
	// ascending by amount.
	Get(ctx context.Context, id string) (*Product, error)
}

// CheckoutGateway starts a provider-hosted payment flow.
type CheckoutGateway interface {
	// CreateSession returns the provider URL the browser must be
	// redirected to.
	CreateSession(ctx context.Context, priceID, successURL, cancelURL string) (string, error)
}

// Mailer relays a contact message to the shop owner.
type Mailer interface {
	Send(ctx context.Context, msg ContactMessage) error
}
