// Package checkout creates and looks up hosted checkout sessions with
// promotion codes enabled.
package checkout

import (
	"context"
	"fmt"
)

// Provider is the payment provider used by the checkout handlers
type Provider interface {
	// CreateSession creates a checkout session and returns its hosted URL
	CreateSession(ctx context.Context, in CreateSessionInput) (*Session, error)

	// GetSession retrieves a completed or pending session by ID
	GetSession(ctx context.Context, id string) (*SessionSummary, error)
}

// CreateSessionInput carries the per-request part of a checkout session
type CreateSessionInput struct {
	Quantity      int64
	CustomerEmail string
	Metadata      map[string]string
}

// Session is a freshly created checkout session
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionSummary is what the success page shows about a session
type SessionSummary struct {
	ID             string `json:"id"`
	CustomerEmail  string `json:"customer_email"`
	AmountTotal    int64  `json:"amount_total"`
	AmountDiscount int64  `json:"amount_discount"`
	Currency       string `json:"currency"`
	PaymentStatus  string `json:"payment_status"`
}

// ProviderError is returned when the payment provider rejects a call.
// Message is the provider's own error text.
type ProviderError struct {
	Op      string
	Message string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
