package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// sessionAPI is the subset of the Stripe checkout session client we call
type sessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeOptions configures the Stripe provider
type StripeOptions struct {
	SecretKey   string
	PriceID     string
	ProductName string
	UnitAmount  int64
	Currency    string
	BaseURL     string
}

// StripeProvider creates Stripe Checkout Sessions with allow_promotion_codes set
type StripeProvider struct {
	sessions sessionAPI
	opts     StripeOptions
}

// NewStripeProvider builds a provider backed by its own Stripe client
func NewStripeProvider(opts StripeOptions) (*StripeProvider, error) {
	if opts.SecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}
	sc := client.New(opts.SecretKey, nil)
	log.Printf("[Checkout] Stripe provider initialized (price_id set: %v)", opts.PriceID != "")
	return newStripeProvider(sc.CheckoutSessions, opts), nil
}

func newStripeProvider(sessions sessionAPI, opts StripeOptions) *StripeProvider {
	return &StripeProvider{sessions: sessions, opts: opts}
}

// CreateSession creates a payment-mode session with promotion codes enabled
func (p *StripeProvider) CreateSession(ctx context.Context, in CreateSessionInput) (*Session, error) {
	params := p.sessionParams(in)
	params.Context = ctx

	s, err := p.sessions.New(params)
	if err != nil {
		return nil, providerError("create checkout session", err)
	}

	log.Printf("[Checkout] Session created: %s (order_id=%s)", s.ID, params.Metadata["order_id"])
	return &Session{ID: s.ID, URL: s.URL}, nil
}

// GetSession retrieves a session and extracts the fields shown on the success page
func (p *StripeProvider) GetSession(ctx context.Context, id string) (*SessionSummary, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	s, err := p.sessions.Get(id, params)
	if err != nil {
		return nil, providerError("retrieve checkout session", err)
	}

	return summarize(s), nil
}

func (p *StripeProvider) sessionParams(in CreateSessionInput) *stripe.CheckoutSessionParams {
	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item := &stripe.CheckoutSessionLineItemParams{Quantity: stripe.Int64(quantity)}
	if p.opts.PriceID != "" {
		item.Price = stripe.String(p.opts.PriceID)
	} else {
		item.PriceData = &stripe.CheckoutSessionLineItemPriceDataParams{
			Currency: stripe.String(p.opts.Currency),
			ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
				Name: stripe.String(p.opts.ProductName),
			},
			UnitAmount: stripe.Int64(p.opts.UnitAmount),
		}
	}

	params := &stripe.CheckoutSessionParams{
		LineItems:           []*stripe.CheckoutSessionLineItemParams{item},
		Mode:                stripe.String(string(stripe.CheckoutSessionModePayment)),
		AllowPromotionCodes: stripe.Bool(true),
		SuccessURL:          stripe.String(p.opts.BaseURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:           stripe.String(p.opts.BaseURL + "/cancel"),
	}
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(in.CustomerEmail)
	}

	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	params.AddMetadata("order_id", uuid.New().String())
	params.AddMetadata("feature", "promotion_codes")

	return params
}

func summarize(s *stripe.CheckoutSession) *SessionSummary {
	out := &SessionSummary{
		ID:            s.ID,
		CustomerEmail: s.CustomerEmail,
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		PaymentStatus: string(s.PaymentStatus),
	}
	if s.CustomerDetails != nil && s.CustomerDetails.Email != "" {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	if s.TotalDetails != nil {
		out.AmountDiscount = s.TotalDetails.AmountDiscount
	}
	return out
}

func providerError(op string, err error) error {
	msg := err.Error()
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		msg = stripeErr.Msg
	}
	log.Printf("[Checkout] Stripe error during %s: %s", op, msg)
	return &ProviderError{Op: op, Message: msg, Err: err}
}
