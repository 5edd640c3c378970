package booking

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// PaymentIntenter abstracts the payment gateway. It returns an opaque
// client secret the frontend uses to complete the charge.
type PaymentIntenter interface {
	// CreateIntent creates a payment intent for the given amount in minor
	// currency units (cents).
	CreateIntent(amount int64) (string, error)
}

// StripeIntenter implements PaymentIntenter against the Stripe API.
// stripe.Key is set once at startup from configuration.
type StripeIntenter struct{}

// CreateIntent creates a card payment intent in USD.
func (StripeIntenter) CreateIntent(amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}
