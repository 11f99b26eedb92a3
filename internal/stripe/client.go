package stripecli

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

// Intent is the slice of a Stripe payment intent the services need.
type Intent struct {
	ID           string
	ClientSecret string
}

type Client struct {
	api *client.API
}

func New(secretKey string) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Client{api: api}
}

// CreateIntent creates a payment intent for an amount in minor currency
// units, tagged with the given metadata.
func (c *Client) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (Intent, error) {
	const op = "stripe.CreateIntent"

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(currency),
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("%s: %w", op, err)
	}

	return Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
