package gateway

import (
	"context"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeGateway crea payment intents vía la API de Stripe.
type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, req IntentRequest) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.Amount),
		Currency: stripe.String(req.Currency),
	}
	params.Context = ctx
	params.AddMetadata("order_id", req.OrderID)
	params.AddMetadata("user_id", req.UserID)

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		msg := err.Error()
		// Exponer el mensaje propio de Stripe cuando existe
		if stripeErr, ok := err.(*stripe.Error); ok && stripeErr.Msg != "" {
			msg = stripeErr.Msg
		}
		return nil, &Error{Message: msg, Err: err}
	}

	return &Intent{
		TransactionID: pi.ID,
		ClientSecret:  pi.ClientSecret,
	}, nil
}
