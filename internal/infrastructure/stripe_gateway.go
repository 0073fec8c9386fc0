package infrastructure

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/Demureaxs/weaver-final-v1/internal/config"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
)

// Credit plans purchasable via checkout. The granted amount travels in the
// checkout session metadata and comes back on the webhook.
var planCredits = map[string]int{
	"pro": 500,
}

// PaymentEvent is the provider-neutral view of a verified webhook event.
type PaymentEvent struct {
	ID                string
	Type              string
	CheckoutCompleted bool
	UserID            string
	Credits           int
}

type StripeGateway struct {
	secretKey     string
	webhookSecret string
	appBaseURL    string
	priceIDs      map[string]string
}

func NewStripeGateway(cfg *config.Config) *StripeGateway {
	return &StripeGateway{
		secretKey:     cfg.StripeSecretKey,
		webhookSecret: cfg.StripeWebhookSecret,
		appBaseURL:    cfg.AppBaseURL,
		priceIDs: map[string]string{
			"pro": cfg.StripePriceIDPro,
		},
	}
}

// CreateCheckoutSession builds a one-time payment checkout for the plan and
// returns the hosted payment page URL.
func (g *StripeGateway) CreateCheckoutSession(userID, plan string) (string, error) {
	if g.secretKey == "" {
		return "", entities.NotConfiguredError("STRIPE_SECRET_KEY")
	}
	priceID, ok := g.priceIDs[plan]
	credits, known := planCredits[plan]
	if !ok || !known || priceID == "" {
		return "", fmt.Errorf("unknown plan %q: %w", plan, entities.ErrInvalidRequest)
	}

	stripe.Key = g.secretKey
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Price:    stripe.String(priceID),
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(g.appBaseURL + "/dashboard/billing/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(g.appBaseURL + "/dashboard/billing/cancel"),
	}
	params.AddMetadata("userId", userID)
	params.AddMetadata("credits", strconv.Itoa(credits))

	s, err := session.New(params)
	if err != nil {
		return "", err
	}
	return s.URL, nil
}

// VerifyWebhook checks the provider signature and maps the event into a
// PaymentEvent. Unhandled event types come back with CheckoutCompleted=false
// so the caller can acknowledge and move on.
func (g *StripeGateway) VerifyWebhook(payload []byte, signature string) (*PaymentEvent, error) {
	if g.webhookSecret == "" {
		return nil, entities.NotConfiguredError("STRIPE_WEBHOOK_SECRET")
	}

	event, err := webhook.ConstructEvent(payload, signature, g.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature: %w", entities.ErrInvalidRequest)
	}

	pe := &PaymentEvent{ID: event.ID, Type: string(event.Type)}
	if event.Type != "checkout.session.completed" {
		return pe, nil
	}

	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		return nil, fmt.Errorf("checkout session payload: %w", entities.ErrInvalidRequest)
	}

	pe.CheckoutCompleted = true
	pe.UserID = cs.Metadata["userId"]
	pe.Credits, _ = strconv.Atoi(cs.Metadata["credits"])
	return pe, nil
}
