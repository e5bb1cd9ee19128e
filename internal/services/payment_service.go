package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"

	"github.com/SAP-F-2025/enrollment-service/internal/events"
)

// IntentClient is the seam to the external payment processor. Tests
// substitute a fake; production uses Stripe.
type IntentClient interface {
	CreateIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)
}

// StripeIntentClient creates payment intents through the Stripe API,
// fixed to usd and card payment methods.
type StripeIntentClient struct{}

func NewStripeIntentClient(secretKey string) *StripeIntentClient {
	stripe.Key = secretKey
	return &StripeIntentClient{}
}

func (c *StripeIntentClient) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("payment intent creation failed: %w", err)
	}
	return intent.ClientSecret, nil
}

type paymentService struct {
	client    IntentClient
	logger    *slog.Logger
	publisher events.EventPublisher
}

func NewPaymentService(client IntentClient, logger *slog.Logger, publisher events.EventPublisher) PaymentService {
	return &paymentService{
		client:    client,
		logger:    logger,
		publisher: publisher,
	}
}

func (s *paymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", fmt.Errorf("%w: price must be positive", ErrValidationFailed)
	}

	// Minor currency units; rounding guards against float artifacts like
	// 19.99*100 = 1998.999...
	amount := int64(math.Round(price * 100))

	secret, err := s.client.CreateIntent(ctx, amount)
	if err != nil {
		return "", err
	}

	if pubErr := s.publisher.Publish(ctx, &events.EnrollmentEvent{
		Type:        events.EventPaymentIntentCreated,
		AmountCents: amount,
		Price:       price,
	}); pubErr != nil {
		s.logger.Error("failed to publish payment event", "error", pubErr)
	}

	return secret, nil
}
