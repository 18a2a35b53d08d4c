package booking

import (
	"context"
	"fmt"

	"pawhub/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentProcessor creates the deposit payment intent for a booking. Capture
// and settlement are handled by Stripe and the client; the backend only
// opens the intent and records its id.
type PaymentProcessor interface {
	CreateDepositIntent(ctx context.Context, b *models.Booking) (string, error)
}

// StripePaymentProcessor implements PaymentProcessor against the Stripe API.
type StripePaymentProcessor struct {
	logger *zap.Logger
}

// NewStripePaymentProcessor constructs a StripePaymentProcessor. The global
// stripe.Key is set by the composition root.
func NewStripePaymentProcessor(logger *zap.Logger) *StripePaymentProcessor {
	return &StripePaymentProcessor{logger: logger}
}

func (p *StripePaymentProcessor) CreateDepositIntent(ctx context.Context, b *models.Booking) (string, error) {
	currency := b.Currency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(b.DepositAmount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("bookingId", b.ID)
	params.AddMetadata("contractorId", b.ContractorID)
	params.AddMetadata("clientId", b.ClientID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create deposit payment intent: %w", err)
	}

	p.logger.Info("deposit payment intent created",
		zap.String("bookingID", b.ID),
		zap.String("paymentIntentID", pi.ID),
		zap.Int64("amount", b.DepositAmount))
	return pi.ID, nil
}
