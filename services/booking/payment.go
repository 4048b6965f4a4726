package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"consultly/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler charges the client for a booking.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// StripePaymentHandler creates a PaymentIntent for the booking amount.
// Capture/settlement stays on the Stripe side; the server records the
// resulting transaction on the booking.
type StripePaymentHandler struct {
	logger *zap.Logger
}

// NewStripePaymentHandler constructs the production payment handler.
func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount %.2f", req.Amount)
	}
	if req.Currency == "" {
		return nil, fmt.Errorf("missing payment currency")
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		ClientID:  req.ClientID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(req.Amount * 100)), // minor units
		Currency: stripe.String(strings.ToLower(req.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		inv.Status = "failed"
		h.logger.Error("payment intent creation failed", zap.Error(err))
		return inv, NewPaymentError(fmt.Sprintf("payment failed: %v", err))
	}

	inv.PaymentID = pi.ID
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()

	h.logger.Info("Payment processed", zap.String("invoice", inv.InvoiceID), zap.String("paymentIntent", pi.ID))
	return inv, nil
}
