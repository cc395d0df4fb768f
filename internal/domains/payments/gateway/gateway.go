package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/pkg/constant"
)

//go:generate go run go.uber.org/mock/mockgen -source=gateway.go -destination=../mock/gateway.go -package=mock github.com/savioruz/bookease/internal/domains/payments/gateway Gateway

// Gateway issues provider orders and decides whether a checkout confirmation is genuine.
type Gateway interface {
	Name() string
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
	Verify(ctx context.Context, c Confirmation, providerRef string) (Verdict, error)
}

type OrderRequest struct {
	OrderID     string
	Amount      int64
	Currency    string
	Description string
}

type Order struct {
	ProviderRef string
	CheckoutURL string
}

// Confirmation is the payload the checkout hands back after a successful payment.
type Confirmation struct {
	OrderID   string
	PaymentID string
	Signature string
}

type Verdict struct {
	Paid      bool
	PaymentID string
}

var ErrUnknownGateway = errors.New("unknown payment gateway")

// New picks the gateway named by PAYMENT_GATEWAY.
func New(cfg *config.Config, invoices InvoiceClient) (Gateway, error) {
	switch cfg.Payment.Gateway {
	case constant.PaymentGatewaySignature:
		if cfg.Payment.KeySecret == "" {
			return nil, errors.New("PAYMENT_KEY_SECRET is required for the signature gateway")
		}

		return NewSignature(cfg.Payment.KeySecret), nil
	case constant.PaymentGatewayXendit:
		if cfg.Payment.Xendit.APIKey == "" {
			return nil, errors.New("XENDIT_API_KEY is required for the xendit gateway")
		}

		return NewXendit(invoices, cfg.Payment.Xendit.SuccessURL, cfg.Payment.Xendit.FailureURL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGateway, cfg.Payment.Gateway)
	}
}
