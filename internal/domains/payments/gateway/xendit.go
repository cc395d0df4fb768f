package gateway

import (
	"context"
	"errors"
	"strings"

	"github.com/savioruz/bookease/pkg/constant"
)

//go:generate go run go.uber.org/mock/mockgen -source=xendit.go -destination=../mock/invoice_client.go -package=mock github.com/savioruz/bookease/internal/domains/payments/gateway InvoiceClient

// InvoiceClient is the part of the Xendit invoice API the gateway needs.
type InvoiceClient interface {
	CreateInvoice(ctx context.Context, req InvoiceRequest) (Invoice, error)
	GetInvoice(ctx context.Context, id string) (Invoice, error)
}

type InvoiceRequest struct {
	ExternalID  string
	Amount      float64
	Currency    string
	Description string
	SuccessURL  string
	FailureURL  string
}

type Invoice struct {
	ID     string
	URL    string
	Status string
}

var errNoInvoiceClient = errors.New("xendit client is not configured")

// Xendit backs orders with hosted invoices. A confirmation is genuine once the invoice is PAID or SETTLED.
type Xendit struct {
	client     InvoiceClient
	successURL string
	failureURL string
}

func NewXendit(client InvoiceClient, successURL, failureURL string) *Xendit {
	return &Xendit{
		client:     client,
		successURL: successURL,
		failureURL: failureURL,
	}
}

func (x *Xendit) Name() string {
	return constant.PaymentGatewayXendit
}

func (x *Xendit) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	if x.client == nil {
		return Order{}, errNoInvoiceClient
	}

	inv, err := x.client.CreateInvoice(ctx, InvoiceRequest{
		ExternalID:  req.OrderID,
		Amount:      float64(req.Amount) / constant.MinorUnitsPerMajor,
		Currency:    req.Currency,
		Description: req.Description,
		SuccessURL:  x.successURL,
		FailureURL:  x.failureURL,
	})
	if err != nil {
		return Order{}, err
	}

	return Order{ProviderRef: inv.ID, CheckoutURL: inv.URL}, nil
}

func (x *Xendit) Verify(ctx context.Context, c Confirmation, providerRef string) (Verdict, error) {
	if x.client == nil {
		return Verdict{}, errNoInvoiceClient
	}

	if providerRef == "" {
		return Verdict{}, nil
	}

	inv, err := x.client.GetInvoice(ctx, providerRef)
	if err != nil {
		return Verdict{}, err
	}

	switch strings.ToUpper(inv.Status) {
	case "PAID", "SETTLED":
	default:
		return Verdict{}, nil
	}

	paymentID := c.PaymentID
	if paymentID == "" {
		paymentID = inv.ID
	}

	return Verdict{Paid: true, PaymentID: paymentID}, nil
}
