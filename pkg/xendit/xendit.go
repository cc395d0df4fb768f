package xendit

import (
	"context"
	"errors"

	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/internal/domains/payments/gateway"
	x "github.com/xendit/xendit-go/v7"
	"github.com/xendit/xendit-go/v7/invoice"
)

// Client adapts the Xendit SDK to gateway.InvoiceClient.
type Client struct {
	api *x.APIClient
}

var _ gateway.InvoiceClient = (*Client)(nil)

var ErrNotConfigured = errors.New("xendit: XENDIT_API_KEY is not set")

// New returns nil when no API key is configured so the signature gateway can run without Xendit.
func New(cfg *config.Config) *Client {
	if cfg.Payment.Xendit.APIKey == "" {
		return nil
	}

	return &Client{api: x.NewClient(cfg.Payment.Xendit.APIKey)}
}

func (c *Client) CreateInvoice(ctx context.Context, req gateway.InvoiceRequest) (gateway.Invoice, error) {
	if c == nil {
		return gateway.Invoice{}, ErrNotConfigured
	}

	create := *invoice.NewCreateInvoiceRequest(req.ExternalID, req.Amount)
	create.SetCurrency(req.Currency)
	create.SetDescription(req.Description)

	if req.SuccessURL != "" {
		create.SetSuccessRedirectUrl(req.SuccessURL)
	}

	if req.FailureURL != "" {
		create.SetFailureRedirectUrl(req.FailureURL)
	}

	inv, _, xErr := c.api.InvoiceApi.CreateInvoice(ctx).CreateInvoiceRequest(create).Execute()
	if xErr != nil {
		return gateway.Invoice{}, xErr
	}

	return fromInvoice(inv), nil
}

func (c *Client) GetInvoice(ctx context.Context, id string) (gateway.Invoice, error) {
	if c == nil {
		return gateway.Invoice{}, ErrNotConfigured
	}

	inv, _, xErr := c.api.InvoiceApi.GetInvoiceById(ctx, id).Execute()
	if xErr != nil {
		return gateway.Invoice{}, xErr
	}

	return fromInvoice(inv), nil
}

func fromInvoice(inv *invoice.Invoice) gateway.Invoice {
	res := gateway.Invoice{
		URL:    inv.InvoiceUrl,
		Status: inv.Status.String(),
	}

	if inv.Id != nil {
		res.ID = *inv.Id
	}

	return res
}
