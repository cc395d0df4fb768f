package xendit

import (
	"context"
	"testing"

	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/internal/domains/payments/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("success: nil without api key", func(t *testing.T) {
		assert.Nil(t, New(&config.Config{}))
	})

	t.Run("success: client with api key", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Payment.Xendit.APIKey = "xnd_development_key"

		require.NotNil(t, New(cfg))
	})
}

func TestClient_NotConfigured(t *testing.T) {
	var c *Client

	_, err := c.CreateInvoice(context.Background(), gateway.InvoiceRequest{ExternalID: "order_1", Amount: 500})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.GetInvoice(context.Background(), "inv-1")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
