package gateway_test

import (
	"context"
	"errors"
	"testing"

	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/internal/domains/payments/gateway"
	"github.com/savioruz/bookease/internal/domains/payments/mock"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     func(*config.Config)
		want    string
		wantErr bool
	}{
		{
			name: "success: signature",
			cfg: func(c *config.Config) {
				c.Payment.Gateway = constant.PaymentGatewaySignature
				c.Payment.KeySecret = "secret"
			},
			want: constant.PaymentGatewaySignature,
		},
		{
			name:    "error: signature without secret",
			cfg:     func(c *config.Config) { c.Payment.Gateway = constant.PaymentGatewaySignature },
			wantErr: true,
		},
		{
			name: "success: xendit",
			cfg: func(c *config.Config) {
				c.Payment.Gateway = constant.PaymentGatewayXendit
				c.Payment.Xendit.APIKey = "xnd_development_key"
			},
			want: constant.PaymentGatewayXendit,
		},
		{
			name:    "error: xendit without api key",
			cfg:     func(c *config.Config) { c.Payment.Gateway = constant.PaymentGatewayXendit },
			wantErr: true,
		},
		{
			name:    "error: unknown gateway",
			cfg:     func(c *config.Config) { c.Payment.Gateway = "paypal" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			tt.cfg(cfg)

			gw, err := gateway.New(cfg, nil)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, gw.Name())
		})
	}
}

func TestSignature_Verify(t *testing.T) {
	ctx := context.Background()
	sig := gateway.NewSignature("secret")

	valid := gateway.Confirmation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Signature: sig.Sign("order_1", "pay_1"),
	}

	tests := []struct {
		name string
		c    gateway.Confirmation
		paid bool
	}{
		{"success: valid signature", valid, true},
		{"error: tampered payment id", gateway.Confirmation{OrderID: "order_1", PaymentID: "pay_2", Signature: valid.Signature}, false},
		{"error: signature from another secret", gateway.Confirmation{OrderID: "order_1", PaymentID: "pay_1", Signature: gateway.NewSignature("other").Sign("order_1", "pay_1")}, false},
		{"error: not hex", gateway.Confirmation{OrderID: "order_1", PaymentID: "pay_1", Signature: "zz"}, false},
		{"error: missing fields", gateway.Confirmation{OrderID: "order_1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := sig.Verify(ctx, tt.c, "")

			require.NoError(t, err)
			assert.Equal(t, tt.paid, v.Paid)
			if tt.paid {
				assert.Equal(t, "pay_1", v.PaymentID)
			}
		})
	}
}

func TestSignature_CreateOrder(t *testing.T) {
	order, err := gateway.NewSignature("secret").CreateOrder(context.Background(), gateway.OrderRequest{OrderID: "order_1", Amount: 50000})

	require.NoError(t, err)
	assert.Equal(t, "order_1", order.ProviderRef)
	assert.Empty(t, order.CheckoutURL)
}

func TestXendit_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("success: invoice in major units", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockInvoiceClient(ctrl)
		gw := gateway.NewXendit(client, "https://ok", "https://fail")

		client.EXPECT().CreateInvoice(gomock.Any(), gateway.InvoiceRequest{
			ExternalID:  "order_1",
			Amount:      500,
			Currency:    "INR",
			Description: "Slot Booking",
			SuccessURL:  "https://ok",
			FailureURL:  "https://fail",
		}).Return(gateway.Invoice{ID: "inv-1", URL: "https://checkout/inv-1", Status: "PENDING"}, nil)

		order, err := gw.CreateOrder(ctx, gateway.OrderRequest{OrderID: "order_1", Amount: 50000, Currency: "INR", Description: "Slot Booking"})

		require.NoError(t, err)
		assert.Equal(t, "inv-1", order.ProviderRef)
		assert.Equal(t, "https://checkout/inv-1", order.CheckoutURL)
	})

	t.Run("error: provider failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockInvoiceClient(ctrl)
		gw := gateway.NewXendit(client, "", "")

		client.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(gateway.Invoice{}, errors.New("error"))

		_, err := gw.CreateOrder(ctx, gateway.OrderRequest{OrderID: "order_1"})

		assert.Error(t, err)
	})
}

func TestXendit_Verify(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		status string
		paid   bool
	}{
		{"success: paid", "PAID", true},
		{"success: settled", "SETTLED", true},
		{"error: pending", "PENDING", false},
		{"error: expired", "EXPIRED", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mock.NewMockInvoiceClient(ctrl)
			gw := gateway.NewXendit(client, "", "")

			client.EXPECT().GetInvoice(gomock.Any(), "inv-1").Return(gateway.Invoice{ID: "inv-1", Status: tt.status}, nil)

			v, err := gw.Verify(ctx, gateway.Confirmation{OrderID: "order_1"}, "inv-1")

			require.NoError(t, err)
			assert.Equal(t, tt.paid, v.Paid)
			if tt.paid {
				assert.Equal(t, "inv-1", v.PaymentID)
			}
		})
	}

	t.Run("error: no provider reference", func(t *testing.T) {
		gw := gateway.NewXendit(mock.NewMockInvoiceClient(gomock.NewController(t)), "", "")

		v, err := gw.Verify(ctx, gateway.Confirmation{OrderID: "order_1"}, "")

		require.NoError(t, err)
		assert.False(t, v.Paid)
	})

	t.Run("error: transport failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock.NewMockInvoiceClient(ctrl)
		gw := gateway.NewXendit(client, "", "")

		client.EXPECT().GetInvoice(gomock.Any(), "inv-1").Return(gateway.Invoice{}, errors.New("error"))

		_, err := gw.Verify(ctx, gateway.Confirmation{OrderID: "order_1"}, "inv-1")

		assert.Error(t, err)
	})
}
