package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/internal/domains/payments/dto"
	"github.com/savioruz/bookease/internal/domains/payments/gateway"
	"github.com/savioruz/bookease/internal/domains/payments/mock"
	"github.com/savioruz/bookease/internal/domains/payments/repository"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/helper"
	log "github.com/savioruz/bookease/pkg/logger/mock"
	"github.com/savioruz/bookease/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2030, 3, 10, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Payment.Gateway = constant.PaymentGatewaySignature
	cfg.Payment.Fee = 500
	cfg.Payment.Currency = constant.PaymentCurrencyINR
	cfg.Payment.KeySecret = "secret"
	cfg.Payment.AllowFake = true
	cfg.Payment.OrderTTL = 30 * time.Minute

	return cfg
}

type deps struct {
	querier *mock.MockQuerier
	gateway *mock.MockGateway
	pgx     pgxmock.PgxPoolIface
	metrics *metrics.BookingMetrics
	svc     *paymentService
}

func setup(t *testing.T, cfg *config.Config) deps {
	t.Helper()

	ctrl := gomock.NewController(t)

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)

	l := log.NewMockInterface(ctrl)
	l.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	l.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	d := deps{
		querier: mock.NewMockQuerier(ctrl),
		gateway: mock.NewMockGateway(ctrl),
		pgx:     pool,
		metrics: metrics.NewBookingMetrics(prometheus.NewRegistry()),
	}
	d.gateway.EXPECT().Name().Return(cfg.Payment.Gateway).AnyTimes()

	d.svc = New(d.pgx, d.querier, d.gateway, d.metrics, cfg, l).(*paymentService)
	d.svc.now = func() time.Time { return fixedNow }

	return d
}

func createdOrder(id string) repository.PaymentOrder {
	return repository.PaymentOrder{
		ID:          id,
		Amount:      50000,
		Currency:    constant.PaymentCurrencyINR,
		Gateway:     constant.PaymentGatewaySignature,
		ProviderRef: pgtype.Text{String: id, Valid: true},
		Status:      constant.OrderStatusCreated,
		CreatedAt:   pgtype.Timestamp{Time: fixedNow.Add(-time.Minute), Valid: true},
	}
}

func TestPaymentService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("error: amount differs from the fee", func(t *testing.T) {
		d := setup(t, testConfig())

		_, err := d.svc.CreateOrder(ctx, dto.CreateOrderRequest{Amount: 499})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: gateway failure never returns an order id", func(t *testing.T) {
		d := setup(t, testConfig())

		d.querier.EXPECT().InsertPaymentOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertPaymentOrderParams) (repository.PaymentOrder, error) {
				return createdOrder(arg.ID), nil
			})
		d.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(gateway.Order{}, errors.New("error"))

		res, err := d.svc.CreateOrder(ctx, dto.CreateOrderRequest{Amount: 500})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
		assert.Empty(t, res.OrderID)
	})

	t.Run("success: order in minor units", func(t *testing.T) {
		d := setup(t, testConfig())

		var issued string

		d.querier.EXPECT().InsertPaymentOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertPaymentOrderParams) (repository.PaymentOrder, error) {
				assert.True(t, strings.HasPrefix(arg.ID, constant.PaymentOrderPrefix))
				assert.Equal(t, int64(50000), arg.Amount)
				assert.Equal(t, constant.PaymentGatewaySignature, arg.Gateway)
				issued = arg.ID

				return createdOrder(arg.ID), nil
			})
		d.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req gateway.OrderRequest) (gateway.Order, error) {
				return gateway.Order{ProviderRef: req.OrderID}, nil
			})
		d.querier.EXPECT().SetPaymentOrderProvider(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := d.svc.CreateOrder(ctx, dto.CreateOrderRequest{Amount: 500})

		require.NoError(t, err)
		assert.Equal(t, issued, res.OrderID)
		assert.Equal(t, int64(50000), res.Amount)
		assert.Equal(t, constant.PaymentCurrencyINR, res.Currency)
	})

	t.Run("success: two attempts get distinct orders", func(t *testing.T) {
		d := setup(t, testConfig())

		d.querier.EXPECT().InsertPaymentOrder(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertPaymentOrderParams) (repository.PaymentOrder, error) {
				return createdOrder(arg.ID), nil
			}).Times(2)
		d.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(gateway.Order{}, nil).Times(2)
		d.querier.EXPECT().SetPaymentOrderProvider(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		first, err := d.svc.CreateOrder(ctx, dto.CreateOrderRequest{Amount: 500})
		require.NoError(t, err)

		second, err := d.svc.CreateOrder(ctx, dto.CreateOrderRequest{Amount: 500})
		require.NoError(t, err)

		assert.NotEqual(t, first.OrderID, second.OrderID)
	})
}

func TestPaymentService_Verify(t *testing.T) {
	ctx := context.Background()
	req := dto.VerifyPaymentRequest{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}

	t.Run("error: unknown order", func(t *testing.T) {
		d := setup(t, testConfig())

		d.pgx.ExpectBegin()
		d.querier.EXPECT().GetPaymentOrderForUpdate(gomock.Any(), gomock.Any(), "order_1").Return(repository.PaymentOrder{}, pgx.ErrNoRows)
		d.pgx.ExpectRollback()

		res, err := d.svc.Verify(ctx, req)

		require.NoError(t, err)
		assert.False(t, res.Success)
	})

	t.Run("error: order already consumed", func(t *testing.T) {
		d := setup(t, testConfig())

		paid := createdOrder("order_1")
		paid.Status = constant.OrderStatusPaid

		d.pgx.ExpectBegin()
		d.querier.EXPECT().GetPaymentOrderForUpdate(gomock.Any(), gomock.Any(), "order_1").Return(paid, nil)
		d.pgx.ExpectRollback()

		res, err := d.svc.Verify(ctx, req)

		require.NoError(t, err)
		assert.False(t, res.Success)
	})

	t.Run("error: order older than the ttl", func(t *testing.T) {
		d := setup(t, testConfig())

		stale := createdOrder("order_1")
		stale.CreatedAt.Time = fixedNow.Add(-time.Hour)

		d.pgx.ExpectBegin()
		d.querier.EXPECT().GetPaymentOrderForUpdate(gomock.Any(), gomock.Any(), "order_1").Return(stale, nil)
		d.pgx.ExpectRollback()

		res, err := d.svc.Verify(ctx, req)

		require.NoError(t, err)
		assert.False(t, res.Success)
	})

	t.Run("error: gateway rejects the confirmation", func(t *testing.T) {
		d := setup(t, testConfig())

		d.pgx.ExpectBegin()
		d.querier.EXPECT().GetPaymentOrderForUpdate(gomock.Any(), gomock.Any(), "order_1").Return(createdOrder("order_1"), nil)
		d.gateway.EXPECT().Verify(gomock.Any(), gomock.Any(), "order_1").Return(gateway.Verdict{}, nil)
		d.pgx.ExpectRollback()

		res, err := d.svc.Verify(ctx, req)

		require.NoError(t, err)
		assert.False(t, res.Success)
	})

	t.Run("error: gateway transport failure", func(t *testing.T) {
		d := setup(t, testConfig())

		d.pgx.ExpectBegin()
		d.querier.EXPECT().GetPaymentOrderForUpdate(gomock.Any(), gomock.Any(), "order_1").Return(createdOrder("order_1"), nil)
		d.gateway.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(gateway.Verdict{}, errors.New("error"))
		d.pgx.ExpectRollback()

		_, err := d.svc.Verify(ctx, req)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: order marked paid", func(t *testing.T) {
		d := setup(t, testConfig())

		d.pgx.ExpectBegin()
		d.querier.EXPECT().GetPaymentOrderForUpdate(gomock.Any(), gomock.Any(), "order_1").Return(createdOrder("order_1"), nil)
		d.gateway.EXPECT().
			Verify(gomock.Any(), gateway.Confirmation{OrderID: "order_1", PaymentID: "pay_1", Signature: "sig"}, "order_1").
			Return(gateway.Verdict{Paid: true, PaymentID: "pay_1"}, nil)
		d.querier.EXPECT().MarkPaymentOrderPaid(gomock.Any(), gomock.Any(), repository.MarkPaymentOrderPaidParams{
			ID:        "order_1",
			PaymentID: helper.PgString("pay_1"),
		}).Return(nil)
		d.pgx.ExpectCommit()
		d.pgx.ExpectRollback()

		res, err := d.svc.Verify(ctx, req)

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "pay_1", res.PaymentID)
	})

	t.Run("success: hosted confirmation gets provider payment id", func(t *testing.T) {
		d := setup(t, testConfig())

		d.pgx.ExpectBegin()
		d.querier.EXPECT().GetPaymentOrderForUpdate(gomock.Any(), gomock.Any(), "order_1").Return(createdOrder("order_1"), nil)
		d.gateway.EXPECT().
			Verify(gomock.Any(), gateway.Confirmation{OrderID: "order_1"}, "order_1").
			Return(gateway.Verdict{Paid: true, PaymentID: "inv_1"}, nil)
		d.querier.EXPECT().MarkPaymentOrderPaid(gomock.Any(), gomock.Any(), repository.MarkPaymentOrderPaidParams{
			ID:        "order_1",
			PaymentID: helper.PgString("inv_1"),
		}).Return(nil)
		d.pgx.ExpectCommit()
		d.pgx.ExpectRollback()

		res, err := d.svc.Verify(ctx, dto.VerifyPaymentRequest{OrderID: "order_1"})

		require.NoError(t, err)
		assert.Equal(t, dto.VerifyPaymentResponse{Success: true, PaymentID: "inv_1"}, res)
	})
}

func TestPaymentService_FakePay(t *testing.T) {
	ctx := context.Background()

	t.Run("error: disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Payment.AllowFake = false
		d := setup(t, cfg)

		_, err := d.svc.FakePay(ctx, "order_1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: hosted gateway", func(t *testing.T) {
		cfg := testConfig()
		cfg.Payment.Gateway = constant.PaymentGatewayXendit
		d := setup(t, cfg)

		_, err := d.svc.FakePay(ctx, "order_1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: unknown order", func(t *testing.T) {
		d := setup(t, testConfig())

		d.querier.EXPECT().GetPaymentOrder(gomock.Any(), gomock.Any(), "order_1").Return(repository.PaymentOrder{}, pgx.ErrNoRows)

		_, err := d.svc.FakePay(ctx, "order_1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("success: confirmation verifies with the signature gateway", func(t *testing.T) {
		d := setup(t, testConfig())

		d.querier.EXPECT().GetPaymentOrder(gomock.Any(), gomock.Any(), "order_1").Return(createdOrder("order_1"), nil)

		c, err := d.svc.FakePay(ctx, "order_1")
		require.NoError(t, err)

		assert.Equal(t, "order_1", c.OrderID)
		assert.True(t, strings.HasPrefix(c.PaymentID, constant.PaymentPaymentPrefix))

		v, err := gateway.NewSignature("secret").Verify(ctx, gateway.Confirmation{
			OrderID:   c.OrderID,
			PaymentID: c.PaymentID,
			Signature: c.Signature,
		}, "")
		require.NoError(t, err)
		assert.True(t, v.Paid)
	})
}

func TestPaymentService_ExpireStale(t *testing.T) {
	ctx := context.Background()

	t.Run("success: cutoff is now minus ttl", func(t *testing.T) {
		d := setup(t, testConfig())

		d.querier.EXPECT().
			ExpireStaleOrders(gomock.Any(), gomock.Any(), helper.PgTimestamp(fixedNow.Add(-30*time.Minute))).
			Return(int64(3), nil)

		n, err := d.svc.ExpireStale(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("error: repository failure", func(t *testing.T) {
		d := setup(t, testConfig())

		d.querier.EXPECT().ExpireStaleOrders(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("error"))

		_, err := d.svc.ExpireStale(ctx)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
