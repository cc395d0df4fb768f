package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/internal/domains/payments/dto"
	"github.com/savioruz/bookease/internal/domains/payments/gateway"
	"github.com/savioruz/bookease/internal/domains/payments/repository"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/helper"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/savioruz/bookease/pkg/metrics"
	"github.com/savioruz/bookease/pkg/postgres"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service.go -package=mock github.com/savioruz/bookease/internal/domains/payments/service PaymentService

type PaymentService interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.CreateOrderResponse, error)
	Verify(ctx context.Context, req dto.VerifyPaymentRequest) (dto.VerifyPaymentResponse, error)
	FakePay(ctx context.Context, orderID string) (dto.VerifyPaymentRequest, error)
	ExpireStale(ctx context.Context) (int64, error)
}

type paymentService struct {
	db        postgres.PgxIface
	repo      repository.Querier
	gateway   gateway.Gateway
	metrics   *metrics.BookingMetrics
	fee       int64
	currency  string
	secret    string
	allowFake bool
	orderTTL  time.Duration
	now       func() time.Time
	logger    logger.Interface
}

func New(db postgres.PgxIface, r repository.Querier, g gateway.Gateway, m *metrics.BookingMetrics, cfg *config.Config, l logger.Interface) PaymentService {
	return &paymentService{
		db:        db,
		repo:      r,
		gateway:   g,
		metrics:   m,
		fee:       cfg.Payment.Fee,
		currency:  cfg.Payment.Currency,
		secret:    cfg.Payment.KeySecret,
		allowFake: cfg.Payment.AllowFake,
		orderTTL:  cfg.Payment.OrderTTL,
		now:       time.Now,
		logger:    l,
	}
}

const (
	identifier = "service - payments - %s"

	orderStatusError = "error"
	orderDescription = "Slot Booking"
)

func (s *paymentService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (res dto.CreateOrderResponse, err error) {
	if req.Amount != s.fee {
		s.logger.Error(identifier, "create order - unexpected amount")

		return res, failure.BadRequestFromString("Invalid amount")
	}

	amount := s.fee * constant.MinorUnitsPerMajor

	order, err := s.repo.InsertPaymentOrder(ctx, s.db, repository.InsertPaymentOrderParams{
		ID:       newID(constant.PaymentOrderPrefix),
		Amount:   amount,
		Currency: s.currency,
		Gateway:  s.gateway.Name(),
	})
	if err != nil {
		s.logger.Error(identifier, "create order - failed to insert order: "+err.Error())
		s.metrics.ObserveOrder(s.gateway.Name(), orderStatusError)

		return res, failure.InternalError(err)
	}

	provider, err := s.gateway.CreateOrder(ctx, gateway.OrderRequest{
		OrderID:     order.ID,
		Amount:      amount,
		Currency:    s.currency,
		Description: orderDescription,
	})
	if err != nil {
		s.logger.Error(identifier, "create order - gateway error: "+err.Error())
		s.metrics.ObserveOrder(s.gateway.Name(), orderStatusError)

		return res, failure.InternalError(err)
	}

	if err = s.repo.SetPaymentOrderProvider(ctx, s.db, repository.SetPaymentOrderProviderParams{
		ID:          order.ID,
		ProviderRef: helper.PgString(provider.ProviderRef),
		CheckoutUrl: helper.PgString(provider.CheckoutURL),
	}); err != nil {
		s.logger.Error(identifier, "create order - failed to store provider reference: "+err.Error())
		s.metrics.ObserveOrder(s.gateway.Name(), orderStatusError)

		return res, failure.InternalError(err)
	}

	s.metrics.ObserveOrder(s.gateway.Name(), constant.OrderStatusCreated)

	return dto.CreateOrderResponse{
		OrderID:     order.ID,
		Amount:      amount,
		Currency:    s.currency,
		CheckoutURL: provider.CheckoutURL,
	}, nil
}

// Verify consumes the order on success. Any business rejection is reported as success=false.
func (s *paymentService) Verify(ctx context.Context, req dto.VerifyPaymentRequest) (res dto.VerifyPaymentResponse, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "verify - failed to begin transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "verify - failed to rollback transaction: "+err.Error())
		}
	}(tx, ctx)

	order, err := s.repo.GetPaymentOrderForUpdate(ctx, tx, req.OrderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn(identifier, "verify - unknown order: "+req.OrderID)

			return s.reject(), nil
		}

		s.logger.Error(identifier, "verify - failed to load order: "+err.Error())

		return res, failure.InternalError(err)
	}

	if order.Status != constant.OrderStatusCreated {
		s.logger.Warn(identifier, "verify - order "+req.OrderID+" is "+order.Status)

		return s.reject(), nil
	}

	if s.expired(order) {
		s.logger.Warn(identifier, "verify - order expired: "+req.OrderID)

		return s.reject(), nil
	}

	verdict, err := s.gateway.Verify(ctx, gateway.Confirmation{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	}, order.ProviderRef.String)
	if err != nil {
		s.logger.Error(identifier, "verify - gateway error: "+err.Error())

		return res, failure.InternalError(err)
	}

	if !verdict.Paid {
		s.logger.Warn(identifier, "verify - confirmation rejected for order: "+req.OrderID)

		return s.reject(), nil
	}

	if err = s.repo.MarkPaymentOrderPaid(ctx, tx, repository.MarkPaymentOrderPaidParams{
		ID:        order.ID,
		PaymentID: helper.PgString(verdict.PaymentID),
	}); err != nil {
		s.logger.Error(identifier, "verify - failed to mark order paid: "+err.Error())

		return res, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "verify - failed to commit transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	s.metrics.ObserveVerification(s.gateway.Name(), true)

	return dto.VerifyPaymentResponse{Success: true, PaymentID: verdict.PaymentID}, nil
}

// FakePay plays the provider for the signature gateway in development.
func (s *paymentService) FakePay(ctx context.Context, orderID string) (res dto.VerifyPaymentRequest, err error) {
	if !s.allowFake {
		return res, failure.NotFound("Not found")
	}

	if s.gateway.Name() != constant.PaymentGatewaySignature {
		return res, failure.BadRequestFromString("Fake payments require the signature gateway")
	}

	order, err := s.repo.GetPaymentOrder(ctx, s.db, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return res, failure.NotFound("Order not found")
		}

		s.logger.Error(identifier, "fake pay - failed to load order: "+err.Error())

		return res, failure.InternalError(err)
	}

	if order.Status != constant.OrderStatusCreated {
		return res, failure.Conflict("Order is " + order.Status)
	}

	paymentID := newID(constant.PaymentPaymentPrefix)

	return dto.VerifyPaymentRequest{
		OrderID:   order.ID,
		PaymentID: paymentID,
		Signature: gateway.NewSignature(s.secret).Sign(order.ID, paymentID),
	}, nil
}

func (s *paymentService) ExpireStale(ctx context.Context) (int64, error) {
	n, err := s.repo.ExpireStaleOrders(ctx, s.db, helper.PgTimestamp(s.now().Add(-s.orderTTL)))
	if err != nil {
		s.logger.Error(identifier, "expire stale - failed to expire orders: "+err.Error())

		return 0, failure.InternalError(err)
	}

	return n, nil
}

func (s *paymentService) reject() dto.VerifyPaymentResponse {
	s.metrics.ObserveVerification(s.gateway.Name(), false)

	return dto.VerifyPaymentResponse{Success: false}
}

func (s *paymentService) expired(order repository.PaymentOrder) bool {
	if s.orderTTL <= 0 || !order.CreatedAt.Valid {
		return false
	}

	return s.now().Sub(order.CreatedAt.Time) > s.orderTTL
}

func newID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}
