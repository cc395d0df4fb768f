package app

import (
	"context"
	"strconv"

	"github.com/robfig/cron/v3"
	"github.com/savioruz/bookease/config"
	paymentService "github.com/savioruz/bookease/internal/domains/payments/service"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/savioruz/bookease/pkg/ratelimit"
)

const sweepSchedule = "0 * * * * *"

// NewScheduler registers the background jobs. The caller starts and stops it.
func NewScheduler(payments paymentService.PaymentService, limiter *ratelimit.Store, cfg *config.Config, l logger.Interface) (*cron.Cron, error) {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(cfg.Schedule.OrderExpiration, expireOrdersJob(payments, l)); err != nil {
		l.Error("Cron job - AddFunc expire orders failed: " + err.Error())

		return nil, err
	}

	if _, err := c.AddFunc(sweepSchedule, sweepLimiterJob(limiter, l)); err != nil {
		l.Error("Cron job - AddFunc sweep limiter failed: " + err.Error())

		return nil, err
	}

	return c, nil
}

func expireOrdersJob(payments paymentService.PaymentService, l logger.Interface) func() {
	return func() {
		ctx := context.WithoutCancel(context.Background())

		n, err := payments.ExpireStale(ctx)
		if err != nil {
			l.Error("Cron job - ExpireStale failed: " + err.Error())

			return
		}

		if n > 0 {
			l.Info("Cron job - expired " + strconv.FormatInt(n, 10) + " payment orders")
		}
	}
}

func sweepLimiterJob(limiter *ratelimit.Store, l logger.Interface) func() {
	return func() {
		if n := limiter.Sweep(); n > 0 {
			l.Debug("Cron job - swept " + strconv.Itoa(n) + " idle rate limit buckets")
		}
	}
}
