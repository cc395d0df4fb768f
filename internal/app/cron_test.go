package app

import (
	"errors"
	"testing"
	"time"

	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/internal/domains/payments/mock"
	log "github.com/savioruz/bookease/pkg/logger/mock"
	"github.com/savioruz/bookease/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewScheduler(t *testing.T) {
	t.Run("success: registers both jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cfg := &config.Config{}
		cfg.Schedule.OrderExpiration = "0 */5 * * * *"

		c, err := NewScheduler(mock.NewMockPaymentService(ctrl), ratelimit.New(10, 1, time.Minute), cfg, log.NewMockInterface(ctrl))

		require.NoError(t, err)
		assert.Len(t, c.Entries(), 2)
	})

	t.Run("error: invalid schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		l := log.NewMockInterface(ctrl)
		l.EXPECT().Error(gomock.Any()).Times(1)

		cfg := &config.Config{}
		cfg.Schedule.OrderExpiration = "every now and then"

		_, err := NewScheduler(mock.NewMockPaymentService(ctrl), ratelimit.New(10, 1, time.Minute), cfg, l)

		assert.Error(t, err)
	})
}

func TestExpireOrdersJob(t *testing.T) {
	t.Run("success: logs expired count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockPaymentService(ctrl)
		l := log.NewMockInterface(ctrl)

		svc.EXPECT().ExpireStale(gomock.Any()).Return(int64(2), nil)
		l.EXPECT().Info("Cron job - expired 2 payment orders").Times(1)

		expireOrdersJob(svc, l)()
	})

	t.Run("error: failure is logged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockPaymentService(ctrl)
		l := log.NewMockInterface(ctrl)

		svc.EXPECT().ExpireStale(gomock.Any()).Return(int64(0), errors.New("error"))
		l.EXPECT().Error(gomock.Any()).Times(1)

		expireOrdersJob(svc, l)()
	})
}
