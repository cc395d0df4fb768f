package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/internal/domains/bookings/dto"
	"github.com/savioruz/bookease/internal/domains/bookings/mock"
	"github.com/savioruz/bookease/internal/domains/bookings/repository"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/helper"
	log "github.com/savioruz/bookease/pkg/logger/mock"
	"github.com/savioruz/bookease/pkg/mail"
	mailMock "github.com/savioruz/bookease/pkg/mail/mock"
	"github.com/savioruz/bookease/pkg/redis"
	cacheMock "github.com/savioruz/bookease/pkg/redis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	futureDate = "2099-01-02"
	pastDate   = "2000-01-02"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.Cache{Duration: 60},
		Booking: config.Booking{
			Slots:           "09:00 AM,10:00 AM,11:00 AM",
			DurationMinutes: 30,
			ServiceID:       "1",
		},
	}
}

type deps struct {
	querier *mock.MockQuerier
	pgx     pgxmock.PgxPoolIface
	logger  *log.MockInterface
	cache   *cacheMock.MockIRedisCache
}

func newDeps(t *testing.T, ctrl *gomock.Controller) deps {
	t.Helper()

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)

	d := deps{
		querier: mock.NewMockQuerier(ctrl),
		pgx:     pool,
		logger:  log.NewMockInterface(ctrl),
		cache:   cacheMock.NewMockIRedisCache(ctrl),
	}

	d.logger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	d.logger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	return d
}

func TestBookingService_GetBookedSlots(t *testing.T) {
	ctx := context.Background()
	cacheKey := helper.SlotsCacheKey("1", futureDate)

	t.Run("error: invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		svc := New(d.pgx, d.querier, d.cache, nil, nil, testConfig(), d.logger)

		_, err := svc.GetBookedSlots(ctx, dto.GetBookedSlotsRequest{Date: "not-a-date"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("success: cache hit skips the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		svc := New(d.pgx, d.querier, d.cache, nil, nil, testConfig(), d.logger)

		d.cache.EXPECT().
			Get(gomock.Any(), cacheKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, v any) error {
				*(v.(*dto.BookedSlotsResponse)) = dto.BookedSlotsResponse{Booked: []string{"10:00 AM"}}

				return nil
			})

		res, err := svc.GetBookedSlots(ctx, dto.GetBookedSlotsRequest{Date: futureDate})

		require.NoError(t, err)
		assert.Equal(t, []string{"10:00 AM"}, res.Booked)
	})

	t.Run("success: cache miss reads and stores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		svc := New(d.pgx, d.querier, d.cache, nil, nil, testConfig(), d.logger)

		d.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(redis.ErrCacheMiss)
		d.querier.EXPECT().
			GetBookedTimeSlots(gomock.Any(), gomock.Any(), repository.GetBookedTimeSlotsParams{
				ServiceID:   "1",
				BookingDate: helper.PgDate(futureDate),
			}).
			Return(nil, nil)
		d.cache.EXPECT().Save(gomock.Any(), cacheKey, dto.BookedSlotsResponse{Booked: []string{}}, 60).Return(nil)

		res, err := svc.GetBookedSlots(ctx, dto.GetBookedSlotsRequest{Date: futureDate})

		require.NoError(t, err)
		assert.NotNil(t, res.Booked)
		assert.Empty(t, res.Booked)
	})

	t.Run("error: repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		svc := New(d.pgx, d.querier, d.cache, nil, nil, testConfig(), d.logger)

		d.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(redis.ErrCacheMiss)
		d.querier.EXPECT().GetBookedTimeSlots(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))

		_, err := svc.GetBookedSlots(ctx, dto.GetBookedSlotsRequest{Date: futureDate})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	bookingID := uuid.New()

	req := dto.CreateBookingRequest{Date: futureDate, Time: "10:00 AM"}

	inserted := repository.Booking{
		ID:              pgtype.UUID{Bytes: bookingID, Valid: true},
		UserID:          pgtype.UUID{Bytes: userID, Valid: true},
		ServiceID:       "1",
		BookingDate:     helper.PgDate(futureDate),
		TimeSlot:        "10:00 AM",
		DurationMinutes: 30,
		CreatedAt:       pgtype.Timestamp{Time: time.Now(), Valid: true},
	}

	t.Run("error: unknown slot label", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		svc := New(d.pgx, d.querier, d.cache, nil, nil, testConfig(), d.logger)

		_, err := svc.CreateBooking(ctx, dto.CreateBookingRequest{Date: futureDate, Time: "03:30 AM"}, userID.String(), "", "")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.EqualError(t, err, "Invalid time slot")
	})

	t.Run("error: past date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		svc := New(d.pgx, d.querier, d.cache, nil, nil, testConfig(), d.logger)

		_, err := svc.CreateBooking(ctx, dto.CreateBookingRequest{Date: pastDate, Time: "10:00 AM"}, userID.String(), "", "")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: slot already booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		svc := New(d.pgx, d.querier, d.cache, nil, nil, testConfig(), d.logger)

		d.pgx.ExpectBegin()
		d.querier.EXPECT().
			CountSlotBookings(gomock.Any(), gomock.Any(), repository.CountSlotBookingsParams{
				ServiceID:   "1",
				BookingDate: helper.PgDate(futureDate),
				TimeSlot:    "10:00 AM",
			}).
			Return(int64(1), nil)
		d.pgx.ExpectRollback()

		_, err := svc.CreateBooking(ctx, req, userID.String(), "", "")

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, "Slot already booked")
	})

	t.Run("error: unique index rejects a concurrent insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		svc := New(d.pgx, d.querier, d.cache, nil, nil, testConfig(), d.logger)

		d.pgx.ExpectBegin()
		d.querier.EXPECT().CountSlotBookings(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		d.querier.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.Booking{}, &pgconn.PgError{Code: "23505"})
		d.pgx.ExpectRollback()

		_, err := svc.CreateBooking(ctx, req, userID.String(), "", "")

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
		assert.EqualError(t, err, "Slot already booked")
	})

	t.Run("error: transaction begin failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		svc := New(d.pgx, d.querier, d.cache, nil, nil, testConfig(), d.logger)

		d.pgx.ExpectBegin().WillReturnError(errors.New("error"))

		_, err := svc.CreateBooking(ctx, req, userID.String(), "", "")

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: booking created, cache invalidated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		svc := New(d.pgx, d.querier, d.cache, nil, nil, testConfig(), d.logger)

		d.pgx.ExpectBegin()
		d.querier.EXPECT().CountSlotBookings(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		d.querier.EXPECT().
			InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.InsertBookingParams) (repository.Booking, error) {
				assert.Equal(t, int32(30), arg.DurationMinutes)
				assert.Equal(t, "1", arg.ServiceID)
				assert.Equal(t, "10:00 AM", arg.TimeSlot)

				return inserted, nil
			})
		d.pgx.ExpectCommit()
		d.pgx.ExpectRollback()
		d.cache.EXPECT().Delete(gomock.Any(), helper.SlotsCacheKey("1", futureDate)).Return(nil)

		res, err := svc.CreateBooking(ctx, req, userID.String(), "ana@example.com", "Ana")

		require.NoError(t, err)
		assert.Equal(t, bookingID.String(), res.ID)
		assert.Equal(t, futureDate, res.Date)
		assert.Equal(t, "10:00 AM", res.Time)
		assert.Equal(t, 30, res.DurationMinutes)
		assert.Equal(t, "1", res.ServiceID)
		assert.Equal(t, "Ana", res.Username)
	})

	t.Run("success: confirmation email is sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		mailer := mailMock.NewMockService(ctrl)
		svc := New(d.pgx, d.querier, d.cache, mailer, nil, testConfig(), d.logger)

		sent := make(chan mail.BookingConfirmationData, 1)

		d.pgx.ExpectBegin()
		d.querier.EXPECT().CountSlotBookings(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
		d.querier.EXPECT().InsertBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(inserted, nil)
		d.pgx.ExpectCommit()
		d.pgx.ExpectRollback()
		d.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		mailer.EXPECT().
			SendBookingConfirmationEmail("ana@example.com", gomock.Any()).
			DoAndReturn(func(_ string, data mail.BookingConfirmationData) error {
				sent <- data

				return nil
			})

		_, err := svc.CreateBooking(ctx, req, userID.String(), "ana@example.com", "Ana")
		require.NoError(t, err)

		select {
		case data := <-sent:
			assert.Equal(t, "Ana", data.CustomerName)
			assert.Equal(t, "10:00 AM", data.TimeSlot)
		case <-time.After(time.Second):
			t.Fatal("confirmation email was not sent")
		}
	})
}

func TestBookingService_GetUserBookings(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("success: maps bookings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		svc := New(d.pgx, d.querier, d.cache, nil, nil, testConfig(), d.logger)

		d.querier.EXPECT().
			GetUserBookings(gomock.Any(), gomock.Any(), pgtype.UUID{Bytes: userID, Valid: true}).
			Return([]repository.Booking{{
				ID:              pgtype.UUID{Bytes: uuid.New(), Valid: true},
				UserID:          pgtype.UUID{Bytes: userID, Valid: true},
				ServiceID:       "1",
				BookingDate:     helper.PgDate(futureDate),
				TimeSlot:        "09:00 AM",
				DurationMinutes: 30,
			}}, nil)

		res, err := svc.GetUserBookings(ctx, userID.String())

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "09:00 AM", res[0].Time)
		assert.Equal(t, userID.String(), res[0].UserID)
	})

	t.Run("error: repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		d := newDeps(t, ctrl)
		svc := New(d.pgx, d.querier, d.cache, nil, nil, testConfig(), d.logger)

		d.querier.EXPECT().GetUserBookings(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("error"))

		_, err := svc.GetUserBookings(ctx, userID.String())

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
