package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/internal/domains/bookings/dto"
	"github.com/savioruz/bookease/internal/domains/bookings/repository"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/helper"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/savioruz/bookease/pkg/mail"
	"github.com/savioruz/bookease/pkg/metrics"
	"github.com/savioruz/bookease/pkg/postgres"
	"github.com/savioruz/bookease/pkg/redis"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service.go -package=mock github.com/savioruz/bookease/internal/domains/bookings/service BookingService

type BookingService interface {
	GetBookedSlots(ctx context.Context, req dto.GetBookedSlotsRequest) (dto.BookedSlotsResponse, error)
	CreateBooking(ctx context.Context, req dto.CreateBookingRequest, userID, email, name string) (dto.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string) ([]dto.BookingResponse, error)
}

type bookingService struct {
	db       postgres.PgxIface
	repo     repository.Querier
	cache    redis.IRedisCache
	mail     mail.Service
	metrics  *metrics.BookingMetrics
	slots    []string
	duration int32
	service  string
	cacheTTL int
	logger   logger.Interface
}

// New builds the booking service. mailer may be nil when confirmation email is disabled.
func New(db postgres.PgxIface, r repository.Querier, c redis.IRedisCache, mailer mail.Service, m *metrics.BookingMetrics, cfg *config.Config, l logger.Interface) BookingService {
	return &bookingService{
		db:       db,
		repo:     r,
		cache:    c,
		mail:     mailer,
		metrics:  m,
		slots:    helper.SplitList(cfg.Booking.Slots),
		duration: int32(cfg.Booking.DurationMinutes),
		service:  cfg.Booking.ServiceID,
		cacheTTL: cfg.Cache.Duration,
		logger:   l,
	}
}

const (
	identifier = "service - booking - %s"

	commitCreated  = "created"
	commitConflict = "conflict"
	commitError    = "error"

	msgSlotBooked = "Slot already booked"
)

func (s *bookingService) GetBookedSlots(ctx context.Context, req dto.GetBookedSlotsRequest) (res dto.BookedSlotsResponse, err error) {
	date := helper.PgDate(req.Date)
	if !date.Valid {
		s.logger.Error(identifier, "get booked slots - invalid date: "+req.Date)

		return res, failure.BadRequestFromString("Invalid date format")
	}

	cacheKey := helper.SlotsCacheKey(s.service, req.Date)

	var cached dto.BookedSlotsResponse
	if err = s.cache.Get(ctx, cacheKey, &cached); err == nil {
		s.metrics.ObserveSlotQuery(true)

		return cached, nil
	}

	s.metrics.ObserveSlotQuery(false)

	booked, err := s.repo.GetBookedTimeSlots(ctx, s.db, repository.GetBookedTimeSlotsParams{
		ServiceID:   s.service,
		BookingDate: date,
	})
	if err != nil {
		s.logger.Error(identifier, "get booked slots - failed to query: "+err.Error())

		return res, failure.InternalError(err)
	}

	if booked == nil {
		booked = []string{}
	}

	res = dto.BookedSlotsResponse{Booked: booked}

	if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cacheTTL); err != nil {
		s.logger.Error(identifier, "get booked slots - failed to save cache: "+err.Error())
	}

	return res, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, userID, email, name string) (res dto.BookingResponse, err error) {
	if !helper.IsKnownSlot(req.Time, s.slots) {
		s.logger.Error(identifier, "create booking - unknown time slot: "+req.Time)

		return res, failure.BadRequestFromString("Invalid time slot")
	}

	isValid, err := helper.IsBookingDateValid(req.Date)
	if err != nil {
		s.logger.Error(identifier, "create booking - invalid date: "+err.Error())

		return res, failure.BadRequestFromString("Invalid date format")
	}

	if !isValid {
		s.logger.Error(identifier, "create booking - date is in the past")

		return res, failure.BadRequestFromString("Booking date cannot be in the past")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "create booking - failed to begin transaction: "+err.Error())
		s.metrics.ObserveCommit(commitError)

		return res, failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "create booking - failed to rollback transaction: "+err.Error())
		}
	}(tx, ctx)

	date := helper.PgDate(req.Date)

	taken, err := s.repo.CountSlotBookings(ctx, tx, repository.CountSlotBookingsParams{
		ServiceID:   s.service,
		BookingDate: date,
		TimeSlot:    req.Time,
	})
	if err != nil {
		s.logger.Error(identifier, "create booking - failed to check slot: "+err.Error())
		s.metrics.ObserveCommit(commitError)

		return res, failure.InternalError(err)
	}

	if taken > 0 {
		s.logger.Warn(identifier, "create booking - slot already booked: "+req.Date+" "+req.Time)
		s.metrics.ObserveCommit(commitConflict)

		return res, failure.Conflict(msgSlotBooked)
	}

	booking, err := s.repo.InsertBooking(ctx, tx, repository.InsertBookingParams{
		UserID:          helper.PgUUID(userID),
		ServiceID:       s.service,
		BookingDate:     date,
		TimeSlot:        req.Time,
		DurationMinutes: s.duration,
	})
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			s.logger.Warn(identifier, "create booking - lost race for slot: "+req.Date+" "+req.Time)
			s.metrics.ObserveCommit(commitConflict)

			return res, failure.Conflict(msgSlotBooked)
		}

		s.logger.Error(identifier, "create booking - failed to insert: "+err.Error())
		s.metrics.ObserveCommit(commitError)

		return res, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		if postgres.IsUniqueViolation(err) {
			s.metrics.ObserveCommit(commitConflict)

			return res, failure.Conflict(msgSlotBooked)
		}

		s.logger.Error(identifier, "create booking - failed to commit transaction: "+err.Error())
		s.metrics.ObserveCommit(commitError)

		return res, failure.InternalError(err)
	}

	s.metrics.ObserveCommit(commitCreated)
	s.invalidate(ctx, req.Date)

	res = dto.BookingResponse{}.FromModel(booking)
	res.Username = name
	res.Email = email

	s.sendConfirmation(res)

	return res, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) (res []dto.BookingResponse, err error) {
	bookings, err := s.repo.GetUserBookings(ctx, s.db, helper.PgUUID(userID))
	if err != nil {
		s.logger.Error(identifier, "get user bookings - failed to query: "+err.Error())

		return nil, failure.InternalError(err)
	}

	res = make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		res[i] = dto.BookingResponse{}.FromModel(b)
	}

	return res, nil
}

func (s *bookingService) invalidate(ctx context.Context, date string) {
	if err := s.cache.Delete(context.WithoutCancel(ctx), helper.SlotsCacheKey(s.service, date)); err != nil {
		s.logger.Error(identifier, "failed to invalidate slots cache: "+err.Error())
	}
}

func (s *bookingService) sendConfirmation(b dto.BookingResponse) {
	if s.mail == nil || b.Email == "" {
		return
	}

	go func() {
		err := s.mail.SendBookingConfirmationEmail(b.Email, mail.BookingConfirmationData{
			CustomerName:    b.Username,
			BookingID:       b.ID,
			BookingDate:     b.Date,
			TimeSlot:        b.Time,
			DurationMinutes: b.DurationMinutes,
			ServiceID:       b.ServiceID,
		})
		if err != nil {
			s.logger.Error(identifier, "failed to send booking confirmation: "+err.Error())
		}
	}()
}
