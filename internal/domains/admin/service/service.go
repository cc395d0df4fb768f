package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/bookease/internal/domains/bookings/dto"
	"github.com/savioruz/bookease/internal/domains/bookings/repository"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/helper"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/savioruz/bookease/pkg/postgres"
	"github.com/savioruz/bookease/pkg/redis"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service.go -package=mock github.com/savioruz/bookease/internal/domains/admin/service AdminService

type AdminService interface {
	ListBookings(ctx context.Context) ([]dto.BookingResponse, error)
	DeleteBooking(ctx context.Context, id string) error
}

type adminService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	cache  redis.IRedisCache
	logger logger.Interface
}

func New(db postgres.PgxIface, r repository.Querier, c redis.IRedisCache, l logger.Interface) AdminService {
	return &adminService{
		db:     db,
		repo:   r,
		cache:  c,
		logger: l,
	}
}

const identifier = "service - admin - %s"

func (s *adminService) ListBookings(ctx context.Context) (res []dto.BookingResponse, err error) {
	rows, err := s.repo.ListBookingsWithUsers(ctx, s.db)
	if err != nil {
		s.logger.Error(identifier, "list bookings - failed to query: "+err.Error())

		return nil, failure.InternalError(err)
	}

	res = make([]dto.BookingResponse, len(rows))
	for i, row := range rows {
		res[i] = dto.BookingResponse{}.FromRow(row)
	}

	return res, nil
}

func (s *adminService) DeleteBooking(ctx context.Context, id string) error {
	bookingID := helper.PgUUID(id)
	if !bookingID.Valid {
		s.logger.Error(identifier, "delete booking - invalid id: "+id)

		return failure.BadRequestFromString("Invalid booking id")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "delete booking - failed to begin transaction: "+err.Error())

		return failure.InternalError(err)
	}

	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "delete booking - failed to rollback transaction: "+err.Error())
		}
	}(tx, ctx)

	booking, err := s.repo.GetBookingByID(ctx, tx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "delete booking - not found: "+id)

			return failure.NotFound("Booking not found")
		}

		s.logger.Error(identifier, "delete booking - failed to get booking: "+err.Error())

		return failure.InternalError(err)
	}

	affected, err := s.repo.DeleteBooking(ctx, tx, bookingID)
	if err != nil {
		s.logger.Error(identifier, "delete booking - failed to delete: "+err.Error())

		return failure.InternalError(err)
	}

	if affected == 0 {
		return failure.NotFound("Booking not found")
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "delete booking - failed to commit transaction: "+err.Error())

		return failure.InternalError(err)
	}

	date := booking.BookingDate.Time.Format(constant.DateFormat)
	if err := s.cache.Delete(context.WithoutCancel(ctx), helper.SlotsCacheKey(booking.ServiceID, date)); err != nil {
		s.logger.Error(identifier, "delete booking - failed to invalidate slots cache: "+err.Error())
	}

	return nil
}
