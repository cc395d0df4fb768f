package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/bookease/internal/domains/user/dto"
	"github.com/savioruz/bookease/internal/domains/user/repository"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/helper"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/savioruz/bookease/pkg/postgres"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service.go -package=mock github.com/savioruz/bookease/internal/domains/user/service UserService

type UserService interface {
	Profile(ctx context.Context, userID string) (dto.UserProfileResponse, error)
}

type userService struct {
	db     postgres.PgxIface
	repo   repository.Querier
	logger logger.Interface
}

func New(db postgres.PgxIface, r repository.Querier, l logger.Interface) UserService {
	return &userService{
		db:     db,
		repo:   r,
		logger: l,
	}
}

const identifier = "service - user - %s"

func (s *userService) Profile(ctx context.Context, userID string) (res dto.UserProfileResponse, err error) {
	id := helper.PgUUID(userID)
	if !id.Valid {
		s.logger.Error(identifier, "profile - invalid user id: "+userID)

		return res, failure.Unauthorized("invalid token")
	}

	user, err := s.repo.GetUserByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Error(identifier, "profile - user not found: "+userID)

			return res, failure.NotFound("User not found")
		}

		s.logger.Error(identifier, "profile - failed to get user: "+err.Error())

		return res, failure.InternalError(err)
	}

	res.User = dto.UserResponse{}.FromModel(user)

	return res, nil
}
