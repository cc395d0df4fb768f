package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/savioruz/bookease/config"
	"github.com/savioruz/bookease/internal/domains/user/dto"
	"github.com/savioruz/bookease/internal/domains/user/repository"
	"github.com/savioruz/bookease/pkg/constant"
	"github.com/savioruz/bookease/pkg/failure"
	"github.com/savioruz/bookease/pkg/helper"
	"github.com/savioruz/bookease/pkg/jwt"
	"github.com/savioruz/bookease/pkg/logger"
	"github.com/savioruz/bookease/pkg/postgres"
	"golang.org/x/crypto/bcrypt"
)

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../mock/service.go -package=mock github.com/savioruz/bookease/internal/domains/auth/service AuthService

type AuthService interface {
	Signup(ctx context.Context, req dto.UserSignupRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.UserLoginRequest) (dto.AuthResponse, error)
}

type authService struct {
	db          postgres.PgxIface
	repo        repository.Querier
	logger      logger.Interface
	adminEmails []string
}

func New(db postgres.PgxIface, r repository.Querier, cfg *config.Config, l logger.Interface) AuthService {
	return &authService{
		db:          db,
		repo:        r,
		logger:      l,
		adminEmails: helper.SplitList(strings.ToLower(cfg.Auth.AdminEmails)),
	}
}

const identifier = "service - auth - %s"

var errInvalidCredentials = failure.Unauthorized("Invalid credentials")

func (s *authService) Signup(ctx context.Context, req dto.UserSignupRequest) (res dto.AuthResponse, err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error(identifier, "signup - failed to begin transaction: "+err.Error())

		return res, failure.InternalError(err)
	}
	defer func(tx pgx.Tx, ctx context.Context) {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			s.logger.Error(identifier, "signup - failed to rollback transaction: "+err.Error())
		}
	}(tx, ctx)

	exist, err := s.repo.GetUserByEmail(ctx, tx, req.Email)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		s.logger.Error(identifier, "signup - failed to get user by email: "+err.Error())

		return res, failure.InternalError(err)
	}

	if exist.Email != "" {
		s.logger.Error(identifier, "signup - user with email already exists")

		return res, failure.BadRequestFromString("User already exists")
	}

	password, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error(identifier, "signup - failed to hash password: "+err.Error())

		return res, failure.InternalError(err)
	}

	newUser, err := s.repo.CreateUser(ctx, tx, repository.CreateUserParams{
		Email:    req.Email,
		Password: string(password),
		FullName: req.Name,
		Level:    s.levelFor(req.Email),
	})
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString("User already exists")
		}

		s.logger.Error(identifier, "signup - failed to create user: "+err.Error())

		return res, failure.InternalError(err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error(identifier, "signup - failed to commit transaction: "+err.Error())

		return res, failure.InternalError(err)
	}

	return s.issue(newUser)
}

func (s *authService) Login(ctx context.Context, req dto.UserLoginRequest) (res dto.AuthResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn(identifier, "login - unknown email")

			return res, errInvalidCredentials
		}

		s.logger.Error(identifier, "login - failed to get user by email: "+err.Error())

		return res, failure.InternalError(err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Warn(identifier, "login - password mismatch")

		return res, errInvalidCredentials
	}

	return s.issue(user)
}

func (s *authService) issue(user repository.User) (res dto.AuthResponse, err error) {
	token, err := jwt.GenerateToken(user.ID.String(), user.Email, user.FullName, user.Level)
	if err != nil {
		s.logger.Error(identifier, "failed to generate access token: "+err.Error())

		return res, failure.InternalError(err)
	}

	return dto.AuthResponse{
		Token: token,
		User:  dto.UserResponse{}.FromModel(user),
	}, nil
}

func (s *authService) levelFor(email string) string {
	for _, admin := range s.adminEmails {
		if admin == strings.ToLower(email) {
			return constant.UserRoleAdmin
		}
	}

	return constant.UserRoleUser
}
