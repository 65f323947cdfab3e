package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"skyline/config"
	"skyline/infras/jwt"
	"skyline/infras/otel"
	"skyline/internal/domains/auth/model/dto"
	userModel "skyline/internal/domains/user/model"
	userRepo "skyline/internal/domains/user/repository"
	"skyline/shared"
	"skyline/shared/cache"
	"skyline/shared/constant"
	gDto "skyline/shared/dto"
	"skyline/shared/failure"
	"skyline/shared/password"
	gRepo "skyline/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	msgEmailTaken          = "Email already registered"
	msgInvalidCredentials  = "Invalid email or password"
	msgInvalidRefreshToken = "Invalid refresh token"
	msgPasswordTooLong     = "password must be at most 72 bytes"
)

type Auth interface {
	Signup(ctx context.Context, req dto.SignupRequest) (dto.AuthResponse, error)
	Signin(ctx context.Context, req dto.SigninRequest) (dto.AuthResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (*jwt.TokenPair, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		jwtService: jwt,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.And(gDto.Filter{
		Field:    userModel.FieldEmail,
		Operator: gDto.FilterOperatorEq,
		Value:    email,
		Table:    userModel.TableName,
	})
}

func (s *serviceImpl) Signup(ctx context.Context, req dto.SignupRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Signup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.userRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString(msgEmailTaken) //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooLong) {
			return res, failure.BadRequestFromString(msgPasswordTooLong) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashedPassword, userModel.RoleUser)

	if err = s.userRepo.Insert(ctx, user); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString(msgEmailTaken) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, userModel.CacheKeyGetAll)

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Email, string(user.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.From(user, tokenPair)

	return res, nil
}

func (s *serviceImpl) Signin(ctx context.Context, req dto.SigninRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Signin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("signin attempt with unknown email")

		return res, failure.Unauthorized(msgInvalidCredentials) //nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("signin attempt with wrong password")

		return res, failure.Unauthorized(msgInvalidCredentials) //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, user.ID, user.Email, string(user.Role))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.From(user, tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res *jwt.TokenPair, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return nil, failure.Unauthorized(msgInvalidRefreshToken) //nolint:wrapcheck
	}

	return res, nil
}
