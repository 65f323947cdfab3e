package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"skyline/config"
	"skyline/infras/otel"
	"skyline/internal/domains/user/model"
	"skyline/internal/domains/user/model/dto"
	"skyline/internal/domains/user/repository"
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
	MsgUserNotFound = "User not found"
	MsgEmailTaken   = "Email already registered"

	msgPasswordTooLong = "password must be at most 72 bytes"
)

type User interface {
	GetAll(ctx context.Context) ([]dto.UserResponse, error)
	GetProfile(ctx context.Context, id string) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, id string, req dto.UpdateProfileRequest) (dto.UserResponse, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, model.CacheKeyGetAll, &res)
	if err == nil {
		log.Debug().Str("cacheKey", model.CacheKeyGetAll).Msg("cache hit for users")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.SortedBy(model.TableName+"."+constant.FieldCreatedAt, gDto.SortDirDesc), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, model.CacheKeyGetAll, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetProfile(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.GetProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save user to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound(MsgUserNotFound) //nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, id string, req dto.UpdateProfileRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if req.Email != constant.Empty && req.Email != user.Email {
		taken, err := s.repo.Exist(ctx, gDto.And(
			gDto.Filter{Field: model.FieldEmail, Value: req.Email, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
		))
		if err != nil {
			log.Error().Err(err).Msg("failed to check email")

			return res, fmt.Errorf("failed to check email: %w", err)
		}

		if taken {
			return res, failure.BadRequestFromString(MsgEmailTaken) //nolint:wrapcheck
		}
	}

	if req.Password != constant.Empty {
		if req.Password, err = password.Hash(req.Password); err != nil {
			if errors.Is(err, password.ErrPasswordTooLong) {
				return res, failure.BadRequestFromString(msgPasswordTooLong) //nolint:wrapcheck
			}

			log.Error().Err(err).Msg("failed to hash password")

			return res, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	updatedFields := shared.TransformFields(req, id)
	if shared.IsEmptyUpdate(updatedFields) {
		res.FromModel(user)

		return res, nil
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString(MsgEmailTaken) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update user")

		return res, fmt.Errorf("failed to update user: %w", err)
	}

	c := context.WithoutCancel(ctx)

	if err := s.cache.Delete(c, shared.BuildCacheKey(model.CacheKeyGet, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete user from cache")
	}

	shared.InvalidateCaches(c, s.cache, model.CacheKeyGetAll)

	if user, err = s.find(ctx, id); err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}
