package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"skyline/config"
	"skyline/infras/otel"
	"skyline/internal/domains/facility/model"
	"skyline/internal/domains/facility/model/dto"
	"skyline/internal/domains/facility/repository"
	"skyline/shared"
	"skyline/shared/cache"
	"skyline/shared/constant"
	gDto "skyline/shared/dto"
	"skyline/shared/failure"
	gRepo "skyline/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFacility    = "facility:get"
	cacheGetAllFacility = "facility:gets"

	msgFacilityNotFound = "Facility not found"
	msgFacilityExists   = "facility already exists"
)

type Facility interface {
	GetAll(ctx context.Context, query dto.FacilityQuery) ([]dto.FacilityResponse, error)
	Get(ctx context.Context, id string) (dto.FacilityResponse, error)
	Create(ctx context.Context, req dto.CreateFacilityRequest) (dto.FacilityResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateFacilityRequest) (dto.FacilityResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Facility
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Facility, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Facility {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, query dto.FacilityQuery) (res []dto.FacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.SortedBy(model.TableName+"."+model.FieldName, gDto.SortDirAsc)
	filter := query.ToFilter()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFacility, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for facilities")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get facilities")

		return nil, fmt.Errorf("failed to get facilities: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facilities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetFacility, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	facility, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(facility)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save facility to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Facility, error) {
	facility, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get facility")

		return facility, fmt.Errorf("failed to get facility: %w", err)
	}

	if facility.ID == constant.Empty {
		return facility, failure.NotFound(msgFacilityNotFound) //nolint:wrapcheck
	}

	return facility, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFacilityRequest) (res dto.FacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	facility := req.ToModel(user)

	if err = s.repo.Insert(ctx, facility); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString(msgFacilityExists) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create facility")

		return res, fmt.Errorf("failed to create facility: %w", err)
	}

	s.invalidate(ctx, constant.Empty)
	res.FromModel(facility)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateFacilityRequest) (res dto.FacilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	facility, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	updatedFields := shared.TransformFields(req, user)
	if shared.IsEmptyUpdate(updatedFields) {
		res.FromModel(facility)

		return res, nil
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString(msgFacilityExists) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update facility")

		return res, fmt.Errorf("failed to update facility: %w", err)
	}

	s.invalidate(ctx, id)

	if facility, err = s.find(ctx, id); err != nil {
		return res, err
	}

	res.FromModel(facility)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".facility.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check facility")

		return fmt.Errorf("failed to check facility: %w", err)
	}

	if !exist {
		return failure.NotFound(msgFacilityNotFound) //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete facility")

		return fmt.Errorf("failed to delete facility: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFacility, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete facility cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllFacility)
}
