package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"skyline/config"
	"skyline/infras/otel"
	"skyline/infras/s3"
	"skyline/internal/domains/food/model"
	"skyline/internal/domains/food/model/dto"
	"skyline/internal/domains/food/repository"
	"skyline/shared"
	"skyline/shared/cache"
	"skyline/shared/constant"
	gDto "skyline/shared/dto"
	"skyline/shared/failure"
	"skyline/shared/image"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFood    = "food:get"
	cacheGetAllFood = "food:gets"

	msgFoodNotFound = "Food item not found"
)

type Food interface {
	GetAll(ctx context.Context, query dto.FoodQuery) ([]dto.FoodResponse, error)
	GetByCategory(ctx context.Context, category model.Category) ([]dto.FoodResponse, error)
	Get(ctx context.Context, id string) (dto.FoodResponse, error)
	Create(ctx context.Context, req dto.CreateFoodRequest) (dto.FoodResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateFoodRequest) (dto.FoodResponse, error)
	UploadImage(ctx context.Context, id string, req gDto.ImageUpload) (dto.FoodResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Food
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Food, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Food {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, query dto.FoodQuery) (res []dto.FoodResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, query)
}

func (s *serviceImpl) GetByCategory(ctx context.Context, category model.Category) (res []dto.FoodResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.GetByCategory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("food.category", string(category))

	return s.list(ctx, dto.ByCategory(category))
}

func (s *serviceImpl) list(ctx context.Context, query dto.FoodQuery) (res []dto.FoodResponse, err error) {
	params := gDto.SortedBy(model.TableName+"."+model.FieldName, gDto.SortDirAsc)
	filter := query.ToFilter()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFood, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for food items")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get food items")

		return nil, fmt.Errorf("failed to get food items: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save food items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FoodResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetFood, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	food, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(food)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save food item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Food, error) {
	food, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get food item")

		return food, fmt.Errorf("failed to get food item: %w", err)
	}

	if food.ID == constant.Empty {
		return food, failure.NotFound(msgFoodNotFound) //nolint:wrapcheck
	}

	return food, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFoodRequest) (res dto.FoodResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	food := req.ToModel(user)

	if err = s.repo.Insert(ctx, food); err != nil {
		log.Error().Err(err).Msg("failed to create food item")

		return res, fmt.Errorf("failed to create food item: %w", err)
	}

	s.invalidate(ctx, constant.Empty)
	res.FromModel(food)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateFoodRequest) (res dto.FoodResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	updatedFields := shared.TransformFields(req, user)
	if shared.IsEmptyUpdate(updatedFields) {
		res.FromModel(current)

		return res, nil
	}

	return s.update(ctx, id, updatedFields)
}

func (s *serviceImpl) update(ctx context.Context, id string, fields map[string]any) (res dto.FoodResponse, err error) {
	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update food item")

		return res, fmt.Errorf("failed to update food item: %w", err)
	}

	s.invalidate(ctx, id)

	food, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(food)

	return res, nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id string, req gDto.ImageUpload) (res dto.FoodResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	url, err := image.Store(ctx, s.s3, model.TableName, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload food image")

		return res, err //nolint:wrapcheck
	}

	res, err = s.update(ctx, id, shared.TransformFields(dto.UpdateFoodRequest{Image: url}, user))
	if err != nil {
		image.Discard(context.WithoutCancel(ctx), s.s3, url)

		return res, err
	}

	image.Discard(context.WithoutCancel(ctx), s.s3, current.Image)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".food.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete food item")

		return fmt.Errorf("failed to delete food item: %w", err)
	}

	s.invalidate(ctx, id)
	image.Discard(context.WithoutCancel(ctx), s.s3, current.Image)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFood, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete food cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllFood)
}
