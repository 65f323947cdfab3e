package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"skyline/config"
	"skyline/infras/otel"
	"skyline/infras/s3"
	"skyline/internal/domains/room/model"
	"skyline/internal/domains/room/model/dto"
	"skyline/internal/domains/room/repository"
	"skyline/shared"
	"skyline/shared/cache"
	"skyline/shared/constant"
	gDto "skyline/shared/dto"
	"skyline/shared/failure"
	"skyline/shared/image"
	gRepo "skyline/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom      = "room:get"
	cacheGetAllRoom   = "room:gets"
	cacheFeaturedRoom = "room:featured"

	msgRoomNotFound = "Room not found"
	msgRoomExists   = "room already exists"
)

type Room interface {
	GetAll(ctx context.Context, query dto.RoomQuery) ([]dto.RoomResponse, error)
	GetFeatured(ctx context.Context) ([]dto.RoomResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	UploadImage(ctx context.Context, id string, req gDto.ImageUpload) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, query dto.RoomQuery) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.SortedBy(model.TableName+"."+model.FieldCreatedAt, gDto.SortDirDesc)
	filter := query.ToFilter()

	return s.list(ctx, shared.BuildCacheKeyWithQuery(cacheGetAllRoom, params, filter), params, filter)
}

func (s *serviceImpl) GetFeatured(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetFeatured")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.SortedBy(model.TableName+"."+model.FieldRating, gDto.SortDirDesc)
	params.Limit = dto.FeaturedLimit

	return s.list(ctx, cacheFeaturedRoom, params, dto.FeaturedFilter())
}

func (s *serviceImpl) list(ctx context.Context, cacheKey string, params gDto.QueryParams, filter gDto.FilterGroup) (res []dto.RoomResponse, err error) {
	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound(msgRoomNotFound) //nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	room := req.ToModel(user)

	if err = s.repo.Insert(ctx, room); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString(msgRoomExists) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidate(ctx, constant.Empty)
	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
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

func (s *serviceImpl) update(ctx context.Context, id string, fields map[string]any) (res dto.RoomResponse, err error) {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.BadRequestFromString(msgRoomExists) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidate(ctx, id)

	room, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id string, req gDto.ImageUpload) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	url, err := image.Store(ctx, s.s3, model.TableName, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload room image")

		return res, err //nolint:wrapcheck
	}

	fields := shared.TransformFields(struct {
		Image string `db:"image"`
	}{Image: url}, user)

	res, err = s.update(ctx, id, fields)
	if err != nil {
		image.Discard(context.WithoutCancel(ctx), s.s3, url)

		return res, err
	}

	image.Discard(context.WithoutCancel(ctx), s.s3, current.Image)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.invalidate(ctx, id)
	image.Discard(context.WithoutCancel(ctx), s.s3, current.Image)

	return nil
}

// invalidate drops the cached lists, and the cached record when id is set.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	c := context.WithoutCancel(ctx)

	if id != constant.Empty {
		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}
	}

	shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	shared.InvalidateCaches(c, s.cache, cacheFeaturedRoom)
}
