package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"skyline/infras/otel"
	"skyline/internal/domains/booking/event"
	"skyline/internal/domains/booking/model"
	"skyline/internal/domains/booking/model/dto"
	"skyline/internal/domains/booking/repository"
	roomModel "skyline/internal/domains/room/model"
	roomRepo "skyline/internal/domains/room/repository"
	userModel "skyline/internal/domains/user/model"
	userRepo "skyline/internal/domains/user/repository"
	"skyline/shared"
	"skyline/shared/cache"
	"skyline/shared/constant"
	gDto "skyline/shared/dto"
	"skyline/shared/failure"
	gRepo "skyline/shared/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	msgBookingNotFound  = "Booking not found"
	msgRoomNotFound     = "Room not found"
	msgRoomUnavailable  = "Room is not available"
	msgRoomCapacity     = "Room capacity is %d guests"
	msgInvalidDateRange = "Check-out date must be after check-in date"
	msgNotOwnerAccess   = "Not authorized to access this booking"
	msgNotOwnerCancel   = "Not authorized to cancel this booking"
	msgGuestRequired    = "Bookings must be made by a signed-in guest"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context) ([]dto.BookingResponse, error)
	GetMine(ctx context.Context) ([]dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	roomRepo   roomRepo.Room
	userRepo   userRepo.User
	transactor gRepo.Transactor
	publisher  event.Publisher
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	userRepo userRepo.User,
	transactor gRepo.Transactor,
	publisher event.Publisher,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		userRepo:   userRepo,
		transactor: transactor,
		publisher:  publisher,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// API key callers act as the system user, which has no account to attach the booking to.
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if uuid.Validate(userID) != nil {
		return res, failure.Forbidden(msgGuestRequired) //nolint:wrapcheck
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(msgRoomNotFound) //nolint:wrapcheck
	}

	if !room.Availability {
		return res, failure.BadRequestFromString(msgRoomUnavailable) //nolint:wrapcheck
	}

	if req.NumberOfGuests > room.Capacity {
		return res, failure.BadRequestFromString(fmt.Sprintf(msgRoomCapacity, room.Capacity)) //nolint:wrapcheck
	}

	nights := model.Nights(checkIn, checkOut)
	if nights <= 0 {
		return res, failure.BadRequestFromString(msgInvalidDateRange) //nolint:wrapcheck
	}

	booking := req.ToModel(userID, checkIn, checkOut, float64(nights)*room.Price)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return err //nolint:wrapcheck
		}

		return s.userRepo.AppendBookingTx(ctx, tx, userID, booking.ID) //nolint:wrapcheck
	})
	if err != nil {
		if gRepo.IsCheckViolation(err) {
			return res, failure.BadRequestFromString(msgInvalidDateRange) //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidateUser(ctx, userID)
	s.publish(ctx, event.TypeCreated, booking)

	detail, err := s.find(ctx, booking.ID)
	if err != nil {
		return res, err
	}

	res.FromDetail(detail)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.list(ctx, gDto.FilterGroup{})
}

func (s *serviceImpl) GetMine(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.list(ctx, shared.FilterByID(userID, model.FieldUserID, model.TableName))
}

func (s *serviceImpl) list(ctx context.Context, filter gDto.FilterGroup) ([]dto.BookingResponse, error) {
	details, err := s.repo.GetAllDetail(ctx, gDto.SortedBy(model.TableName+"."+model.FieldCreatedAt, gDto.SortDirDesc), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	return dto.FromDetails(details), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if !isOwner(ctx, detail.Booking) {
		return res, failure.Forbidden(msgNotOwnerAccess) //nolint:wrapcheck
	}

	res.FromDetail(detail)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.BookingDetail, error) {
	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return detail, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return detail, failure.NotFound(msgBookingNotFound) //nolint:wrapcheck
	}

	return detail, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.EmptyUpdateError
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.find(ctx, id); err != nil {
		return res, err
	}

	return s.update(ctx, id, shared.TransformFields(req, actor), event.TypeUpdated)
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	detail, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if !isOwner(ctx, detail.Booking) {
		return res, failure.Forbidden(msgNotOwnerCancel) //nolint:wrapcheck
	}

	cancelled := model.StatusCancelled

	return s.update(ctx, id, shared.TransformFields(dto.UpdateBookingRequest{Status: &cancelled}, actor), event.TypeCancelled)
}

func (s *serviceImpl) update(ctx context.Context, id string, fields map[string]any, eventType event.Type) (res dto.BookingResponse, err error) {
	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	detail, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	s.publish(ctx, eventType, detail.Booking)
	res.FromDetail(detail)

	return res, nil
}

func isOwner(ctx context.Context, booking model.Booking) bool {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return userID != constant.Empty && booking.UserID == userID
}

// publish is best effort: a broker outage must not fail a booking that is already committed.
func (s *serviceImpl) publish(ctx context.Context, eventType event.Type, booking model.Booking) {
	evt := event.New(eventType, booking)

	go func() {
		if err := s.publisher.Publish(context.WithoutCancel(ctx), evt); err != nil {
			log.Error().Err(err).Str("bookingId", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) invalidateUser(ctx context.Context, userID string) {
	c := context.WithoutCancel(ctx)

	if err := s.cache.Delete(c, shared.BuildCacheKey(userModel.CacheKeyGet, userID)); err != nil {
		log.Error().Err(err).Msg("failed to delete user cache")
	}

	shared.InvalidateCaches(c, s.cache, userModel.CacheKeyGetAll)
}
