//go:build wireinject
// +build wireinject

package di

import (
	"skyline/config"
	"skyline/infras/jwt"
	"skyline/infras/kafka"
	"skyline/infras/otel"
	"skyline/infras/postgres"
	"skyline/infras/redis"
	"skyline/infras/s3"
	"skyline/permissions"
	"skyline/shared/cache"
	gRepository "skyline/shared/repository"
	"skyline/transport/http"
	"skyline/transport/http/middleware"
	"skyline/transport/http/router"

	"github.com/google/wire"

	authService "skyline/internal/domains/auth/service"
	bookingEvent "skyline/internal/domains/booking/event"
	bookingRepository "skyline/internal/domains/booking/repository"
	bookingService "skyline/internal/domains/booking/service"
	facilityRepository "skyline/internal/domains/facility/repository"
	facilityService "skyline/internal/domains/facility/service"
	foodRepository "skyline/internal/domains/food/repository"
	foodService "skyline/internal/domains/food/service"
	roomRepository "skyline/internal/domains/room/repository"
	roomService "skyline/internal/domains/room/service"
	userRepository "skyline/internal/domains/user/repository"
	userService "skyline/internal/domains/user/service"
	authHandler "skyline/internal/handlers/auth"
	bookingHandler "skyline/internal/handlers/booking"
	facilityHandler "skyline/internal/handlers/facility"
	foodHandler "skyline/internal/handlers/food"
	roomHandler "skyline/internal/handlers/room"
	userHandler "skyline/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	gRepository.NewTransactor,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var facilityDomain = wire.NewSet(
	facilityRepository.New,
	facilityService.New,
)

var foodDomain = wire.NewSet(
	foodRepository.New,
	foodService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingEvent.NewPublisher,
	bookingService.New,
)

var domains = wire.NewSet(
	userDomain,
	roomDomain,
	facilityDomain,
	foodDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	facilityHandler.New,
	foodHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

func InitializeWorker() (*bookingEvent.Consumer, error) {
	wire.Build(
		config.Get,
		otel.New,
		redis.New,
		kafka.New,
		cache.NewRedisCache,
		bookingEvent.NewConsumer,
	)

	return &bookingEvent.Consumer{}, nil
}
