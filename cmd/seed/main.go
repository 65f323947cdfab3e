package main

import (
	"context"
	"skyline/config"
	"skyline/infras/otel"
	"skyline/infras/postgres"
	facilityRepo "skyline/internal/domains/facility/repository"
	foodRepo "skyline/internal/domains/food/repository"
	roomRepo "skyline/internal/domains/room/repository"
	userRepo "skyline/internal/domains/user/repository"
	"skyline/internal/seed"
	"skyline/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	db, err := postgres.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	tracer := otel.New(cfg)

	data, err := seed.Sample()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load sample data")
	}

	seeder := seed.New(
		cfg,
		userRepo.New(db, tracer),
		roomRepo.New(db, tracer),
		facilityRepo.New(db, tracer),
		foodRepo.New(db, tracer),
	)

	if err = seeder.Run(context.Background(), data); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}

	log.Info().Msg("Seeding completed")
}
