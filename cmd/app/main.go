package main

import (
	"skyline/config"
	"skyline/di"
	"skyline/helper"
	"skyline/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Skyline Retreat Hotel API
// @version 1.0.0
// @description Rooms, facilities, dining and bookings for the Skyline Retreat hotel.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	http, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}

	http.Serve()
}
