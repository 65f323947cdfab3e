package main

import (
	"os"
	"skyline/config"
	"skyline/helper"
	"skyline/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, drop or step-up")
	}

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
