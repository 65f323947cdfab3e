package main

import (
	"context"
	"os"
	"os/signal"
	"skyline/config"
	"skyline/di"
	"skyline/shared/logger"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if !cfg.Kafka.Enable {
		log.Warn().Msg("Kafka is disabled, nothing to consume")

		return
	}

	consumer, err := di.InitializeWorker()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize worker")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.Run(ctx)

	log.Info().Msg("Worker stopped")
}
