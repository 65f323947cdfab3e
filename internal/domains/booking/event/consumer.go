package event

import (
	"context"
	"skyline/config"
	"skyline/infras/kafka"
	"skyline/infras/otel"
	userModel "skyline/internal/domains/user/model"
	"skyline/shared"
	"skyline/shared/cache"
	"skyline/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

var notifications = map[Type]string{
	TypeCreated:   "Booking received, awaiting confirmation",
	TypeUpdated:   "Booking details changed",
	TypeCancelled: "Booking cancelled",
}

// Consumer is the worker side of the booking topic. It keeps the cached guest
// profile in step with its booking list and emits the guest notification.
type Consumer struct {
	cfg    *config.Config
	client kafka.Client
	cache  cache.RedisCache
	otel   otel.Otel
}

func NewConsumer(cfg *config.Config, client kafka.Client, cache cache.RedisCache, otel otel.Otel) *Consumer {
	return &Consumer{
		cfg:    cfg,
		client: client,
		cache:  cache,
		otel:   otel,
	}
}

// Run blocks until ctx is cancelled, then closes the client and flushes traces.
func (c *Consumer) Run(ctx context.Context) {
	log.Info().Str("topic", c.cfg.Kafka.Topic.Booking).Msg("Booking consumer started")

	defer func() {
		if err := c.client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka client")
		}

		if err := c.otel.Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Error().Err(err).Msg("Failed to flush traces")
		}
	}()

	c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, c.cfg.Kafka.Topic.Booking, c.Handle)
}

func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.Handle")
	defer scope.End()

	key, evt, err := kafka.DecodeKafkaMessage[BookingEvent](message)
	if err != nil {
		scope.TraceError(err)

		return
	}

	scope.SetAttribute("event.type", string(evt.Type))
	scope.SetAttribute("booking.id", key)

	if evt.UserID != constant.Empty && evt.UserID != constant.ContextSystem {
		if err = c.cache.Delete(ctx, shared.BuildCacheKey(userModel.CacheKeyGet, evt.UserID)); err != nil {
			log.Error().Err(err).Str("userId", evt.UserID).Msg("failed to delete user cache")
		}
	}

	shared.InvalidateCaches(ctx, c.cache, userModel.CacheKeyGetAll)

	notification, ok := notifications[evt.Type]
	if !ok {
		log.Warn().Str("type", string(evt.Type)).Msg("unknown booking event")

		return
	}

	log.Info().
		Str("bookingId", evt.BookingID).
		Str("userId", evt.UserID).
		Str("status", string(evt.Status)).
		Str("paymentStatus", string(evt.PaymentStatus)).
		Msg(notification)
}
