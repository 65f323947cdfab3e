package event_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"skyline/config"
	kafkaMocks "skyline/infras/kafka/mocks"
	"skyline/infras/otel/mocks"
	"skyline/internal/domains/booking/event"
	cacheMocks "skyline/shared/cache/mocks"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConsumer_Handle(t *testing.T) {
	t.Run("guest caches are dropped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redis := cacheMocks.NewMockRedisCache(ctrl)

		consumer := event.NewConsumer(&config.Config{}, nil, redis, mocks.NewOtel())

		value, err := json.Marshal(event.New(event.TypeCancelled, booking()))
		assert.NoError(t, err)

		gomock.InOrder(
			redis.EXPECT().Delete(gomock.Any(), "user:get:user-1").Return(nil),
			redis.EXPECT().Clear(gomock.Any(), "user:gets*").Return(nil),
		)

		consumer.Handle(context.Background(), kafkaGo.Message{Key: []byte("booking-1"), Value: value})
	})

	t.Run("cache errors do not stop the handler", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redis := cacheMocks.NewMockRedisCache(ctrl)

		consumer := event.NewConsumer(&config.Config{}, nil, redis, mocks.NewOtel())

		value, _ := json.Marshal(event.New(event.TypeCreated, booking()))

		redis.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		redis.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		consumer.Handle(context.Background(), kafkaGo.Message{Value: value})
	})

	t.Run("undecodable message is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		redis := cacheMocks.NewMockRedisCache(ctrl)

		consumer := event.NewConsumer(&config.Config{}, nil, redis, mocks.NewOtel())

		consumer.Handle(context.Background(), kafkaGo.Message{Value: []byte("{not json")})
	})
}

func TestConsumer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "skyline-worker"
	cfg.Kafka.Topic.Booking = "skyline.booking"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	gomock.InOrder(
		client.EXPECT().Consume(ctx, "skyline-worker", "skyline.booking", gomock.Any()),
		client.EXPECT().Close().Return(errors.New("already closed")),
	)

	event.NewConsumer(cfg, client, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel()).Run(ctx)
}
