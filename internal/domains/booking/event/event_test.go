package event_test

import (
	"context"
	"errors"
	"testing"

	"skyline/config"
	"skyline/infras/kafka"
	kafkaMocks "skyline/infras/kafka/mocks"
	"skyline/infras/otel/mocks"
	"skyline/internal/domains/booking/event"
	"skyline/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func booking() model.Booking {
	return model.Booking{
		ID:            "booking-1",
		UserID:        "user-1",
		RoomID:        "room-1",
		TotalPrice:    400,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentPending,
	}
}

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic.Booking = "skyline.booking"

	publisher := event.NewPublisher(cfg, client, mocks.NewOtel())

	client.EXPECT().SendMessages(gomock.Any(), "skyline.booking", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			assert.Len(t, messages, 1)
			assert.Equal(t, "booking-1", messages[0].Key)

			evt, ok := messages[0].Value.(event.BookingEvent)
			assert.True(t, ok)
			assert.Equal(t, event.TypeCreated, evt.Type)
			assert.Equal(t, 400.0, evt.TotalPrice)

			return nil
		})

	assert.NoError(t, publisher.Publish(context.Background(), event.New(event.TypeCreated, booking())))

	client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	err := publisher.Publish(context.Background(), event.New(event.TypeCancelled, booking()))
	assert.ErrorContains(t, err, "failed to publish booking.cancelled")
}

func TestPublisher_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	publisher := event.NewPublisher(&config.Config{}, client, mocks.NewOtel())

	assert.NoError(t, publisher.Publish(context.Background(), event.New(event.TypeUpdated, booking())))
}
