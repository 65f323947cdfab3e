// Package event publishes booking lifecycle changes to Kafka for the notification worker.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"skyline/config"
	"skyline/infras/kafka"
	"skyline/infras/otel"
	"skyline/internal/domains/booking/model"
	"skyline/shared/constant"
	"skyline/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Type string

const (
	TypeCreated   Type = "booking.created"
	TypeUpdated   Type = "booking.updated"
	TypeCancelled Type = "booking.cancelled"
)

type BookingEvent struct {
	Type          Type                `json:"type"`
	BookingID     string              `json:"bookingId"`
	UserID        string              `json:"userId"`
	RoomID        string              `json:"roomId"`
	Status        model.Status        `json:"status"`
	PaymentStatus model.PaymentStatus `json:"paymentStatus"`
	TotalPrice    float64             `json:"totalPrice"`
	OccurredAt    time.Time           `json:"occurredAt"`
}

func New(eventType Type, booking model.Booking) BookingEvent {
	return BookingEvent{
		Type:          eventType,
		BookingID:     booking.ID,
		UserID:        booking.UserID,
		RoomID:        booking.RoomID,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		TotalPrice:    booking.TotalPrice,
		OccurredAt:    timezone.Now(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, evt BookingEvent) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

// NewPublisher returns a Kafka backed publisher, or one that drops events when Kafka is disabled.
func NewPublisher(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	if !cfg.Kafka.Enable {
		log.Warn().Msg("kafka disabled, booking events will not be published")

		return noopPublisher{}
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topic.Booking,
		otel:   otel,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, evt BookingEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("event.type", string(evt.Type))
	scope.SetAttribute("booking.id", evt.BookingID)

	if err = p.client.SendMessages(ctx, p.topic, kafka.Message{Key: evt.BookingID, Value: evt}); err != nil {
		return fmt.Errorf("failed to publish %s: %w", evt.Type, err)
	}

	return nil
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, BookingEvent) error {
	return nil
}
