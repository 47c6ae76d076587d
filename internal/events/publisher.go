// Package events publishes domain events to a message broker. Publishing is
// best effort; failures are logged and never interrupt the request flow.
package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/Saleh-enab/Cinema-API/pkg/utils"
)

const (
	CustomerRegistered    = "customer.registered"
	CustomerPasswordReset = "customer.password_reset"
	ReservationCreated    = "reservation.created"
	ReservationCancelled  = "reservation.cancelled"
)

// Publisher delivers a named event with a JSON payload.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any)
	Close()
}

// AMQPPublisher publishes events to a topic exchange over RabbitMQ.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	log      *zap.Logger
}

// NewPublisher connects to the broker and declares the topic exchange. When
// the broker URL is empty or the connection fails, a NoopPublisher is
// returned so callers never have to nil-check.
func NewPublisher(cfg utils.AMQPConfig, log *zap.Logger) Publisher {
	if cfg.URL == "" {
		log.Info("amqp url not configured, events disabled")
		return NoopPublisher{}
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		log.Warn("failed to connect to amqp broker, events disabled", zap.Error(err))
		return NoopPublisher{}
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Warn("failed to open amqp channel, events disabled", zap.Error(err))
		_ = conn.Close()
		return NoopPublisher{}
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		log.Warn("failed to declare amqp exchange, events disabled", zap.Error(err))
		_ = ch.Close()
		_ = conn.Close()
		return NoopPublisher{}
	}

	log.Info("connected to amqp broker", zap.String("exchange", cfg.Exchange))
	return &AMQPPublisher{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Exchange,
		log:      log.With(zap.String("component", "events")),
	}
}

// Publish marshals the payload and sends it as a persistent message. Errors
// are logged only.
func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.log.Error("failed to marshal event payload", zap.String("event", routingKey), zap.Error(err))
		return
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		p.log.Error("failed to publish event", zap.String("event", routingKey), zap.Error(err))
		return
	}

	p.log.Debug("event published", zap.String("event", routingKey))
}

func (p *AMQPPublisher) Close() {
	_ = p.channel.Close()
	_ = p.conn.Close()
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, routingKey string, payload any) {}

func (NoopPublisher) Close() {}
