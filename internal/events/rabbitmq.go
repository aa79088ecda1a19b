package events

import (
	"context"
	"encoding/json"
	"fmt"

	"comandas-be/internal/logger"
	"comandas-be/internal/metrics"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitMQPublisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
}

// NewRabbitMQPublisher dials url and declares a durable topic exchange for order events.
func NewRabbitMQPublisher(url, exchange string) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	p, err := newPublisher(ch, exchange)
	if err != nil {
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchange string) (*RabbitMQPublisher, error) {
	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return &RabbitMQPublisher{ch: ch, exchange: exchange}, nil
}

// Publish sends event with routing key "order.<type>".
func (p *RabbitMQPublisher) Publish(ctx context.Context, event OrderEvent) error {
	log := logger.FromCtx(ctx).With(
		zap.String("order_id", event.OrderID),
		zap.String("event_type", string(event.Type)),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		"order."+string(event.Type),
		false,
		false,
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			Timestamp:     event.Occurred,
			CorrelationId: logger.RequestIDFrom(ctx),
			Body:          body,
		},
	)
	metrics.RecordEvent(string(event.Type), err == nil)
	if err != nil {
		log.Error("publish order event failed", zap.Error(err))
		return fmt.Errorf("publish order event: %w", err)
	}

	log.Debug("order event published")
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
