package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/streadway/amqp"
)

var ErrPublisherClosed = errors.New("publisher is closed")

// Channel is the part of an AMQP channel used for publishing.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends JSON messages to a durable direct exchange.
type Publisher struct {
	conn       *amqp.Connection
	channel    Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

// NewPublisher dials amqpURL and declares the exchange.
func NewPublisher(amqpURL, exchangeName, routingKey string, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.DialConfig(amqpURL, amqp.Config{
		Heartbeat: 10 * time.Second,
		Dial:      amqp.DefaultDial(30 * time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	publisher, err := NewPublisherWithChannel(channel, exchangeName, routingKey, logger)
	if err != nil {
		conn.Close()
		return nil, err
	}
	publisher.conn = conn

	return publisher, nil
}

// NewPublisherWithChannel wraps an already open channel.
func NewPublisherWithChannel(channel Channel, exchangeName, routingKey string, logger *slog.Logger) (*Publisher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	err := channel.ExchangeDeclare(
		exchangeName, // name
		"direct",     // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		channel.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &Publisher{
		channel:    channel,
		exchange:   exchangeName,
		routingKey: routingKey,
		logger:     logger,
	}, nil
}

// Publish sends message as a persistent JSON delivery with the configured routing key.
func (p *Publisher) Publish(ctx context.Context, message interface{}) error {
	return p.PublishWithRoutingKey(ctx, p.routingKey, message)
}

func (p *Publisher) PublishWithRoutingKey(ctx context.Context, routingKey string, message interface{}) error {
	if p.channel == nil {
		return ErrPublisherClosed
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before publishing: %w", err)
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message to JSON: %w", err)
	}

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
	}

	err = p.channel.Publish(
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		publishing,
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	var err error

	if p.channel != nil {
		if channelErr := p.channel.Close(); channelErr != nil {
			p.logger.Warn("failed to close channel", slog.String("error", channelErr.Error()))
			err = channelErr
		}
		p.channel = nil
	}

	if p.conn != nil {
		if connErr := p.conn.Close(); connErr != nil {
			p.logger.Warn("failed to close connection", slog.String("error", connErr.Error()))
			if err == nil {
				err = connErr
			}
		}
		p.conn = nil
	}

	return err
}

// IsConnected reports whether the underlying connection is still open.
func (p *Publisher) IsConnected() bool {
	if p.channel == nil {
		return false
	}
	if p.conn == nil {
		return true
	}
	return !p.conn.IsClosed()
}

func (p *Publisher) GetExchange() string {
	return p.exchange
}

func (p *Publisher) GetRoutingKey() string {
	return p.routingKey
}
