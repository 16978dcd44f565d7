package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpChannel is the subset of *amqp.Channel used by the publisher.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher is a [Sink] that publishes events as persistent JSON
// messages to a durable queue through the default exchange.
type AMQPPublisher struct {
	conn  *amqp.Connection
	ch    amqpChannel
	queue string
}

// NewAMQPPublisher dials cfg.URL and declares cfg.Queue.
func NewAMQPPublisher(cfg config.Broker) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error opening broker channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("error declaring queue %q: %w", cfg.Queue, err)
	}

	return &AMQPPublisher{conn: conn, ch: ch, queue: cfg.Queue}, nil
}

func (p *AMQPPublisher) Name() string {
	return "amqp"
}

// Handle publishes event. The message type is the event type, so consumers
// can filter without decoding the body.
func (p *AMQPPublisher) Handle(ctx context.Context, event models.TweetEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error encoding event: %w", err)
	}

	return p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Type:         string(event.Type),
			MessageId:    event.Tweet.ID,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}

func (p *AMQPPublisher) Close() error {
	if p == nil {
		return nil
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
