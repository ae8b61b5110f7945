// AngelaMos | 2026
// publisher.go

package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

const (
	OrderPlaced        = "order.placed"
	OrderStatusChanged = "order.status_changed"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, data any) error
	Close() error
}

// Message is the envelope written to the exchange.
type Message struct {
	Pattern    string    `json:"pattern"`
	Data       any       `json:"data"`
	OccurredAt time.Time `json:"occurredAt"`
}

type channel interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher writes JSON envelopes to a durable topic exchange.
type AMQPPublisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex
	ch       channel
	exchange string
}

func NewAMQPPublisher(amqpURL, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close() //nolint:errcheck // cleanup on channel failure
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()   //nolint:errcheck // cleanup on declare failure
		_ = conn.Close() //nolint:errcheck // cleanup on declare failure
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	body, err := json.Marshal(Message{
		Pattern:    routingKey,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.Publish(
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}

	slog.DebugContext(ctx, "event published",
		"exchange", p.exchange,
		"routing_key", routingKey,
	)
	return nil
}

// Ping reports whether the broker connection is still open.
func (p *AMQPPublisher) Ping(context.Context) error {
	if p.conn == nil || p.conn.IsClosed() {
		return errors.New("amqp connection closed")
	}
	return nil
}

func (p *AMQPPublisher) Close() error {
	var firstErr error
	if p.ch != nil {
		if err := p.ch.Close(); err != nil {
			firstErr = err
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// LogPublisher records events in the structured log instead of a broker.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, routingKey string, data any) error {
	p.logger.InfoContext(ctx, "order event",
		"routing_key", routingKey,
		"data", data,
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
