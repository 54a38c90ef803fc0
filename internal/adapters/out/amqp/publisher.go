// Package amqp publishes order events to RabbitMQ. Two exchanges carry the
// same payload: a topic exchange keyed per order for low-latency push
// consumers, and a fanout exchange fed by the outbox relay for the
// change-capture stream.
package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/errs"
)

const (
	// TopicExchange routes low-latency pushes by per-order key.
	TopicExchange = "orders_topic"

	// ChangeCaptureExchange fans the committed change stream out to every
	// bound consumer.
	ChangeCaptureExchange = "orders_changes_fanout"

	// ChangeCaptureQueue is the durable queue resync consumers read.
	ChangeCaptureQueue = "orders_changes.q"
)

// RoutingKey returns the per-order topic key. Push consumers bind with the
// concrete order ID to follow exactly one order.
func RoutingKey(orderID string) string {
	return fmt.Sprintf("orders.status.%s", orderID)
}

// Publisher implements ports.EventPublisher over an AMQP channel.
type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Dial connects to RabbitMQ and opens a channel.
func Dial(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.NewUpstreamUnavailableErrorWithCause("rabbitmq", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, errs.NewUpstreamUnavailableErrorWithCause("rabbitmq", err)
	}

	return &Publisher{conn: conn, ch: ch}, nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// DeclareAll sets up the exchanges and the durable change-capture queue.
// Idempotent; safe to run on every start.
func (p *Publisher) DeclareAll() error {
	if err := p.ch.ExchangeDeclare(TopicExchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}
	if err := p.ch.ExchangeDeclare(ChangeCaptureExchange, "fanout", true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := p.ch.QueueDeclare(ChangeCaptureQueue, true, false, false, false, nil); err != nil {
		return err
	}
	return p.ch.QueueBind(ChangeCaptureQueue, "", ChangeCaptureExchange, false, nil)
}

// Publish sends the event to the per-order topic.
func (p *Publisher) Publish(ctx context.Context, event order.Event) error {
	return p.publish(ctx, TopicExchange, RoutingKey(event.OrderID), event)
}

// PublishChangeCapture sends the event to the change-capture fanout. Called
// by the outbox relay, never directly by command handlers.
func (p *Publisher) PublishChangeCapture(ctx context.Context, event order.Event) error {
	return p.publish(ctx, ChangeCaptureExchange, "", event)
}

func (p *Publisher) publish(ctx context.Context, exchange, key string, event order.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("event", err)
	}

	err = p.ch.PublishWithContext(ctx, exchange, key, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		ContentType:  "application/json",
		MessageId:    event.EventID,
		Body:         body,
	})
	if err != nil {
		return errs.NewUpstreamUnavailableErrorWithCause("rabbitmq", err)
	}

	return nil
}
