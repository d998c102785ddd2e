package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"modernshop/internal/domain"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Events publishes each new order as a persistent JSON message on a durable queue.
type Events struct {
	mu    sync.Mutex // amqp channels are not safe for concurrent publishing
	ch    amqpChannel
	queue string
	close func() error
}

// DialEvents connects to the broker and declares queue.
func DialEvents(url, queue string) (*Events, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue %s: %w", queue, err)
	}
	return &Events{
		ch:    ch,
		queue: queue,
		close: func() error {
			ch.Close()
			return conn.Close()
		},
	}, nil
}

func (e *Events) OrderCreated(ctx context.Context, order domain.Order) error {
	body, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encode order %d: %w", order.ID, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	err = e.ch.PublishWithContext(ctx, "", e.queue, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         "order.created",
		MessageId:    fmt.Sprintf("order-%d", order.ID),
		Timestamp:    order.OrderDate,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish order %d: %w", order.ID, err)
	}
	return nil
}

func (e *Events) Close() error {
	if e.close == nil {
		return nil
	}
	return e.close()
}
