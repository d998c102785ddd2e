// Package notify tells the outside world about new orders: an email to the
// store manager and, optionally, an order-created event on a message queue.
package notify

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"modernshop/internal/config"
	"modernshop/internal/domain"
)

// Notifier delivers one order notification. Implementations must respect ctx
// cancellation where the underlying transport allows it.
type Notifier interface {
	OrderCreated(ctx context.Context, order domain.Order) error
}

// Multi fans an order out to every notifier concurrently and joins their
// errors. A slow or failing channel does not delay or stop the others.
type Multi []Notifier

func (m Multi) OrderCreated(ctx context.Context, order domain.Order) error {
	errs := make([]error, len(m))
	var wg sync.WaitGroup
	for i, n := range m {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = n.OrderCreated(ctx, order)
		}()
	}
	wg.Wait()
	return multierr.Combine(errs...)
}

// Log writes the notification to the logger instead of delivering it.
type Log struct {
	logger *zap.Logger
	to     string
}

func NewLog(logger *zap.Logger, to string) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{logger: logger.Named("notify"), to: to}
}

func (l *Log) OrderCreated(_ context.Context, order domain.Order) error {
	msg, err := ComposeOrderEmail(order, "", l.to)
	if err != nil {
		return err
	}
	l.logger.Info("order notification",
		zap.String("to", l.to),
		zap.String("subject", msg.Subject),
		zap.Int64("order_id", order.ID),
		zap.Int("items", len(order.Items)),
		zap.String("total", order.TotalAmount.String()),
	)
	return nil
}

// New builds the notifier chain for cfg. The returned close function releases
// transport connections and is never nil.
func New(cfg config.NotifyConfig, logger *zap.Logger) (Notifier, func() error, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	closer := func() error { return nil }

	var email Notifier
	switch cfg.Driver {
	case config.NotifyLog, "":
		email = NewLog(logger, cfg.ManagerEmail)
	case config.NotifySMTP:
		email = NewSMTP(cfg)
	case config.NotifySendGrid:
		if cfg.SendGridAPIKey == "" {
			return nil, closer, fmt.Errorf("notify: SENDGRID_API_KEY is required for the sendgrid driver")
		}
		email = NewSendGrid(cfg)
	default:
		return nil, closer, fmt.Errorf("notify: unknown driver %q", cfg.Driver)
	}

	if cfg.AMQPURL == "" {
		return email, closer, nil
	}
	events, err := DialEvents(cfg.AMQPURL, cfg.AMQPQueue)
	if err != nil {
		return nil, closer, err
	}
	logger.Info("order events enabled", zap.String("queue", cfg.AMQPQueue))
	return Multi{email, events}, events.Close, nil
}
