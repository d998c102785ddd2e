package order

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"modernshop/internal/domain"
)

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}

type notifier interface {
	OrderCreated(ctx context.Context, order domain.Order) error
}

// CreateInput is the checkout request body.
type CreateInput struct {
	domain.BillingDetails
	TotalAmount *domain.Money      `json:"totalAmount"`
	Items       []domain.OrderItem `json:"items" validate:"required,min=1,dive"`
}

type Service struct {
	repo          orderRepo
	notifier      notifier
	notifyTimeout time.Duration
	validate      *validator.Validate
	logger        *zap.Logger

	inflight sync.WaitGroup
	failures atomic.Int64
}

// New builds the order service. notifier may be nil, in which case orders are
// only persisted.
func New(repo orderRepo, n notifier, notifyTimeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifyTimeout <= 0 {
		notifyTimeout = 15 * time.Second
	}
	return &Service{
		repo:          repo,
		notifier:      n,
		notifyTimeout: notifyTimeout,
		validate:      newValidator(),
		logger:        logger.Named("order"),
	}
}

// Create validates in, stores the order and schedules the manager notification.
// The returned order does not depend on whether the notification succeeds.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}

	saved, err := s.repo.Create(ctx, domain.Order{
		BillingDetails: in.BillingDetails,
		TotalAmount:    *in.TotalAmount,
		Items:          in.Items,
	})
	if err != nil {
		return nil, err
	}

	if computed := saved.ItemsTotal(); !computed.Equal(saved.TotalAmount.Decimal) {
		s.logger.Warn("order total differs from item sum",
			zap.Int64("order_id", saved.ID),
			zap.String("submitted", saved.TotalAmount.String()),
			zap.String("computed", computed.String()),
		)
	}

	s.notify(*saved)
	return saved, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) notify(o domain.Order) {
	if s.notifier == nil {
		return
	}
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()

		if err := s.notifier.OrderCreated(ctx, o); err != nil {
			s.failures.Add(1)
			s.logger.Error("order notification failed", zap.Int64("order_id", o.ID), zap.Error(err))
			return
		}
		s.logger.Info("order notification sent", zap.Int64("order_id", o.ID))
	}()
}

// NotificationFailures counts notifications that returned an error since start.
func (s *Service) NotificationFailures() int64 {
	return s.failures.Load()
}

// Wait blocks until in-flight notifications finish or ctx is done.
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
