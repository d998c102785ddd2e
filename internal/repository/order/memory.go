package order

import (
	"context"
	"sync"
	"time"

	"modernshop/internal/domain"
	"modernshop/internal/repository/sequence"
)

type memoryRepo struct {
	mu     sync.RWMutex
	seq    sequence.Sequence
	orders map[int64]domain.Order
	now    func() time.Time
}

func NewMemory() Repository {
	return &memoryRepo{
		orders: make(map[int64]domain.Order),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *memoryRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	o.Items = cloneItems(o.Items)
	o.ID = r.seq.Next()
	o.OrderDate = r.now()

	r.mu.Lock()
	r.orders[o.ID] = o
	r.mu.Unlock()

	o.Items = cloneItems(o.Items)
	return &o, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	o, ok := r.orders[id]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	o.Items = cloneItems(o.Items)
	return &o, nil
}

// cloneItems detaches stored snapshots from caller-owned slices.
func cloneItems(items []domain.OrderItem) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	copy(out, items)
	return out
}
