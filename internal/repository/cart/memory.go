package cart

import (
	"context"
	"sort"
	"sync"
	"time"

	"modernshop/internal/domain"
	"modernshop/internal/repository/sequence"
)

type sessionProduct struct {
	sessionID string
	productID int64
}

type memoryRepo struct {
	mu    sync.Mutex
	seq   sequence.Sequence
	items map[int64]domain.CartItem
	index map[sessionProduct]int64
	now   func() time.Time
}

// NewMemory returns a map-backed Repository. One mutex covers both maps, which
// makes AddOrMerge atomic per (session, product).
func NewMemory() Repository {
	return &memoryRepo{
		items: make(map[int64]domain.CartItem),
		index: make(map[sessionProduct]int64),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *memoryRepo) ListBySession(_ context.Context, sessionID string) ([]domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]domain.CartItem, 0)
	for _, item := range r.items {
		if item.SessionID == sessionID {
			result = append(result, item)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func (r *memoryRepo) AddOrMerge(_ context.Context, sessionID string, productID int64, quantity int) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionProduct{sessionID: sessionID, productID: productID}
	if id, ok := r.index[key]; ok {
		item := r.items[id]
		if quantity > domain.MaxCartQuantity-item.Quantity {
			return nil, domain.QuantityLimitError()
		}
		item.Quantity += quantity
		r.items[id] = item
		return &item, nil
	}

	if quantity > domain.MaxCartQuantity {
		return nil, domain.QuantityLimitError()
	}
	item := domain.CartItem{
		ID:        r.seq.Next(),
		ProductID: productID,
		Quantity:  quantity,
		SessionID: sessionID,
		DateAdded: r.now(),
	}
	r.items[item.ID] = item
	r.index[key] = item.ID
	return &item, nil
}

func (r *memoryRepo) SetQuantity(_ context.Context, id int64, quantity int) (*domain.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if quantity > domain.MaxCartQuantity {
		return nil, domain.QuantityLimitError()
	}
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	item.Quantity = quantity
	r.items[id] = item
	return &item, nil
}

func (r *memoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return false, nil
	}
	r.remove(item)
	return true, nil
}

func (r *memoryRepo) ClearSession(_ context.Context, sessionID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, item := range r.items {
		if item.SessionID == sessionID {
			r.remove(item)
			n++
		}
	}
	return n, nil
}

// remove must be called with mu held.
func (r *memoryRepo) remove(item domain.CartItem) {
	delete(r.items, item.ID)
	delete(r.index, sessionProduct{sessionID: item.SessionID, productID: item.ProductID})
}
