package product

import (
	"context"
	"sort"
	"sync"

	"modernshop/internal/domain"
	"modernshop/internal/repository/sequence"
)

type memoryRepo struct {
	mu    sync.RWMutex
	seq   sequence.Sequence
	byID  map[int64]domain.Product
	slugs map[string]int64
}

// NewMemory returns a map-backed Repository.
func NewMemory() Repository {
	return &memoryRepo{
		byID:  make(map[int64]domain.Product),
		slugs: make(map[string]int64),
	}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Product, error) {
	return r.filter(func(domain.Product) bool { return true }), nil
}

func (r *memoryRepo) ListByCategory(_ context.Context, categoryID int64) ([]domain.Product, error) {
	return r.filter(func(p domain.Product) bool { return p.CategoryID == categoryID }), nil
}

func (r *memoryRepo) ListByFlag(_ context.Context, flag domain.ProductFlag) ([]domain.Product, error) {
	return r.filter(func(p domain.Product) bool { return p.Has(flag) }), nil
}

func (r *memoryRepo) ListByIDs(_ context.Context, ids []int64) (map[int64]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]domain.Product, len(ids))
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *memoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.slugs[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := r.byID[id]
	return &p, nil
}

func (r *memoryRepo) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.slugs[p.Slug]; ok {
		p.ID = id
	} else {
		p.ID = r.seq.Next()
		r.slugs[p.Slug] = p.ID
	}
	r.byID[p.ID] = p
	return &p, nil
}

func (r *memoryRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return false, nil
	}
	delete(r.byID, id)
	delete(r.slugs, p.Slug)
	return true, nil
}

func (r *memoryRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[int64]domain.Product)
	r.slugs = make(map[string]int64)
	return nil
}

func (r *memoryRepo) filter(keep func(domain.Product) bool) []domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Product, 0)
	for _, p := range r.byID {
		if keep(p) {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
