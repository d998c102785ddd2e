package category

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
	byID  map[int64]domain.Category
	slugs map[string]int64
}

// NewMemory returns a map-backed Repository.
func NewMemory() Repository {
	return &memoryRepo{
		byID:  make(map[int64]domain.Category),
		slugs: make(map[string]int64),
	}
}

func (r *memoryRepo) List(_ context.Context) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Category, 0, len(r.byID))
	for _, c := range r.byID {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *memoryRepo) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.slugs[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	c := r.byID[id]
	return &c, nil
}

func (r *memoryRepo) Upsert(_ context.Context, c domain.Category) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.slugs[c.Slug]; ok {
		c.ID = id
	} else {
		c.ID = r.seq.Next()
		r.slugs[c.Slug] = c.ID
	}
	r.byID[c.ID] = c
	return &c, nil
}

func (r *memoryRepo) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[int64]domain.Category)
	r.slugs = make(map[string]int64)
	return nil
}
