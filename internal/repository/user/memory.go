package user

import (
	"context"
	"sync"

	"modernshop/internal/domain"
	"modernshop/internal/repository/sequence"
)

type memoryRepo struct {
	mu         sync.RWMutex
	seq        sequence.Sequence
	byID       map[int64]domain.User
	byUsername map[string]int64
}

func NewMemory() Repository {
	return &memoryRepo{
		byID:       make(map[int64]domain.User),
		byUsername: make(map[string]int64),
	}
}

func (r *memoryRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byUsername[u.Username]; taken {
		return nil, domain.ErrAlreadyExists
	}
	u.ID = r.seq.Next()
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u.ID
	return &u, nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *memoryRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}
