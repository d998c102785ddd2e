package user

import (
	"context"

	"modernshop/internal/domain"
)

type Repository interface {
	// Create stores u and returns domain.ErrAlreadyExists when the username is taken.
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
