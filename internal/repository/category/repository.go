package category

import (
	"context"

	"modernshop/internal/domain"
)

// Repository persists and fetches catalog categories.
type Repository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	// Upsert inserts c or updates the category with the same slug.
	Upsert(ctx context.Context, c domain.Category) (*domain.Category, error)
	DeleteAll(ctx context.Context) error
}
