package product

import (
	"context"

	"modernshop/internal/domain"
)

// Repository persists and fetches catalog products.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	ListByFlag(ctx context.Context, flag domain.ProductFlag) ([]domain.Product, error)
	// ListByIDs returns the products that exist among ids, keyed by ID.
	ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	// Upsert inserts p or updates the product with the same slug.
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
	DeleteAll(ctx context.Context) error
}
