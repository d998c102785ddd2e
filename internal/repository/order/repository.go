package order

import (
	"context"

	"modernshop/internal/domain"
)

// Repository persists orders. Orders are write-once: there is no update or delete.
type Repository interface {
	// Create assigns ID and OrderDate and stores a copy of o.Items.
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
}
