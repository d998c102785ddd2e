package cart

import (
	"context"

	"modernshop/internal/domain"
)

// Repository owns cart_items rows. Implementations guarantee at most one row per
// (sessionID, productID) and never store a quantity below 1.
type Repository interface {
	ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	GetByID(ctx context.Context, id int64) (*domain.CartItem, error)
	// AddOrMerge inserts a row or, when the session already holds productID,
	// increases its quantity by quantity. The read-modify-write is atomic.
	AddOrMerge(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.CartItem, error)
	// SetQuantity overwrites the quantity of an existing row. quantity must be >= 1.
	SetQuantity(ctx context.Context, id int64, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, id int64) (bool, error)
	ClearSession(ctx context.Context, sessionID string) (int64, error)
}
