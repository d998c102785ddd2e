// Package repository selects and bundles the storage implementations.
package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"modernshop/internal/config"
	"modernshop/internal/db"
	"modernshop/internal/migrate"
	"modernshop/internal/repository/cart"
	"modernshop/internal/repository/category"
	"modernshop/internal/repository/order"
	"modernshop/internal/repository/product"
	"modernshop/internal/repository/user"
)

// Store groups one repository per entity, all backed by the same driver.
type Store struct {
	Driver     string
	Categories category.Repository
	Products   product.Repository
	Cart       cart.Repository
	Orders     order.Repository
	Users      user.Repository

	pool *pgxpool.Pool
}

// NewMemory returns a Store whose data lives only for the process lifetime.
func NewMemory() *Store {
	return &Store{
		Driver:     config.StoreMemory,
		Categories: category.NewMemory(),
		Products:   product.NewMemory(),
		Cart:       cart.NewMemory(),
		Orders:     order.NewMemory(),
		Users:      user.NewMemory(),
	}
}

// NewPostgres wires every repository to pool. The caller keeps ownership of pool
// unless it goes through Open.
func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) *Store {
	return &Store{
		Driver:     config.StorePostgres,
		Categories: category.NewPostgres(pool),
		Products:   product.NewPostgres(pool, logger),
		Cart:       cart.NewPostgres(pool),
		Orders:     order.NewPostgres(pool),
		Users:      user.NewPostgres(pool),
		pool:       pool,
	}
}

// Open builds the Store named by cfg.StoreDriver. The postgres driver connects
// and applies migrations before returning.
func Open(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	switch cfg.StoreDriver {
	case config.StoreMemory, "":
		logger.Info("using in-memory store")
		return NewMemory(), nil
	case config.StorePostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString, logger)
		if err != nil {
			return nil, fmt.Errorf("connect db: %w", err)
		}
		if err := migrate.Apply(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		return NewPostgres(pool, logger), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// Ping reports whether the backing store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.pool == nil {
		return nil
	}
	return s.pool.Ping(ctx)
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
