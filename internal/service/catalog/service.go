// Package catalog answers read-only storefront queries over categories and products.
package catalog

import (
	"context"

	"modernshop/internal/domain"
)

type categoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	ListByFlag(ctx context.Context, flag domain.ProductFlag) ([]domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

type Service struct {
	categories categoryRepo
	products   productRepo
}

func New(categories categoryRepo, products productRepo) *Service {
	return &Service{categories: categories, products: products}
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return nonNil(s.categories.List(ctx))
}

// GetCategory returns domain.ErrNotFound for an unknown slug.
func (s *Service) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	return s.categories.GetBySlug(ctx, slug)
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return nonNil(s.products.List(ctx))
}

// GetProduct returns domain.ErrNotFound for an unknown slug.
func (s *Service) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	return s.products.GetBySlug(ctx, slug)
}

// ListProductsByCategory does not check that the category exists; an unknown id
// yields an empty list.
func (s *Service) ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	return nonNil(s.products.ListByCategory(ctx, categoryID))
}

func (s *Service) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	return nonNil(s.products.ListByFlag(ctx, domain.FlagFeatured))
}

func (s *Service) ListNewArrivals(ctx context.Context) ([]domain.Product, error) {
	return nonNil(s.products.ListByFlag(ctx, domain.FlagNewArrival))
}

func (s *Service) ListOnSale(ctx context.Context) ([]domain.Product, error) {
	return nonNil(s.products.ListByFlag(ctx, domain.FlagSale))
}

func nonNil[T any](items []T, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
