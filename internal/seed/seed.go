package seed

import (
	"context"
	"fmt"

	"modernshop/internal/domain"
)

type categoryRepo interface {
	Upsert(ctx context.Context, c domain.Category) (*domain.Category, error)
	DeleteAll(ctx context.Context) error
}

type productRepo interface {
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
	DeleteAll(ctx context.Context) error
}

// Options controls how the demo catalog is written.
type Options struct {
	// Reset removes every product and then every category before inserting.
	Reset bool
}

// Result counts what Apply wrote.
type Result struct {
	Categories int
	Products   int
}

// Apply writes the demo catalog. Without Reset it is idempotent: rows are
// upserted by slug.
func Apply(ctx context.Context, cats categoryRepo, prods productRepo, opts Options) (Result, error) {
	var res Result
	if opts.Reset {
		if err := prods.DeleteAll(ctx); err != nil {
			return res, fmt.Errorf("clear products: %w", err)
		}
		if err := cats.DeleteAll(ctx); err != nil {
			return res, fmt.Errorf("clear categories: %w", err)
		}
	}

	ids := make(map[string]int64, len(categories))
	for _, c := range categories {
		saved, err := cats.Upsert(ctx, domain.Category{
			Name:        c.Name,
			Description: strPtr(c.Description),
			ImageURL:    strPtr(c.ImageURL),
			Slug:        c.Slug,
		})
		if err != nil {
			return res, fmt.Errorf("upsert category %s: %w", c.Slug, err)
		}
		ids[c.Slug] = saved.ID
		res.Categories++
	}

	for _, p := range products {
		product, err := p.toDomain(ids)
		if err != nil {
			return res, err
		}
		if _, err := prods.Upsert(ctx, product); err != nil {
			return res, fmt.Errorf("upsert product %s: %w", p.Slug, err)
		}
		res.Products++
	}
	return res, nil
}

func (p productSeed) toDomain(categoryIDs map[string]int64) (domain.Product, error) {
	categoryID, ok := categoryIDs[p.Category]
	if !ok {
		return domain.Product{}, fmt.Errorf("product %s: unknown category %q", p.Slug, p.Category)
	}
	price, err := domain.ParseMoney(p.Price)
	if err != nil {
		return domain.Product{}, err
	}
	rating, err := domain.ParseRating(p.Rating)
	if err != nil {
		return domain.Product{}, err
	}
	out := domain.Product{
		Name:          p.Name,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
		CategoryID:    categoryID,
		Featured:      p.Featured,
		IsNewArrival:  p.NewArrival,
		IsSale:        p.Sale,
		Price:         price,
		StockQuantity: p.Stock,
		Rating:        rating,
		ReviewCount:   p.Reviews,
		Slug:          p.Slug,
	}
	if p.OriginalPrice != "" {
		op, err := domain.ParseMoney(p.OriginalPrice)
		if err != nil {
			return domain.Product{}, err
		}
		out.OriginalPrice = &op
	}
	return out, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
