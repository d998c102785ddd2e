package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"modernshop/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger.Named("product_repo")}
}

const selectColumns = `
SELECT id, name, description, image_url, category_id, featured, is_new_arrival, is_sale,
       original_price::text, price::text, stock_quantity, rating::text, review_count, slug
FROM products
`

// flagColumns whitelists the boolean columns ListByFlag may filter on.
var flagColumns = map[domain.ProductFlag]string{
	domain.FlagFeatured:   "featured",
	domain.FlagNewArrival: "is_new_arrival",
	domain.FlagSale:       "is_sale",
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.query(ctx, selectColumns+` ORDER BY id ASC`)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	return r.query(ctx, selectColumns+` WHERE category_id = $1 ORDER BY id ASC`, categoryID)
}

func (r *postgresRepo) ListByFlag(ctx context.Context, flag domain.ProductFlag) ([]domain.Product, error) {
	col, ok := flagColumns[flag]
	if !ok {
		return nil, fmt.Errorf("product repo: unknown flag %q", flag)
	}
	return r.query(ctx, selectColumns+` WHERE `+col+` ORDER BY id ASC`)
}

func (r *postgresRepo) ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	out := make(map[int64]domain.Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	products, err := r.query(ctx, selectColumns+` WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		out[p.ID] = p
	}
	return out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	return r.getOne(ctx, selectColumns+` WHERE id = $1`, id)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return r.getOne(ctx, selectColumns+` WHERE slug = $1`, slug)
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, image_url, category_id, featured, is_new_arrival, is_sale,
                      original_price, price, stock_quantity, rating, review_count, slug)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9::numeric, $10, $11::numeric, $12, $13)
ON CONFLICT (slug) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    image_url = EXCLUDED.image_url,
    category_id = EXCLUDED.category_id,
    featured = EXCLUDED.featured,
    is_new_arrival = EXCLUDED.is_new_arrival,
    is_sale = EXCLUDED.is_sale,
    original_price = EXCLUDED.original_price,
    price = EXCLUDED.price,
    stock_quantity = EXCLUDED.stock_quantity,
    rating = EXCLUDED.rating,
    review_count = EXCLUDED.review_count
RETURNING id
`
	var originalPrice *string
	if p.OriginalPrice != nil {
		s := p.OriginalPrice.String()
		originalPrice = &s
	}
	out := p
	err := r.pool.QueryRow(ctx, q,
		p.Name,
		p.Description,
		p.ImageURL,
		p.CategoryID,
		p.Featured,
		p.IsNewArrival,
		p.IsSale,
		originalPrice,
		p.Price.String(),
		p.StockQuantity,
		p.Rating.String(),
		p.ReviewCount,
		p.Slug,
	).Scan(&out.ID)
	if err != nil {
		r.logger.Error("upsert failed", zap.String("slug", p.Slug), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("upserted", zap.String("slug", out.Slug), zap.Int64("id", out.ID))
	return &out, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *postgresRepo) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM products`)
	return err
}

func (r *postgresRepo) query(ctx context.Context, q string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("rows failed", zap.Error(err))
		return nil, err
	}
	r.logger.Debug("listed", zap.Int("count", len(result)))
	return result, nil
}

func (r *postgresRepo) getOne(ctx context.Context, q string, arg any) (*domain.Product, error) {
	p, err := scanProduct(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p             domain.Product
		originalPrice *string
		price         string
		rating        string
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.ImageURL,
		&p.CategoryID,
		&p.Featured,
		&p.IsNewArrival,
		&p.IsSale,
		&originalPrice,
		&price,
		&p.StockQuantity,
		&rating,
		&p.ReviewCount,
		&p.Slug,
	); err != nil {
		return nil, err
	}
	var err error
	if p.Price, err = domain.ParseMoney(price); err != nil {
		return nil, err
	}
	if p.Rating, err = domain.ParseRating(rating); err != nil {
		return nil, err
	}
	if originalPrice != nil {
		op, err := domain.ParseMoney(*originalPrice)
		if err != nil {
			return nil, err
		}
		p.OriginalPrice = &op
	}
	return &p, nil
}
