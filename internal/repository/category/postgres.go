package category

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"modernshop/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const selectColumns = `id, name, description, image_url, slug`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+selectColumns+` FROM categories ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Category, 0)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.Slug); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.getOne(ctx, `SELECT `+selectColumns+` FROM categories WHERE id = $1`, id)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.getOne(ctx, `SELECT `+selectColumns+` FROM categories WHERE slug = $1`, slug)
}

func (r *postgresRepo) getOne(ctx context.Context, q string, arg any) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, arg).Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, c domain.Category) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name, description, image_url, slug)
VALUES ($1, $2, $3, $4)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    image_url = EXCLUDED.image_url
RETURNING id
`
	out := c
	if err := r.pool.QueryRow(ctx, q, c.Name, c.Description, c.ImageURL, c.Slug).Scan(&out.ID); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM categories`)
	return err
}
