package cart

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"modernshop/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const returningColumns = `id, product_id, quantity, session_id, date_added`

const numericOutOfRange = "22003"

func (r *postgresRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+returningColumns+`
FROM cart_items
WHERE session_id = $1
ORDER BY date_added ASC, id ASC
`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.CartItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.CartItem, error) {
	item, err := scanItem(r.pool.QueryRow(ctx, `SELECT `+returningColumns+` FROM cart_items WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// AddOrMerge relies on the unique (session_id, product_id) index so concurrent
// adds for the same pair serialize on the row and sum their quantities. The
// update is skipped, and no row returned, when the sum would pass the limit.
func (r *postgresRepo) AddOrMerge(ctx context.Context, sessionID string, productID int64, quantity int) (*domain.CartItem, error) {
	if quantity > domain.MaxCartQuantity {
		return nil, domain.QuantityLimitError()
	}
	const q = `
INSERT INTO cart_items (product_id, quantity, session_id)
VALUES ($1, $2, $3)
ON CONFLICT (session_id, product_id) DO UPDATE
SET quantity = cart_items.quantity + EXCLUDED.quantity
WHERE cart_items.quantity::bigint + EXCLUDED.quantity <= $4
RETURNING ` + returningColumns
	item, err := scanItem(r.pool.QueryRow(ctx, q, productID, quantity, sessionID, int64(domain.MaxCartQuantity)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isOutOfRange(err) {
			return nil, domain.QuantityLimitError()
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) SetQuantity(ctx context.Context, id int64, quantity int) (*domain.CartItem, error) {
	if quantity > domain.MaxCartQuantity {
		return nil, domain.QuantityLimitError()
	}
	item, err := scanItem(r.pool.QueryRow(ctx, `
UPDATE cart_items
SET quantity = $1
WHERE id = $2
RETURNING `+returningColumns, quantity, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		if isOutOfRange(err) {
			return nil, domain.QuantityLimitError()
		}
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *postgresRepo) ClearSession(ctx context.Context, sessionID string) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanItem(row pgx.Row) (*domain.CartItem, error) {
	var item domain.CartItem
	if err := row.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.SessionID, &item.DateAdded); err != nil {
		return nil, err
	}
	return &item, nil
}

func isOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == numericOutOfRange
}
