package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

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

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	items := o.Items
	if items == nil {
		items = []domain.OrderItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}

	const q = `
INSERT INTO orders (customer_name, email, address, city, state, postal_code, country, phone, total_amount, items)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::numeric, $10::jsonb)
RETURNING id, order_date
`
	saved := o
	saved.Items = append([]domain.OrderItem(nil), items...)
	b := o.BillingDetails
	if err := r.pool.QueryRow(ctx, q,
		b.CustomerName, b.Email, b.Address, b.City, b.State, b.PostalCode, b.Country, b.Phone,
		o.TotalAmount.String(), payload,
	).Scan(&saved.ID, &saved.OrderDate); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `
SELECT id, customer_name, email, address, city, state, postal_code, country, phone,
       total_amount::text, order_date, items
FROM orders
WHERE id = $1
`
	var (
		o       domain.Order
		total   string
		payload []byte
	)
	b := &o.BillingDetails
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&o.ID, &b.CustomerName, &b.Email, &b.Address, &b.City, &b.State, &b.PostalCode, &b.Country, &b.Phone,
		&total, &o.OrderDate, &payload,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if o.TotalAmount, err = domain.ParseMoney(total); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order %d items: %w", o.ID, err)
	}
	if o.Items == nil {
		o.Items = []domain.OrderItem{}
	}
	return &o, nil
}
