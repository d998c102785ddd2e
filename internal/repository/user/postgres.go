package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"modernshop/internal/domain"
)

const uniqueViolation = "23505"

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	saved := u
	err := r.pool.QueryRow(ctx, `
INSERT INTO users (username, password)
VALUES ($1, $2)
RETURNING id
`, u.Username, u.Password).Scan(&saved.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &saved, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, username, password FROM users WHERE id = $1`, id)
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, username, password FROM users WHERE username = $1`, username)
}

func (r *postgresRepo) getOne(ctx context.Context, q string, arg any) (*domain.User, error) {
	var u domain.User
	if err := r.pool.QueryRow(ctx, q, arg).Scan(&u.ID, &u.Username, &u.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
