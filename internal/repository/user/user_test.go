package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"modernshop/internal/domain"
	"modernshop/internal/repository/pgtest"
)

func exerciseRepository(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()

	saved, err := repo.Create(ctx, domain.User{Username: "admin", Password: "$2a$10$hash"})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	_, err = repo.Create(ctx, domain.User{Username: "admin", Password: "other"})
	assert.True(t, errors.Is(err, domain.ErrAlreadyExists))

	byName, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byName.ID)
	assert.Equal(t, "$2a$10$hash", byName.Password)

	byID, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "admin", byID.Username)

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestMemory_Repository(t *testing.T) {
	exerciseRepository(t, NewMemory())
}

func TestPostgres_Repository(t *testing.T) {
	exerciseRepository(t, NewPostgres(pgtest.Pool(t)))
}
