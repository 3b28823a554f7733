package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"papi/internal/datastore"
	"papi/internal/errors"
	"papi/internal/model"
	"papi/internal/store"
)

// emptyDataStore returns a DataStore whose collections are explicitly empty,
// so tests do not start from the embedded seed fixtures.
func emptyDataStore(t *testing.T) *datastore.DataStore {
	t.Helper()
	ctx := context.Background()
	ds := datastore.New(store.NewMemory())
	datastore.WriteCollection[model.User](ctx, ds, datastore.KeyUsers, nil)
	datastore.WriteCollection[model.Product](ctx, ds, datastore.KeyProducts, nil)
	datastore.WriteCollection[model.Order](ctx, ds, datastore.KeyOrders, nil)
	datastore.WriteCollection[model.Category](ctx, ds, datastore.KeyCategories, nil)
	return ds
}

func TestUserRepository_SeedFallback(t *testing.T) {
	ctx := context.Background()
	// Untouched store: the first read writes the embedded seed through.
	repo := NewUserRepository(datastore.New(store.NewMemory()))

	users := repo.All(ctx)
	require.NotEmpty(t, users)

	admin, err := repo.FindByEmail(ctx, "admin@papi.shop")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, admin.Role)
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(emptyDataStore(t))

	created := repo.Create(ctx, model.User{
		ID:     "user-1",
		Role:   model.RoleBuyer,
		Email:  "b@example.com",
		Name:   "Buyer",
		Status: model.StatusActive,
	})
	assert.Equal(t, "user-1", created.ID)

	t.Run("find by id", func(t *testing.T) {
		found, err := repo.FindByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "b@example.com", found.Email)
	})

	t.Run("find by email", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "b@example.com")
		require.NoError(t, err)
		assert.Equal(t, "user-1", found.ID)
	})

	t.Run("missing id is ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByID(ctx, "nope")
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("update mutates and persists", func(t *testing.T) {
		updated, err := repo.Update(ctx, "user-1", func(u *model.User) {
			u.Name = "Renamed"
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)

		found, err := repo.FindByID(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "Renamed", found.Name)
	})

	t.Run("update of missing id writes nothing", func(t *testing.T) {
		_, err := repo.Update(ctx, "nope", func(u *model.User) {
			u.Name = "x"
		})
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		repo.Delete(ctx, "user-1")
		_, err := repo.FindByID(ctx, "user-1")
		assert.ErrorIs(t, err, errors.ErrNotFound)

		repo.Delete(ctx, "user-1")
		assert.Empty(t, repo.All(ctx))
	})
}
