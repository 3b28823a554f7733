package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"papi/internal/datastore"
	"papi/internal/model"
	"papi/internal/store"
)

func TestCartRepository(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	repo := NewCartRepository(kv)

	t.Run("missing cart is empty", func(t *testing.T) {
		items := repo.Load(ctx, "buyer-1")
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("save and load round trips per buyer", func(t *testing.T) {
		ok := repo.Save(ctx, "buyer-1", []model.CartItem{
			{ProductID: "prod-1", Quantity: 2, UnitPrice: decimal.NewFromInt(40)},
		})
		assert.True(t, ok)

		items := repo.Load(ctx, "buyer-1")
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)

		// Another buyer's cart is untouched.
		assert.Empty(t, repo.Load(ctx, "buyer-2"))
	})

	t.Run("malformed cart degrades to empty", func(t *testing.T) {
		require.NoError(t, kv.Set(ctx, datastore.KeyCartPrefix+"buyer-3", []byte("{broken")))
		assert.Empty(t, repo.Load(ctx, "buyer-3"))
	})

	t.Run("clear empties the cart", func(t *testing.T) {
		repo.Clear(ctx, "buyer-1")
		assert.Empty(t, repo.Load(ctx, "buyer-1"))
	})
}

func TestGuestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewGuestOrderRepository(store.NewMemory())

	assert.Empty(t, repo.All(ctx))

	first := repo.Append(ctx, model.GuestOrder{ID: 1700000000000, Name: "Guest One"})
	assert.Equal(t, int64(1700000000000), first.ID)

	repo.Append(ctx, model.GuestOrder{ID: 1700000000001, Name: "Guest Two"})

	orders := repo.All(ctx)
	require.Len(t, orders, 2)
	assert.Equal(t, "Guest One", orders[0].Name)
	assert.Equal(t, "Guest Two", orders[1].Name)
}
