package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"papi/internal/model"
)

func seedProducts(t *testing.T, repo ProductRepository) {
	t.Helper()
	ctx := context.Background()
	repo.Create(ctx, model.Product{
		ID: "prod-1", SellerID: "seller-1", SellerName: "Green Farm",
		Name: "Organic Tomatoes", Category: "vegetables", Unit: "kg",
		Price: decimal.NewFromInt(40), Stock: 10,
		Description: "Vine-ripened and pesticide free.",
	})
	repo.Create(ctx, model.Product{
		ID: "prod-2", SellerID: "seller-1", SellerName: "Green Farm",
		Name: "Spinach", Category: "vegetables", Unit: "bunch",
		Price: decimal.NewFromInt(25), Stock: 5,
	})
	repo.Create(ctx, model.Product{
		ID: "prod-3", SellerID: "seller-2", SellerName: "Orchard Co",
		Name: "Mangoes", Category: "fruits", Unit: "dozen",
		Price: decimal.NewFromInt(450), Stock: 3,
	})
}

func TestProductRepository_Filters(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(emptyDataStore(t))
	seedProducts(t, repo)

	t.Run("by seller", func(t *testing.T) {
		mine := repo.FindBySeller(ctx, "seller-1")
		require.Len(t, mine, 2)
		assert.Equal(t, "prod-1", mine[0].ID)
	})

	t.Run("by category", func(t *testing.T) {
		fruits := repo.FindByCategory(ctx, "fruits")
		require.Len(t, fruits, 1)
		assert.Equal(t, "Mangoes", fruits[0].Name)
	})

	t.Run("unknown seller is empty not nil", func(t *testing.T) {
		none := repo.FindBySeller(ctx, "nobody")
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})
}

func TestProductRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(emptyDataStore(t))
	seedProducts(t, repo)

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"case insensitive name match", "TOMATO", []string{"prod-1"}},
		{"description match", "pesticide", []string{"prod-1"}},
		{"category match", "fruit", []string{"prod-3"}},
		{"empty query matches everything", "", []string{"prod-1", "prod-2", "prod-3"}},
		{"no match", "bicycle", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := repo.Search(ctx, tt.query)
			ids := make([]string, 0, len(results))
			for _, p := range results {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestProductRepository_UpdateStock(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(emptyDataStore(t))
	seedProducts(t, repo)

	updated, err := repo.Update(ctx, "prod-2", func(p *model.Product) {
		p.Stock = 0
	})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Stock)

	found, err := repo.FindByID(ctx, "prod-2")
	require.NoError(t, err)
	assert.Equal(t, 0, found.Stock)
}
