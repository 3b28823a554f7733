package repository

import (
	"context"
	"encoding/json"
	"log"

	"papi/internal/datastore"
	"papi/internal/model"
	"papi/internal/store"
)

// CartRepository persists one cart per buyer id. Carts bypass the seeded
// collections: a missing or unreadable cart is simply empty.
type CartRepository interface {
	Load(ctx context.Context, buyerID string) []model.CartItem
	Save(ctx context.Context, buyerID string, items []model.CartItem) bool
	Clear(ctx context.Context, buyerID string)
}

type cartRepository struct {
	kv store.Store
}

// NewCartRepository builds a store-backed cart repository.
func NewCartRepository(kv store.Store) CartRepository {
	return &cartRepository{kv: kv}
}

func cartKey(buyerID string) string {
	return datastore.KeyCartPrefix + buyerID
}

func (r *cartRepository) Load(ctx context.Context, buyerID string) []model.CartItem {
	data, err := r.kv.Get(ctx, cartKey(buyerID))
	if err != nil {
		log.Printf("cart: load %s: %v", buyerID, err)
		return []model.CartItem{}
	}
	if data == nil {
		return []model.CartItem{}
	}
	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("cart: malformed cart for %s: %v", buyerID, err)
		return []model.CartItem{}
	}
	return items
}

func (r *cartRepository) Save(ctx context.Context, buyerID string, items []model.CartItem) bool {
	if items == nil {
		items = []model.CartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("cart: marshal cart for %s: %v", buyerID, err)
		return false
	}
	if err := r.kv.Set(ctx, cartKey(buyerID), data); err != nil {
		log.Printf("cart: save %s: %v", buyerID, err)
		return false
	}
	return true
}

func (r *cartRepository) Clear(ctx context.Context, buyerID string) {
	r.Save(ctx, buyerID, []model.CartItem{})
}
