package repository

import (
	"context"
	"encoding/json"
	"log"

	"papi/internal/datastore"
	"papi/internal/model"
	"papi/internal/store"
)

// GuestOrderRepository appends to the guest-order log used by the
// unauthenticated checkout variant. The log is append-only in normal flow.
type GuestOrderRepository interface {
	All(ctx context.Context) []model.GuestOrder
	Append(ctx context.Context, order model.GuestOrder) model.GuestOrder
}

type guestOrderRepository struct {
	kv store.Store
}

// NewGuestOrderRepository builds a store-backed guest-order repository.
func NewGuestOrderRepository(kv store.Store) GuestOrderRepository {
	return &guestOrderRepository{kv: kv}
}

func (r *guestOrderRepository) All(ctx context.Context) []model.GuestOrder {
	data, err := r.kv.Get(ctx, datastore.KeyGuestOrders)
	if err != nil {
		log.Printf("guest orders: load: %v", err)
		return []model.GuestOrder{}
	}
	if data == nil {
		return []model.GuestOrder{}
	}
	var orders []model.GuestOrder
	if err := json.Unmarshal(data, &orders); err != nil {
		log.Printf("guest orders: malformed log: %v", err)
		return []model.GuestOrder{}
	}
	return orders
}

func (r *guestOrderRepository) Append(ctx context.Context, order model.GuestOrder) model.GuestOrder {
	orders := r.All(ctx)
	orders = append(orders, order)
	data, err := json.Marshal(orders)
	if err != nil {
		log.Printf("guest orders: marshal: %v", err)
		return order
	}
	if err := r.kv.Set(ctx, datastore.KeyGuestOrders, data); err != nil {
		log.Printf("guest orders: save: %v", err)
	}
	return order
}
