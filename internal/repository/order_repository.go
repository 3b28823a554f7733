package repository

import (
	"context"

	"papi/internal/datastore"
	"papi/internal/errors"
	"papi/internal/model"
	"papi/internal/seed"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	All(ctx context.Context) []model.Order
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindByBuyer(ctx context.Context, buyerID string) []model.Order
	FindBySeller(ctx context.Context, sellerID string) []model.Order
	Create(ctx context.Context, order model.Order) model.Order
	Update(ctx context.Context, id string, apply func(*model.Order)) (*model.Order, error)
	Delete(ctx context.Context, id string)
}

type orderRepository struct {
	ds *datastore.DataStore
}

// NewOrderRepository builds a data-store-backed order repository.
func NewOrderRepository(ds *datastore.DataStore) OrderRepository {
	return &orderRepository{ds: ds}
}

func (r *orderRepository) load(ctx context.Context) []model.Order {
	return datastore.ReadCollection[model.Order](ctx, r.ds, datastore.KeyOrders, seed.Orders)
}

func (r *orderRepository) save(ctx context.Context, orders []model.Order) bool {
	return datastore.WriteCollection(ctx, r.ds, datastore.KeyOrders, orders)
}

func (r *orderRepository) All(ctx context.Context) []model.Order {
	return r.load(ctx)
}

func (r *orderRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	for _, o := range r.load(ctx) {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (r *orderRepository) FindByBuyer(ctx context.Context, buyerID string) []model.Order {
	matched := []model.Order{}
	for _, o := range r.load(ctx) {
		if o.BuyerID == buyerID {
			matched = append(matched, o)
		}
	}
	return matched
}

func (r *orderRepository) FindBySeller(ctx context.Context, sellerID string) []model.Order {
	matched := []model.Order{}
	for _, o := range r.load(ctx) {
		if o.SellerID == sellerID {
			matched = append(matched, o)
		}
	}
	return matched
}

func (r *orderRepository) Create(ctx context.Context, order model.Order) model.Order {
	orders := r.load(ctx)
	orders = append(orders, order)
	r.save(ctx, orders)
	return order
}

func (r *orderRepository) Update(ctx context.Context, id string, apply func(*model.Order)) (*model.Order, error) {
	orders := r.load(ctx)
	for i := range orders {
		if orders[i].ID == id {
			apply(&orders[i])
			r.save(ctx, orders)
			updated := orders[i]
			return &updated, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (r *orderRepository) Delete(ctx context.Context, id string) {
	orders := r.load(ctx)
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	r.save(ctx, kept)
}
