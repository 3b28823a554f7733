package repository

import (
	"context"
	"strings"

	"papi/internal/datastore"
	"papi/internal/errors"
	"papi/internal/model"
	"papi/internal/seed"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	All(ctx context.Context) []model.Product
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindBySeller(ctx context.Context, sellerID string) []model.Product
	FindByCategory(ctx context.Context, category string) []model.Product
	Search(ctx context.Context, query string) []model.Product
	Create(ctx context.Context, product model.Product) model.Product
	Update(ctx context.Context, id string, apply func(*model.Product)) (*model.Product, error)
	Delete(ctx context.Context, id string)
}

type productRepository struct {
	ds *datastore.DataStore
}

// NewProductRepository builds a data-store-backed product repository.
func NewProductRepository(ds *datastore.DataStore) ProductRepository {
	return &productRepository{ds: ds}
}

func (r *productRepository) load(ctx context.Context) []model.Product {
	return datastore.ReadCollection[model.Product](ctx, r.ds, datastore.KeyProducts, seed.Products)
}

func (r *productRepository) save(ctx context.Context, products []model.Product) bool {
	return datastore.WriteCollection(ctx, r.ds, datastore.KeyProducts, products)
}

func (r *productRepository) All(ctx context.Context) []model.Product {
	return r.load(ctx)
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	for _, p := range r.load(ctx) {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (r *productRepository) FindBySeller(ctx context.Context, sellerID string) []model.Product {
	matched := []model.Product{}
	for _, p := range r.load(ctx) {
		if p.SellerID == sellerID {
			matched = append(matched, p)
		}
	}
	return matched
}

func (r *productRepository) FindByCategory(ctx context.Context, category string) []model.Product {
	matched := []model.Product{}
	for _, p := range r.load(ctx) {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

// Search matches the query case-insensitively against name, description and
// category.
func (r *productRepository) Search(ctx context.Context, query string) []model.Product {
	q := strings.ToLower(query)
	matched := []model.Product{}
	for _, p := range r.load(ctx) {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (r *productRepository) Create(ctx context.Context, product model.Product) model.Product {
	products := r.load(ctx)
	products = append(products, product)
	r.save(ctx, products)
	return product
}

func (r *productRepository) Update(ctx context.Context, id string, apply func(*model.Product)) (*model.Product, error) {
	products := r.load(ctx)
	for i := range products {
		if products[i].ID == id {
			apply(&products[i])
			r.save(ctx, products)
			updated := products[i]
			return &updated, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (r *productRepository) Delete(ctx context.Context, id string) {
	products := r.load(ctx)
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.save(ctx, kept)
}
