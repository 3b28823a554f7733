package repository

import (
	"context"

	"papi/internal/datastore"
	"papi/internal/errors"
	"papi/internal/model"
	"papi/internal/seed"
)

// CategoryRepository defines category persistence operations. Categories are
// static reference data; mutation exists for admin tooling only.
type CategoryRepository interface {
	All(ctx context.Context) []model.Category
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindBySlug(ctx context.Context, slug string) (*model.Category, error)
	Create(ctx context.Context, category model.Category) model.Category
	Update(ctx context.Context, id string, apply func(*model.Category)) (*model.Category, error)
	Delete(ctx context.Context, id string)
}

type categoryRepository struct {
	ds *datastore.DataStore
}

// NewCategoryRepository builds a data-store-backed category repository.
func NewCategoryRepository(ds *datastore.DataStore) CategoryRepository {
	return &categoryRepository{ds: ds}
}

func (r *categoryRepository) load(ctx context.Context) []model.Category {
	return datastore.ReadCollection[model.Category](ctx, r.ds, datastore.KeyCategories, seed.Categories)
}

func (r *categoryRepository) save(ctx context.Context, categories []model.Category) bool {
	return datastore.WriteCollection(ctx, r.ds, datastore.KeyCategories, categories)
}

func (r *categoryRepository) All(ctx context.Context) []model.Category {
	return r.load(ctx)
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	for _, c := range r.load(ctx) {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	for _, c := range r.load(ctx) {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (r *categoryRepository) Create(ctx context.Context, category model.Category) model.Category {
	categories := r.load(ctx)
	categories = append(categories, category)
	r.save(ctx, categories)
	return category
}

func (r *categoryRepository) Update(ctx context.Context, id string, apply func(*model.Category)) (*model.Category, error) {
	categories := r.load(ctx)
	for i := range categories {
		if categories[i].ID == id {
			apply(&categories[i])
			r.save(ctx, categories)
			updated := categories[i]
			return &updated, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (r *categoryRepository) Delete(ctx context.Context, id string) {
	categories := r.load(ctx)
	kept := categories[:0]
	for _, c := range categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.save(ctx, kept)
}
