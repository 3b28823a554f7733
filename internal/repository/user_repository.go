// Package repository provides the typed resource accessors over the data
// store. Every mutating operation reads the full collection, changes it in
// memory and writes it back; within one process that read-modify-write is
// serialized by the store, across processes last write wins.
package repository

import (
	"context"

	"papi/internal/datastore"
	"papi/internal/errors"
	"papi/internal/model"
	"papi/internal/seed"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	All(ctx context.Context) []model.User
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user model.User) model.User
	Update(ctx context.Context, id string, apply func(*model.User)) (*model.User, error)
	Delete(ctx context.Context, id string)
}

type userRepository struct {
	ds *datastore.DataStore
}

// NewUserRepository builds a data-store-backed user repository.
func NewUserRepository(ds *datastore.DataStore) UserRepository {
	return &userRepository{ds: ds}
}

func (r *userRepository) load(ctx context.Context) []model.User {
	return datastore.ReadCollection[model.User](ctx, r.ds, datastore.KeyUsers, seed.Users)
}

func (r *userRepository) save(ctx context.Context, users []model.User) bool {
	return datastore.WriteCollection(ctx, r.ds, datastore.KeyUsers, users)
}

func (r *userRepository) All(ctx context.Context) []model.User {
	return r.load(ctx)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	for _, u := range r.load(ctx) {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range r.load(ctx) {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, errors.ErrNotFound
}

func (r *userRepository) Create(ctx context.Context, user model.User) model.User {
	users := r.load(ctx)
	users = append(users, user)
	r.save(ctx, users)
	return user
}

// Update applies the mutation to the matching record and persists the
// collection. An absent id is reported as ErrNotFound without writing.
func (r *userRepository) Update(ctx context.Context, id string, apply func(*model.User)) (*model.User, error) {
	users := r.load(ctx)
	for i := range users {
		if users[i].ID == id {
			apply(&users[i])
			r.save(ctx, users)
			updated := users[i]
			return &updated, nil
		}
	}
	return nil, errors.ErrNotFound
}

// Delete removes the matching record. Deleting an absent id is a no-op.
func (r *userRepository) Delete(ctx context.Context, id string) {
	users := r.load(ctx)
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	r.save(ctx, kept)
}
