// Package datastore layers collection semantics over the blob store: seed data
// is written through on first access, malformed or unreadable values degrade to
// the seed, and write failures are reported as a boolean. Failures are logged
// here and never surface to callers.
package datastore

import (
	"context"
	"encoding/json"
	"log"

	"papi/internal/store"
)

// Storage keys. Collections hold full JSON arrays; session and cart keys are
// namespaced per session id and buyer id.
const (
	KeyUsers      = "papi_users"
	KeyProducts   = "papi_products"
	KeyOrders     = "papi_orders"
	KeyCategories = "papi_categories"

	KeySessionPrefix = "papi_auth_"
	KeyCartPrefix    = "papi_cart_"
	KeyGuestOrders   = "papi_guest_orders"
)

// DataStore wraps a Store with read/write-through collection access.
type DataStore struct {
	kv store.Store
}

// New creates a DataStore over the given blob store.
func New(kv store.Store) *DataStore {
	return &DataStore{kv: kv}
}

// Read returns the blob stored under key. A missing key writes the seed
// through before returning it; a backend failure falls back to the seed.
func (d *DataStore) Read(ctx context.Context, key string, seed []byte) []byte {
	data, err := d.kv.Get(ctx, key)
	if err != nil {
		log.Printf("datastore: read %s: %v", key, err)
		return seed
	}
	if data == nil {
		d.Write(ctx, key, seed)
		return seed
	}
	return data
}

// Write stores the blob under key and reports success.
func (d *DataStore) Write(ctx context.Context, key string, data []byte) bool {
	if err := d.kv.Set(ctx, key, data); err != nil {
		log.Printf("datastore: write %s: %v", key, err)
		return false
	}
	return true
}

// Seed writes every collection that has no persisted value yet and returns the
// number of collections written. With force set, existing values are
// overwritten too.
func (d *DataStore) Seed(ctx context.Context, collections map[string][]byte, force bool) int {
	seeded := 0
	for key, data := range collections {
		if !force {
			existing, err := d.kv.Get(ctx, key)
			if err != nil {
				log.Printf("datastore: seed check %s: %v", key, err)
				continue
			}
			if existing != nil {
				continue
			}
		}
		if d.Write(ctx, key, data) {
			seeded++
		}
	}
	return seeded
}

// ReadCollection decodes the records stored under key, degrading to the
// decoded seed when the stored payload is malformed.
func ReadCollection[T any](ctx context.Context, d *DataStore, key string, seed []byte) []T {
	raw := d.Read(ctx, key, seed)
	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("datastore: malformed %s, falling back to seed: %v", key, err)
		records = nil
		if err := json.Unmarshal(seed, &records); err != nil {
			log.Printf("datastore: malformed seed for %s: %v", key, err)
			return nil
		}
	}
	return records
}

// WriteCollection encodes and stores the full record set under key.
func WriteCollection[T any](ctx context.Context, d *DataStore, key string, records []T) bool {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		log.Printf("datastore: marshal %s: %v", key, err)
		return false
	}
	return d.Write(ctx, key, data)
}
