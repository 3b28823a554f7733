// Package store provides the string-keyed blob store the whole data layer sits
// on. Keys map to JSON-serialized values; callers never see partial records.
package store

import "context"

// Store is a flat key-value blob store. Get returns (nil, nil) for a missing
// key so callers can distinguish "absent" from a real backend failure.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
