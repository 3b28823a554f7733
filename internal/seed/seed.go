// Package seed bundles the static fixture collections the store is initialized
// from on first access.
package seed

import (
	_ "embed"

	"papi/internal/datastore"
)

//go:embed data/users.json
var Users []byte

//go:embed data/products.json
var Products []byte

//go:embed data/orders.json
var Orders []byte

//go:embed data/categories.json
var Categories []byte

// Collections maps each collection storage key to its seed payload.
func Collections() map[string][]byte {
	return map[string][]byte{
		datastore.KeyUsers:      Users,
		datastore.KeyProducts:   Products,
		datastore.KeyOrders:     Orders,
		datastore.KeyCategories: Categories,
	}
}
