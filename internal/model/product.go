package model

import "github.com/shopspring/decimal"

// Product is a produce listing owned by a seller. SellerName is a denormalized
// snapshot taken when the product is created.
type Product struct {
	ID          string          `json:"id"`
	SellerID    string          `json:"sellerId"`
	SellerName  string          `json:"sellerName"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}
