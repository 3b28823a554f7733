package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the seller-driven order lifecycle state.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransitionTo reports whether the move from s to next is allowed:
// Pending->Confirmed, Confirmed->Delivered, and Cancelled from either
// non-terminal state.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	switch s {
	case OrderPending:
		return next == OrderConfirmed || next == OrderCancelled
	case OrderConfirmed:
		return next == OrderDelivered || next == OrderCancelled
	}
	return false
}

// OrderItem is an immutable snapshot of a purchased product line. Later price
// or name edits on the product do not affect it.
type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Qty         int             `json:"qty"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Order is one buyer's purchase from one seller. Checkout splits a mixed cart
// into one order per seller.
type Order struct {
	ID          string          `json:"id"`
	BuyerID     string          `json:"buyerId"`
	BuyerName   string          `json:"buyerName"`
	SellerID    string          `json:"sellerId"`
	SellerName  string          `json:"sellerName"`
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	Notes       string          `json:"notes"`
}
