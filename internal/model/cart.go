package model

import "github.com/shopspring/decimal"

// CartItem is a buyer-session-scoped line item. Price, name and seller are
// snapshots taken when the product was added, not live references.
type CartItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	SellerID    string          `json:"sellerId"`
	SellerName  string          `json:"sellerName"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	Image       string          `json:"image"`
}

// Subtotal is unit price times quantity for this line.
func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// SellerGroup is the subset of a cart belonging to one seller, used to split
// checkout into one order per seller.
type SellerGroup struct {
	SellerID   string     `json:"sellerId"`
	SellerName string     `json:"sellerName"`
	Items      []CartItem `json:"items"`
}

// Total sums the subtotals of the group's items.
func (g SellerGroup) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range g.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
