package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// GuestOrder is the simplified record appended by the guest checkout variant.
// It collects contact details and a cart snapshot without an authenticated
// buyer; File holds only the attachment's filename, never its content.
type GuestOrder struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Notes     string          `json:"notes"`
	Cart      []CartItem      `json:"cart"`
	Total     decimal.Decimal `json:"total"`
	File      *string         `json:"file"`
	OrderDate time.Time       `json:"orderDate"`
}
