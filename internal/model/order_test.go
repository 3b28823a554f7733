package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, OrderPending.Valid())
	assert.True(t, OrderConfirmed.Valid())
	assert.True(t, OrderDelivered.Valid())
	assert.True(t, OrderCancelled.Valid())
	assert.False(t, OrderStatus("Shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatus_Transitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderPending, OrderConfirmed, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderDelivered, false},
		{OrderConfirmed, OrderDelivered, true},
		{OrderConfirmed, OrderCancelled, true},
		{OrderConfirmed, OrderPending, false},
		{OrderDelivered, OrderCancelled, false},
		{OrderDelivered, OrderConfirmed, false},
		{OrderCancelled, OrderPending, false},
		{OrderCancelled, OrderConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.False(t, OrderPending.Terminal())
	assert.False(t, OrderConfirmed.Terminal())
	assert.True(t, OrderDelivered.Terminal())
	assert.True(t, OrderCancelled.Terminal())
}

func TestCartItem_Subtotal(t *testing.T) {
	item := CartItem{UnitPrice: decimal.NewFromInt(40), Quantity: 3}
	assert.True(t, item.Subtotal().Equal(decimal.NewFromInt(120)))
}

func TestSellerGroup_Total(t *testing.T) {
	group := SellerGroup{Items: []CartItem{
		{UnitPrice: decimal.NewFromInt(10), Quantity: 3},
		{UnitPrice: decimal.NewFromInt(4), Quantity: 1},
	}}
	assert.True(t, group.Total().Equal(decimal.NewFromInt(34)))
}

func TestUser_Public(t *testing.T) {
	t.Run("buyer keeps contact fields, drops seller fields", func(t *testing.T) {
		u := User{
			ID: "user-1", Role: RoleBuyer, Email: "b@example.com",
			Password: "secret", Name: "Buyer", Status: StatusActive,
			Phone: "9900112233", Address: "14 MG Road", Pincode: "411001",
			BusinessName: "should-not-leak",
		}
		pub := u.Public()
		assert.Equal(t, "9900112233", pub.Phone)
		assert.Empty(t, pub.BusinessName)
	})

	t.Run("seller keeps business fields", func(t *testing.T) {
		u := User{
			ID: "user-2", Role: RoleSeller, Password: "secret",
			BusinessName: "Green Farm", OrganicCertification: "NPOP-1",
		}
		pub := u.Public()
		assert.Equal(t, "Green Farm", pub.BusinessName)
		assert.Equal(t, "NPOP-1", pub.OrganicCertification)
	})
}
