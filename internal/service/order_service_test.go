package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"papi/internal/datastore"
	"papi/internal/errors"
	"papi/internal/model"
	"papi/internal/repository"
	"papi/internal/store"
)

func newOrderFixture(t *testing.T, orders ...model.Order) OrderService {
	t.Helper()
	ctx := context.Background()
	ds := datastore.New(store.NewMemory())
	datastore.WriteCollection(ctx, ds, datastore.KeyOrders, orders)
	return NewOrderService(repository.NewOrderRepository(ds))
}

func sellerSession(id string) *model.Session {
	return &model.Session{User: model.SessionUser{ID: id, Role: model.RoleSeller}}
}

func TestOrderService_Listing(t *testing.T) {
	ctx := context.Background()
	svc := newOrderFixture(t,
		model.Order{ID: "o1", BuyerID: "buyer-1", SellerID: "seller-1", Status: model.OrderPending},
		model.Order{ID: "o2", BuyerID: "buyer-1", SellerID: "seller-2", Status: model.OrderPending},
		model.Order{ID: "o3", BuyerID: "buyer-2", SellerID: "seller-1", Status: model.OrderDelivered},
	)

	assert.Len(t, svc.ListByBuyer(ctx, "buyer-1"), 2)
	assert.Len(t, svc.ListBySeller(ctx, "seller-1"), 2)
	assert.Empty(t, svc.ListByBuyer(ctx, "buyer-9"))

	order, err := svc.Get(ctx, "o3")
	require.NoError(t, err)
	assert.Equal(t, model.OrderDelivered, order.Status)

	_, err = svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		current       model.OrderStatus
		next          model.OrderStatus
		expectedError error
	}{
		{"pending to confirmed", model.OrderPending, model.OrderConfirmed, nil},
		{"pending to cancelled", model.OrderPending, model.OrderCancelled, nil},
		{"confirmed to delivered", model.OrderConfirmed, model.OrderDelivered, nil},
		{"confirmed to cancelled", model.OrderConfirmed, model.OrderCancelled, nil},
		{"pending cannot skip to delivered", model.OrderPending, model.OrderDelivered, errors.ErrInvalidStatus},
		{"delivered is terminal", model.OrderDelivered, model.OrderCancelled, errors.ErrInvalidStatus},
		{"cancelled is terminal", model.OrderCancelled, model.OrderConfirmed, errors.ErrInvalidStatus},
		{"unknown status", model.OrderPending, model.OrderStatus("Shipped"), errors.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc := newOrderFixture(t, model.Order{ID: "o1", SellerID: "seller-1", Status: tt.current})

			order, err := svc.UpdateStatus(ctx, sellerSession("seller-1"), "o1", tt.next)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.next, order.Status)

				// The transition is persisted.
				persisted, err := svc.Get(ctx, "o1")
				require.NoError(t, err)
				assert.Equal(t, tt.next, persisted.Status)
			}
		})
	}
}

func TestOrderService_UpdateStatusOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("another seller's order is forbidden", func(t *testing.T) {
		svc := newOrderFixture(t, model.Order{ID: "o1", SellerID: "seller-1", Status: model.OrderPending})
		_, err := svc.UpdateStatus(ctx, sellerSession("seller-2"), "o1", model.OrderConfirmed)
		assert.ErrorIs(t, err, errors.ErrForbidden)
	})

	t.Run("admin may move any order", func(t *testing.T) {
		svc := newOrderFixture(t, model.Order{ID: "o1", SellerID: "seller-1", Status: model.OrderPending})
		admin := &model.Session{User: model.SessionUser{ID: "admin-1", Role: model.RoleAdmin}}

		order, err := svc.UpdateStatus(ctx, admin, "o1", model.OrderConfirmed)
		require.NoError(t, err)
		assert.Equal(t, model.OrderConfirmed, order.Status)
	})

	t.Run("nil session", func(t *testing.T) {
		svc := newOrderFixture(t, model.Order{ID: "o1", SellerID: "seller-1", Status: model.OrderPending})
		_, err := svc.UpdateStatus(ctx, nil, "o1", model.OrderConfirmed)
		assert.ErrorIs(t, err, errors.ErrNotAuthenticated)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc := newOrderFixture(t)
		_, err := svc.UpdateStatus(ctx, sellerSession("seller-1"), "nope", model.OrderConfirmed)
		assert.ErrorIs(t, err, errors.ErrNotFound)
	})
}
