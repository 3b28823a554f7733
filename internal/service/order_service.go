package service

import (
	"context"

	"papi/internal/errors"
	"papi/internal/model"
	"papi/internal/repository"
)

// OrderService exposes order queries and the seller-driven status lifecycle.
// Orders are only ever created by CartService.PlaceOrder; nothing here deletes
// them.
type OrderService interface {
	Get(ctx context.Context, id string) (*model.Order, error)
	ListByBuyer(ctx context.Context, buyerID string) []model.Order
	ListBySeller(ctx context.Context, sellerID string) []model.Order
	UpdateStatus(ctx context.Context, session *model.Session, id string, next model.OrderStatus) (*model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) Get(ctx context.Context, id string) (*model.Order, error) {
	return s.orderRepo.FindByID(ctx, id)
}

func (s *orderService) ListByBuyer(ctx context.Context, buyerID string) []model.Order {
	return s.orderRepo.FindByBuyer(ctx, buyerID)
}

func (s *orderService) ListBySeller(ctx context.Context, sellerID string) []model.Order {
	return s.orderRepo.FindBySeller(ctx, sellerID)
}

// UpdateStatus advances the order through Pending -> Confirmed -> Delivered,
// with Cancelled reachable from either non-terminal state. Delivered and
// Cancelled are terminal. Sellers may only move their own orders.
func (s *orderService) UpdateStatus(ctx context.Context, session *model.Session, id string, next model.OrderStatus) (*model.Order, error) {
	if session == nil {
		return nil, errors.ErrNotAuthenticated
	}
	if !next.Valid() {
		return nil, errors.ErrInvalidStatus
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.User.Role != model.RoleAdmin && order.SellerID != session.User.ID {
		return nil, errors.ErrForbidden
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, errors.ErrInvalidStatus
	}

	return s.orderRepo.Update(ctx, id, func(o *model.Order) {
		o.Status = next
	})
}
