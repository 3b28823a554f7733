package service

import (
	"context"

	"papi/internal/model"
	"papi/internal/repository"
)

// DashboardStats are the counters shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers    int `json:"totalUsers"`
	TotalBuyers   int `json:"totalBuyers"`
	TotalSellers  int `json:"totalSellers"`
	TotalProducts int `json:"totalProducts"`
	TotalOrders   int `json:"totalOrders"`
}

// UserService exposes the admin-side user operations.
type UserService interface {
	List(ctx context.Context) []model.User
	ToggleStatus(ctx context.Context, id string) (*model.User, error)
	Delete(ctx context.Context, id string)
	Stats(ctx context.Context) DashboardStats
}

type userService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) UserService {
	return &userService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func (s *userService) List(ctx context.Context) []model.User {
	return s.userRepo.All(ctx)
}

// ToggleStatus flips the account between active and blocked.
func (s *userService) ToggleStatus(ctx context.Context, id string) (*model.User, error) {
	return s.userRepo.Update(ctx, id, func(u *model.User) {
		if u.Status == model.StatusActive {
			u.Status = model.StatusBlocked
		} else {
			u.Status = model.StatusActive
		}
	})
}

func (s *userService) Delete(ctx context.Context, id string) {
	s.userRepo.Delete(ctx, id)
}

func (s *userService) Stats(ctx context.Context) DashboardStats {
	stats := DashboardStats{}
	for _, u := range s.userRepo.All(ctx) {
		stats.TotalUsers++
		switch u.Role {
		case model.RoleBuyer:
			stats.TotalBuyers++
		case model.RoleSeller:
			stats.TotalSellers++
		}
	}
	stats.TotalProducts = len(s.productRepo.All(ctx))
	stats.TotalOrders = len(s.orderRepo.All(ctx))
	return stats
}
