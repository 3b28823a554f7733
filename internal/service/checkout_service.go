package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"papi/internal/errors"
	"papi/internal/model"
	"papi/internal/repository"
)

// GuestOrderInput is the contact-detail checkout form plus a cart snapshot.
// File is the attachment's filename only; content is never uploaded anywhere.
type GuestOrderInput struct {
	Name  string           `json:"name" validate:"required"`
	Phone string           `json:"phone" validate:"required,min=10"`
	Email string           `json:"email" validate:"required,email"`
	Notes string           `json:"notes"`
	Cart  []model.CartItem `json:"cart"`
	File  *string          `json:"file"`
}

var allowedAttachmentExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
	".docx": true,
}

// CheckoutService handles the guest checkout variant: instead of splitting the
// cart into per-seller orders it appends one simplified record to a separate
// guest-order log.
type CheckoutService interface {
	PlaceGuestOrder(ctx context.Context, input GuestOrderInput) (*model.GuestOrder, error)
}

type checkoutService struct {
	guestOrders repository.GuestOrderRepository
}

// NewCheckoutService creates a new guest checkout service.
func NewCheckoutService(guestOrders repository.GuestOrderRepository) CheckoutService {
	return &checkoutService{guestOrders: guestOrders}
}

// PlaceGuestOrder validates the attachment type, computes the total from the
// submitted cart snapshot and appends the record to the guest-order log.
func (s *checkoutService) PlaceGuestOrder(ctx context.Context, input GuestOrderInput) (*model.GuestOrder, error) {
	if len(input.Cart) == 0 {
		return nil, errors.ErrEmptyCart
	}
	if input.File != nil {
		ext := strings.ToLower(filepath.Ext(*input.File))
		if !allowedAttachmentExts[ext] {
			return nil, errors.ErrInvalidAttachment
		}
	}

	order := model.GuestOrder{
		ID:        time.Now().UnixMilli(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Notes:     input.Notes,
		Cart:      input.Cart,
		Total:     CartTotal(input.Cart),
		File:      input.File,
		OrderDate: time.Now().UTC(),
	}
	created := s.guestOrders.Append(ctx, order)
	return &created, nil
}
