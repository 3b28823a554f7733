package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"papi/internal/errors"
	"papi/internal/model"
	"papi/internal/repository"
)

// CartService owns the per-buyer shopping cart and the checkout flow that
// splits it into one order per seller. Every mutation persists the cart before
// returning, so the stored copy never lags the returned view.
type CartService interface {
	Items(ctx context.Context, buyerID string) []model.CartItem
	Add(ctx context.Context, buyerID, productID string, quantity int) ([]model.CartItem, error)
	Remove(ctx context.Context, buyerID, productID string) []model.CartItem
	UpdateQuantity(ctx context.Context, buyerID, productID string, quantity int) []model.CartItem
	Clear(ctx context.Context, buyerID string)
	Total(ctx context.Context, buyerID string) decimal.Decimal
	ItemCount(ctx context.Context, buyerID string) int
	GroupBySeller(ctx context.Context, buyerID string) []model.SellerGroup
	PlaceOrder(ctx context.Context, session *model.Session, notes string) ([]model.Order, error)
}

type cartService struct {
	carts       repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewCartService creates a new cart service.
func NewCartService(carts repository.CartRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) CartService {
	return &cartService{
		carts:       carts,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func (s *cartService) Items(ctx context.Context, buyerID string) []model.CartItem {
	return s.carts.Load(ctx, buyerID)
}

// Add puts quantity units of the product into the cart. A product already in
// the cart gets its quantity incremented; otherwise a new line is appended
// with price, name and seller snapshotted from the product as it is now.
func (s *cartService) Add(ctx context.Context, buyerID, productID string, quantity int) ([]model.CartItem, error) {
	if quantity <= 0 {
		quantity = 1
	}
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	items := s.carts.Load(ctx, buyerID)
	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, model.CartItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			SellerID:    product.SellerID,
			SellerName:  product.SellerName,
			Unit:        product.Unit,
			UnitPrice:   product.Price,
			Quantity:    quantity,
			Image:       product.Image,
		})
	}
	s.carts.Save(ctx, buyerID, items)
	return items, nil
}

// Remove drops the matching line; an absent product id is a no-op.
func (s *cartService) Remove(ctx context.Context, buyerID, productID string) []model.CartItem {
	items := s.carts.Load(ctx, buyerID)
	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.carts.Save(ctx, buyerID, kept)
	return kept
}

// UpdateQuantity overwrites the line's quantity; zero or negative delegates to
// Remove.
func (s *cartService) UpdateQuantity(ctx context.Context, buyerID, productID string, quantity int) []model.CartItem {
	if quantity <= 0 {
		return s.Remove(ctx, buyerID, productID)
	}
	items := s.carts.Load(ctx, buyerID)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	s.carts.Save(ctx, buyerID, items)
	return items
}

func (s *cartService) Clear(ctx context.Context, buyerID string) {
	s.carts.Clear(ctx, buyerID)
}

func (s *cartService) Total(ctx context.Context, buyerID string) decimal.Decimal {
	return CartTotal(s.carts.Load(ctx, buyerID))
}

func (s *cartService) ItemCount(ctx context.Context, buyerID string) int {
	return CartItemCount(s.carts.Load(ctx, buyerID))
}

func (s *cartService) GroupBySeller(ctx context.Context, buyerID string) []model.SellerGroup {
	return GroupBySeller(s.carts.Load(ctx, buyerID))
}

// PlaceOrder turns the cart into one Pending order per seller group, in the
// order sellers were first added to the cart. Item lists are frozen snapshots;
// each product's stock is decremented by the ordered quantity against its
// current stock, floored at zero. The cart is cleared afterwards.
func (s *cartService) PlaceOrder(ctx context.Context, session *model.Session, notes string) ([]model.Order, error) {
	if session == nil || session.User.Role != model.RoleBuyer {
		return nil, errors.ErrNotABuyer
	}
	buyerID := session.User.ID
	items := s.carts.Load(ctx, buyerID)
	if len(items) == 0 {
		return nil, errors.ErrEmptyCart
	}

	created := []model.Order{}
	for _, group := range GroupBySeller(items) {
		orderItems := make([]model.OrderItem, 0, len(group.Items))
		for _, item := range group.Items {
			orderItems = append(orderItems, model.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Qty:         item.Quantity,
				Unit:        item.Unit,
				UnitPrice:   item.UnitPrice,
			})
		}

		order := model.Order{
			ID:          "order-" + uuid.NewString(),
			BuyerID:     buyerID,
			BuyerName:   session.User.Name,
			SellerID:    group.SellerID,
			SellerName:  group.SellerName,
			Items:       orderItems,
			TotalAmount: group.Total(),
			Status:      model.OrderPending,
			CreatedAt:   time.Now().UTC(),
			Notes:       notes,
		}
		s.orderRepo.Create(ctx, order)
		created = append(created, order)

		for _, item := range group.Items {
			qty := item.Quantity
			if _, err := s.productRepo.Update(ctx, item.ProductID, func(p *model.Product) {
				p.Stock = max(0, p.Stock-qty)
			}); err != nil {
				// Product vanished between add-to-cart and checkout; the
				// order keeps its snapshot.
				continue
			}
		}
	}

	s.carts.Clear(ctx, buyerID)
	return created, nil
}

// CartTotal sums unit price times quantity over the items.
func CartTotal(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// CartItemCount sums the quantities, not the number of distinct products.
func CartItemCount(items []model.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// GroupBySeller buckets the items per seller, preserving the order sellers
// were first encountered and the seller metadata of the first matching item.
func GroupBySeller(items []model.CartItem) []model.SellerGroup {
	groups := []model.SellerGroup{}
	index := map[string]int{}
	for _, item := range items {
		i, ok := index[item.SellerID]
		if !ok {
			i = len(groups)
			index[item.SellerID] = i
			groups = append(groups, model.SellerGroup{
				SellerID:   item.SellerID,
				SellerName: item.SellerName,
			})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}
