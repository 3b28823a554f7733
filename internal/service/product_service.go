package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"papi/internal/errors"
	"papi/internal/model"
	"papi/internal/repository"
)

// ProductInput carries the seller-editable product fields.
type ProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Unit        string          `json:"unit" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
}

// ProductUpdate carries a partial edit; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Unit        *string          `json:"unit"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Image       *string          `json:"image"`
	Description *string          `json:"description"`
}

// ProductService exposes catalog browsing for everyone and product CRUD for
// sellers and admins.
type ProductService interface {
	Browse(ctx context.Context, category, query string) []model.Product
	Get(ctx context.Context, id string) (*model.Product, error)
	Categories(ctx context.Context) []model.Category
	ListBySeller(ctx context.Context, sellerID string) []model.Product
	Create(ctx context.Context, session *model.Session, input ProductInput) (*model.Product, error)
	Update(ctx context.Context, session *model.Session, id string, update ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, session *model.Session, id string) error
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// Browse lists products, optionally narrowed by category slug and by a
// case-insensitive substring query over name, description and category.
func (s *productService) Browse(ctx context.Context, category, query string) []model.Product {
	var products []model.Product
	switch {
	case query != "":
		products = s.productRepo.Search(ctx, query)
	case category != "":
		return s.productRepo.FindByCategory(ctx, category)
	default:
		return s.productRepo.All(ctx)
	}
	if category == "" {
		return products
	}
	matched := []model.Product{}
	for _, p := range products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return matched
}

func (s *productService) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *productService) Categories(ctx context.Context) []model.Category {
	return s.categoryRepo.All(ctx)
}

func (s *productService) ListBySeller(ctx context.Context, sellerID string) []model.Product {
	return s.productRepo.FindBySeller(ctx, sellerID)
}

// Create lists a product owned by the session's seller, snapshotting the
// seller's display name onto the record.
func (s *productService) Create(ctx context.Context, session *model.Session, input ProductInput) (*model.Product, error) {
	if session == nil {
		return nil, errors.ErrNotAuthenticated
	}
	if session.User.Role != model.RoleSeller {
		return nil, errors.ErrForbidden
	}

	sellerName := session.User.BusinessName
	if sellerName == "" {
		sellerName = session.User.Name
	}
	product := model.Product{
		ID:          "prod-" + uuid.NewString(),
		SellerID:    session.User.ID,
		SellerName:  sellerName,
		Name:        input.Name,
		Category:    input.Category,
		Unit:        input.Unit,
		Price:       input.Price,
		Stock:       input.Stock,
		Image:       input.Image,
		Description: input.Description,
	}
	created := s.productRepo.Create(ctx, product)
	return &created, nil
}

// Update edits a product. Sellers may only touch their own listings; admins
// may touch any.
func (s *productService) Update(ctx context.Context, session *model.Session, id string, update ProductUpdate) (*model.Product, error) {
	if session == nil {
		return nil, errors.ErrNotAuthenticated
	}
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.User.Role != model.RoleAdmin && product.SellerID != session.User.ID {
		return nil, errors.ErrForbidden
	}

	return s.productRepo.Update(ctx, id, func(p *model.Product) {
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Category != nil {
			p.Category = *update.Category
		}
		if update.Unit != nil {
			p.Unit = *update.Unit
		}
		if update.Price != nil {
			p.Price = *update.Price
		}
		if update.Stock != nil {
			p.Stock = max(0, *update.Stock)
		}
		if update.Image != nil {
			p.Image = *update.Image
		}
		if update.Description != nil {
			p.Description = *update.Description
		}
	})
}

// Delete removes a product under the same ownership rules as Update.
func (s *productService) Delete(ctx context.Context, session *model.Session, id string) error {
	if session == nil {
		return errors.ErrNotAuthenticated
	}
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if session.User.Role != model.RoleAdmin && product.SellerID != session.User.ID {
		return errors.ErrForbidden
	}
	s.productRepo.Delete(ctx, id)
	return nil
}
