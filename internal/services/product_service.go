package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/repositories"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type ProductService struct {
	products  repositories.ProductRepository
	shops     repositories.ShopRepository
	inventory repositories.InventoryRepository
}

func NewProductService(
	products repositories.ProductRepository,
	shops repositories.ShopRepository,
	inventory repositories.InventoryRepository,
) *ProductService {
	return &ProductService{products: products, shops: shops, inventory: inventory}
}

// CreateProduct adds a product to a shop the actor owns, seeding an
// inventory record with the initial stock quantity.
func (s *ProductService) CreateProduct(ctx context.Context, shopID uuid.UUID, actor AuthenticatedUser, req dtos.CreateProductRequest) (*models.Product, error) {
	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if shop == nil {
		return nil, utils.NotFound("Shop not found")
	}
	if err := requireOwnerOrAdmin(actor, shop.OwnerID); err != nil {
		return nil, err
	}

	if existing, err := s.products.GetBySKU(ctx, req.SKU); err != nil {
		return nil, utils.Internal(err)
	} else if existing != nil {
		return nil, utils.Conflict("A product with this SKU already exists")
	}
	if existing, err := s.products.GetBySlug(ctx, req.Slug); err != nil {
		return nil, utils.Internal(err)
	} else if existing != nil {
		return nil, utils.Conflict("A product with this slug already exists")
	}

	product := &models.Product{
		ID:           uuid.New(),
		ShopID:       shopID,
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Price:        req.Price,
		ComparePrice: req.ComparePrice,
		SKU:          req.SKU,
		StockQty:     req.StockQty,
		Status:       models.ProductDraft,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, utils.Internal(err)
	}

	inv := &models.Inventory{
		ID:        uuid.New(),
		ProductID: product.ID,
		ShopID:    shopID,
		Quantity:  req.StockQty,
	}
	if err := s.inventory.Create(ctx, inv); err != nil {
		return nil, utils.Internal(err)
	}

	utils.Logger.WithField("productId", product.ID).Info("Product created")
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if product == nil {
		return nil, utils.NotFound("Product not found")
	}
	return product, nil
}

func (s *ProductService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	product, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if product == nil {
		return nil, utils.NotFound("Product not found")
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return products, nil
}

func (s *ProductService) ListProductsByShop(ctx context.Context, shopID uuid.UUID) ([]*models.Product, error) {
	products, err := s.products.ListByShop(ctx, shopID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return products, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, actor AuthenticatedUser, req dtos.UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireProductOwner(ctx, product, actor); err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.ComparePrice != nil {
		product.ComparePrice = req.ComparePrice
	}
	if req.Status != nil {
		product.Status = models.ProductStatus(*req.Status)
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, utils.Internal(err)
	}
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID, actor AuthenticatedUser) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireProductOwner(ctx, product, actor); err != nil {
		return err
	}
	if err := s.products.Delete(ctx, product.ID); err != nil {
		return utils.Internal(err)
	}
	return nil
}

func (s *ProductService) requireProductOwner(ctx context.Context, product *models.Product, actor AuthenticatedUser) error {
	shop, err := s.shops.GetByID(ctx, product.ShopID)
	if err != nil {
		return utils.Internal(err)
	}
	if shop == nil {
		return utils.NotFound("Shop not found")
	}
	return requireOwnerOrAdmin(actor, shop.OwnerID)
}
