package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/repositories"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type CartService struct {
	carts    repositories.CartRepository
	products repositories.ProductRepository
}

func NewCartService(carts repositories.CartRepository, products repositories.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// GetCart returns the user's cart, creating an empty one on first use.
func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if cart != nil {
		return cart, nil
	}

	cart = &models.Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items:  []models.CartItem{},
	}
	if err := s.carts.Create(ctx, cart); err != nil {
		return nil, utils.Internal(err)
	}
	return cart, nil
}

// AddItem puts a product in the cart. Adding a product already present
// bumps its quantity instead of creating a second line.
func (s *CartService) AddItem(ctx context.Context, userID uuid.UUID, req dtos.AddCartItemRequest) (*models.Cart, error) {
	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if product == nil {
		return nil, utils.NotFound("Product not found")
	}
	if !product.IsInStock() {
		return nil, utils.BadRequest(utils.ErrCodeInsufficientStock, "Product is not available")
	}

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.carts.GetItemByProduct(ctx, cart.ID, req.ProductID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if existing != nil {
		if err := s.carts.UpdateItemQuantity(ctx, existing.ID, existing.Quantity+req.Quantity); err != nil {
			return nil, utils.Internal(err)
		}
	} else {
		item := &models.CartItem{
			ID:        uuid.New(),
			CartID:    cart.ID,
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		}
		if err := s.carts.AddItem(ctx, item); err != nil {
			return nil, utils.Internal(err)
		}
	}

	return s.GetCart(ctx, userID)
}

func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, req dtos.UpdateCartItemRequest) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCartItem(ctx, cart, itemID); err != nil {
		return nil, err
	}

	if err := s.carts.UpdateItemQuantity(ctx, itemID, req.Quantity); err != nil {
		return nil, utils.Internal(err)
	}
	return s.GetCart(ctx, userID)
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.requireCartItem(ctx, cart, itemID); err != nil {
		return nil, err
	}

	if err := s.carts.RemoveItem(ctx, itemID); err != nil {
		return nil, utils.Internal(err)
	}
	return s.GetCart(ctx, userID)
}

func (s *CartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.carts.ClearItems(ctx, cart.ID); err != nil {
		return utils.Internal(err)
	}
	return nil
}

// requireCartItem refuses item ids that belong to someone else's cart.
func (s *CartService) requireCartItem(ctx context.Context, cart *models.Cart, itemID uuid.UUID) error {
	item, err := s.carts.GetItem(ctx, itemID)
	if err != nil {
		return utils.Internal(err)
	}
	if item == nil || item.CartID != cart.ID {
		return utils.NotFound("Cart item not found")
	}
	return nil
}
