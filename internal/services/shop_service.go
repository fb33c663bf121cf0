package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/repositories"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type ShopService struct {
	shops repositories.ShopRepository
}

func NewShopService(shops repositories.ShopRepository) *ShopService {
	return &ShopService{shops: shops}
}

func (s *ShopService) CreateShop(ctx context.Context, ownerID uuid.UUID, req dtos.CreateShopRequest) (*models.Shop, error) {
	existing, err := s.shops.GetBySlug(ctx, req.Slug)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if existing != nil {
		return nil, utils.Conflict("A shop with this slug already exists")
	}

	shop := &models.Shop{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		LogoURL:     req.LogoURL,
		BannerURL:   req.BannerURL,
		Status:      models.ShopPending,
	}
	if err := s.shops.Create(ctx, shop); err != nil {
		return nil, utils.Internal(err)
	}

	utils.Logger.WithField("shopId", shop.ID).Info("Shop created")
	return shop, nil
}

func (s *ShopService) GetShop(ctx context.Context, id uuid.UUID) (*models.Shop, error) {
	shop, err := s.shops.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if shop == nil {
		return nil, utils.NotFound("Shop not found")
	}
	return shop, nil
}

func (s *ShopService) GetShopBySlug(ctx context.Context, slug string) (*models.Shop, error) {
	shop, err := s.shops.GetBySlug(ctx, slug)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if shop == nil {
		return nil, utils.NotFound("Shop not found")
	}
	return shop, nil
}

func (s *ShopService) ListShops(ctx context.Context) ([]*models.Shop, error) {
	shops, err := s.shops.List(ctx)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return shops, nil
}

func (s *ShopService) ListShopsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Shop, error) {
	shops, err := s.shops.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return shops, nil
}

// UpdateShop lets the owner (or an admin) change shop details. Status
// changes are restricted to admins.
func (s *ShopService) UpdateShop(ctx context.Context, id uuid.UUID, actor AuthenticatedUser, req dtos.UpdateShopRequest) (*models.Shop, error) {
	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwnerOrAdmin(actor, shop.OwnerID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Description != nil {
		shop.Description = req.Description
	}
	if req.LogoURL != nil {
		shop.LogoURL = req.LogoURL
	}
	if req.BannerURL != nil {
		shop.BannerURL = req.BannerURL
	}
	if req.Status != nil {
		if actor.Role != models.RoleAdmin {
			return nil, utils.Forbidden("Only admins can change shop status")
		}
		shop.Status = models.ShopStatus(*req.Status)
	}

	if err := s.shops.Update(ctx, shop); err != nil {
		return nil, utils.Internal(err)
	}
	return shop, nil
}

func (s *ShopService) DeleteShop(ctx context.Context, id uuid.UUID, actor AuthenticatedUser) error {
	shop, err := s.GetShop(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwnerOrAdmin(actor, shop.OwnerID); err != nil {
		return err
	}
	if err := s.shops.Delete(ctx, shop.ID); err != nil {
		return utils.Internal(err)
	}
	return nil
}

// requireOwnerOrAdmin is the ownership check shared by the shop-scoped
// services.
func requireOwnerOrAdmin(actor AuthenticatedUser, ownerID uuid.UUID) error {
	if actor.Role == models.RoleAdmin || actor.UserID == ownerID {
		return nil
	}
	return utils.Forbidden("You do not own this resource")
}
