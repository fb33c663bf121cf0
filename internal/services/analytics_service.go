package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/repositories"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

const defaultTopProductsLimit = 10

// AnalyticsService exposes sales rollups. Admins see marketplace-wide
// numbers; shop owners must scope queries to a shop they own.
type AnalyticsService struct {
	analytics repositories.AnalyticsRepository
	shops     repositories.ShopRepository
}

func NewAnalyticsService(analytics repositories.AnalyticsRepository, shops repositories.ShopRepository) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, shops: shops}
}

func (s *AnalyticsService) Dashboard(ctx context.Context, shopID *uuid.UUID, actor AuthenticatedUser) (*repositories.DashboardStats, error) {
	if err := s.requireScope(ctx, shopID, actor); err != nil {
		return nil, err
	}
	stats, err := s.analytics.DashboardStats(ctx, shopID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return stats, nil
}

func (s *AnalyticsService) SalesOverTime(ctx context.Context, shopID *uuid.UUID, days int, actor AuthenticatedUser) ([]repositories.SalesPoint, error) {
	if err := s.requireScope(ctx, shopID, actor); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	points, err := s.analytics.SalesOverTime(ctx, shopID, since)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return points, nil
}

func (s *AnalyticsService) TopProducts(ctx context.Context, shopID *uuid.UUID, limit int, actor AuthenticatedUser) ([]repositories.TopProduct, error) {
	if err := s.requireScope(ctx, shopID, actor); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = defaultTopProductsLimit
	}

	products, err := s.analytics.TopProducts(ctx, shopID, limit)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return products, nil
}

func (s *AnalyticsService) OrderStatusBreakdown(ctx context.Context, shopID *uuid.UUID, actor AuthenticatedUser) ([]repositories.StatusCount, error) {
	if err := s.requireScope(ctx, shopID, actor); err != nil {
		return nil, err
	}
	counts, err := s.analytics.OrderStatusBreakdown(ctx, shopID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return counts, nil
}

func (s *AnalyticsService) requireScope(ctx context.Context, shopID *uuid.UUID, actor AuthenticatedUser) error {
	if actor.Role == models.RoleAdmin {
		return nil
	}
	if shopID == nil {
		return utils.Forbidden("A shop id is required")
	}

	shop, err := s.shops.GetByID(ctx, *shopID)
	if err != nil {
		return utils.Internal(err)
	}
	if shop == nil {
		return utils.NotFound("Shop not found")
	}
	return requireOwnerOrAdmin(actor, shop.OwnerID)
}
