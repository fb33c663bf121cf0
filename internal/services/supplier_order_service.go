package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/repositories"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

// SupplierOrderService handles restocking orders a shop places against
// a supplier. Receiving a shipped order feeds stock back into inventory.
type SupplierOrderService struct {
	orders    repositories.SupplierOrderRepository
	suppliers repositories.SupplierRepository
	shops     repositories.ShopRepository
	products  repositories.ProductRepository
	inventory *InventoryService
}

func NewSupplierOrderService(
	orders repositories.SupplierOrderRepository,
	suppliers repositories.SupplierRepository,
	shops repositories.ShopRepository,
	products repositories.ProductRepository,
	inventory *InventoryService,
) *SupplierOrderService {
	return &SupplierOrderService{
		orders:    orders,
		suppliers: suppliers,
		shops:     shops,
		products:  products,
		inventory: inventory,
	}
}

func (s *SupplierOrderService) Create(ctx context.Context, shopID uuid.UUID, actor AuthenticatedUser, req dtos.CreateSupplierOrderRequest) (*models.SupplierOrder, error) {
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

	supplier, err := s.suppliers.GetByID(ctx, req.SupplierID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if supplier == nil {
		return nil, utils.NotFound("Supplier not found")
	}

	orderNumber, err := utils.GenerateOrderNumber("SUP")
	if err != nil {
		return nil, utils.Internal(err)
	}

	order := &models.SupplierOrder{
		ID:          uuid.New(),
		ShopID:      shopID,
		SupplierID:  supplier.ID,
		OrderNumber: orderNumber,
		Status:      models.SupplierOrderPending,
		Notes:       req.Notes,
	}
	for _, item := range req.Items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, utils.Internal(err)
		}
		if product == nil {
			return nil, utils.NotFound("Product not found")
		}
		if product.ShopID != shopID {
			return nil, utils.BadRequest(utils.ErrCodeValidation, "Product does not belong to this shop")
		}

		order.Items = append(order.Items, models.SupplierOrderItem{
			ID:              uuid.New(),
			SupplierOrderID: order.ID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			UnitCost:        item.UnitCost,
			TotalCost:       item.UnitCost * float64(item.Quantity),
		})
		order.Total += item.UnitCost * float64(item.Quantity)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, utils.Internal(err)
	}

	utils.Logger.WithFields(map[string]interface{}{
		"supplierOrderId": order.ID,
		"orderNumber":     order.OrderNumber,
	}).Info("Supplier order placed")
	return order, nil
}

func (s *SupplierOrderService) Get(ctx context.Context, id uuid.UUID, actor AuthenticatedUser) (*models.SupplierOrder, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if order == nil {
		return nil, utils.NotFound("Supplier order not found")
	}
	if err := s.requireAccess(ctx, order, actor); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *SupplierOrderService) ListByShop(ctx context.Context, shopID uuid.UUID, actor AuthenticatedUser) ([]*models.SupplierOrder, error) {
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

	orders, err := s.orders.ListByShop(ctx, shopID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return orders, nil
}

// ListMine lists orders addressed to the caller's supplier profile.
func (s *SupplierOrderService) ListMine(ctx context.Context, actor AuthenticatedUser) ([]*models.SupplierOrder, error) {
	supplier, err := s.suppliers.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if supplier == nil {
		return nil, utils.NotFound("Supplier profile not found")
	}

	orders, err := s.orders.ListBySupplier(ctx, supplier.ID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return orders, nil
}

// UpdateStatus advances the restocking lifecycle. Suppliers confirm and
// ship; the shop side receives or cancels. Receiving writes stock_in
// transactions for every line.
func (s *SupplierOrderService) UpdateStatus(ctx context.Context, id uuid.UUID, actor AuthenticatedUser, next models.SupplierOrderStatus) (*models.SupplierOrder, error) {
	order, err := s.Get(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	if !order.CanTransitionTo(next) {
		return nil, utils.BadRequest(utils.ErrCodeValidation,
			"Cannot move supplier order from "+string(order.Status)+" to "+string(next))
	}

	supplierSide, err := s.isSupplierSide(ctx, order, actor)
	if err != nil {
		return nil, err
	}
	switch next {
	case models.SupplierOrderConfirmed, models.SupplierOrderShipped:
		if !supplierSide && actor.Role != models.RoleAdmin {
			return nil, utils.Forbidden("Only the supplier can confirm or ship this order")
		}
	case models.SupplierOrderReceived, models.SupplierOrderCancelled:
		if supplierSide && actor.Role != models.RoleAdmin {
			return nil, utils.Forbidden("Only the ordering shop can receive or cancel this order")
		}
	}

	if next == models.SupplierOrderReceived {
		for _, item := range order.Items {
			if err := s.inventory.RestockFromSupplier(ctx, item.ProductID, order.ShopID, item.Quantity, order.ID, actor.UserID); err != nil {
				return nil, err
			}
		}
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, next); err != nil {
		return nil, utils.Internal(err)
	}
	order.Status = next

	utils.Logger.WithFields(map[string]interface{}{
		"supplierOrderId": order.ID,
		"status":          next,
	}).Info("Supplier order status updated")
	return order, nil
}

func (s *SupplierOrderService) requireAccess(ctx context.Context, order *models.SupplierOrder, actor AuthenticatedUser) error {
	if actor.Role == models.RoleAdmin {
		return nil
	}
	shop, err := s.shops.GetByID(ctx, order.ShopID)
	if err != nil {
		return utils.Internal(err)
	}
	if shop != nil && shop.OwnerID == actor.UserID {
		return nil
	}
	supplierSide, err := s.isSupplierSide(ctx, order, actor)
	if err != nil {
		return err
	}
	if supplierSide {
		return nil
	}
	return utils.Forbidden("You do not have access to this supplier order")
}

func (s *SupplierOrderService) isSupplierSide(ctx context.Context, order *models.SupplierOrder, actor AuthenticatedUser) (bool, error) {
	supplier, err := s.suppliers.GetByID(ctx, order.SupplierID)
	if err != nil {
		return false, utils.Internal(err)
	}
	return supplier != nil && supplier.UserID == actor.UserID, nil
}
