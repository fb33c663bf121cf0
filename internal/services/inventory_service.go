package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/repositories"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

// InventoryService maintains per-shop stock levels. Every quantity
// change also lands in the transaction ledger with before/after values.
type InventoryService struct {
	inventory repositories.InventoryRepository
	shops     repositories.ShopRepository

	now func() time.Time
}

func NewInventoryService(inventory repositories.InventoryRepository, shops repositories.ShopRepository) *InventoryService {
	return &InventoryService{inventory: inventory, shops: shops, now: time.Now}
}

func (s *InventoryService) GetInventory(ctx context.Context, id uuid.UUID) (*models.Inventory, error) {
	inv, err := s.inventory.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if inv == nil {
		return nil, utils.NotFound("Inventory record not found")
	}
	return inv, nil
}

func (s *InventoryService) GetByProductAndShop(ctx context.Context, productID, shopID uuid.UUID) (*models.Inventory, error) {
	inv, err := s.inventory.GetByProductAndShop(ctx, productID, shopID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if inv == nil {
		return nil, utils.NotFound("Inventory record not found")
	}
	return inv, nil
}

func (s *InventoryService) ListByShop(ctx context.Context, shopID uuid.UUID, actor AuthenticatedUser) ([]*models.Inventory, error) {
	if err := s.requireShopAccess(ctx, shopID, actor); err != nil {
		return nil, err
	}
	list, err := s.inventory.ListByShop(ctx, shopID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return list, nil
}

// ListLowStock returns records at or below their low-stock threshold.
// Admins see all shops; everyone else must scope to a shop they own.
func (s *InventoryService) ListLowStock(ctx context.Context, shopID *uuid.UUID, actor AuthenticatedUser) ([]*models.Inventory, error) {
	if shopID != nil {
		if err := s.requireShopAccess(ctx, *shopID, actor); err != nil {
			return nil, err
		}
	} else if actor.Role != models.RoleAdmin {
		return nil, utils.Forbidden("A shop id is required")
	}

	list, err := s.inventory.ListLowStock(ctx, shopID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return list, nil
}

// AdjustStock applies a manual stock movement. stock_in and return add,
// stock_out and damage subtract, adjustment sets the absolute quantity.
func (s *InventoryService) AdjustStock(ctx context.Context, id uuid.UUID, actor AuthenticatedUser, req dtos.AdjustStockRequest) (*models.Inventory, error) {
	inv, err := s.GetInventory(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireShopAccess(ctx, inv.ShopID, actor); err != nil {
		return nil, err
	}

	previous := inv.Quantity
	txType := models.InventoryTransactionType(req.Type)

	switch txType {
	case models.TxStockIn, models.TxReturn:
		inv.Quantity += req.Quantity
		if txType == models.TxStockIn {
			now := s.now()
			inv.LastRestockedAt = &now
		}
	case models.TxStockOut, models.TxDamage:
		if req.Quantity > inv.AvailableQuantity() {
			return nil, utils.BadRequest(utils.ErrCodeInsufficientStock, "Not enough available stock")
		}
		inv.Quantity -= req.Quantity
	case models.TxAdjustment:
		if req.Quantity < inv.ReservedQuantity {
			return nil, utils.BadRequest(utils.ErrCodeValidation, "Adjusted quantity cannot fall below reserved stock")
		}
		inv.Quantity = req.Quantity
	default:
		return nil, utils.BadRequest(utils.ErrCodeValidation, "Unknown transaction type")
	}

	if inv.MaxStock != nil && inv.Quantity > *inv.MaxStock {
		return nil, utils.BadRequest(utils.ErrCodeValidation, "Quantity would exceed the configured maximum stock")
	}

	if err := s.inventory.Update(ctx, inv); err != nil {
		return nil, utils.Internal(err)
	}
	if err := s.recordTransaction(ctx, inv, txType, req.Quantity, previous, req.Reason, nil, &actor.UserID); err != nil {
		return nil, err
	}

	if inv.IsLowStock() {
		utils.Logger.WithFields(map[string]interface{}{
			"inventoryId": inv.ID,
			"available":   inv.AvailableQuantity(),
			"threshold":   inv.LowStockThreshold,
		}).Warn("Inventory fell to low-stock level")
	}
	return inv, nil
}

func (s *InventoryService) UpdateSettings(ctx context.Context, id uuid.UUID, actor AuthenticatedUser, req dtos.UpdateInventoryRequest) (*models.Inventory, error) {
	inv, err := s.GetInventory(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireShopAccess(ctx, inv.ShopID, actor); err != nil {
		return nil, err
	}

	if req.LowStockThreshold != nil {
		inv.LowStockThreshold = *req.LowStockThreshold
	}
	if req.ReorderPoint != nil {
		inv.ReorderPoint = *req.ReorderPoint
	}
	if req.MaxStock != nil {
		inv.MaxStock = req.MaxStock
	}

	if err := s.inventory.Update(ctx, inv); err != nil {
		return nil, utils.Internal(err)
	}
	return inv, nil
}

// ReserveStock holds quantity for a pending order without removing it
// from the shelf count.
func (s *InventoryService) ReserveStock(ctx context.Context, productID, shopID uuid.UUID, quantity int) error {
	inv, err := s.GetByProductAndShop(ctx, productID, shopID)
	if err != nil {
		return err
	}
	if quantity > inv.AvailableQuantity() {
		return utils.BadRequest(utils.ErrCodeInsufficientStock, "Not enough available stock")
	}

	inv.ReservedQuantity += quantity
	if err := s.inventory.Update(ctx, inv); err != nil {
		return utils.Internal(err)
	}
	return nil
}

// ReleaseStock undoes a reservation, e.g. when an order is cancelled
// before shipping.
func (s *InventoryService) ReleaseStock(ctx context.Context, productID, shopID uuid.UUID, quantity int) error {
	inv, err := s.GetByProductAndShop(ctx, productID, shopID)
	if err != nil {
		return err
	}

	if quantity > inv.ReservedQuantity {
		quantity = inv.ReservedQuantity
	}
	inv.ReservedQuantity -= quantity
	if err := s.inventory.Update(ctx, inv); err != nil {
		return utils.Internal(err)
	}
	return nil
}

// CommitStock converts a reservation into an actual stock_out, writing
// the ledger row with the order as reference.
func (s *InventoryService) CommitStock(ctx context.Context, productID, shopID uuid.UUID, quantity int, referenceID uuid.UUID) error {
	inv, err := s.GetByProductAndShop(ctx, productID, shopID)
	if err != nil {
		return err
	}
	if quantity > inv.ReservedQuantity {
		return utils.BadRequest(utils.ErrCodeInsufficientStock, "Commit exceeds reserved stock")
	}

	previous := inv.Quantity
	inv.ReservedQuantity -= quantity
	inv.Quantity -= quantity

	if err := s.inventory.Update(ctx, inv); err != nil {
		return utils.Internal(err)
	}
	return s.recordTransaction(ctx, inv, models.TxStockOut, quantity, previous, nil, &referenceID, nil)
}

// RestockFromSupplier is the stock_in path used when a supplier order
// is received.
func (s *InventoryService) RestockFromSupplier(ctx context.Context, productID, shopID uuid.UUID, quantity int, referenceID uuid.UUID, performedBy uuid.UUID) error {
	inv, err := s.GetByProductAndShop(ctx, productID, shopID)
	if err != nil {
		return err
	}

	previous := inv.Quantity
	inv.Quantity += quantity
	now := s.now()
	inv.LastRestockedAt = &now

	if err := s.inventory.Update(ctx, inv); err != nil {
		return utils.Internal(err)
	}
	return s.recordTransaction(ctx, inv, models.TxStockIn, quantity, previous, nil, &referenceID, &performedBy)
}

func (s *InventoryService) ListTransactions(ctx context.Context, id uuid.UUID, actor AuthenticatedUser) ([]*models.InventoryTransaction, error) {
	inv, err := s.GetInventory(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireShopAccess(ctx, inv.ShopID, actor); err != nil {
		return nil, err
	}

	txs, err := s.inventory.ListTransactions(ctx, inv.ID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return txs, nil
}

func (s *InventoryService) recordTransaction(
	ctx context.Context,
	inv *models.Inventory,
	txType models.InventoryTransactionType,
	quantity, previous int,
	reason *string,
	referenceID, performedBy *uuid.UUID,
) error {
	tx := &models.InventoryTransaction{
		ID:               uuid.New(),
		InventoryID:      inv.ID,
		Type:             txType,
		Quantity:         quantity,
		PreviousQuantity: previous,
		NewQuantity:      inv.Quantity,
		Reason:           reason,
		ReferenceID:      referenceID,
		PerformedBy:      performedBy,
	}
	if err := s.inventory.CreateTransaction(ctx, tx); err != nil {
		return utils.Internal(err)
	}
	return nil
}

func (s *InventoryService) requireShopAccess(ctx context.Context, shopID uuid.UUID, actor AuthenticatedUser) error {
	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		return utils.Internal(err)
	}
	if shop == nil {
		return utils.NotFound("Shop not found")
	}
	return requireOwnerOrAdmin(actor, shop.OwnerID)
}
