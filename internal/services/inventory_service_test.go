package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type inventoryFixture struct {
	svc   *InventoryService
	repo  *fakeInventoryRepo
	inv   *models.Inventory
	owner AuthenticatedUser
}

func newInventoryFixture(t *testing.T) *inventoryFixture {
	t.Helper()

	shops := newFakeShopRepo()
	repo := newFakeInventoryRepo()
	svc := NewInventoryService(repo, shops)

	ownerID := uuid.New()
	shop := &models.Shop{ID: uuid.New(), OwnerID: ownerID, Name: "Test Shop", Slug: "test-shop", Status: models.ShopActive}
	require.NoError(t, shops.Create(context.Background(), shop))

	inv := &models.Inventory{
		ID:                uuid.New(),
		ProductID:         uuid.New(),
		ShopID:            shop.ID,
		Quantity:          100,
		ReservedQuantity:  10,
		LowStockThreshold: 5,
	}
	require.NoError(t, repo.Create(context.Background(), inv))

	return &inventoryFixture{
		svc:   svc,
		repo:  repo,
		inv:   inv,
		owner: AuthenticatedUser{UserID: ownerID, Role: models.RoleShopOwner},
	}
}

func TestAdjustStockIn(t *testing.T) {
	f := newInventoryFixture(t)

	updated, err := f.svc.AdjustStock(context.Background(), f.inv.ID, f.owner, dtos.AdjustStockRequest{
		Quantity: 50,
		Type:     "stock_in",
	})
	require.NoError(t, err)
	assert.Equal(t, 150, updated.Quantity)
	assert.NotNil(t, updated.LastRestockedAt)

	txs, err := f.repo.ListTransactions(context.Background(), f.inv.ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TxStockIn, txs[0].Type)
	assert.Equal(t, 100, txs[0].PreviousQuantity)
	assert.Equal(t, 150, txs[0].NewQuantity)
}

func TestAdjustStockOutRespectsReserved(t *testing.T) {
	f := newInventoryFixture(t)

	// Available is 90 (100 on hand, 10 reserved); taking 95 must fail.
	_, err := f.svc.AdjustStock(context.Background(), f.inv.ID, f.owner, dtos.AdjustStockRequest{
		Quantity: 95,
		Type:     "stock_out",
	})
	require.Error(t, err)
	assert.Equal(t, utils.ErrCodeInsufficientStock, err.(*utils.AppError).Code)

	updated, err := f.svc.AdjustStock(context.Background(), f.inv.ID, f.owner, dtos.AdjustStockRequest{
		Quantity: 90,
		Type:     "stock_out",
	})
	require.NoError(t, err)
	assert.Equal(t, 10, updated.Quantity)
}

func TestAdjustmentCannotUndercutReservations(t *testing.T) {
	f := newInventoryFixture(t)

	_, err := f.svc.AdjustStock(context.Background(), f.inv.ID, f.owner, dtos.AdjustStockRequest{
		Quantity: 4,
		Type:     "adjustment",
	})
	require.Error(t, err)

	updated, err := f.svc.AdjustStock(context.Background(), f.inv.ID, f.owner, dtos.AdjustStockRequest{
		Quantity: 25,
		Type:     "adjustment",
	})
	require.NoError(t, err)
	assert.Equal(t, 25, updated.Quantity)
}

func TestAdjustStockForbiddenForNonOwner(t *testing.T) {
	f := newInventoryFixture(t)
	stranger := AuthenticatedUser{UserID: uuid.New(), Role: models.RoleShopOwner}

	_, err := f.svc.AdjustStock(context.Background(), f.inv.ID, stranger, dtos.AdjustStockRequest{
		Quantity: 5,
		Type:     "stock_in",
	})
	require.Error(t, err)
	assert.Equal(t, 403, err.(*utils.AppError).StatusCode)
}

func TestReserveCommitFlow(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()
	orderID := uuid.New()

	require.NoError(t, f.svc.ReserveStock(ctx, f.inv.ProductID, f.inv.ShopID, 20))

	inv, err := f.svc.GetInventory(ctx, f.inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, inv.ReservedQuantity)
	assert.Equal(t, 70, inv.AvailableQuantity())

	require.NoError(t, f.svc.CommitStock(ctx, f.inv.ProductID, f.inv.ShopID, 20, orderID))

	inv, err = f.svc.GetInventory(ctx, f.inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 80, inv.Quantity)
	assert.Equal(t, 10, inv.ReservedQuantity)

	txs, err := f.repo.ListTransactions(ctx, f.inv.ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TxStockOut, txs[0].Type)
	require.NotNil(t, txs[0].ReferenceID)
	assert.Equal(t, orderID, *txs[0].ReferenceID)
}

func TestReserveFailsOnInsufficientStock(t *testing.T) {
	f := newInventoryFixture(t)

	err := f.svc.ReserveStock(context.Background(), f.inv.ProductID, f.inv.ShopID, 91)
	require.Error(t, err)
	assert.Equal(t, utils.ErrCodeInsufficientStock, err.(*utils.AppError).Code)
}

func TestReleaseStockClampsToReserved(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	// Releasing more than reserved just drains the reservation.
	require.NoError(t, f.svc.ReleaseStock(ctx, f.inv.ProductID, f.inv.ShopID, 50))

	inv, err := f.svc.GetInventory(ctx, f.inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, inv.ReservedQuantity)
	assert.Equal(t, 100, inv.Quantity)
}

func TestLowStockListing(t *testing.T) {
	f := newInventoryFixture(t)
	ctx := context.Background()

	low, err := f.svc.ListLowStock(ctx, &f.inv.ShopID, f.owner)
	require.NoError(t, err)
	assert.Empty(t, low)

	// Drain stock down to the threshold.
	_, err = f.svc.AdjustStock(ctx, f.inv.ID, f.owner, dtos.AdjustStockRequest{
		Quantity: 15,
		Type:     "adjustment",
	})
	require.NoError(t, err)

	low, err = f.svc.ListLowStock(ctx, &f.inv.ShopID, f.owner)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, f.inv.ID, low[0].ID)
}
