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

type orderFixture struct {
	orders    *OrderService
	carts     *CartService
	inventory *fakeInventoryRepo

	shopper AuthenticatedUser
	owner   AuthenticatedUser
	shop    *models.Shop
	product *models.Product
	inv     *models.Inventory
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	ctx := context.Background()

	shopRepo := newFakeShopRepo()
	productRepo := newFakeProductRepo()
	inventoryRepo := newFakeInventoryRepo()
	cartRepo := newFakeCartRepo()
	orderRepo := newFakeOrderRepo()

	inventorySvc := NewInventoryService(inventoryRepo, shopRepo)
	cartSvc := NewCartService(cartRepo, productRepo)
	orderSvc := NewOrderService(orderRepo, cartSvc, productRepo, shopRepo, inventorySvc)

	ownerID := uuid.New()
	shop := &models.Shop{ID: uuid.New(), OwnerID: ownerID, Name: "Fixture Shop", Slug: "fixture-shop", Status: models.ShopActive}
	require.NoError(t, shopRepo.Create(ctx, shop))

	product := &models.Product{
		ID:       uuid.New(),
		ShopID:   shop.ID,
		Name:     "Widget",
		Slug:     "widget",
		SKU:      "WID-1",
		Price:    19.99,
		StockQty: 50,
		Status:   models.ProductActive,
	}
	require.NoError(t, productRepo.Create(ctx, product))

	inv := &models.Inventory{
		ID:        uuid.New(),
		ProductID: product.ID,
		ShopID:    shop.ID,
		Quantity:  50,
	}
	require.NoError(t, inventoryRepo.Create(ctx, inv))

	return &orderFixture{
		orders:    orderSvc,
		carts:     cartSvc,
		inventory: inventoryRepo,
		shopper:   AuthenticatedUser{UserID: uuid.New(), Role: models.RoleShopper},
		owner:     AuthenticatedUser{UserID: ownerID, Role: models.RoleShopOwner},
		shop:      shop,
		product:   product,
		inv:       inv,
	}
}

func (f *orderFixture) fillCart(t *testing.T, quantity int) {
	t.Helper()
	_, err := f.carts.AddItem(context.Background(), f.shopper.UserID, dtos.AddCartItemRequest{
		ProductID: f.product.ID,
		Quantity:  quantity,
	})
	require.NoError(t, err)
}

func TestCheckoutCreatesOrderAndReservesStock(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.fillCart(t, 3)

	orders, err := f.orders.Checkout(ctx, f.shopper.UserID, dtos.CreateOrderRequest{})
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, models.OrderPending, order.Status)
	assert.Equal(t, f.shop.ID, order.ShopID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.InDelta(t, 19.99, order.Items[0].UnitPrice, 0.001)
	assert.InDelta(t, 59.97, order.Total, 0.001)
	assert.NotEmpty(t, order.OrderNumber)

	// Stock is reserved, not yet removed from the shelf count.
	inv, err := f.inventory.GetByID(ctx, f.inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, inv.Quantity)
	assert.Equal(t, 3, inv.ReservedQuantity)

	// Cart is emptied.
	cart, err := f.carts.GetCart(ctx, f.shopper.UserID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.orders.Checkout(context.Background(), f.shopper.UserID, dtos.CreateOrderRequest{})
	require.Error(t, err)
	assert.Equal(t, 400, err.(*utils.AppError).StatusCode)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	f := newOrderFixture(t)
	f.fillCart(t, 60)

	_, err := f.orders.Checkout(context.Background(), f.shopper.UserID, dtos.CreateOrderRequest{})
	require.Error(t, err)
	assert.Equal(t, utils.ErrCodeInsufficientStock, err.(*utils.AppError).Code)
}

func TestShippingCommitsStock(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.fillCart(t, 5)

	orders, err := f.orders.Checkout(ctx, f.shopper.UserID, dtos.CreateOrderRequest{})
	require.NoError(t, err)
	orderID := orders[0].ID

	_, err = f.orders.UpdateStatus(ctx, orderID, f.owner, models.OrderProcessing)
	require.NoError(t, err)
	_, err = f.orders.UpdateStatus(ctx, orderID, f.owner, models.OrderShipped)
	require.NoError(t, err)

	inv, err := f.inventory.GetByID(ctx, f.inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 45, inv.Quantity)
	assert.Equal(t, 0, inv.ReservedQuantity)

	txs, err := f.inventory.ListTransactions(ctx, f.inv.ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, models.TxStockOut, txs[0].Type)
}

func TestCancellationReleasesReservation(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.fillCart(t, 5)

	orders, err := f.orders.Checkout(ctx, f.shopper.UserID, dtos.CreateOrderRequest{})
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(ctx, orders[0].ID, f.shopper, models.OrderCancelled)
	require.NoError(t, err)

	inv, err := f.inventory.GetByID(ctx, f.inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, inv.Quantity)
	assert.Equal(t, 0, inv.ReservedQuantity)
}

func TestShopperCannotShipOrders(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.fillCart(t, 1)

	orders, err := f.orders.Checkout(ctx, f.shopper.UserID, dtos.CreateOrderRequest{})
	require.NoError(t, err)

	_, err = f.orders.UpdateStatus(ctx, orders[0].ID, f.shopper, models.OrderProcessing)
	require.Error(t, err)
	assert.Equal(t, 403, err.(*utils.AppError).StatusCode)
}

func TestInvalidStatusTransition(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.fillCart(t, 1)

	orders, err := f.orders.Checkout(ctx, f.shopper.UserID, dtos.CreateOrderRequest{})
	require.NoError(t, err)

	// pending -> delivered skips two states.
	_, err = f.orders.UpdateStatus(ctx, orders[0].ID, f.owner, models.OrderDelivered)
	require.Error(t, err)
	assert.Equal(t, 400, err.(*utils.AppError).StatusCode)
}

func TestOrderAccessScoping(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	f.fillCart(t, 1)

	orders, err := f.orders.Checkout(ctx, f.shopper.UserID, dtos.CreateOrderRequest{})
	require.NoError(t, err)

	stranger := AuthenticatedUser{UserID: uuid.New(), Role: models.RoleShopper}
	_, err = f.orders.GetOrder(ctx, orders[0].ID, stranger)
	require.Error(t, err)
	assert.Equal(t, 403, err.(*utils.AppError).StatusCode)

	// Buyer and shop owner both see it.
	_, err = f.orders.GetOrder(ctx, orders[0].ID, f.shopper)
	require.NoError(t, err)
	_, err = f.orders.GetOrder(ctx, orders[0].ID, f.owner)
	require.NoError(t, err)
}
