package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/repositories"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

// OrderService turns carts into orders and walks them through the
// status machine. Stock is reserved at checkout, committed when the
// order ships and released if it is cancelled first.
type OrderService struct {
	orders    repositories.OrderRepository
	carts     *CartService
	products  repositories.ProductRepository
	shops     repositories.ShopRepository
	inventory *InventoryService
}

func NewOrderService(
	orders repositories.OrderRepository,
	carts *CartService,
	products repositories.ProductRepository,
	shops repositories.ShopRepository,
	inventory *InventoryService,
) *OrderService {
	return &OrderService{
		orders:    orders,
		carts:     carts,
		products:  products,
		shops:     shops,
		inventory: inventory,
	}
}

// Checkout converts the caller's cart into orders, one per shop, with
// unit prices snapshotted at checkout time. The cart is cleared on
// success.
func (s *OrderService) Checkout(ctx context.Context, userID uuid.UUID, req dtos.CreateOrderRequest) ([]*models.Order, error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, utils.BadRequest(utils.ErrCodeValidation, "Cart is empty")
	}

	type line struct {
		product  *models.Product
		quantity int
	}
	byShop := make(map[uuid.UUID][]line)
	for _, item := range cart.Items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, utils.Internal(err)
		}
		if product == nil {
			return nil, utils.NotFound("A product in the cart no longer exists")
		}
		if !product.IsInStock() {
			return nil, utils.BadRequest(utils.ErrCodeInsufficientStock, "Product "+product.Name+" is not available")
		}
		byShop[product.ShopID] = append(byShop[product.ShopID], line{product: product, quantity: item.Quantity})
	}

	var created []*models.Order
	for shopID, lines := range byShop {
		orderNumber, err := utils.GenerateOrderNumber("ORD")
		if err != nil {
			return nil, utils.Internal(err)
		}

		order := &models.Order{
			ID:          uuid.New(),
			UserID:      userID,
			ShopID:      shopID,
			OrderNumber: orderNumber,
			Status:      models.OrderPending,
			Notes:       req.Notes,
		}

		for _, l := range lines {
			if err := s.inventory.ReserveStock(ctx, l.product.ID, shopID, l.quantity); err != nil {
				return nil, err
			}
			order.Items = append(order.Items, models.OrderItem{
				ID:         uuid.New(),
				OrderID:    order.ID,
				ProductID:  l.product.ID,
				Quantity:   l.quantity,
				UnitPrice:  l.product.Price,
				TotalPrice: l.product.Price * float64(l.quantity),
			})
			order.Total += l.product.Price * float64(l.quantity)
		}

		if err := s.orders.Create(ctx, order); err != nil {
			return nil, utils.Internal(err)
		}
		utils.Logger.WithFields(map[string]interface{}{
			"orderId":     order.ID,
			"orderNumber": order.OrderNumber,
			"total":       order.Total,
		}).Info("Order placed")
		created = append(created, order)
	}

	if err := s.carts.ClearCart(ctx, userID); err != nil {
		return nil, err
	}
	return created, nil
}

// GetOrder is visible to the buyer, the shop owner and admins.
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID, actor AuthenticatedUser) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if order == nil {
		return nil, utils.NotFound("Order not found")
	}
	if err := s.requireOrderAccess(ctx, order, actor); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*models.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	return orders, nil
}

func (s *OrderService) ListShopOrders(ctx context.Context, shopID uuid.UUID, actor AuthenticatedUser) ([]*models.Order, error) {
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

// UpdateStatus moves an order through its lifecycle. Shipping commits
// the reserved stock; cancelling releases it.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, actor AuthenticatedUser, next models.OrderStatus) (*models.Order, error) {
	order, err := s.GetOrder(ctx, id, actor)
	if err != nil {
		return nil, err
	}

	// Buyers may only cancel their own orders; other transitions belong
	// to the shop side.
	if actor.Role == models.RoleShopper && next != models.OrderCancelled {
		return nil, utils.Forbidden("Shoppers can only cancel orders")
	}

	if !order.CanTransitionTo(next) {
		return nil, utils.BadRequest(utils.ErrCodeValidation,
			"Cannot move order from "+string(order.Status)+" to "+string(next))
	}

	switch next {
	case models.OrderShipped:
		for _, item := range order.Items {
			if err := s.inventory.CommitStock(ctx, item.ProductID, order.ShopID, item.Quantity, order.ID); err != nil {
				return nil, err
			}
		}
	case models.OrderCancelled:
		for _, item := range order.Items {
			if err := s.inventory.ReleaseStock(ctx, item.ProductID, order.ShopID, item.Quantity); err != nil {
				return nil, err
			}
		}
	}

	if err := s.orders.UpdateStatus(ctx, order.ID, next); err != nil {
		return nil, utils.Internal(err)
	}
	order.Status = next

	utils.Logger.WithFields(map[string]interface{}{
		"orderId": order.ID,
		"status":  next,
	}).Info("Order status updated")
	return order, nil
}

func (s *OrderService) requireOrderAccess(ctx context.Context, order *models.Order, actor AuthenticatedUser) error {
	if actor.Role == models.RoleAdmin || order.UserID == actor.UserID {
		return nil
	}
	shop, err := s.shops.GetByID(ctx, order.ShopID)
	if err != nil {
		return utils.Internal(err)
	}
	if shop != nil && shop.OwnerID == actor.UserID {
		return nil
	}
	return utils.Forbidden("You do not have access to this order")
}
