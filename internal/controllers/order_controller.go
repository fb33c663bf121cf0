package controllers

import (
	"net/http"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Checkout turns the caller's cart into one order per shop.
func (c *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dtos.CreateOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	orders, err := c.orders.Checkout(r.Context(), user.UserID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, orders)
}

func (c *OrderController) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	orders, err := c.orders.ListMyOrders(r.Context(), user.UserID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

func (c *OrderController) ListByShop(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	shopID, ok := pathUUID(w, r, "shopId")
	if !ok {
		return
	}

	orders, err := c.orders.ListShopOrders(r.Context(), shopID, user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

func (c *OrderController) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "orderId")
	if !ok {
		return
	}

	order, err := c.orders.GetOrder(r.Context(), id, user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "orderId")
	if !ok {
		return
	}
	var req dtos.UpdateOrderStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := c.orders.UpdateStatus(r.Context(), id, user, models.OrderStatus(req.Status))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}
