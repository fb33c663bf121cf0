package controllers

import (
	"net/http"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type SupplierOrderController struct {
	orders *services.SupplierOrderService
}

func NewSupplierOrderController(orders *services.SupplierOrderService) *SupplierOrderController {
	return &SupplierOrderController{orders: orders}
}

func (c *SupplierOrderController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	shopID, ok := pathUUID(w, r, "shopId")
	if !ok {
		return
	}
	var req dtos.CreateSupplierOrderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := c.orders.Create(r.Context(), shopID, user, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, order)
}

func (c *SupplierOrderController) ListByShop(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	shopID, ok := pathUUID(w, r, "shopId")
	if !ok {
		return
	}

	orders, err := c.orders.ListByShop(r.Context(), shopID, user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// ListMine lists supplier orders addressed to the caller's profile.
func (c *SupplierOrderController) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	orders, err := c.orders.ListMine(r.Context(), user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, orders)
}

func (c *SupplierOrderController) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "supplierOrderId")
	if !ok {
		return
	}

	order, err := c.orders.Get(r.Context(), id, user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}

func (c *SupplierOrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "supplierOrderId")
	if !ok {
		return
	}
	var req dtos.UpdateSupplierOrderStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	order, err := c.orders.UpdateStatus(r.Context(), id, user, models.SupplierOrderStatus(req.Status))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, order)
}
