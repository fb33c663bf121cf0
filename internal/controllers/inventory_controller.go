package controllers

import (
	"net/http"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type InventoryController struct {
	inventory *services.InventoryService
}

func NewInventoryController(inventory *services.InventoryService) *InventoryController {
	return &InventoryController{inventory: inventory}
}

func (c *InventoryController) ListByShop(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	shopID, ok := pathUUID(w, r, "shopId")
	if !ok {
		return
	}

	list, err := c.inventory.ListByShop(r.Context(), shopID, user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func (c *InventoryController) ListLowStock(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	shopID, ok := optionalShopID(w, r)
	if !ok {
		return
	}

	list, err := c.inventory.ListLowStock(r.Context(), shopID, user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, list)
}

func (c *InventoryController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "inventoryId")
	if !ok {
		return
	}

	inv, err := c.inventory.GetInventory(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inv)
}

func (c *InventoryController) Adjust(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "inventoryId")
	if !ok {
		return
	}
	var req dtos.AdjustStockRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	inv, err := c.inventory.AdjustStock(r.Context(), id, user, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inv)
}

func (c *InventoryController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "inventoryId")
	if !ok {
		return
	}
	var req dtos.UpdateInventoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	inv, err := c.inventory.UpdateSettings(r.Context(), id, user, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, inv)
}

func (c *InventoryController) Transactions(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "inventoryId")
	if !ok {
		return
	}

	txs, err := c.inventory.ListTransactions(r.Context(), id, user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, txs)
}
