package controllers

import (
	"net/http"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type SupplierController struct {
	suppliers *services.SupplierService
}

func NewSupplierController(suppliers *services.SupplierService) *SupplierController {
	return &SupplierController{suppliers: suppliers}
}

func (c *SupplierController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dtos.CreateSupplierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	supplier, err := c.suppliers.CreateProfile(r.Context(), user.UserID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, supplier)
}

func (c *SupplierController) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := c.suppliers.ListSuppliers(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, suppliers)
}

func (c *SupplierController) GetMine(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	supplier, err := c.suppliers.GetByUser(r.Context(), user.UserID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, supplier)
}

func (c *SupplierController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "supplierId")
	if !ok {
		return
	}

	supplier, err := c.suppliers.GetSupplier(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, supplier)
}

func (c *SupplierController) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "supplierId")
	if !ok {
		return
	}
	var req dtos.UpdateSupplierRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	supplier, err := c.suppliers.UpdateProfile(r.Context(), id, user, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, supplier)
}
