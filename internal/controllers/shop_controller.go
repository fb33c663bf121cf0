package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type ShopController struct {
	shops *services.ShopService
}

func NewShopController(shops *services.ShopService) *ShopController {
	return &ShopController{shops: shops}
}

func (c *ShopController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dtos.CreateShopRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	shop, err := c.shops.CreateShop(r.Context(), user.UserID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, shop)
}

func (c *ShopController) List(w http.ResponseWriter, r *http.Request) {
	shops, err := c.shops.ListShops(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, shops)
}

func (c *ShopController) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	shops, err := c.shops.ListShopsByOwner(r.Context(), user.UserID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, shops)
}

func (c *ShopController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "shopId")
	if !ok {
		return
	}

	shop, err := c.shops.GetShop(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, shop)
}

func (c *ShopController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	shop, err := c.shops.GetShopBySlug(r.Context(), slug)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, shop)
}

func (c *ShopController) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "shopId")
	if !ok {
		return
	}
	var req dtos.UpdateShopRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	shop, err := c.shops.UpdateShop(r.Context(), id, user, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, shop)
}

func (c *ShopController) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "shopId")
	if !ok {
		return
	}

	if err := c.shops.DeleteShop(r.Context(), id, user); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
