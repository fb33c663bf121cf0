package controllers

import (
	"net/http"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

func (c *CartController) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	cart, err := c.carts.GetCart(r.Context(), user.UserID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cart)
}

func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req dtos.AddCartItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cart, err := c.carts.AddItem(r.Context(), user.UserID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, cart)
}

func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemId")
	if !ok {
		return
	}
	var req dtos.UpdateCartItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cart, err := c.carts.UpdateItem(r.Context(), user.UserID, itemID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cart)
}

func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemId")
	if !ok {
		return
	}

	cart, err := c.carts.RemoveItem(r.Context(), user.UserID, itemID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, cart)
}

func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := c.carts.ClearCart(r.Context(), user.UserID); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
