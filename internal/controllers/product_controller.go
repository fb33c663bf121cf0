package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	shopID, ok := pathUUID(w, r, "shopId")
	if !ok {
		return
	}
	var req dtos.CreateProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	product, err := c.products.CreateProduct(r.Context(), shopID, user, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, product)
}

func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.products.ListProducts(r.Context())
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, products)
}

func (c *ProductController) ListByShop(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathUUID(w, r, "shopId")
	if !ok {
		return
	}

	products, err := c.products.ListProductsByShop(r.Context(), shopID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, products)
}

func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "productId")
	if !ok {
		return
	}

	product, err := c.products.GetProduct(r.Context(), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

func (c *ProductController) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := c.products.GetProductBySlug(r.Context(), slug)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "productId")
	if !ok {
		return
	}
	var req dtos.UpdateProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	product, err := c.products.UpdateProduct(r.Context(), id, user, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "productId")
	if !ok {
		return
	}

	if err := c.products.DeleteProduct(r.Context(), id, user); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
