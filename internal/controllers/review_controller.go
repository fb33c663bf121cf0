package controllers

import (
	"net/http"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

func (c *ReviewController) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	productID, ok := pathUUID(w, r, "productId")
	if !ok {
		return
	}
	var req dtos.CreateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	review, err := c.reviews.CreateReview(r.Context(), user.UserID, productID, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, review)
}

func (c *ReviewController) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathUUID(w, r, "productId")
	if !ok {
		return
	}

	reviews, err := c.reviews.ListByProduct(r.Context(), productID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reviews)
}

func (c *ReviewController) Update(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "reviewId")
	if !ok {
		return
	}
	var req dtos.UpdateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	review, err := c.reviews.UpdateReview(r.Context(), id, user, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, review)
}

func (c *ReviewController) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, "reviewId")
	if !ok {
		return
	}

	if err := c.reviews.DeleteReview(r.Context(), id, user); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
