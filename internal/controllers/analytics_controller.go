package controllers

import (
	"net/http"
	"strconv"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type AnalyticsController struct {
	analytics *services.AnalyticsService
}

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{analytics: analytics}
}

func (c *AnalyticsController) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	shopID, ok := optionalShopID(w, r)
	if !ok {
		return
	}

	stats, err := c.analytics.Dashboard(r.Context(), shopID, user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stats)
}

func (c *AnalyticsController) Sales(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	shopID, ok := optionalShopID(w, r)
	if !ok {
		return
	}
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	points, err := c.analytics.SalesOverTime(r.Context(), shopID, days, user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, points)
}

func (c *AnalyticsController) TopProducts(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	shopID, ok := optionalShopID(w, r)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := c.analytics.TopProducts(r.Context(), shopID, limit, user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, products)
}

func (c *AnalyticsController) OrderStatuses(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	shopID, ok := optionalShopID(w, r)
	if !ok {
		return
	}

	counts, err := c.analytics.OrderStatusBreakdown(r.Context(), shopID, user)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, counts)
}
