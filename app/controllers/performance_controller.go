package controllers

import (
	"net/http"
	"time"

	"github.com/ashidesu/Foodie-business/app/analytics"
	"github.com/ashidesu/Foodie-business/app/models"
)

// GET /performance
func (server *Server) PerformanceIndex(w http.ResponseWriter, r *http.Request) {
	user := server.CurrentUser(w, r)
	SaveSelectedSection(w, r, "performance")

	restaurantID, err := server.currentRestaurantID(user)
	if err != nil {
		SetFlash(w, r, "error", "Restaurant ID not found in user document")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	period := analytics.ParsePeriod(r.URL.Query().Get("period"))
	now := time.Now()

	dishModel := models.Dish{}
	dishes, err := dishModel.GetByRestaurant(server.DB, restaurantID)
	if err != nil {
		server.renderPerformanceError(w, r, user, err.Error())
		return
	}

	orderModel := models.Order{}
	orders, err := orderModel.GetByRestaurant(server.DB, restaurantID)
	if err != nil {
		server.renderPerformanceError(w, r, user, err.Error())
		return
	}

	chrono := make([]models.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		chrono = append(chrono, orders[i])
	}

	start, end := analytics.DateRange(now, period)
	completed := analytics.FilterCompleted(chrono, start, end)

	summary := analytics.Summarize(completed)
	series := analytics.RevenueSeries(completed, period, now)
	dishSales := analytics.DishSales(completed, dishes)
	topDishes := analytics.TopDishesByRevenue(dishSales, 10)
	topPairs := analytics.TopPairs(completed, 10)

	// dish terpilih untuk chart per-dish (checkbox)
	r.ParseForm()
	selected := r.Form["dish"]
	dishSeries := analytics.DishSeries(completed, selected, period, now)

	ren := dashboardRender()
	_ = ren.HTML(w, http.StatusOK, "performance", map[string]interface{}{
		"user":          user,
		"section":       "performance",
		"period":        string(period),
		"periods":       analytics.Periods,
		"summary":       summary,
		"revenueSeries": series,
		"dishSales":     dishSales,
		"topDishes":     topDishes,
		"topPairs":      topPairs,
		"dishes":        dishes,
		"selected":      selected,
		"dishSeries":    dishSeries,
		"success":       GetFlash(w, r, "success"),
		"error":         GetFlash(w, r, "error"),
	})
}

func (server *Server) renderPerformanceError(w http.ResponseWriter, r *http.Request, user *models.User, message string) {
	ren := dashboardRender()
	_ = ren.HTML(w, http.StatusOK, "performance", map[string]interface{}{
		"user":       user,
		"section":    "performance",
		"periods":    analytics.Periods,
		"fetchError": message,
	})
}
