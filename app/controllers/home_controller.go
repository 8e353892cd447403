package controllers

import (
	"net/http"
	"time"

	"github.com/ashidesu/Foodie-business/app/analytics"
	"github.com/ashidesu/Foodie-business/app/models"
)

// lastN: ambil maksimal n order terakhir, urutan terbaru dulu.
func lastN(orders []models.Order, n int) []models.Order {
	if len(orders) > n {
		orders = orders[len(orders)-n:]
	}

	out := make([]models.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		out = append(out, orders[i])
	}
	return out
}

// GET /home
func (server *Server) HomeIndex(w http.ResponseWriter, r *http.Request) {
	user := server.CurrentUser(w, r)
	SaveSelectedSection(w, r, "home")

	restaurantID, err := server.currentRestaurantID(user)
	if err != nil {
		SetFlash(w, r, "error", "Restaurant ID not found")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	period := analytics.ParsePeriod(r.URL.Query().Get("period"))
	now := time.Now()

	dishModel := models.Dish{}
	dishes, err := dishModel.GetByRestaurant(server.DB, restaurantID)
	if err != nil {
		server.renderHomeError(w, r, user, "Error fetching data: "+err.Error())
		return
	}

	orderModel := models.Order{}
	orders, err := orderModel.GetByRestaurant(server.DB, restaurantID)
	if err != nil {
		server.renderHomeError(w, r, user, "Error fetching data: "+err.Error())
		return
	}

	// GetByRestaurant urut terbaru dulu; agregasi pakai urutan kronologis
	// supaya tie-break "urutan kemunculan" cocok dengan urutan pesanan.
	chrono := make([]models.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		chrono = append(chrono, orders[i])
	}

	start, end := analytics.DateRange(now, period)
	completed := analytics.FilterCompleted(chrono, start, end)

	summary := analytics.Summarize(completed)
	series := analytics.RevenueSeries(completed, period, now)
	dishSales := analytics.DishSales(completed, dishes)

	var open []models.Order
	for _, o := range chrono {
		if o.IsOpen() {
			open = append(open, o)
		}
	}

	ren := dashboardRender()
	_ = ren.HTML(w, http.StatusOK, "home", map[string]interface{}{
		"user":            user,
		"section":         "home",
		"period":          string(period),
		"periods":         analytics.Periods,
		"summary":         summary,
		"revenueSeries":   series,
		"dishSales":       dishSales,
		"pendingOrders":   lastN(open, 5),
		"completedOrders": lastN(completed, 5),
		"now":             now,
		"success":         GetFlash(w, r, "success"),
		"error":           GetFlash(w, r, "error"),
	})
}

func (server *Server) renderHomeError(w http.ResponseWriter, r *http.Request, user *models.User, message string) {
	ren := dashboardRender()
	_ = ren.HTML(w, http.StatusOK, "home", map[string]interface{}{
		"user":       user,
		"section":    "home",
		"periods":    analytics.Periods,
		"fetchError": message,
	})
}
