package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/ashidesu/Foodie-business/app/consts"
	"github.com/ashidesu/Foodie-business/app/models"
	"github.com/gorilla/mux"
)

// Label tab di papan order.
var orderTabLabels = map[string]string{
	consts.OrderStatusPending:        "New Orders",
	consts.OrderStatusPreparing:      "Preparing",
	consts.OrderStatusReady:          "Ready for Pickup",
	consts.OrderStatusOutForDelivery: "Out for Delivery",
	consts.OrderStatusCompleted:      "Completed",
}

type orderTab struct {
	Key    string
	Label  string
	Count  int
	Active bool
}

// GET /orders
func (server *Server) OrdersIndex(w http.ResponseWriter, r *http.Request) {
	user := server.CurrentUser(w, r)
	SaveSelectedSection(w, r, "orders")

	restaurantID, err := server.currentRestaurantID(user)
	if err != nil {
		SetFlash(w, r, "error", "Restaurant ID not found")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	activeTab := r.URL.Query().Get("tab")
	if _, ok := orderTabLabels[activeTab]; !ok {
		activeTab = consts.OrderStatusPending
	}

	orderModel := models.Order{}
	orders, err := orderModel.GetByRestaurant(server.DB, restaurantID)
	if err != nil {
		SetFlash(w, r, "error", "Failed to load orders: "+err.Error())
		orders = nil
	}

	counts := map[string]int{}
	for _, o := range orders {
		counts[o.Status]++
	}

	var tabs []orderTab
	for _, key := range consts.OrderStatusTabs {
		tabs = append(tabs, orderTab{
			Key:    key,
			Label:  orderTabLabels[key],
			Count:  counts[key],
			Active: key == activeTab,
		})
	}

	var filtered []models.Order
	for _, o := range orders {
		if o.Status == activeTab {
			filtered = append(filtered, o)
		}
	}

	ren := dashboardRender()
	_ = ren.HTML(w, http.StatusOK, "orders", map[string]interface{}{
		"user":       user,
		"section":    "orders",
		"tabs":       tabs,
		"activeTab":  activeTab,
		"tabLabel":   orderTabLabels[activeTab],
		"orders":     filtered,
		"counts":     counts,
		"now":        time.Now(),
		"success":    GetFlash(w, r, "success"),
		"error":      GetFlash(w, r, "error"),
	})
}

// POST /orders/{id}/status
// Transisi hanya maju: pending->preparing (accept), pending->cancelled
// (reject), preparing->ready, ready->out for delivery,
// out for delivery->completed. Gagal update = flash error, status lama
// tetap tampil; tidak ada retry otomatis.
func (server *Server) OrderUpdateStatus(w http.ResponseWriter, r *http.Request) {
	user := server.CurrentUser(w, r)
	id := mux.Vars(r)["id"]

	redirectTo := r.FormValue("redirect")
	if redirectTo == "" {
		redirectTo = "/orders"
	}

	if err := r.ParseForm(); err != nil {
		SetFlash(w, r, "error", "Failed to read the requested status.")
		http.Redirect(w, r, redirectTo, http.StatusSeeOther)
		return
	}

	newStatus := r.FormValue("status")
	if !consts.IsValidOrderStatus(newStatus) {
		SetFlash(w, r, "error", "Invalid order status.")
		http.Redirect(w, r, redirectTo, http.StatusSeeOther)
		return
	}

	orderModel := models.Order{}
	order, err := orderModel.FindByID(server.DB, id)
	if err != nil {
		SetFlash(w, r, "error", "Order not found.")
		http.Redirect(w, r, redirectTo, http.StatusSeeOther)
		return
	}

	// order milik restoran lain tidak boleh disentuh
	if user == nil || order.RestaurantID != user.RestaurantID {
		SetFlash(w, r, "error", "Order not found.")
		http.Redirect(w, r, redirectTo, http.StatusSeeOther)
		return
	}

	if err := order.UpdateStatus(server.DB, newStatus); err != nil {
		log.Println("OrderUpdateStatus:", err)
		SetFlash(w, r, "error", "Failed to update order. Please try again.")
		http.Redirect(w, r, redirectTo, http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", "Order moved to "+newStatus+".")
	http.Redirect(w, r, redirectTo, http.StatusSeeOther)
}
