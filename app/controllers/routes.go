package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (server *Server) initializeRoutes() {
	server.Router = mux.NewRouter()
	server.Router.HandleFunc("/", server.RequireBusiness(server.Root)).Methods("GET")

	// AUTH
	server.Router.HandleFunc("/login", server.Login).Methods("GET")
	server.Router.HandleFunc("/login", server.DoLogin).Methods("POST")
	server.Router.HandleFunc("/login/guest", server.DoGuestLogin).Methods("POST")
	server.Router.HandleFunc("/register", server.Register).Methods("GET")
	server.Router.HandleFunc("/register", server.DoRegister).Methods("POST")
	server.Router.HandleFunc("/logout", server.Logout).Methods("GET")

	server.Router.HandleFunc("/forgot-password", server.ForgotPassword).Methods("GET")
	server.Router.HandleFunc("/forgot-password", server.DoForgotPassword).Methods("POST")
	server.Router.HandleFunc("/reset-password", server.ResetPassword).Methods("GET")
	server.Router.HandleFunc("/reset-password", server.DoResetPassword).Methods("POST")

	// DASHBOARD
	server.Router.HandleFunc("/home", server.RequireBusiness(server.HomeIndex)).Methods("GET")
	server.Router.HandleFunc("/performance", server.RequireBusiness(server.PerformanceIndex)).Methods("GET")

	// ORDERS
	server.Router.HandleFunc("/orders", server.RequireBusiness(server.OrdersIndex)).Methods("GET")
	server.Router.HandleFunc("/orders/{id}/status", server.RequireBusiness(server.OrderUpdateStatus)).Methods("POST")

	// MENU
	server.Router.HandleFunc("/menu", server.RequireBusiness(server.MenuIndex)).Methods("GET")
	server.Router.HandleFunc("/menu/new", server.RequireBusiness(server.MenuNew)).Methods("GET")
	server.Router.HandleFunc("/menu", server.RequireBusiness(server.MenuCreate)).Methods("POST")
	server.Router.HandleFunc("/menu/{id}/edit", server.RequireBusiness(server.MenuEdit)).Methods("GET")
	server.Router.HandleFunc("/menu/{id}", server.RequireBusiness(server.MenuUpdate)).Methods("POST")
	server.Router.HandleFunc("/menu/{id}/toggle", server.RequireBusiness(server.MenuToggleStatus)).Methods("POST")
	server.Router.HandleFunc("/menu/{id}/delete", server.RequireBusiness(server.MenuDelete)).Methods("POST")

	// SETTINGS
	server.Router.HandleFunc("/settings", server.RequireBusiness(server.SettingsIndex)).Methods("GET")
	server.Router.HandleFunc("/settings", server.RequireBusiness(server.SettingsUpdate)).Methods("POST")

	// STATIC FILES (CSS, JS, gambar di /public)
	staticFileDirectory := http.Dir("./public/")
	staticFileHandler := http.StripPrefix("/public/", http.FileServer(staticFileDirectory))
	server.Router.PathPrefix("/public/").Handler(staticFileHandler).Methods("GET")

	// UPLOADS (gambar dish & foto restoran dari storage driver local)
	uploadDir := http.Dir("./public/uploads")
	uploadHandler := http.StripPrefix("/uploads/", http.FileServer(uploadDir))
	server.Router.PathPrefix("/uploads/").Handler(uploadHandler).Methods("GET")
}
