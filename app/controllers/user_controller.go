package controllers

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/ashidesu/Foodie-business/app/models"
	"github.com/google/uuid"
)

func (server *Server) Login(w http.ResponseWriter, r *http.Request) {
	ren := dashboardRender()

	data := map[string]interface{}{
		"user":  nil,
		"error": GetFlash(w, r, "error"),
		"info":  GetFlash(w, r, "success"),
	}

	_ = ren.HTML(w, http.StatusOK, "login", data)
}

// checkBusinessRole: gate utama dashboard. Kalau flag business tidak ada,
// user langsung di-sign-out lagi.
func (server *Server) checkBusinessRole(w http.ResponseWriter, r *http.Request) bool {
	user := server.CurrentUser(w, r)
	if user == nil || !user.IsBusiness {
		destroySession(w, r)
		SetFlash(w, r, "error", "Access denied. Business account required.")
		return false
	}
	return true
}

func (server *Server) DoLogin(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	userModel := models.User{}
	user, err := userModel.FindByEmail(server.DB, email)
	if err != nil {
		SetFlash(w, r, "error", "email or password invalid")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if !ComparePassword(password, user.Password) {
		SetFlash(w, r, "error", "email or password invalid")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	session, _ := store.Get(r, sessionUser)
	session.Values["id"] = user.ID
	session.Save(r, w)

	if !server.checkBusinessRole(w, r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

// DoGuestLogin: sign-in anonim. Akun guest tidak punya flag business, jadi
// gate di bawah selalu menolaknya, sama seperti perilaku lama.
func (server *Server) DoGuestLogin(w http.ResponseWriter, r *http.Request) {
	guest := &models.User{
		ID:        uuid.New().String(),
		FirstName: "Guest",
		Email:     "guest-" + uuid.New().String() + "@guest.local",
		IsGuest:   true,
	}

	userModel := models.User{}
	user, err := userModel.CreateUser(server.DB, guest)
	if err != nil {
		SetFlash(w, r, "error", "Sorry, guest sign-in failed")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	session, _ := store.Get(r, sessionUser)
	session.Values["id"] = user.ID
	session.Save(r, w)

	if !server.checkBusinessRole(w, r) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (server *Server) Register(w http.ResponseWriter, r *http.Request) {
	ren := dashboardRender()

	data := map[string]interface{}{
		"user":  nil,
		"error": GetFlash(w, r, "error"),
	}

	_ = ren.HTML(w, http.StatusOK, "register", data)
}

// DoRegister: daftar akun business baru sekaligus buat record restorannya.
func (server *Server) DoRegister(w http.ResponseWriter, r *http.Request) {
	firstName := r.FormValue("first_name")
	lastName := r.FormValue("last_name")
	email := r.FormValue("email")
	password := r.FormValue("password")
	restaurantName := r.FormValue("restaurant_name")

	if firstName == "" || email == "" || password == "" || restaurantName == "" {
		SetFlash(w, r, "error", "Name, email, password and restaurant name are required!")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	userModel := models.User{}
	existUser, _ := userModel.FindByEmail(server.DB, email)
	if existUser != nil {
		SetFlash(w, r, "error", "Sorry, email already registered")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	restaurant := models.Restaurant{
		ID:        uuid.New().String(),
		Name:      restaurantName,
		OpenHours: models.OpenHours{},
	}
	if err := server.DB.Create(&restaurant).Error; err != nil {
		SetFlash(w, r, "error", "Sorry, registration failed")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	hashedPassword, _ := MakePassword(password)
	params := &models.User{
		ID:           uuid.New().String(),
		RestaurantID: restaurant.ID,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Password:     hashedPassword,
		IsBusiness:   true,
	}

	user, err := userModel.CreateUser(server.DB, params)
	if err != nil {
		SetFlash(w, r, "error", "Sorry, registration failed")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	session, _ := store.Get(r, sessionUser)
	session.Values["id"] = user.ID
	session.Save(r, w)

	http.Redirect(w, r, "/home", http.StatusSeeOther)
}

func (server *Server) Logout(w http.ResponseWriter, r *http.Request) {
	destroySession(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (server *Server) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	ren := dashboardRender()

	data := map[string]interface{}{
		"user":    nil,
		"error":   GetFlash(w, r, "error"),
		"flashes": GetFlash(w, r, "success"),
	}

	_ = ren.HTML(w, http.StatusOK, "forgot_password", data)
}

func (server *Server) DoForgotPassword(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	if email == "" {
		SetFlash(w, r, "error", "Please enter your email address first")
		http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
		return
	}

	userModel := models.User{}
	user, err := userModel.FindByEmail(server.DB, email)
	if err != nil {
		// jangan bocorkan email mana yang terdaftar
		SetFlash(w, r, "success", "Password reset email sent! Check your inbox.")
		http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
		return
	}

	token := uuid.New().String()
	user.ResetToken = sql.NullString{String: token, Valid: true}
	user.ResetSentAt = sql.NullTime{Time: time.Now(), Valid: true}
	if err := server.DB.Save(user).Error; err != nil {
		SetFlash(w, r, "error", "Failed to start password reset. Please try again.")
		http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
		return
	}

	if server.Mailer.Enabled() {
		resetURL := server.AppConfig.AppURL + "/reset-password?token=" + token
		if err := server.Mailer.SendPasswordReset(user.Email, resetURL); err != nil {
			log.Println("send reset email error:", err)
		}
	}

	SetFlash(w, r, "success", "Password reset email sent! Check your inbox.")
	http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
}

func (server *Server) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ren := dashboardRender()

	data := map[string]interface{}{
		"user":  nil,
		"token": r.URL.Query().Get("token"),
		"error": GetFlash(w, r, "error"),
	}

	_ = ren.HTML(w, http.StatusOK, "reset_password", data)
}

func (server *Server) DoResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.FormValue("token")
	password := r.FormValue("password")
	confirm := r.FormValue("password_confirmation")

	if token == "" || password == "" {
		SetFlash(w, r, "error", "Token and new password are required.")
		http.Redirect(w, r, "/reset-password?token="+token, http.StatusSeeOther)
		return
	}
	if password != confirm {
		SetFlash(w, r, "error", "Password confirmation does not match.")
		http.Redirect(w, r, "/reset-password?token="+token, http.StatusSeeOther)
		return
	}

	userModel := models.User{}
	user, err := userModel.FindByResetToken(server.DB, token)
	if err != nil {
		SetFlash(w, r, "error", "Reset link is invalid or already used.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// link reset berlaku 24 jam
	if !user.ResetSentAt.Valid || time.Since(user.ResetSentAt.Time) > 24*time.Hour {
		SetFlash(w, r, "error", "Reset link has expired. Please request a new one.")
		http.Redirect(w, r, "/forgot-password", http.StatusSeeOther)
		return
	}

	hashed, err := MakePassword(password)
	if err != nil {
		SetFlash(w, r, "error", "Failed to process the new password.")
		http.Redirect(w, r, "/reset-password?token="+token, http.StatusSeeOther)
		return
	}

	user.Password = hashed
	user.ResetToken = sql.NullString{}
	user.ResetSentAt = sql.NullTime{}
	if err := server.DB.Save(user).Error; err != nil {
		SetFlash(w, r, "error", "Failed to save the new password.")
		http.Redirect(w, r, "/reset-password?token="+token, http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", "Password updated. Please log in.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
