package controllers

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ashidesu/Foodie-business/app/models"
)

// GET /settings
func (server *Server) SettingsIndex(w http.ResponseWriter, r *http.Request) {
	user := server.CurrentUser(w, r)
	SaveSelectedSection(w, r, "settings")

	restaurantID, err := server.currentRestaurantID(user)
	if err != nil {
		SetFlash(w, r, "error", "No restaurant associated with this user")
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	restaurantModel := models.Restaurant{}
	restaurant, err := restaurantModel.FindByID(server.DB, restaurantID)
	if err != nil {
		SetFlash(w, r, "error", "Restaurant not found")
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	photoURL := ""
	if restaurant.PhotoKey != "" {
		photoURL = server.Storage.PublicURL(bucketRestaurants, restaurant.PhotoKey)
	}

	ren := dashboardRender()
	_ = ren.HTML(w, http.StatusOK, "settings", map[string]interface{}{
		"user":       user,
		"section":    "settings",
		"restaurant": restaurant,
		"areas":      strings.Join(restaurant.AreaList(), ", "),
		"openHours":  restaurant.OpenHours.Normalized(),
		"weekdays":   models.WeekdayKeys,
		"photoURL":   photoURL,
		"success":    GetFlash(w, r, "success"),
		"error":      GetFlash(w, r, "error"),
	})
}

// POST /settings
func (server *Server) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	user := server.CurrentUser(w, r)

	restaurantID, err := server.currentRestaurantID(user)
	if err != nil {
		SetFlash(w, r, "error", "No restaurant associated with this user")
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	restaurantModel := models.Restaurant{}
	restaurant, err := restaurantModel.FindByID(server.DB, restaurantID)
	if err != nil {
		SetFlash(w, r, "error", "Restaurant not found")
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil && err != http.ErrNotMultipart {
		SetFlash(w, r, "error", "Invalid form data")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	name := r.FormValue("name")
	location := r.FormValue("location")
	if name == "" || location == "" {
		SetFlash(w, r, "error", "Name and location are required.")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	restaurant.Name = name
	restaurant.Location = location
	restaurant.SetAreaList(r.FormValue("delivery_areas"))

	hours := models.OpenHours{}
	for _, day := range models.WeekdayKeys {
		enabled := r.FormValue(day+"_enabled") != ""
		open := r.FormValue(day + "_open")
		closeAt := r.FormValue(day + "_close")
		hours.SetSchedule(day, enabled, open, closeAt)
	}
	restaurant.OpenHours = hours

	// foto baru opsional, key pakai restaurant ID supaya overwrite
	file, header, err := r.FormFile("photo")
	if err == nil {
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		key := restaurant.ID + ext
		if uploadErr := server.Storage.Upload(r.Context(), bucketRestaurants, key, file); uploadErr != nil {
			log.Println("upload restaurant photo error:", uploadErr)
			SetFlash(w, r, "error", "Photo upload failed. Other settings were saved.")
		} else {
			restaurant.PhotoKey = key
		}
	} else if err != http.ErrMissingFile {
		log.Println("FormFile photo error:", err)
	}

	if err := server.DB.Save(restaurant).Error; err != nil {
		SetFlash(w, r, "error", "Update failed. Please try again.")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", "Settings updated successfully!")
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}
