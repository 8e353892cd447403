package controllers

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/ashidesu/Foodie-business/app/consts"
	"github.com/ashidesu/Foodie-business/app/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

type dishView struct {
	models.Dish
	ImageURL string
}

// GET /menu
func (server *Server) MenuIndex(w http.ResponseWriter, r *http.Request) {
	user := server.CurrentUser(w, r)
	SaveSelectedSection(w, r, "menu")

	restaurantID, err := server.currentRestaurantID(user)
	if err != nil {
		SetFlash(w, r, "error", "Please finish your restaurant profile first")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	dishModel := models.Dish{}
	dishes, err := dishModel.GetByRestaurant(server.DB, restaurantID)
	if err != nil {
		SetFlash(w, r, "error", "Failed to load dishes. Please try again.")
		dishes = nil
	}

	category := r.URL.Query().Get("category")
	status := r.URL.Query().Get("status")

	var views []dishView
	for _, d := range dishes {
		if category != "" && d.Category != category {
			continue
		}
		if status != "" && d.Status != status {
			continue
		}

		view := dishView{Dish: d}
		if d.ImageKey != "" {
			view.ImageURL = server.Storage.PublicURL(bucketDishes, d.ImageKey)
		}
		views = append(views, view)
	}

	ren := dashboardRender()
	_ = ren.HTML(w, http.StatusOK, "menu", map[string]interface{}{
		"user":       user,
		"section":    "menu",
		"dishes":     views,
		"categories": consts.DishCategories,
		"category":   category,
		"status":     status,
		"success":    GetFlash(w, r, "success"),
		"error":      GetFlash(w, r, "error"),
	})
}

// GET /menu/new
func (server *Server) MenuNew(w http.ResponseWriter, r *http.Request) {
	user := server.CurrentUser(w, r)

	ren := dashboardRender()
	_ = ren.HTML(w, http.StatusOK, "dish_form", map[string]interface{}{
		"user":       user,
		"section":    "menu",
		"dish":       models.Dish{},
		"categories": consts.DishCategories,
		"isEdit":     false,
		"error":      GetFlash(w, r, "error"),
	})
}

// uploadDishImage: simpan gambar dengan key <dishID>.<ext>, jadi upload
// ulang menimpa gambar lama di tempat.
func (server *Server) uploadDishImage(r *http.Request, dishID string) (string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err == http.ErrMissingFile {
			return "", nil
		}
		return "", err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := dishID + ext

	if err := server.Storage.Upload(r.Context(), bucketDishes, key, file); err != nil {
		return "", err
	}
	return key, nil
}

// POST /menu
func (server *Server) MenuCreate(w http.ResponseWriter, r *http.Request) {
	user := server.CurrentUser(w, r)

	restaurantID, err := server.currentRestaurantID(user)
	if err != nil {
		SetFlash(w, r, "error", "Please finish your restaurant profile first")
		http.Redirect(w, r, "/settings", http.StatusSeeOther)
		return
	}

	name := r.FormValue("name")
	category := r.FormValue("category")
	priceStr := r.FormValue("price")
	description := r.FormValue("description")

	if name == "" || category == "" || priceStr == "" || description == "" {
		SetFlash(w, r, "error", "All fields are required.")
		http.Redirect(w, r, "/menu/new", http.StatusSeeOther)
		return
	}
	if !consts.IsValidDishCategory(category) {
		SetFlash(w, r, "error", "Unknown category.")
		http.Redirect(w, r, "/menu/new", http.StatusSeeOther)
		return
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil || price.IsNegative() {
		SetFlash(w, r, "error", "Invalid price format.")
		http.Redirect(w, r, "/menu/new", http.StatusSeeOther)
		return
	}

	dishID := uuid.New().String()

	imageKey, err := server.uploadDishImage(r, dishID)
	if err != nil {
		// upload gagal tidak memblokir pembuatan dish
		log.Println("upload dish image error:", err)
	}

	now := time.Now()
	dish := models.Dish{
		ID:           dishID,
		RestaurantID: restaurantID,
		Name:         name,
		Slug:         slug.Make(name),
		Category:     category,
		Price:        price,
		Description:  description,
		ImageKey:     imageKey,
		Status:       consts.DishStatusAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := server.DB.Create(&dish).Error; err != nil {
		SetFlash(w, r, "error", "Failed to save the dish: "+err.Error())
		http.Redirect(w, r, "/menu/new", http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", "Dish added successfully!")
	http.Redirect(w, r, "/menu", http.StatusSeeOther)
}

// findOwnedDish: dish harus milik restoran user yang login.
func (server *Server) findOwnedDish(w http.ResponseWriter, r *http.Request) *models.Dish {
	user := server.CurrentUser(w, r)
	id := mux.Vars(r)["id"]

	dishModel := models.Dish{}
	dish, err := dishModel.FindByID(server.DB, id)
	if err != nil || user == nil || dish.RestaurantID != user.RestaurantID {
		SetFlash(w, r, "error", "Dish not found")
		return nil
	}
	return dish
}

// GET /menu/{id}/edit
func (server *Server) MenuEdit(w http.ResponseWriter, r *http.Request) {
	user := server.CurrentUser(w, r)

	dish := server.findOwnedDish(w, r)
	if dish == nil {
		http.Redirect(w, r, "/menu", http.StatusSeeOther)
		return
	}

	imageURL := ""
	if dish.ImageKey != "" {
		imageURL = server.Storage.PublicURL(bucketDishes, dish.ImageKey)
	}

	ren := dashboardRender()
	_ = ren.HTML(w, http.StatusOK, "dish_form", map[string]interface{}{
		"user":       user,
		"section":    "menu",
		"dish":       dish,
		"imageURL":   imageURL,
		"categories": consts.DishCategories,
		"isEdit":     true,
		"error":      GetFlash(w, r, "error"),
	})
}

// POST /menu/{id}
func (server *Server) MenuUpdate(w http.ResponseWriter, r *http.Request) {
	dish := server.findOwnedDish(w, r)
	if dish == nil {
		http.Redirect(w, r, "/menu", http.StatusSeeOther)
		return
	}

	name := r.FormValue("name")
	category := r.FormValue("category")
	priceStr := r.FormValue("price")
	description := r.FormValue("description")

	if name == "" || category == "" || priceStr == "" || description == "" {
		SetFlash(w, r, "error", "All fields are required.")
		http.Redirect(w, r, "/menu/"+dish.ID+"/edit", http.StatusSeeOther)
		return
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil || price.IsNegative() {
		SetFlash(w, r, "error", "Invalid price format.")
		http.Redirect(w, r, "/menu/"+dish.ID+"/edit", http.StatusSeeOther)
		return
	}

	dish.Name = name
	dish.Slug = slug.Make(name)
	dish.Category = category
	dish.Price = price
	dish.Description = description
	dish.UpdatedAt = time.Now()

	// gambar baru opsional; kalau ada, timpa yang lama (key pakai dish ID)
	imageKey, err := server.uploadDishImage(r, dish.ID)
	if err != nil {
		log.Println("upload dish image error:", err)
	} else if imageKey != "" {
		dish.ImageKey = imageKey
	}

	if err := server.DB.Save(dish).Error; err != nil {
		SetFlash(w, r, "error", "Failed to update the dish: "+err.Error())
		http.Redirect(w, r, "/menu/"+dish.ID+"/edit", http.StatusSeeOther)
		return
	}

	SetFlash(w, r, "success", "Dish updated successfully!")
	http.Redirect(w, r, "/menu", http.StatusSeeOther)
}

// POST /menu/{id}/toggle
func (server *Server) MenuToggleStatus(w http.ResponseWriter, r *http.Request) {
	dish := server.findOwnedDish(w, r)
	if dish == nil {
		http.Redirect(w, r, "/menu", http.StatusSeeOther)
		return
	}

	newStatus := dish.ToggledStatus()
	if err := server.DB.Model(dish).Update("status", newStatus).Error; err != nil {
		SetFlash(w, r, "error", "Failed to update status. Please try again.")
	} else {
		SetFlash(w, r, "success", "Dish status updated to "+newStatus+"!")
	}

	http.Redirect(w, r, "/menu", http.StatusSeeOther)
}

// POST /menu/{id}/delete
// Gambar dihapus best-effort duluan; kalau gagal, record tetap dihapus.
func (server *Server) MenuDelete(w http.ResponseWriter, r *http.Request) {
	dish := server.findOwnedDish(w, r)
	if dish == nil {
		http.Redirect(w, r, "/menu", http.StatusSeeOther)
		return
	}

	if dish.ImageKey != "" {
		if err := server.Storage.Delete(r.Context(), bucketDishes, dish.ImageKey); err != nil {
			log.Println("delete dish image error:", err)
		}
	}

	if err := server.DB.Where("id = ?", dish.ID).Delete(&models.Dish{}).Error; err != nil {
		SetFlash(w, r, "error", "Failed to delete the dish: "+err.Error())
	} else {
		SetFlash(w, r, "success", "Dish deleted successfully!")
	}

	http.Redirect(w, r, "/menu", http.StatusSeeOther)
}
