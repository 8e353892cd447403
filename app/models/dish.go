package models

import (
	"time"

	"github.com/ashidesu/Foodie-business/app/consts"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Dish struct {
	ID           string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	RestaurantID string `gorm:"size:36;index"`
	Name         string `gorm:"size:255"`
	Slug         string `gorm:"size:255"`
	Category     string `gorm:"size:50;index"`
	Price        decimal.Decimal `gorm:"type:decimal(16,2);"`
	Description  string `gorm:"type:text"`

	// ImageKey: nama objek di storage (bucket "dishes"), format <dishID>.<ext>.
	// Kosong kalau dish belum punya gambar.
	ImageKey string `gorm:"size:255"`

	Status string `gorm:"size:20;default:available"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

func (d *Dish) GetByRestaurant(db *gorm.DB, restaurantID string) ([]Dish, error) {
	var dishes []Dish

	err := db.Debug().Model(&Dish{}).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&dishes).Error
	if err != nil {
		return nil, err
	}

	return dishes, nil
}

func (d *Dish) FindByID(db *gorm.DB, dishID string) (*Dish, error) {
	var dish Dish

	err := db.Debug().Model(&Dish{}).Where("id = ?", dishID).First(&dish).Error
	if err != nil {
		return nil, err
	}

	return &dish, nil
}

func (d *Dish) IsAvailable() bool {
	return d.Status != consts.DishStatusUnavailable
}

// ToggledStatus: dua arah available <-> unavailable.
func (d *Dish) ToggledStatus() string {
	if d.IsAvailable() {
		return consts.DishStatusUnavailable
	}
	return consts.DishStatusAvailable
}

func (d Dish) PriceFloat() float64 {
	return d.Price.InexactFloat64()
}

func (d Dish) CreatedAtFormatted() string {
	if d.CreatedAt.IsZero() {
		return "-"
	}
	return d.CreatedAt.Format("2006-01-02 15:04")
}
