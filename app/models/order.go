package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/ashidesu/Foodie-business/app/consts"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID           string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	RestaurantID string `gorm:"size:36;index"`

	// UserID diisi untuk pesanan dari akun, CustomerID untuk pesanan guest.
	// Salah satu boleh kosong.
	UserID     string `gorm:"size:36;index"`
	CustomerID string `gorm:"size:36;index"`

	OrderItems []OrderItem

	TotalPrice decimal.Decimal `gorm:"type:decimal(16,2)"`
	Status     string          `gorm:"size:20;index;default:pending"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

type OrderItem struct {
	ID      uint            `gorm:"primary_key;auto_increment"`
	OrderID string          `gorm:"size:36;index"`
	DishID  string          `gorm:"size:36;index"`
	Name    string          `gorm:"size:255"`
	Price   decimal.Decimal `gorm:"type:decimal(16,2)"`
	Qty     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o *Order) GetByRestaurant(db *gorm.DB, restaurantID string) ([]Order, error) {
	var orders []Order

	err := db.Debug().Model(&Order{}).
		Preload("OrderItems").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (o *Order) FindByID(db *gorm.DB, id string) (*Order, error) {
	var order Order

	err := db.Debug().Model(&Order{}).
		Preload("OrderItems").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}

	return &order, nil
}

// UpdateStatus: update kolom status saja, dengan validasi transisi satu arah.
// Kalau transisi tidak valid, status di DB tidak disentuh.
func (o *Order) UpdateStatus(db *gorm.DB, newStatus string) error {
	if !consts.IsValidOrderStatus(newStatus) {
		return fmt.Errorf("invalid order status %q", newStatus)
	}

	if !consts.CanTransitionOrder(o.Status, newStatus) {
		return fmt.Errorf("cannot move order from %q to %q", o.Status, newStatus)
	}

	if err := db.Model(o).Update("status", newStatus).Error; err != nil {
		return err
	}

	o.Status = newStatus
	return nil
}

// CustomerRef: identitas pelanggan untuk hitungan unique customer.
// Kosong kalau dua-duanya tidak ada.
func (o *Order) CustomerRef() string {
	if id := strings.TrimSpace(o.UserID); id != "" {
		return id
	}
	return strings.TrimSpace(o.CustomerID)
}

func (o *Order) IsOpen() bool {
	return o.Status != consts.OrderStatusCompleted && o.Status != consts.OrderStatusCancelled
}

func (o Order) TotalPriceFloat() float64 {
	return o.TotalPrice.InexactFloat64()
}

// TimeAgo: label waktu relatif seperti di kartu order.
func (o Order) TimeAgo(now time.Time) string {
	if o.CreatedAt.IsZero() {
		return "Unknown"
	}

	minutes := int(now.Sub(o.CreatedAt).Minutes())
	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min ago", minutes)
	}

	hours := minutes / 60
	if hours == 1 {
		return "1 hour ago"
	}
	return fmt.Sprintf("%d hours ago", hours)
}
