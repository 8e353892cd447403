package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// WeekdayKeys: urutan hari untuk form jam buka.
var WeekdayKeys = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// DayHours: bentuk mentah di kolom JSON. Enabled pointer supaya record lama
// yang belum punya flag bisa dibedakan dari flag false.
type DayHours struct {
	Enabled *bool  `json:"enabled,omitempty"`
	Open    string `json:"open,omitempty"`
	Close   string `json:"close,omitempty"`
}

// DaySchedule: bentuk ternormalisasi untuk form dan template.
type DaySchedule struct {
	Enabled bool
	Open    string
	Close   string
}

// OpenHours disimpan sebagai kolom JSON (text), key = nama hari lowercase.
type OpenHours map[string]DayHours

func (h OpenHours) Value() (driver.Value, error) {
	if h == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (h *OpenHours) Scan(value interface{}) error {
	if value == nil {
		*h = OpenHours{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for OpenHours")
	}

	if len(raw) == 0 {
		*h = OpenHours{}
		return nil
	}

	return json.Unmarshal(raw, h)
}

// Normalized: lengkapi 7 hari dengan default 09:00-17:30.
// Kalau flag enabled tidak ada tapi jam buka+tutup terisi, anggap buka.
func (h OpenHours) Normalized() map[string]DaySchedule {
	out := map[string]DaySchedule{}
	for _, key := range WeekdayKeys {
		day := h[key]

		enabled := day.Open != "" && day.Close != ""
		if day.Enabled != nil {
			enabled = *day.Enabled
		}

		open := day.Open
		if open == "" {
			open = "09:00"
		}
		closeAt := day.Close
		if closeAt == "" {
			closeAt = "17:30"
		}

		out[key] = DaySchedule{Enabled: enabled, Open: open, Close: closeAt}
	}
	return out
}

// SetSchedule: simpan kembali hasil form ke bentuk JSON.
func (h OpenHours) SetSchedule(key string, enabled bool, open string, closeAt string) {
	h[key] = DayHours{Enabled: &enabled, Open: open, Close: closeAt}
}

type Restaurant struct {
	ID       string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name     string `gorm:"size:255"`
	Location string `gorm:"size:255"`

	// DeliveryAreas: daftar area dipisah koma, contoh: "Makati,Taguig,Pasig".
	DeliveryAreas string    `gorm:"type:text"`
	OpenHours     OpenHours `gorm:"type:text"`

	// PhotoKey: nama objek di storage (bucket "restaurants"), <restaurantID>.<ext>.
	PhotoKey string `gorm:"size:255"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

func (r *Restaurant) FindByID(db *gorm.DB, id string) (*Restaurant, error) {
	var restaurant Restaurant

	err := db.Debug().Model(&Restaurant{}).Where("id = ?", id).First(&restaurant).Error
	if err != nil {
		return nil, err
	}

	return &restaurant, nil
}

func (r *Restaurant) AreaList() []string {
	if r.DeliveryAreas == "" {
		return nil
	}
	parts := strings.Split(r.DeliveryAreas, ",")
	var out []string
	for _, s := range parts {
		trimmed := strings.TrimSpace(s)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func (r *Restaurant) SetAreaList(raw string) {
	areas := strings.Split(raw, ",")
	var cleaned []string
	for _, a := range areas {
		trimmed := strings.TrimSpace(a)
		if trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	r.DeliveryAreas = strings.Join(cleaned, ",")
}
