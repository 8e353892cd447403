package models

import (
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	RestaurantID string `gorm:"size:36;index"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`
	Email        string `gorm:"size:100;uniqueIndex"`
	Password     string `gorm:"size:100"`

	// IsBusiness: flag role untuk akses dashboard.
	IsBusiness bool `gorm:"default:false"`
	IsGuest    bool `gorm:"default:false"`

	ResetToken  sql.NullString `gorm:"size:100;index"`
	ResetSentAt sql.NullTime

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}

func (u *User) FindByEmail(db *gorm.DB, email string) (*User, error) {
	var user User

	err := db.Debug().Model(&User{}).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (u *User) FindByID(db *gorm.DB, id string) (*User, error) {
	var user User

	err := db.Debug().Model(&User{}).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (u *User) FindByResetToken(db *gorm.DB, token string) (*User, error) {
	var user User

	err := db.Debug().Model(&User{}).Where("reset_token = ?", token).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (u *User) CreateUser(db *gorm.DB, user *User) (*User, error) {
	result := db.Debug().Create(user)
	if result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
