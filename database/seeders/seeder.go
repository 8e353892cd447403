package seeders

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ashidesu/Foodie-business/app/consts"
	"github.com/ashidesu/Foodie-business/app/models"
	"github.com/bxcodec/faker/v3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedStatuses = []string{
	consts.OrderStatusPending,
	consts.OrderStatusPreparing,
	consts.OrderStatusReady,
	consts.OrderStatusOutForDelivery,
	consts.OrderStatusCompleted,
	consts.OrderStatusCompleted,
	consts.OrderStatusCompleted,
	consts.OrderStatusCancelled,
}

// DBSeed: data demo untuk development — satu akun business, restorannya,
// beberapa dish, dan pesanan acak 60 hari terakhir.
// Login: owner@foodie.local / password
func DBSeed(db *gorm.DB) error {
	enabled := true
	restaurant := models.Restaurant{
		ID:            uuid.New().String(),
		Name:          faker.Name() + "'s Kitchen",
		Location:      faker.Word() + " Street",
		DeliveryAreas: "Downtown,Riverside,Old Town",
		OpenHours: models.OpenHours{
			"monday":    {Enabled: &enabled, Open: "09:00", Close: "21:00"},
			"tuesday":   {Enabled: &enabled, Open: "09:00", Close: "21:00"},
			"wednesday": {Enabled: &enabled, Open: "09:00", Close: "21:00"},
			"thursday":  {Enabled: &enabled, Open: "09:00", Close: "21:00"},
			"friday":    {Enabled: &enabled, Open: "09:00", Close: "23:00"},
			"saturday":  {Enabled: &enabled, Open: "10:00", Close: "23:00"},
		},
	}
	if err := db.Create(&restaurant).Error; err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	owner := models.User{
		ID:           uuid.New().String(),
		RestaurantID: restaurant.ID,
		FirstName:    faker.FirstName(),
		LastName:     faker.LastName(),
		Email:        "owner@foodie.local",
		Password:     string(hashed),
		IsBusiness:   true,
	}
	if err := db.Create(&owner).Error; err != nil {
		return err
	}

	var dishes []models.Dish
	for i := 0; i < 8; i++ {
		name := faker.Word() + " " + faker.Word()
		price := decimal.NewFromFloat(float64(rand.Intn(2000)+499) / 100)

		dish := models.Dish{
			ID:           uuid.New().String(),
			RestaurantID: restaurant.ID,
			Name:         name,
			Slug:         slug.Make(name),
			Category:     consts.DishCategories[rand.Intn(len(consts.DishCategories))],
			Price:        price,
			Description:  faker.Sentence(),
			Status:       consts.DishStatusAvailable,
		}
		if err := db.Create(&dish).Error; err != nil {
			return err
		}
		dishes = append(dishes, dish)
	}

	for i := 0; i < 40; i++ {
		createdAt := time.Now().AddDate(0, 0, -rand.Intn(60)).
			Add(-time.Duration(rand.Intn(12)) * time.Hour)

		order := models.Order{
			ID:           uuid.New().String(),
			RestaurantID: restaurant.ID,
			CustomerID:   uuid.New().String(),
			Status:       seedStatuses[rand.Intn(len(seedStatuses))],
			CreatedAt:    createdAt,
		}

		total := decimal.Zero
		itemCount := rand.Intn(3) + 1
		for j := 0; j < itemCount; j++ {
			dish := dishes[rand.Intn(len(dishes))]
			qty := rand.Intn(3) + 1

			order.OrderItems = append(order.OrderItems, models.OrderItem{
				DishID: dish.ID,
				Name:   dish.Name,
				Price:  dish.Price,
				Qty:    qty,
			})
			total = total.Add(dish.Price.Mul(decimal.NewFromInt(int64(qty))))
		}
		order.TotalPrice = total

		if err := db.Create(&order).Error; err != nil {
			return err
		}
	}

	fmt.Println("Database seeded successfully.")
	return nil
}
