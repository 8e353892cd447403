package consts

const (
	DishStatusAvailable   = "available"
	DishStatusUnavailable = "unavailable"
)

// DishCategories: pilihan kategori di form menu.
var DishCategories = []string{
	"appetizers",
	"mains",
	"desserts",
	"drinks",
}

func IsValidDishCategory(category string) bool {
	for _, c := range DishCategories {
		if c == category {
			return true
		}
	}
	return false
}
