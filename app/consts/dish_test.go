package consts

import "testing"

func TestIsValidDishCategory(t *testing.T) {
	for _, c := range DishCategories {
		if !IsValidDishCategory(c) {
			t.Errorf("%q should be valid", c)
		}
	}

	for _, c := range []string{"", "snacks", "Mains"} {
		if IsValidDishCategory(c) {
			t.Errorf("%q should be invalid", c)
		}
	}
}
