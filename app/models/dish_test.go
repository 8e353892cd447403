package models

import (
	"testing"

	"github.com/ashidesu/Foodie-business/app/consts"
)

func TestToggledStatus(t *testing.T) {
	available := Dish{Status: consts.DishStatusAvailable}
	if available.ToggledStatus() != consts.DishStatusUnavailable {
		t.Error("available dish should toggle to unavailable")
	}

	unavailable := Dish{Status: consts.DishStatusUnavailable}
	if unavailable.ToggledStatus() != consts.DishStatusAvailable {
		t.Error("unavailable dish should toggle to available")
	}

	// record lama tanpa status dianggap available
	blank := Dish{}
	if !blank.IsAvailable() {
		t.Error("blank status should count as available")
	}
}
