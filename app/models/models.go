package models

type Model struct {
	Model interface{}
}

func RegisterModels() []Model {
	return []Model{
		{Model: User{}},
		{Model: Restaurant{}},
		{Model: Dish{}},
		{Model: Order{}},
		{Model: OrderItem{}},
	}
}
