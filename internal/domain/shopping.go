package domain

// CartIngredient is one ingredient row of one recipe in a user's cart, before aggregation
type CartIngredient struct {
	Name            string
	MeasurementUnit string
	Amount          int
}

// ShoppingLine is one consolidated line of a shopping list
type ShoppingLine struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int64  `json:"amount"`
}

// ShoppingList is the ordered, consolidated list of a user's cart
type ShoppingList struct {
	Lines []ShoppingLine `json:"lines"`
}
