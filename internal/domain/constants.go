package domain

import "math"

// Recipe limits
const (
	// MinCookingTime is the shortest accepted cooking time in minutes
	MinCookingTime = 1

	// DefaultMaxCookingTime is the default upper bound for cooking time (24h in minutes)
	DefaultMaxCookingTime = 1440

	// MaxStoredCookingTime is the largest cooking time the SMALLINT column holds
	MaxStoredCookingTime = math.MaxInt16

	// MinIngredientAmount is the smallest accepted ingredient amount
	MinIngredientAmount = 1

	// MaxIngredientAmount is the largest amount the INTEGER column holds
	MaxIngredientAmount = math.MaxInt32

	// MaxNameLength bounds recipe, tag and ingredient names
	MaxNameLength = 200
)

// Listing defaults
const (
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// Shopping list output
const (
	ShoppingListHeader   = "Shopping list:"
	ShoppingListFilename = "shopping_list.txt"
	ShoppingLineFormat   = "%s (%s) - %d"
)
