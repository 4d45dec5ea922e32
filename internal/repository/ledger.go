package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Ledger defines the interface for favorites and shopping cart membership
type Ledger interface {
	AddEntry(ctx context.Context, set domain.LedgerSet, userID string, recipeID int64) (*domain.RecipeSummary, error)
	RemoveEntry(ctx context.Context, set domain.LedgerSet, userID string, recipeID int64) error
}

// ShoppingCart defines read access to the ingredient rows of a user's cart
type ShoppingCart interface {
	GetCartIngredients(ctx context.Context, userID string) ([]domain.CartIngredient, error)
}
