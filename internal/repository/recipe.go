package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Recipe defines the interface for recipe persistence.
// CreateRecipe and UpdateRecipe each run as a single transaction; UpdateRecipe
// replaces the whole tag and ingredient sets.
type Recipe interface {
	CreateRecipe(ctx context.Context, authorID string, draft domain.RecipeDraft) (int64, error)
	UpdateRecipe(ctx context.Context, recipeID int64, draft domain.RecipeDraft) error
	DeleteRecipe(ctx context.Context, recipeID int64) error

	GetRecipeByID(ctx context.Context, recipeID int64) (*domain.Recipe, error)
	GetRecipeDetails(ctx context.Context, recipeID int64) (*domain.RecipeDetails, error)
	ListRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeDetails, int, error)
	RecipeNameTaken(ctx context.Context, authorID, name string, excludeID int64) (bool, error)

	GetViewerRelations(ctx context.Context, viewerID string, recipeIDs []int64, authorIDs []string) (*domain.ViewerRelations, error)
}
