package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Catalog defines the interface for tag and ingredient reference data
type Catalog interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	GetTagByID(ctx context.Context, id int64) (*domain.Tag, error)
	GetTagsByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error)
	UpsertTags(ctx context.Context, tags []domain.Tag) (int, error)

	ListIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error)
	GetIngredientByID(ctx context.Context, id int64) (*domain.Ingredient, error)
	GetIngredientsByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error)
	UpsertIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error)
}
