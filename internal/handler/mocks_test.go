package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Foodgram_Go/internal/catalog"
	"github.com/osse101/Foodgram_Go/internal/domain"
)

// ===== MOCKS =====

type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Create(ctx context.Context, actor domain.Actor, draft domain.RecipeDraft) (*domain.RecipeView, error) {
	args := m.Called(ctx, actor, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeView), args.Error(1)
}

func (m *MockRecipeService) Update(ctx context.Context, actor domain.Actor, recipeID int64, draft domain.RecipeDraft) (*domain.RecipeView, error) {
	args := m.Called(ctx, actor, recipeID, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeView), args.Error(1)
}

func (m *MockRecipeService) Delete(ctx context.Context, actor domain.Actor, recipeID int64) error {
	return m.Called(ctx, actor, recipeID).Error(0)
}

func (m *MockRecipeService) Get(ctx context.Context, actor domain.Actor, recipeID int64) (*domain.RecipeView, error) {
	args := m.Called(ctx, actor, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeView), args.Error(1)
}

func (m *MockRecipeService) List(ctx context.Context, actor domain.Actor, filter domain.RecipeFilter) (*domain.Page[domain.RecipeView], error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.RecipeView]), args.Error(1)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Add(ctx context.Context, actor domain.Actor, set domain.LedgerSet, recipeID int64) (*domain.RecipeSummary, error) {
	args := m.Called(ctx, actor, set, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeSummary), args.Error(1)
}

func (m *MockLedgerService) Remove(ctx context.Context, actor domain.Actor, set domain.LedgerSet, recipeID int64) error {
	return m.Called(ctx, actor, set, recipeID).Error(0)
}

type MockShoppingService struct {
	mock.Mock
}

func (m *MockShoppingService) Build(ctx context.Context, actor domain.Actor) (domain.ShoppingList, error) {
	args := m.Called(ctx, actor)
	return args.Get(0).(domain.ShoppingList), args.Error(1)
}

func (m *MockShoppingService) BuildText(ctx context.Context, actor domain.Actor) (string, error) {
	args := m.Called(ctx, actor)
	return args.String(0), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, actor domain.Actor, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, actor, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserService) Me(ctx context.Context, actor domain.Actor) (*domain.UserProfile, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserProfile), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, actor domain.Actor, page domain.PageRequest) (*domain.Page[domain.UserProfile], error) {
	args := m.Called(ctx, actor, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.UserProfile]), args.Error(1)
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, actor domain.Actor, authorID string, recipesLimit int) (*domain.FollowedAuthor, error) {
	args := m.Called(ctx, actor, authorID, recipesLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FollowedAuthor), args.Error(1)
}

func (m *MockFollowService) Unfollow(ctx context.Context, actor domain.Actor, authorID string) error {
	return m.Called(ctx, actor, authorID).Error(0)
}

func (m *MockFollowService) ListFollowing(ctx context.Context, actor domain.Actor, recipesLimit int, page domain.PageRequest) (*domain.Page[domain.FollowedAuthor], error) {
	args := m.Called(ctx, actor, recipesLimit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.FollowedAuthor]), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockCatalogService) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockCatalogService) ListIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	args := m.Called(ctx, namePrefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockCatalogService) GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockCatalogService) TagsExist(ctx context.Context, ids []int64) (bool, error) {
	args := m.Called(ctx, ids)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogService) IngredientsExist(ctx context.Context, ids []int64) (bool, error) {
	args := m.Called(ctx, ids)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogService) MissingTagIDs(ctx context.Context, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCatalogService) MissingIngredientIDs(ctx context.Context, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCatalogService) ImportTags(ctx context.Context, tags []domain.Tag) (int, error) {
	args := m.Called(ctx, tags)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogService) ImportIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error) {
	args := m.Called(ctx, ingredients)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogService) GetCacheStats() catalog.CacheStats {
	return m.Called().Get(0).(catalog.CacheStats)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
