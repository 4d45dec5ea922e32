package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// ===== MOCKS =====

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockCatalogRepository) GetTagByID(ctx context.Context, id int64) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tag), args.Error(1)
}

func (m *MockCatalogRepository) GetTagsByIDs(ctx context.Context, ids []int64) ([]domain.Tag, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *MockCatalogRepository) UpsertTags(ctx context.Context, tags []domain.Tag) (int, error) {
	args := m.Called(ctx, tags)
	return args.Int(0), args.Error(1)
}

func (m *MockCatalogRepository) ListIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	args := m.Called(ctx, namePrefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockCatalogRepository) GetIngredientByID(ctx context.Context, id int64) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockCatalogRepository) GetIngredientsByIDs(ctx context.Context, ids []int64) ([]domain.Ingredient, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ingredient), args.Error(1)
}

func (m *MockCatalogRepository) UpsertIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error) {
	args := m.Called(ctx, ingredients)
	return args.Int(0), args.Error(1)
}

// ===== TESTS =====

func newTestService(repo *MockCatalogRepository) Service {
	return NewService(repo, CacheConfig{Size: 100, TTL: time.Minute})
}

func TestMissingTagIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("reports unknown ids in input order", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("GetTagsByIDs", ctx, []int64{3, 1, 7}).
			Return([]domain.Tag{{ID: 1, Slug: "a"}, {ID: 7, Slug: "b"}}, nil).Once()

		svc := newTestService(repo)
		missing, err := svc.MissingTagIDs(ctx, []int64{3, 1, 7})

		require.NoError(t, err)
		assert.Equal(t, []int64{3}, missing)
		repo.AssertExpectations(t)
	})

	t.Run("cached tags skip the repository", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("GetTagsByIDs", ctx, []int64{1, 2}).
			Return([]domain.Tag{{ID: 1}, {ID: 2}}, nil).Once()

		svc := newTestService(repo)
		ok, err := svc.TagsExist(ctx, []int64{1, 2})
		require.NoError(t, err)
		assert.True(t, ok)

		// second lookup is served from cache
		ok, err = svc.TagsExist(ctx, []int64{2, 1})
		require.NoError(t, err)
		assert.True(t, ok)

		repo.AssertNumberOfCalls(t, "GetTagsByIDs", 1)
		assert.Equal(t, uint64(2), svc.GetCacheStats().Hits)
	})

	t.Run("repository error is wrapped", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		dbErr := errors.New("connection refused")
		repo.On("GetTagsByIDs", ctx, []int64{5}).Return(nil, dbErr)

		svc := newTestService(repo)
		_, err := svc.TagsExist(ctx, []int64{5})

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), ErrMsgLookupTagsFailed)
	})

	t.Run("empty input needs no lookup", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		svc := newTestService(repo)

		ok, err := svc.TagsExist(ctx, nil)
		require.NoError(t, err)
		assert.True(t, ok)
		repo.AssertNotCalled(t, "GetTagsByIDs", mock.Anything, mock.Anything)
	})
}

func TestIngredientsExist(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCatalogRepository)
	repo.On("GetIngredientsByIDs", ctx, []int64{10, 11}).
		Return([]domain.Ingredient{{ID: 10, Name: "flour", MeasurementUnit: "g"}}, nil)

	svc := newTestService(repo)

	ok, err := svc.IngredientsExist(ctx, []int64{10, 11})
	require.NoError(t, err)
	assert.False(t, ok)

	missing, err := svc.MissingIngredientIDs(ctx, []int64{10, 11})
	require.NoError(t, err)
	assert.Equal(t, []int64{11}, missing)
}

func TestGetTag(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("GetTagByID", ctx, int64(9)).Return(nil, nil)

		_, err := newTestService(repo).GetTag(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrTagNotFound)
	})

	t.Run("cached after first read", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("GetTagByID", ctx, int64(1)).Return(&domain.Tag{ID: 1, Name: "Breakfast"}, nil).Once()

		svc := newTestService(repo)
		for i := 0; i < 3; i++ {
			tag, err := svc.GetTag(ctx, 1)
			require.NoError(t, err)
			assert.Equal(t, "Breakfast", tag.Name)
		}
		repo.AssertNumberOfCalls(t, "GetTagByID", 1)
	})
}

func TestGetIngredient_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCatalogRepository)
	repo.On("GetIngredientByID", ctx, int64(4)).Return(nil, nil)

	_, err := newTestService(repo).GetIngredient(ctx, 4)
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}

func TestListIngredients_TrimsPrefix(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCatalogRepository)
	repo.On("ListIngredients", ctx, "mil").Return([]domain.Ingredient{{ID: 1, Name: "milk"}}, nil)

	list, err := newTestService(repo).ListIngredients(ctx, "  mil ")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestImportTags(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes color and clears cache", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("GetTagByID", ctx, int64(1)).Return(&domain.Tag{ID: 1, Name: "Old"}, nil).Twice()
		repo.On("UpsertTags", ctx, []domain.Tag{{Name: "Lunch", Color: "#49B64E", Slug: "lunch"}}).Return(1, nil)

		svc := newTestService(repo)
		_, err := svc.GetTag(ctx, 1)
		require.NoError(t, err)

		n, err := svc.ImportTags(ctx, []domain.Tag{{Name: " Lunch ", Color: "#49b64e", Slug: "lunch"}})
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		// cache was purged so the repository is hit again
		_, err = svc.GetTag(ctx, 1)
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects blank fields", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		_, err := newTestService(repo).ImportTags(ctx, []domain.Tag{{Name: "x", Slug: "x"}})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "UpsertTags", mock.Anything, mock.Anything)
	})
}

func TestImportIngredients_RejectsBlankUnit(t *testing.T) {
	repo := new(MockCatalogRepository)
	_, err := newTestService(repo).ImportIngredients(context.Background(), []domain.Ingredient{{Name: "salt"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
