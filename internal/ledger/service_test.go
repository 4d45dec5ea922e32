package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// ===== MOCKS =====

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) AddEntry(ctx context.Context, set domain.LedgerSet, userID string, recipeID int64) (*domain.RecipeSummary, error) {
	args := m.Called(ctx, set, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeSummary), args.Error(1)
}

func (m *MockLedgerRepository) RemoveEntry(ctx context.Context, set domain.LedgerSet, userID string, recipeID int64) error {
	args := m.Called(ctx, set, userID, recipeID)
	return args.Error(0)
}

// ===== TESTS =====

const testUserID = "3c59dc04-8e88-4a0b-9c1d-2f8a9b7c6d01"

func TestAdd(t *testing.T) {
	summary := &domain.RecipeSummary{ID: 4, Name: "Soup", Image: "soup.png", CookingTime: 30}

	tests := []struct {
		name    string
		actor   domain.Actor
		set     domain.LedgerSet
		repoErr error
		wantErr error
	}{
		{name: "favorite added", actor: domain.ActorFor(testUserID), set: domain.LedgerFavorites},
		{name: "cart added", actor: domain.ActorFor(testUserID), set: domain.LedgerShoppingCart},
		{name: "already member", actor: domain.ActorFor(testUserID), set: domain.LedgerFavorites,
			repoErr: domain.ErrAlreadyMember, wantErr: domain.ErrAlreadyMember},
		{name: "unknown recipe", actor: domain.ActorFor(testUserID), set: domain.LedgerShoppingCart,
			repoErr: domain.ErrUnknownRecipe, wantErr: domain.ErrUnknownRecipe},
		{name: "anonymous", actor: domain.Anonymous(), set: domain.LedgerFavorites,
			wantErr: domain.ErrUnauthenticatedActor},
		{name: "unknown set", actor: domain.ActorFor(testUserID), set: domain.LedgerSet("wishlist"),
			wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockLedgerRepository)
			svc := NewService(repo)
			if tt.actor.UserID != "" && tt.set.IsValid() {
				if tt.repoErr != nil {
					repo.On("AddEntry", mock.Anything, tt.set, testUserID, int64(4)).Return(nil, tt.repoErr)
				} else {
					repo.On("AddEntry", mock.Anything, tt.set, testUserID, int64(4)).Return(summary, nil)
				}
			}

			got, err := svc.Add(context.Background(), tt.actor, tt.set, 4)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, summary, got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestRemove(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		repo := new(MockLedgerRepository)
		repo.On("RemoveEntry", mock.Anything, domain.LedgerFavorites, testUserID, int64(4)).Return(nil)

		err := NewService(repo).Remove(context.Background(), domain.ActorFor(testUserID), domain.LedgerFavorites, 4)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("not member", func(t *testing.T) {
		repo := new(MockLedgerRepository)
		repo.On("RemoveEntry", mock.Anything, domain.LedgerShoppingCart, testUserID, int64(4)).Return(domain.ErrNotMember)

		err := NewService(repo).Remove(context.Background(), domain.ActorFor(testUserID), domain.LedgerShoppingCart, 4)

		assert.ErrorIs(t, err, domain.ErrNotMember)
		assert.Contains(t, err.Error(), ErrMsgRemoveFailed)
	})

	t.Run("anonymous never reaches storage", func(t *testing.T) {
		repo := new(MockLedgerRepository)

		err := NewService(repo).Remove(context.Background(), domain.Anonymous(), domain.LedgerFavorites, 4)

		assert.ErrorIs(t, err, domain.ErrUnauthenticatedActor)
		repo.AssertNotCalled(t, "RemoveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
