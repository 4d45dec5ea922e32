package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// ===== MOCKS =====

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, page domain.PageRequest) ([]domain.User, int, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.User), args.Int(1), args.Error(2)
}

type MockSubscriptionChecker struct {
	mock.Mock
}

func (m *MockSubscriptionChecker) IsFollowing(ctx context.Context, followerID, authorID string) (bool, error) {
	args := m.Called(ctx, followerID, authorID)
	return args.Bool(0), args.Error(1)
}

// ===== TESTS =====

const (
	aliceID = "45c48cce-2e2d-4fbd-aa1a-9b8c7d6e5f01"
	bobID   = "d3d94468-02a4-4339-a3a9-8b7c6d5e4f02"
)

func setup() (Service, *MockUserRepository, *MockSubscriptionChecker) {
	repo := new(MockUserRepository)
	follows := new(MockSubscriptionChecker)
	return NewService(repo, follows, 6), repo, follows
}

func TestRegister(t *testing.T) {
	t.Run("normalizes and stores", func(t *testing.T) {
		svc, repo, _ := setup()
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "alice@example.com" && u.Username == "alice"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = aliceID
		}).Return(nil)

		u, err := svc.Register(context.Background(), domain.User{Email: " Alice@Example.com ", Username: "alice "})

		require.NoError(t, err)
		assert.Equal(t, aliceID, u.ID)
		repo.AssertExpectations(t)
	})

	t.Run("missing identity", func(t *testing.T) {
		svc, repo, _ := setup()

		_, err := svc.Register(context.Background(), domain.User{Email: "a@b.c"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("duplicate", func(t *testing.T) {
		svc, repo, _ := setup()
		repo.On("CreateUser", mock.Anything, mock.Anything).Return(domain.ErrUserAlreadyExists)

		_, err := svc.Register(context.Background(), domain.User{Email: "a@b.c", Username: "a"})

		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestGet_Subscription(t *testing.T) {
	t.Run("anonymous never subscribed", func(t *testing.T) {
		svc, repo, follows := setup()
		repo.On("GetUserByID", mock.Anything, bobID).Return(&domain.User{ID: bobID}, nil)

		p, err := svc.Get(context.Background(), domain.Anonymous(), bobID)

		require.NoError(t, err)
		assert.False(t, p.IsSubscribed)
		follows.AssertNotCalled(t, "IsFollowing", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("follower sees subscription", func(t *testing.T) {
		svc, repo, follows := setup()
		repo.On("GetUserByID", mock.Anything, bobID).Return(&domain.User{ID: bobID}, nil)
		follows.On("IsFollowing", mock.Anything, aliceID, bobID).Return(true, nil)

		p, err := svc.Get(context.Background(), domain.ActorFor(aliceID), bobID)

		require.NoError(t, err)
		assert.True(t, p.IsSubscribed)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo, _ := setup()
		repo.On("GetUserByID", mock.Anything, bobID).Return(nil, domain.ErrUserNotFound)

		_, err := svc.Get(context.Background(), domain.ActorFor(aliceID), bobID)

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestMe(t *testing.T) {
	svc, repo, follows := setup()
	repo.On("GetUserByID", mock.Anything, aliceID).Return(&domain.User{ID: aliceID, Username: "alice"}, nil)

	p, err := svc.Me(context.Background(), domain.ActorFor(aliceID))
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.False(t, p.IsSubscribed)
	follows.AssertNotCalled(t, "IsFollowing", mock.Anything, mock.Anything, mock.Anything)

	_, err = svc.Me(context.Background(), domain.Anonymous())
	assert.ErrorIs(t, err, domain.ErrUnauthenticatedActor)
}

func TestList(t *testing.T) {
	svc, repo, follows := setup()
	repo.On("ListUsers", mock.Anything, domain.PageRequest{Page: 1, Limit: 6}).
		Return([]domain.User{{ID: aliceID}, {ID: bobID}}, 2, nil)
	follows.On("IsFollowing", mock.Anything, aliceID, bobID).Return(true, nil)

	page, err := svc.List(context.Background(), domain.ActorFor(aliceID), domain.PageRequest{Page: 0})

	require.NoError(t, err)
	assert.Equal(t, 2, page.Count)
	require.Len(t, page.Results, 2)
	assert.False(t, page.Results[0].IsSubscribed)
	assert.True(t, page.Results[1].IsSubscribed)
}
