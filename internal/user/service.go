package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// SubscriptionChecker reports whether one user follows another
type SubscriptionChecker interface {
	IsFollowing(ctx context.Context, followerID, authorID string) (bool, error)
}

// Service defines the interface for user operations
type Service interface {
	Register(ctx context.Context, user domain.User) (*domain.User, error)
	Get(ctx context.Context, actor domain.Actor, userID string) (*domain.UserProfile, error)
	Me(ctx context.Context, actor domain.Actor) (*domain.UserProfile, error)
	List(ctx context.Context, actor domain.Actor, page domain.PageRequest) (*domain.Page[domain.UserProfile], error)
}

type service struct {
	repo            repository.User
	follows         SubscriptionChecker
	defaultPageSize int
}

// NewService creates a new user service
func NewService(repo repository.User, follows SubscriptionChecker, defaultPageSize int) Service {
	if defaultPageSize < 1 {
		defaultPageSize = domain.DefaultPageSize
	}
	return &service{repo: repo, follows: follows, defaultPageSize: defaultPageSize}
}

// Register stores a new user. Email is compared case-insensitively, so it is stored lower-case.
func (s *service) Register(ctx context.Context, user domain.User) (*domain.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Username = strings.TrimSpace(user.Username)
	user.FirstName = strings.TrimSpace(user.FirstName)
	user.LastName = strings.TrimSpace(user.LastName)
	if user.Email == "" || user.Username == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgMissingIdentity)
	}

	if err := s.repo.CreateUser(ctx, &user); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRegisterFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgUserRegistered, "user_id", user.ID, "username", user.Username)
	return &user, nil
}

func (s *service) Get(ctx context.Context, actor domain.Actor, userID string) (*domain.UserProfile, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgGetFailed, err)
	}
	subscribed, err := s.isSubscribed(ctx, actor, u.ID)
	if err != nil {
		return nil, err
	}
	profile := domain.NewUserProfile(*u, subscribed)
	return &profile, nil
}

func (s *service) Me(ctx context.Context, actor domain.Actor) (*domain.UserProfile, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthenticatedActor
	}
	return s.Get(ctx, actor, actor.UserID)
}

func (s *service) List(ctx context.Context, actor domain.Actor, page domain.PageRequest) (*domain.Page[domain.UserProfile], error) {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = s.defaultPageSize
	}
	if page.Limit > domain.MaxPageSize {
		page.Limit = domain.MaxPageSize
	}

	users, total, err := s.repo.ListUsers(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListFailed, err)
	}
	profiles := make([]domain.UserProfile, 0, len(users))
	for _, u := range users {
		subscribed, err := s.isSubscribed(ctx, actor, u.ID)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, domain.NewUserProfile(u, subscribed))
	}
	return &domain.Page[domain.UserProfile]{Count: total, Results: profiles}, nil
}

// isSubscribed is false for anonymous actors and for the actor's own profile
func (s *service) isSubscribed(ctx context.Context, actor domain.Actor, userID string) (bool, error) {
	if actor.IsAnonymous() || actor.UserID == userID {
		return false, nil
	}
	ok, err := s.follows.IsFollowing(ctx, actor.UserID, userID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", ErrMsgFollowCheck, err)
	}
	return ok, nil
}
