package follow

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// UserLookup resolves the author side of a follow edge
type UserLookup interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// Service defines the follow graph operations
type Service interface {
	Follow(ctx context.Context, actor domain.Actor, authorID string, recipesLimit int) (*domain.FollowedAuthor, error)
	Unfollow(ctx context.Context, actor domain.Actor, authorID string) error
	ListFollowing(ctx context.Context, actor domain.Actor, recipesLimit int, page domain.PageRequest) (*domain.Page[domain.FollowedAuthor], error)
}

type service struct {
	repo            repository.Follow
	users           UserLookup
	defaultPageSize int
}

// NewService creates a new follow service
func NewService(repo repository.Follow, users UserLookup, defaultPageSize int) Service {
	if defaultPageSize < 1 {
		defaultPageSize = domain.DefaultPageSize
	}
	return &service{repo: repo, users: users, defaultPageSize: defaultPageSize}
}

func (s *service) Follow(ctx context.Context, actor domain.Actor, authorID string, recipesLimit int) (*domain.FollowedAuthor, error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthenticatedActor
	}
	if actor.UserID == authorID {
		metrics.FollowChanged(metrics.OperationFollow, domain.ErrSelfFollow)
		return nil, domain.ErrSelfFollow
	}
	author, err := s.lookupAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	err = s.repo.CreateFollow(ctx, actor.UserID, authorID)
	metrics.FollowChanged(metrics.OperationFollow, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFollowFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgFollowed, "follower_id", actor.UserID, "author_id", authorID)

	projected, err := s.project(ctx, []domain.User{*author}, recipesLimit)
	if err != nil {
		return nil, err
	}
	return &projected[0], nil
}

func (s *service) Unfollow(ctx context.Context, actor domain.Actor, authorID string) error {
	if actor.IsAnonymous() {
		return domain.ErrUnauthenticatedActor
	}
	if _, err := s.lookupAuthor(ctx, authorID); err != nil {
		return err
	}

	err := s.repo.DeleteFollow(ctx, actor.UserID, authorID)
	metrics.FollowChanged(metrics.OperationUnfollow, err)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgUnfollowFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgUnfollowed, "follower_id", actor.UserID, "author_id", authorID)
	return nil
}

func (s *service) ListFollowing(ctx context.Context, actor domain.Actor, recipesLimit int, page domain.PageRequest) (*domain.Page[domain.FollowedAuthor], error) {
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthenticatedActor
	}
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = s.defaultPageSize
	}
	if page.Limit > domain.MaxPageSize {
		page.Limit = domain.MaxPageSize
	}

	authors, total, err := s.repo.ListFollowedAuthors(ctx, actor.UserID, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListFailed, err)
	}
	projected, err := s.project(ctx, authors, recipesLimit)
	if err != nil {
		return nil, err
	}
	return &domain.Page[domain.FollowedAuthor]{Count: total, Results: projected}, nil
}

func (s *service) lookupAuthor(ctx context.Context, authorID string) (*domain.User, error) {
	author, err := s.users.GetUserByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, authorID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgAuthorLookup, err)
	}
	return author, nil
}

// project builds the followed-author view of each author with up to recipesLimit recent recipes
func (s *service) project(ctx context.Context, authors []domain.User, recipesLimit int) ([]domain.FollowedAuthor, error) {
	if recipesLimit < 0 {
		recipesLimit = AllRecipes
	}
	ids := make([]string, len(authors))
	for i, a := range authors {
		ids[i] = a.ID
	}
	counts, err := s.repo.CountRecipesByAuthors(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgProjectFailed, err)
	}

	out := make([]domain.FollowedAuthor, 0, len(authors))
	for _, a := range authors {
		recipes, err := s.repo.GetRecentRecipesByAuthor(ctx, a.ID, recipesLimit)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgProjectFailed, err)
		}
		if recipes == nil {
			recipes = []domain.RecipeSummary{}
		}
		out = append(out, domain.FollowedAuthor{
			UserProfile:  domain.NewUserProfile(a, true),
			RecipesCount: counts[a.ID],
			Recipes:      recipes,
		})
	}
	return out, nil
}
