package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// Follow defines the interface for follow edges between users
type Follow interface {
	CreateFollow(ctx context.Context, followerID, authorID string) error
	DeleteFollow(ctx context.Context, followerID, authorID string) error
	IsFollowing(ctx context.Context, followerID, authorID string) (bool, error)
	ListFollowedAuthors(ctx context.Context, followerID string, page domain.PageRequest) ([]domain.User, int, error)
	CountRecipesByAuthors(ctx context.Context, authorIDs []string) (map[string]int, error)
	GetRecentRecipesByAuthor(ctx context.Context, authorID string, limit int) ([]domain.RecipeSummary, error)
}
