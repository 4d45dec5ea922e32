package repository

import (
	"context"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, page domain.PageRequest) ([]domain.User, int, error)
}
