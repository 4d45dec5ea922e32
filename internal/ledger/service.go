package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service manages the favorites and shopping cart sets of a user.
// The two sets are independent: membership in one never affects the other.
type Service interface {
	Add(ctx context.Context, actor domain.Actor, set domain.LedgerSet, recipeID int64) (*domain.RecipeSummary, error)
	Remove(ctx context.Context, actor domain.Actor, set domain.LedgerSet, recipeID int64) error
}

type service struct {
	repo repository.Ledger
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, actor domain.Actor, set domain.LedgerSet, recipeID int64) (*domain.RecipeSummary, error) {
	if err := checkRequest(actor, set); err != nil {
		return nil, err
	}

	summary, err := s.repo.AddEntry(ctx, set, actor.UserID, recipeID)
	metrics.LedgerChanged(string(set), metrics.OperationAdd, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgAddFailed, err)
	}

	logger.FromContext(ctx).Debug(LogMsgEntryAdded, "set", set, "recipe_id", recipeID)
	return summary, nil
}

func (s *service) Remove(ctx context.Context, actor domain.Actor, set domain.LedgerSet, recipeID int64) error {
	if err := checkRequest(actor, set); err != nil {
		return err
	}

	err := s.repo.RemoveEntry(ctx, set, actor.UserID, recipeID)
	metrics.LedgerChanged(string(set), metrics.OperationRemove, err)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRemoveFailed, err)
	}

	logger.FromContext(ctx).Debug(LogMsgEntryRemoved, "set", set, "recipe_id", recipeID)
	return nil
}

func checkRequest(actor domain.Actor, set domain.LedgerSet) error {
	if actor.IsAnonymous() {
		return domain.ErrUnauthenticatedActor
	}
	if !set.IsValid() {
		return fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownSet, set)
	}
	return nil
}
