package shopping

import (
	"context"
	"fmt"

	"golang.org/x/text/language"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service builds the consolidated shopping list of a user's cart. It never writes.
type Service interface {
	Build(ctx context.Context, actor domain.Actor) (domain.ShoppingList, error)
	BuildText(ctx context.Context, actor domain.Actor) (string, error)
}

type service struct {
	repo repository.ShoppingCart
	tag  language.Tag
}

// NewService creates a shopping list service sorting names under locale (a BCP 47 tag)
func NewService(repo repository.ShoppingCart, locale string) (Service, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgInvalidLocale, locale, err)
	}
	return &service{repo: repo, tag: tag}, nil
}

func (s *service) Build(ctx context.Context, actor domain.Actor) (domain.ShoppingList, error) {
	if actor.IsAnonymous() {
		return domain.ShoppingList{}, domain.ErrUnauthenticatedActor
	}

	rows, err := s.repo.GetCartIngredients(ctx, actor.UserID)
	if err != nil {
		return domain.ShoppingList{}, fmt.Errorf("%s: %w", ErrMsgLoadCartFailed, err)
	}

	list := Aggregate(rows, s.tag)
	metrics.ShoppingListBuilt(len(list.Lines))
	logger.FromContext(ctx).Debug(LogMsgListBuilt, "rows", len(rows), "lines", len(list.Lines))
	return list, nil
}

func (s *service) BuildText(ctx context.Context, actor domain.Actor) (string, error) {
	list, err := s.Build(ctx, actor)
	if err != nil {
		return "", err
	}
	return Render(list), nil
}
