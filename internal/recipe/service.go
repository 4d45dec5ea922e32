package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// CatalogLookup is the part of the catalog the composer validates drafts against
type CatalogLookup interface {
	MissingTagIDs(ctx context.Context, ids []int64) ([]int64, error)
	MissingIngredientIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// Service defines recipe composition and reads
type Service interface {
	Create(ctx context.Context, actor domain.Actor, draft domain.RecipeDraft) (*domain.RecipeView, error)
	Update(ctx context.Context, actor domain.Actor, recipeID int64, draft domain.RecipeDraft) (*domain.RecipeView, error)
	Delete(ctx context.Context, actor domain.Actor, recipeID int64) error
	Get(ctx context.Context, actor domain.Actor, recipeID int64) (*domain.RecipeView, error)
	List(ctx context.Context, actor domain.Actor, filter domain.RecipeFilter) (*domain.Page[domain.RecipeView], error)
}

// Config holds the composer limits
type Config struct {
	MaxCookingTime  int
	DefaultPageSize int
}

type service struct {
	repo            repository.Recipe
	catalog         CatalogLookup
	maxCookingTime  int
	defaultPageSize int
}

// NewService creates a new recipe service
func NewService(repo repository.Recipe, catalog CatalogLookup, cfg Config) Service {
	if cfg.MaxCookingTime < domain.MinCookingTime {
		cfg.MaxCookingTime = domain.DefaultMaxCookingTime
	}
	if cfg.MaxCookingTime > domain.MaxStoredCookingTime {
		cfg.MaxCookingTime = domain.MaxStoredCookingTime
	}
	if cfg.DefaultPageSize < 1 {
		cfg.DefaultPageSize = domain.DefaultPageSize
	}
	return &service{
		repo:            repo,
		catalog:         catalog,
		maxCookingTime:  cfg.MaxCookingTime,
		defaultPageSize: cfg.DefaultPageSize,
	}
}

func (s *service) Create(ctx context.Context, actor domain.Actor, draft domain.RecipeDraft) (*domain.RecipeView, error) {
	log := logger.FromContext(ctx)
	if actor.IsAnonymous() {
		return nil, domain.ErrUnauthenticatedActor
	}

	if err := s.validateDraft(ctx, actor.UserID, 0, draft); err != nil {
		s.reject(ctx, err)
		return nil, err
	}

	id, err := s.repo.CreateRecipe(ctx, actor.UserID, draft)
	if err != nil {
		s.reject(ctx, err)
		return nil, fmt.Errorf("%s: %w", ErrMsgCreateFailed, err)
	}
	metrics.RecipeWritten(metrics.OperationCreate)
	log.Info(LogMsgRecipeCreated, "recipe_id", id, "author_id", actor.UserID)

	return s.view(ctx, actor, id)
}

func (s *service) Update(ctx context.Context, actor domain.Actor, recipeID int64, draft domain.RecipeDraft) (*domain.RecipeView, error) {
	log := logger.FromContext(ctx)
	if err := s.authorize(ctx, actor, recipeID); err != nil {
		return nil, err
	}

	if err := s.validateDraft(ctx, actor.UserID, recipeID, draft); err != nil {
		s.reject(ctx, err)
		return nil, err
	}

	if err := s.repo.UpdateRecipe(ctx, recipeID, draft); err != nil {
		s.reject(ctx, err)
		return nil, fmt.Errorf("%s: %w", ErrMsgUpdateFailed, err)
	}
	metrics.RecipeWritten(metrics.OperationUpdate)
	log.Info(LogMsgRecipeUpdated, "recipe_id", recipeID)

	return s.view(ctx, actor, recipeID)
}

func (s *service) Delete(ctx context.Context, actor domain.Actor, recipeID int64) error {
	if err := s.authorize(ctx, actor, recipeID); err != nil {
		return err
	}
	if err := s.repo.DeleteRecipe(ctx, recipeID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDeleteFailed, err)
	}
	metrics.RecipeWritten(metrics.OperationDelete)
	logger.FromContext(ctx).Info(LogMsgRecipeDeleted, "recipe_id", recipeID)
	return nil
}

func (s *service) Get(ctx context.Context, actor domain.Actor, recipeID int64) (*domain.RecipeView, error) {
	return s.view(ctx, actor, recipeID)
}

func (s *service) List(ctx context.Context, actor domain.Actor, filter domain.RecipeFilter) (*domain.Page[domain.RecipeView], error) {
	filter.ViewerID = actor.UserID
	if actor.IsAnonymous() {
		filter.Favorited = false
		filter.InShoppingCart = false
	}
	filter.PageRequest = s.normalizePage(filter.PageRequest)

	list, total, err := s.repo.ListRecipes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListFailed, err)
	}

	rel, err := s.relations(ctx, actor, list)
	if err != nil {
		return nil, err
	}
	views := make([]domain.RecipeView, 0, len(list))
	for _, d := range list {
		views = append(views, domain.NewRecipeView(d, rel.For(d)))
	}
	return &domain.Page[domain.RecipeView]{Count: total, Results: views}, nil
}

// authorize checks that actor may change recipeID
func (s *service) authorize(ctx context.Context, actor domain.Actor, recipeID int64) error {
	if actor.IsAnonymous() {
		return domain.ErrUnauthenticatedActor
	}
	recipe, err := s.repo.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownRecipe) {
			return fmt.Errorf("%w: "+ErrMsgRecipeIDFmt, domain.ErrUnknownRecipe, recipeID)
		}
		return fmt.Errorf("%s: %w", ErrMsgGetFailed, err)
	}
	if recipe.AuthorID != actor.UserID {
		logger.FromContext(ctx).Warn(LogMsgNotAuthor, "recipe_id", recipeID, "actor_id", actor.UserID)
		return domain.ErrNotRecipeAuthor
	}
	return nil
}

func (s *service) view(ctx context.Context, actor domain.Actor, recipeID int64) (*domain.RecipeView, error) {
	details, err := s.repo.GetRecipeDetails(ctx, recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownRecipe) {
			return nil, fmt.Errorf("%w: "+ErrMsgRecipeIDFmt, domain.ErrUnknownRecipe, recipeID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgGetFailed, err)
	}
	rel, err := s.relations(ctx, actor, []domain.RecipeDetails{*details})
	if err != nil {
		return nil, err
	}
	v := domain.NewRecipeView(*details, rel.For(*details))
	return &v, nil
}

// relations loads the viewer flags for list; anonymous viewers get none
func (s *service) relations(ctx context.Context, actor domain.Actor, list []domain.RecipeDetails) (*domain.ViewerRelations, error) {
	if actor.IsAnonymous() || len(list) == 0 {
		return nil, nil
	}
	recipeIDs := make([]int64, 0, len(list))
	seenAuthor := make(map[string]bool, len(list))
	authorIDs := make([]string, 0, len(list))
	for _, d := range list {
		recipeIDs = append(recipeIDs, d.ID)
		if !seenAuthor[d.AuthorID] {
			seenAuthor[d.AuthorID] = true
			authorIDs = append(authorIDs, d.AuthorID)
		}
	}
	rel, err := s.repo.GetViewerRelations(ctx, actor.UserID, recipeIDs, authorIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgViewerLookupFailed, err)
	}
	return rel, nil
}

func (s *service) normalizePage(p domain.PageRequest) domain.PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = s.defaultPageSize
	}
	if p.Limit > domain.MaxPageSize {
		p.Limit = domain.MaxPageSize
	}
	return p
}

func (s *service) reject(ctx context.Context, err error) {
	reason := rejectionReason(err)
	if reason == ReasonOther {
		return
	}
	metrics.RecipeRejected(reason)
	logger.FromContext(ctx).Debug(LogMsgDraftRejected, "reason", reason, "error", err)
}
