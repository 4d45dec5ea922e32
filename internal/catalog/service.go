package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/Foodgram_Go/internal/domain"
	"github.com/osse101/Foodgram_Go/internal/logger"
	"github.com/osse101/Foodgram_Go/internal/repository"
)

// Service defines read-mostly access to the tag and ingredient catalog
type Service interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	GetTag(ctx context.Context, id int64) (*domain.Tag, error)
	ListIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error)
	GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error)

	// Existence checks used by recipe composition
	TagsExist(ctx context.Context, ids []int64) (bool, error)
	IngredientsExist(ctx context.Context, ids []int64) (bool, error)
	MissingTagIDs(ctx context.Context, ids []int64) ([]int64, error)
	MissingIngredientIDs(ctx context.Context, ids []int64) ([]int64, error)

	// Bulk import used by the seed command
	ImportTags(ctx context.Context, tags []domain.Tag) (int, error)
	ImportIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error)

	GetCacheStats() CacheStats
}

type service struct {
	repo  repository.Catalog
	cache *catalogCache
}

// NewService creates a new catalog service backed by repo with an LRU cache in front
func NewService(repo repository.Catalog, cacheConfig CacheConfig) Service {
	return &service{
		repo:  repo,
		cache: newCatalogCache(cacheConfig),
	}
}

func (s *service) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.repo.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListTagsFailed, err)
	}
	for _, t := range tags {
		s.cache.SetTag(t)
	}
	return tags, nil
}

func (s *service) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	if tag, ok := s.cache.GetTag(id); ok {
		return tag, nil
	}
	tag, err := s.repo.GetTagByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetTagFailed, err)
	}
	if tag == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrTagNotFound, id)
	}
	s.cache.SetTag(*tag)
	return tag, nil
}

func (s *service) ListIngredients(ctx context.Context, namePrefix string) ([]domain.Ingredient, error) {
	ingredients, err := s.repo.ListIngredients(ctx, strings.TrimSpace(namePrefix))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListIngredientsFailed, err)
	}
	return ingredients, nil
}

func (s *service) GetIngredient(ctx context.Context, id int64) (*domain.Ingredient, error) {
	if in, ok := s.cache.GetIngredient(id); ok {
		return in, nil
	}
	in, err := s.repo.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetIngredientFailed, err)
	}
	if in == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrIngredientNotFound, id)
	}
	s.cache.SetIngredient(*in)
	return in, nil
}

func (s *service) TagsExist(ctx context.Context, ids []int64) (bool, error) {
	missing, err := s.MissingTagIDs(ctx, ids)
	if err != nil {
		return false, err
	}
	return len(missing) == 0, nil
}

func (s *service) IngredientsExist(ctx context.Context, ids []int64) (bool, error) {
	missing, err := s.MissingIngredientIDs(ctx, ids)
	if err != nil {
		return false, err
	}
	return len(missing) == 0, nil
}

// MissingTagIDs returns the ids that are not in the catalog, in input order
func (s *service) MissingTagIDs(ctx context.Context, ids []int64) ([]int64, error) {
	var uncached []int64
	for _, id := range ids {
		if _, ok := s.cache.GetTag(id); !ok {
			uncached = append(uncached, id)
		}
	}
	if len(uncached) == 0 {
		return nil, nil
	}

	found, err := s.repo.GetTagsByIDs(ctx, uncached)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLookupTagsFailed, err)
	}
	present := make(map[int64]bool, len(found))
	for _, t := range found {
		s.cache.SetTag(t)
		present[t.ID] = true
	}
	return absent(uncached, present), nil
}

// MissingIngredientIDs returns the ids that are not in the catalog, in input order
func (s *service) MissingIngredientIDs(ctx context.Context, ids []int64) ([]int64, error) {
	var uncached []int64
	for _, id := range ids {
		if _, ok := s.cache.GetIngredient(id); !ok {
			uncached = append(uncached, id)
		}
	}
	if len(uncached) == 0 {
		return nil, nil
	}

	found, err := s.repo.GetIngredientsByIDs(ctx, uncached)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLookupIngrFailed, err)
	}
	present := make(map[int64]bool, len(found))
	for _, in := range found {
		s.cache.SetIngredient(in)
		present[in.ID] = true
	}
	return absent(uncached, present), nil
}

func absent(ids []int64, present map[int64]bool) []int64 {
	var missing []int64
	for _, id := range ids {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

// ImportTags inserts new tags and skips ones that already exist. Colors are stored upper-case.
func (s *service) ImportTags(ctx context.Context, tags []domain.Tag) (int, error) {
	normalized := make([]domain.Tag, 0, len(tags))
	for _, t := range tags {
		t.Name = strings.TrimSpace(t.Name)
		t.Slug = strings.TrimSpace(t.Slug)
		t.Color = strings.ToUpper(strings.TrimSpace(t.Color))
		if t.Name == "" || t.Slug == "" || t.Color == "" {
			return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyTagField)
		}
		normalized = append(normalized, t)
	}

	n, err := s.repo.UpsertTags(ctx, normalized)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgImportFailed, err)
	}
	s.cache.Clear()
	logger.FromContext(ctx).Info(LogMsgTagsImported, "submitted", len(tags), "written", n)
	return n, nil
}

// ImportIngredients inserts ingredients whose (name, unit) pair is new
func (s *service) ImportIngredients(ctx context.Context, ingredients []domain.Ingredient) (int, error) {
	normalized := make([]domain.Ingredient, 0, len(ingredients))
	for _, in := range ingredients {
		in.Name = strings.TrimSpace(in.Name)
		in.MeasurementUnit = strings.TrimSpace(in.MeasurementUnit)
		if in.Name == "" || in.MeasurementUnit == "" {
			return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgEmptyIngredientField)
		}
		normalized = append(normalized, in)
	}

	n, err := s.repo.UpsertIngredients(ctx, normalized)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgImportFailed, err)
	}
	logger.FromContext(ctx).Info(LogMsgIngredientsImported, "submitted", len(ingredients), "written", n)
	return n, nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.cache.Stats()
}
