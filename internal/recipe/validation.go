package recipe

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/domain"
)

// validateDraft applies the composition rules in order and returns the first violation.
// excludeID is the recipe being updated, or 0 on create.
func (s *service) validateDraft(ctx context.Context, authorID string, excludeID int64, draft domain.RecipeDraft) error {
	if len(draft.TagIDs) == 0 {
		return domain.ErrEmptyTags
	}
	if id, dup := firstDuplicate(draft.TagIDs); dup {
		return fmt.Errorf("%w: "+ErrMsgDuplicateIDFmt, domain.ErrDuplicateTags, id)
	}
	missingTags, err := s.catalog.MissingTagIDs(ctx, draft.TagIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCatalogLookupFailed, err)
	}
	if len(missingTags) > 0 {
		return fmt.Errorf("%w: "+ErrMsgUnknownIDsFmt, domain.ErrUnknownTag, missingTags)
	}

	if len(draft.Ingredients) == 0 {
		return domain.ErrEmptyIngredients
	}
	ingredientIDs := make([]int64, len(draft.Ingredients))
	for i, in := range draft.Ingredients {
		ingredientIDs[i] = in.IngredientID
	}
	if id, dup := firstDuplicate(ingredientIDs); dup {
		return fmt.Errorf("%w: "+ErrMsgDuplicateIDFmt, domain.ErrDuplicateIngredient, id)
	}
	missingIngredients, err := s.catalog.MissingIngredientIDs(ctx, ingredientIDs)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgCatalogLookupFailed, err)
	}
	if len(missingIngredients) > 0 {
		return fmt.Errorf("%w: "+ErrMsgUnknownIDsFmt, domain.ErrUnknownIngredient, missingIngredients)
	}
	for _, in := range draft.Ingredients {
		if in.Amount < domain.MinIngredientAmount || in.Amount > domain.MaxIngredientAmount {
			return fmt.Errorf("%w: "+ErrMsgInvalidAmountFmt, domain.ErrInvalidAmount, in.IngredientID, in.Amount)
		}
	}

	if draft.CookingTime < domain.MinCookingTime || draft.CookingTime > s.maxCookingTime {
		return fmt.Errorf("%w: "+ErrMsgCookingTimeRangeFmt, domain.ErrInvalidCookingTime,
			domain.MinCookingTime, s.maxCookingTime, draft.CookingTime)
	}

	taken, err := s.repo.RecipeNameTaken(ctx, authorID, draft.Name, excludeID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgNameCheckFailed, err)
	}
	if taken {
		return fmt.Errorf("%w: "+ErrMsgDuplicateNameFmt, domain.ErrDuplicateRecipeName, draft.Name)
	}
	return nil
}

func firstDuplicate(ids []int64) (int64, bool) {
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return 0, false
}

// rejectionReason maps a composition error to its metric label
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyTags):
		return ReasonEmptyTags
	case errors.Is(err, domain.ErrDuplicateTags):
		return ReasonDuplicateTags
	case errors.Is(err, domain.ErrUnknownTag):
		return ReasonUnknownTag
	case errors.Is(err, domain.ErrEmptyIngredients):
		return ReasonEmptyIngredients
	case errors.Is(err, domain.ErrDuplicateIngredient):
		return ReasonDuplicateIngredient
	case errors.Is(err, domain.ErrUnknownIngredient):
		return ReasonUnknownIngredient
	case errors.Is(err, domain.ErrInvalidAmount):
		return ReasonInvalidAmount
	case errors.Is(err, domain.ErrInvalidCookingTime):
		return ReasonInvalidCookingTime
	case errors.Is(err, domain.ErrDuplicateRecipeName):
		return ReasonDuplicateName
	default:
		return ReasonOther
	}
}

// IsValidationError reports whether err is one of the draft composition failures
func IsValidationError(err error) bool {
	return rejectionReason(err) != ReasonOther
}
