package recipe

// Error Messages
const (
	ErrMsgCreateFailed        = "failed to create recipe"
	ErrMsgUpdateFailed        = "failed to update recipe"
	ErrMsgDeleteFailed        = "failed to delete recipe"
	ErrMsgGetFailed           = "failed to get recipe"
	ErrMsgListFailed          = "failed to list recipes"
	ErrMsgCatalogLookupFailed = "failed to check catalog"
	ErrMsgNameCheckFailed     = "failed to check recipe name"
	ErrMsgViewerLookupFailed  = "failed to load viewer relations"
	ErrMsgCookingTimeRangeFmt = "must be between %d and %d minutes, got %d"
	ErrMsgUnknownIDsFmt       = "ids %v"
	ErrMsgDuplicateIDFmt      = "id %d"
	ErrMsgInvalidAmountFmt    = "ingredient %d has amount %d"
	ErrMsgDuplicateNameFmt    = "name %q"
	ErrMsgRecipeIDFmt         = "id %d"
)

// Log Messages
const (
	LogMsgRecipeCreated = "Recipe created"
	LogMsgRecipeUpdated = "Recipe updated"
	LogMsgRecipeDeleted = "Recipe deleted"
	LogMsgDraftRejected = "Recipe draft rejected"
	LogMsgNotAuthor     = "Recipe change refused for non-author"
)

// Rejection reasons used as metric labels
const (
	ReasonEmptyTags           = "empty_tags"
	ReasonDuplicateTags       = "duplicate_tags"
	ReasonUnknownTag          = "unknown_tag"
	ReasonEmptyIngredients    = "empty_ingredients"
	ReasonDuplicateIngredient = "duplicate_ingredient"
	ReasonUnknownIngredient   = "unknown_ingredient"
	ReasonInvalidAmount       = "invalid_amount"
	ReasonInvalidCookingTime  = "invalid_cooking_time"
	ReasonDuplicateName       = "duplicate_name"
	ReasonOther               = "other"
)
