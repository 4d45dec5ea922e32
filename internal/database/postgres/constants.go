package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row does not exist
	PgErrorCodeForeignKeyViolation = "23503"
	// PgErrorCodeCheckViolation is raised when a CHECK constraint fails
	PgErrorCodeCheckViolation = "23514"
)

// Constraint names declared in migrations/
const (
	ConstraintRecipeAuthorNameKey = "recipes_author_name_key"
	ConstraintRecipeCookingTime   = "recipes_cooking_time_check"
	ConstraintRecipeAuthor        = "recipes_author_id_fkey"
	ConstraintRecipeTagsPkey      = "recipe_tags_pkey"
	ConstraintRecipeTagsTag       = "recipe_tags_tag_id_fkey"
	ConstraintRecipeIngrPkey      = "recipe_ingredients_pkey"
	ConstraintRecipeIngredient    = "recipe_ingredients_ingredient_id_fkey"
	ConstraintNoSelfFollow        = "follows_no_self_follow"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgInvalidUserID      = "invalid user id"
	ErrMsgFailedToInsertUser = "failed to insert user"
	ErrMsgFailedToGetUser    = "failed to get user"
	ErrMsgFailedToListUsers  = "failed to list users"
	ErrMsgFailedToCountUsers = "failed to count users"
)

// Error Messages - Catalog Operations
const (
	ErrMsgFailedToQueryTags        = "failed to query tags"
	ErrMsgFailedToGetTag           = "failed to get tag"
	ErrMsgFailedToUpsertTag        = "failed to upsert tag"
	ErrMsgFailedToQueryIngredients = "failed to query ingredients"
	ErrMsgFailedToGetIngredient    = "failed to get ingredient"
	ErrMsgFailedToUpsertIngredient = "failed to upsert ingredient"
	ErrMsgTagNotFound              = "tag not found"
	ErrMsgIngredientNotFound       = "ingredient not found"
)

// Error Messages - Recipe Operations
const (
	ErrMsgFailedToInsertRecipe            = "failed to insert recipe"
	ErrMsgFailedToUpdateRecipe            = "failed to update recipe"
	ErrMsgFailedToDeleteRecipe            = "failed to delete recipe"
	ErrMsgFailedToGetRecipe               = "failed to get recipe"
	ErrMsgFailedToQueryRecipes            = "failed to query recipes"
	ErrMsgFailedToCountRecipes            = "failed to count recipes"
	ErrMsgFailedToClearRecipeTags         = "failed to clear recipe tags"
	ErrMsgFailedToInsertRecipeTags        = "failed to insert recipe tags"
	ErrMsgFailedToClearRecipeIngredients  = "failed to clear recipe ingredients"
	ErrMsgFailedToInsertRecipeIngredients = "failed to insert recipe ingredients"
	ErrMsgFailedToQueryRecipeTags         = "failed to query recipe tags"
	ErrMsgFailedToQueryRecipeIngredients  = "failed to query recipe ingredients"
	ErrMsgFailedToCheckRecipeName         = "failed to check recipe name"
	ErrMsgFailedToQueryViewerRelations    = "failed to query viewer relations"
	ErrMsgAmountOutOfRangeFmt             = "amount %d does not fit the amount column"
)

// Error Messages - Ledger Operations
const (
	ErrMsgUnknownLedgerSet          = "unknown ledger set"
	ErrMsgFailedToInsertEntry       = "failed to insert ledger entry"
	ErrMsgFailedToDeleteEntry       = "failed to delete ledger entry"
	ErrMsgFailedToQueryCartContents = "failed to query cart ingredients"
)

// Error Messages - Follow Operations
const (
	ErrMsgFailedToInsertFollow       = "failed to insert follow"
	ErrMsgFailedToDeleteFollow       = "failed to delete follow"
	ErrMsgFailedToCheckFollow        = "failed to check follow"
	ErrMsgFailedToQueryFollowed      = "failed to query followed authors"
	ErrMsgFailedToCountFollowed      = "failed to count followed authors"
	ErrMsgFailedToCountAuthorRecipes = "failed to count author recipes"
	ErrMsgFailedToQueryRecentRecipes = "failed to query recent recipes"
)

// Log Messages
const (
	LogMsgFailedToRollback = "Failed to rollback transaction"
)
