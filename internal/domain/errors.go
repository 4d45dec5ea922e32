package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Recipe composition errors
	ErrMsgEmptyTags           = "at least one tag is required"
	ErrMsgDuplicateTags       = "tags must not repeat"
	ErrMsgUnknownTag          = "tag does not exist"
	ErrMsgEmptyIngredients    = "at least one ingredient is required"
	ErrMsgDuplicateIngredient = "ingredients must not repeat"
	ErrMsgUnknownIngredient   = "ingredient does not exist"
	ErrMsgInvalidAmount       = "ingredient amount is out of range"
	ErrMsgInvalidCookingTime  = "cooking time is out of range"
	ErrMsgDuplicateRecipeName = "author already has a recipe with this name"
	ErrMsgUnknownRecipe       = "recipe not found"
	ErrMsgNotRecipeAuthor     = "only the author may change this recipe"

	// Catalog errors
	ErrMsgTagNotFound        = "tag not found"
	ErrMsgIngredientNotFound = "ingredient not found"

	// Ledger errors
	ErrMsgAlreadyMember = "recipe is already in the list"
	ErrMsgNotMember     = "recipe is not in the list"

	// Follow errors
	ErrMsgSelfFollow       = "cannot follow yourself"
	ErrMsgAlreadyFollowing = "already following this author"
	ErrMsgNotFollowing     = "not following this author"

	// User errors
	ErrMsgUserNotFound         = "user not found"
	ErrMsgUserAlreadyExists    = "user with this email or username already exists"
	ErrMsgUnauthenticatedActor = "authentication required"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Recipe composition errors
	ErrEmptyTags           = errors.New(ErrMsgEmptyTags)
	ErrDuplicateTags       = errors.New(ErrMsgDuplicateTags)
	ErrUnknownTag          = errors.New(ErrMsgUnknownTag)
	ErrEmptyIngredients    = errors.New(ErrMsgEmptyIngredients)
	ErrDuplicateIngredient = errors.New(ErrMsgDuplicateIngredient)
	ErrUnknownIngredient   = errors.New(ErrMsgUnknownIngredient)
	ErrInvalidAmount       = errors.New(ErrMsgInvalidAmount)
	ErrInvalidCookingTime  = errors.New(ErrMsgInvalidCookingTime)
	ErrDuplicateRecipeName = errors.New(ErrMsgDuplicateRecipeName)
	ErrUnknownRecipe       = errors.New(ErrMsgUnknownRecipe)
	ErrNotRecipeAuthor     = errors.New(ErrMsgNotRecipeAuthor)

	// Catalog errors
	ErrTagNotFound        = errors.New(ErrMsgTagNotFound)
	ErrIngredientNotFound = errors.New(ErrMsgIngredientNotFound)

	// Ledger errors
	ErrAlreadyMember = errors.New(ErrMsgAlreadyMember)
	ErrNotMember     = errors.New(ErrMsgNotMember)

	// Follow errors
	ErrSelfFollow       = errors.New(ErrMsgSelfFollow)
	ErrAlreadyFollowing = errors.New(ErrMsgAlreadyFollowing)
	ErrNotFollowing     = errors.New(ErrMsgNotFollowing)

	// User errors
	ErrUserNotFound         = errors.New(ErrMsgUserNotFound)
	ErrUserAlreadyExists    = errors.New(ErrMsgUserAlreadyExists)
	ErrUnauthenticatedActor = errors.New(ErrMsgUnauthenticatedActor)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
