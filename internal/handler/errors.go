package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgInvalidID           = "Invalid id"
	ErrMsgInvalidUserID       = "Invalid user id"
	ErrMsgInvalidPage         = "Invalid page parameter"
	ErrMsgInvalidLimit        = "Invalid limit parameter"
	ErrMsgInvalidRecipesLimit = "Invalid recipes_limit parameter"
	ErrMsgInvalidFlag         = "Invalid %s parameter, expected 0 or 1"

	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgAuthRequired       = "Authentication credentials were not provided"
	ErrMsgForbidden          = "You do not have permission to perform this action"
	ErrMsgNotFound           = "Not found"
)

// Log messages
const (
	LogMsgServiceError   = "Service call failed"
	LogMsgRequestDecoded = "Request decoded"
	LogMsgDecodeFailed   = "Failed to decode request"
)

// Query parameter names
const (
	QueryParamPage             = "page"
	QueryParamLimit            = "limit"
	QueryParamRecipesLimit     = "recipes_limit"
	QueryParamTags             = "tags"
	QueryParamAuthor           = "author"
	QueryParamIsFavorited      = "is_favorited"
	QueryParamIsInShoppingCart = "is_in_shopping_cart"
	QueryParamName             = "name"
)

// URL parameter names
const (
	URLParamID = "id"
)

// Content types
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)
