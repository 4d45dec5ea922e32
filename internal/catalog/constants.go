package catalog

import "time"

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1024

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 10 * time.Minute

// Cache key prefixes
const (
	cacheKeyTag        = "tag:"
	cacheKeyIngredient = "ingredient:"
)

// Error Messages
const (
	ErrMsgListTagsFailed        = "failed to list tags"
	ErrMsgGetTagFailed          = "failed to get tag"
	ErrMsgLookupTagsFailed      = "failed to look up tags"
	ErrMsgListIngredientsFailed = "failed to list ingredients"
	ErrMsgGetIngredientFailed   = "failed to get ingredient"
	ErrMsgLookupIngrFailed      = "failed to look up ingredients"
	ErrMsgImportFailed          = "catalog import failed"
	ErrMsgEmptyTagField         = "tag name, color and slug are required"
	ErrMsgEmptyIngredientField  = "ingredient name and measurement unit are required"
)

// Log Messages
const (
	LogMsgTagsImported        = "Tags imported"
	LogMsgIngredientsImported = "Ingredients imported"
)
