package config

import "time"

// Defaults applied when the corresponding environment variable is unset
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "foodgram"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBName            = "foodgram"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultMaxCookingTime     = 1440
	DefaultCatalogCacheSize   = 1024
	DefaultCatalogCacheTTL    = 10 * time.Minute
	DefaultPageSize           = 6
	DefaultShoppingListLocale = "en"
	DefaultMaxRequestBytes    = 1 << 20
)

const (
	// Seed data file paths
	SeedPathIngredients = "data/ingredients.json"
	SeedPathTags        = "data/tags.json"
)
