package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/Foodgram_Go/internal/catalog"
	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/follow"
	"github.com/osse101/Foodgram_Go/internal/ledger"
	"github.com/osse101/Foodgram_Go/internal/metrics"
	"github.com/osse101/Foodgram_Go/internal/recipe"
	"github.com/osse101/Foodgram_Go/internal/shopping"
	"github.com/osse101/Foodgram_Go/internal/user"
)

// Services holds the domain services served over HTTP
type Services struct {
	Catalog  catalog.Service
	Recipes  recipe.Service
	Ledger   ledger.Service
	Shopping shopping.Service
	Users    user.Service
	Follows  follow.Service
}

// InitializeServices wires every service to its repositories
func InitializeServices(cfg *config.Config, repos *Repositories) (*Services, error) {
	catalogService := catalog.NewService(repos.Catalog, catalog.CacheConfig{
		Size: cfg.CatalogCacheSize,
		TTL:  cfg.CatalogCacheTTL,
	})

	shoppingService, err := shopping.NewService(repos.ShoppingCart, cfg.ShoppingListLocale)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateShopping, err)
	}

	svcs := &Services{
		Catalog: catalogService,
		Recipes: recipe.NewService(repos.Recipe, catalogService, recipe.Config{
			MaxCookingTime:  cfg.MaxCookingTime,
			DefaultPageSize: cfg.DefaultPageSize,
		}),
		Ledger:   ledger.NewService(repos.Ledger),
		Shopping: shoppingService,
		Users:    user.NewService(repos.User, repos.Follow, cfg.DefaultPageSize),
		Follows:  follow.NewService(repos.Follow, repos.User, cfg.DefaultPageSize),
	}

	slog.Info(LogMsgServicesInitialized,
		"max_cooking_time", cfg.MaxCookingTime,
		"page_size", cfg.DefaultPageSize,
		"shopping_list_locale", cfg.ShoppingListLocale)
	return svcs, nil
}

// RegisterCollectors exposes catalog cache and pool statistics on reg
func RegisterCollectors(reg prometheus.Registerer, catalogService catalog.Service, acquiredConns metrics.PoolStatsFunc) error {
	err := metrics.RegisterCatalogCache(reg, func() (uint64, uint64, int) {
		stats := catalogService.GetCacheStats()
		return stats.Hits, stats.Misses, stats.Size
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterCollectors, err)
	}
	if err := metrics.RegisterDatabasePool(reg, acquiredConns); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterCollectors, err)
	}
	slog.Info(LogMsgCollectorsRegistered)
	return nil
}
